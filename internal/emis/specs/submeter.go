package specs

import "fmt"

type Interval string

const (
	IntervalMonthly   Interval = "Monthly"
	IntervalDaily     Interval = "Daily"
	IntervalHourly    Interval = "Hourly"
	IntervalSubHourly Interval = "Sub-hourly"
)

func (i Interval) Valid() bool {
	switch i {
	case IntervalMonthly, IntervalDaily, IntervalHourly, IntervalSubHourly:
		return true
	}
	return false
}

// SubmeterRow is one line of the interval sub-meter table in topic 1.2.
// Minutes only applies to sub-hourly meters.
type SubmeterRow struct {
	ID        string   `json:"id"`
	MeterName string   `json:"meterName"`
	Parameter string   `json:"parameter"`
	Interval  Interval `json:"interval"`
	Minutes   string   `json:"minutes,omitempty"`
	Comments  string   `json:"comments"`
}

// IntervalLabel is the interval as shown in reports, e.g.
// "Sub-hourly: 15 mins interval".
func (r SubmeterRow) IntervalLabel() string {
	if r.Interval == IntervalSubHourly && r.Minutes != "" {
		return fmt.Sprintf("Sub-hourly: %s mins interval", r.Minutes)
	}
	return string(r.Interval)
}

func defaultSubmeterRow() SubmeterRow {
	return SubmeterRow{ID: "1", Interval: IntervalMonthly}
}
