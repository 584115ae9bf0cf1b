package specs

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var (
	ErrIncomplete    = errors.New("INCOMPLETE_SPECIFICATIONS")
	ErrInvalidSurvey = errors.New("INVALID_INPUT")
)

// IncompleteMessage is shown when a report is requested before every tab was
// visited.
const IncompleteMessage = "Please visit and complete all modules before generating the report."

const (
	DefaultAdditionalMonitoring = `Additional metering and monitoring may include the following:

• Major energy end uses (panel level): Switchgear panel, etc.
• Equipment level energy end uses: chiller, boiler, cooling towers, pumps, compressors, air handlers, major electromotors, etc.
• Functional area/zones of building/plant energy end uses: chiller plant, compressed air system, etc.
• Additional building automation system or process control points`

	DefaultOtherDataSources = `• The software platform must have the ability to collect dynamic and static data from multiple sources (e.g., BACnet, Modbus, OPC, CSV, RDBMS, and SQL).
• The technology will integrate with multiple external data sources such as local or on-site weather stations or third-party weather providers. Degree-days will be calculated automatically and charted for inclusion in year-to-year or month-to-month energy comparisons.
• The technology will integrate with existing lighting control and plug control systems so these data sources are available for analysis and diagnostics. [List the lighting control and/or plug load control systems.]
• The technology will integrate with the owner's CMMS. [Indicate the CMMS vendor.]
• The technology will integrate with existing IoT-based sensing so these data sources are available for analysis and diagnostics. [List the sensing technologies and communication protocols.]
• Provision of an API to support integration of data and fault findings with the third-party applications such as business intelligence software or other accounting systems.`

	DefaultEnergyConsumptionTracking = "o\tWhole-building level: electricity, gas, water, steam, etc. \n" +
		"o\tEnd-use submetered level: Pumping system, Air Compressors, HVAC, lighting, etc.\n" +
		"o\tEquipment submetered level: chiller, boiler, cooling tower, pump, etc.\n" +
		"o\tRenewable energy sources: Solar photovoltaic, biogas, etc."
)

// Survey is the complete set of specification answers. Maps hold only
// selected entries.
type Survey struct {
	Included                  map[TopicID]bool             `json:"included"`
	Utilities                 map[Utility]bool             `json:"utilities"`
	BASDataTypes              map[BASDataType]bool         `json:"basDataTypes"`
	BASIntegration            map[BASIntegrationPoint]bool `json:"basIntegration"`
	ExportFormats             map[ExportFormat]bool        `json:"exportFormats"`
	AdditionalMonitoring      string                       `json:"additionalMonitoring"`
	OtherDataSources          string                       `json:"otherDataSources"`
	EnergyConsumptionTracking string                       `json:"energyConsumptionTracking"`
	SubmeterRows              []SubmeterRow                `json:"submeterRows"`
	VisitedTabs               []Tab                        `json:"visitedTabs"`
}

// NewSurvey returns a fresh survey: nothing included, the first tab visited,
// one monthly sub-meter row and the default free-text requirements.
func NewSurvey() *Survey {
	return &Survey{
		Included:                  make(map[TopicID]bool),
		Utilities:                 make(map[Utility]bool),
		BASDataTypes:              make(map[BASDataType]bool),
		BASIntegration:            make(map[BASIntegrationPoint]bool),
		ExportFormats:             make(map[ExportFormat]bool),
		AdditionalMonitoring:      DefaultAdditionalMonitoring,
		OtherDataSources:          DefaultOtherDataSources,
		EnergyConsumptionTracking: DefaultEnergyConsumptionTracking,
		SubmeterRows:              []SubmeterRow{defaultSubmeterRow()},
		VisitedTabs:               []Tab{1},
	}
}

// Include sets whether a topic is part of the specification.
func (s *Survey) Include(id TopicID, on bool) error {
	if _, ok := topicIndex[id]; !ok {
		return fmt.Errorf("%w: unknown topic %q", ErrInvalidSurvey, id)
	}
	setFlag(s.Included, id, on)
	return nil
}

func (s *Survey) IsIncluded(id TopicID) bool {
	return s.Included[id]
}

func setFlag[K comparable](m map[K]bool, k K, on bool) {
	if on {
		m[k] = true
	} else {
		delete(m, k)
	}
}

// Visit marks a tab as visited. Visiting is idempotent.
func (s *Survey) Visit(tab Tab) error {
	if !tab.Valid() {
		return fmt.Errorf("%w: unknown tab %d", ErrInvalidSurvey, tab)
	}
	if s.Visited(tab) {
		return nil
	}
	s.VisitedTabs = append(s.VisitedTabs, tab)
	sort.Slice(s.VisitedTabs, func(i, j int) bool { return s.VisitedTabs[i] < s.VisitedTabs[j] })
	return nil
}

func (s *Survey) Visited(tab Tab) bool {
	for _, v := range s.VisitedTabs {
		if v == tab {
			return true
		}
	}
	return false
}

// CompletionPercent is the share of tabs visited, rounded.
func (s *Survey) CompletionPercent() int {
	n := 0
	for _, t := range Tabs() {
		if s.Visited(t) {
			n++
		}
	}
	return int(math.Round(float64(n) / TabCount * 100))
}

func (s *Survey) Complete() bool {
	for _, t := range Tabs() {
		if !s.Visited(t) {
			return false
		}
	}
	return true
}

// RequireComplete returns ErrIncomplete, carrying the user-facing message,
// when any tab is unvisited.
func (s *Survey) RequireComplete() error {
	if s.Complete() {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrIncomplete, IncompleteMessage)
}

// Validate reports unknown keys and malformed sub-meter rows. Surveys built
// by NewSurvey and the setters are always valid; decoded surveys may not be.
func (s *Survey) Validate() error {
	var problems []string
	for id := range s.Included {
		if _, ok := topicIndex[id]; !ok {
			problems = append(problems, fmt.Sprintf("unknown topic %q", id))
		}
	}
	for u := range s.Utilities {
		if !knownUtility(u) {
			problems = append(problems, fmt.Sprintf("unknown utility %q", u))
		}
	}
	for d := range s.BASDataTypes {
		if _, ok := lookupBASDataType(string(d)); !ok {
			problems = append(problems, fmt.Sprintf("unknown BAS data type %q", d))
		}
	}
	for p := range s.BASIntegration {
		if _, ok := lookupBASIntegrationPoint(string(p)); !ok {
			problems = append(problems, fmt.Sprintf("unknown BAS integration point %q", p))
		}
	}
	for f := range s.ExportFormats {
		if _, ok := lookupExportFormat(string(f)); !ok {
			problems = append(problems, fmt.Sprintf("unknown export format %q", f))
		}
	}
	for _, t := range s.VisitedTabs {
		if !t.Valid() {
			problems = append(problems, fmt.Sprintf("unknown tab %d", t))
		}
	}
	for _, r := range s.SubmeterRows {
		if !r.Interval.Valid() {
			problems = append(problems, fmt.Sprintf("submeter row %s: unknown interval %q", r.ID, r.Interval))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return fmt.Errorf("%w: %s", ErrInvalidSurvey, strings.Join(problems, "; "))
}

// SelectedUtilities returns the chosen utilities in survey order.
func (s *Survey) SelectedUtilities() []Utility {
	var out []Utility
	for _, u := range utilityOrder {
		if s.Utilities[u] {
			out = append(out, u)
		}
	}
	return out
}

func (s *Survey) SelectedBASDataTypes() []BASDataType {
	var out []BASDataType
	for _, d := range basDataTypes {
		if s.BASDataTypes[d.key] {
			out = append(out, d.key)
		}
	}
	return out
}

func (s *Survey) SelectedBASIntegration() []BASIntegrationPoint {
	var out []BASIntegrationPoint
	for _, p := range basIntegrationPoints {
		if s.BASIntegration[p.key] {
			out = append(out, p.key)
		}
	}
	return out
}

func (s *Survey) SelectedExportFormats() []ExportFormat {
	var out []ExportFormat
	for _, f := range exportFormats {
		if s.ExportFormats[f.key] {
			out = append(out, f.key)
		}
	}
	return out
}

func knownUtility(u Utility) bool {
	for _, known := range utilityOrder {
		if known == u {
			return true
		}
	}
	return false
}

func lookupBASDataType(key string) (BASDataType, bool) {
	for _, d := range basDataTypes {
		if string(d.key) == key {
			return d.key, true
		}
	}
	return "", false
}

func lookupBASIntegrationPoint(key string) (BASIntegrationPoint, bool) {
	if key == legacyMeterDataKey {
		return BASMeterData, true
	}
	for _, p := range basIntegrationPoints {
		if string(p.key) == key {
			return p.key, true
		}
	}
	return "", false
}

func lookupExportFormat(key string) (ExportFormat, bool) {
	for _, f := range exportFormats {
		if string(f.key) == key {
			return f.key, true
		}
	}
	return "", false
}
