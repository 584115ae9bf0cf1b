package report

import (
	"fmt"
	"html/template"
	"math"
	"strings"

	"emis-workers/internal/emis/scoring"
)

const (
	ChartDatasetLabel = "Current Performance (%)"
	chartMin          = 0
	chartMax          = 100
	chartStep         = 20
	labelWrapLength   = 15
)

type Dataset struct {
	Label string `json:"label"`
	Data  []int  `json:"data"`
}

// RadarChart is the spider chart of section percentages. Labels holds one or
// two lines per axis.
type RadarChart struct {
	Labels   [][]string `json:"labels"`
	Datasets []Dataset  `json:"datasets"`
	Min      int        `json:"min"`
	Max      int        `json:"max"`
	Step     int        `json:"step"`
}

// Chart builds the radar chart for results, one axis per section in order.
func Chart(results *scoring.Results) RadarChart {
	c := RadarChart{
		Labels: make([][]string, 0, len(results.Sections)),
		Min:    chartMin,
		Max:    chartMax,
		Step:   chartStep,
	}
	data := make([]int, 0, len(results.Sections))
	for _, s := range results.Sections {
		c.Labels = append(c.Labels, WrapLabel(s.Title))
		data = append(data, s.Percentage)
	}
	c.Datasets = []Dataset{{Label: ChartDatasetLabel, Data: data}}
	return c
}

// WrapLabel splits labels longer than 15 characters into two lines at the
// middle word. Single words are never split.
func WrapLabel(label string) []string {
	if len(label) <= labelWrapLength {
		return []string{label}
	}
	words := strings.Fields(label)
	if len(words) < 2 {
		return []string{label}
	}
	mid := (len(words) + 1) / 2
	return []string{strings.Join(words[:mid], " "), strings.Join(words[mid:], " ")}
}

const (
	svgSize   = 480
	svgCenter = svgSize / 2
	svgRadius = 160
)

// SVG renders the chart as a standalone inline SVG element.
func (c RadarChart) SVG() template.HTML {
	n := len(c.Labels)
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" role="img" aria-label="%s">`,
		svgSize, svgSize, svgSize, svgSize, template.HTMLEscapeString(ChartDatasetLabel))
	if n < 3 {
		b.WriteString(`</svg>`)
		return template.HTML(b.String())
	}

	for v := c.Step; v <= c.Max; v += c.Step {
		ring := make([]float64, n)
		for i := range ring {
			ring[i] = float64(v)
		}
		fmt.Fprintf(&b, `<polygon points="%s" fill="none" stroke="rgba(0,0,0,0.1)"/>`, c.points(ring))
		x, y := c.point(0, float64(v))
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-size="10" fill="#666">%d%%</text>`, x+4, y, v)
	}
	for i := 0; i < n; i++ {
		x, y := c.point(i, float64(c.Max))
		fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%.1f" y2="%.1f" stroke="rgba(0,0,0,0.1)"/>`, svgCenter, svgCenter, x, y)
	}

	if len(c.Datasets) > 0 {
		values := make([]float64, n)
		for i := range values {
			if i < len(c.Datasets[0].Data) {
				values[i] = float64(c.Datasets[0].Data[i])
			}
		}
		fmt.Fprintf(&b, `<polygon points="%s" fill="rgba(59,130,246,0.2)" stroke="rgb(59,130,246)" stroke-width="2"/>`, c.points(values))
		for i, v := range values {
			x, y := c.point(i, v)
			fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="3" fill="rgb(59,130,246)" stroke="#fff"/>`, x, y)
		}
	}

	for i, lines := range c.Labels {
		x, y := c.point(i, float64(c.Max)*1.18)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-size="12" text-anchor="middle">`, x, y)
		for j, line := range lines {
			dy := "0"
			if j > 0 {
				dy = "1.2em"
			}
			fmt.Fprintf(&b, `<tspan x="%.1f" dy="%s">%s</tspan>`, x, dy, template.HTMLEscapeString(line))
		}
		b.WriteString(`</text>`)
	}

	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

// point maps a value on axis i to SVG coordinates. Axis 0 points straight up.
func (c RadarChart) point(i int, value float64) (float64, float64) {
	n := len(c.Labels)
	angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
	span := float64(c.Max - c.Min)
	if span <= 0 {
		span = chartMax
	}
	r := svgRadius * math.Max(0, value-float64(c.Min)) / span
	return svgCenter + r*math.Cos(angle), svgCenter + r*math.Sin(angle)
}

func (c RadarChart) points(values []float64) string {
	pts := make([]string, len(values))
	for i, v := range values {
		x, y := c.point(i, v)
		pts[i] = fmt.Sprintf("%.1f,%.1f", x, y)
	}
	return strings.Join(pts, " ")
}
