package specs

import "fmt"

// OutlineTopic is an included topic with its report number, e.g. "2.1".
type OutlineTopic struct {
	Number string  `json:"number"`
	ID     TopicID `json:"id"`
	Title  string  `json:"title"`
}

type OutlineSection struct {
	Number int            `json:"number"`
	Tab    Tab            `json:"tab"`
	Title  string         `json:"title"`
	Topics []OutlineTopic `json:"topics"`
}

// Outline numbers the included topics for the report. A tab gets the next
// section number only if at least one of its topics is included, and topics
// are numbered consecutively within their section.
func (s *Survey) Outline() []OutlineSection {
	var out []OutlineSection
	for _, tab := range Tabs() {
		var included []Topic
		for _, t := range TopicsIn(tab) {
			if s.Included[t.ID] {
				included = append(included, t)
			}
		}
		if len(included) == 0 {
			continue
		}

		sec := OutlineSection{Number: len(out) + 1, Tab: tab, Title: tab.Name()}
		for i, t := range included {
			sec.Topics = append(sec.Topics, OutlineTopic{
				Number: fmt.Sprintf("%d.%d", sec.Number, i+1),
				ID:     t.ID,
				Title:  t.Title,
			})
		}
		out = append(out, sec)
	}
	return out
}
