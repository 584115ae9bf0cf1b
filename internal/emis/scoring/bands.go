package scoring

import "emis-workers/internal/emis/catalog"

type ScoreBand string

const (
	BandExcellent        ScoreBand = "excellent"
	BandGood             ScoreBand = "good"
	BandModerate         ScoreBand = "moderate"
	BandNeedsImprovement ScoreBand = "needs-improvement"
)

// Band classifies a percentage for colouring scores.
func Band(percentage int) ScoreBand {
	switch {
	case percentage >= 80:
		return BandExcellent
	case percentage >= 60:
		return BandGood
	case percentage >= 40:
		return BandModerate
	default:
		return BandNeedsImprovement
	}
}

// Summary is the capability wording used in the executive summary.
func Summary(percentage int) string {
	if b := Band(percentage); b != BandNeedsImprovement {
		return string(b)
	}
	return "significant improvement needed"
}

// Satisfactory reports whether a section is at or above the 70% threshold.
func Satisfactory(percentage int) bool {
	return percentage >= 70
}

type Tier string

const (
	TierImmediate  Tier = "immediate"
	TierShortTerm  Tier = "short-term"
	TierMediumTerm Tier = "medium-term"
)

// PriorityTier places a section score in the improvement timeline.
func PriorityTier(percentage int) Tier {
	switch {
	case percentage < 50:
		return TierImmediate
	case percentage < 70:
		return TierShortTerm
	default:
		return TierMediumTerm
	}
}

const defaultSectionDescription = "This section evaluates specific aspects of your EMIS implementation."

var sectionDescriptions = map[catalog.Section]string{
	catalog.SectionEnergyMeters:       "Energy Account Centres (EACs) are discrete areas, processes, or cost centres within a facility for which energy consumption can be separately measured and managed. This section evaluates the identification of EACs, sub-metering coverage, meter types appropriateness, installation quality, and accuracy. Proper energy metering is fundamental to effective energy management.",
	catalog.SectionRelevantVariables:  "Key drivers are variables that significantly influence energy consumption patterns in a facility. This section assesses the identification and measurement of key drivers that significantly influence energy usage. Understanding these variables is crucial for accurate energy analysis and forecasting.",
	catalog.SectionDataCapture:        "This section examines the automation level of meter reading, data entry processes, error checking mechanisms, data capture frequency, and historical data storage capabilities. Effective data capture and storage systems are essential for reliable energy management.",
	catalog.SectionDataAnalysis:       "This section evaluates the system's capability to perform complex analysis, integration with data capture systems, performance comparison against drivers, and data analysis flexibility. Sophisticated analysis capabilities enable better energy management decisions.",
	catalog.SectionTargetSetting:      "This section assesses how targets are established, their realism, acceptance by EAC owners, accountability structures, and the inclusiveness of the target-setting process. Effective target setting drives energy performance improvement.",
	catalog.SectionPerformanceReports: "This section examines report production speed, generation responsibility, timeliness, user-friendliness, content quality, accessibility, drill-down capabilities, and IT system integration. Quality reporting enables informed decision-making.",
	catalog.SectionSupportSkills:      "This section evaluates internal capabilities for maintaining meters, data capture systems, network integration, IT environment status, EMIS operation skills, and analytical capabilities. Strong internal capabilities ensure system sustainability and effectiveness.",
}

var sectionActions = map[catalog.Section][]string{
	catalog.SectionEnergyMeters: {
		"Implement comprehensive sub-metering strategy to achieve 80%+ coverage",
		"Establish clear Energy Account Centres aligned with operational processes",
		"Ensure all meters are appropriate for their measurement conditions",
		"Develop regular calibration and maintenance schedules",
	},
	catalog.SectionRelevantVariables: {
		"Identify all key drivers affecting energy consumption",
		"Establish correlation between drivers and energy usage patterns",
		"Implement automated measurement systems for critical variables",
		"Regular review and validation of driver relationships",
	},
	catalog.SectionDataCapture: {
		"Automate meter reading and data entry processes",
		"Implement comprehensive error checking mechanisms",
		"Ensure adequate data capture frequency for analysis needs",
		"Establish robust historical data storage capabilities",
	},
	catalog.SectionDataAnalysis: {
		"Upgrade analysis capabilities to support complex statistical methods",
		"Improve integration between data capture and analysis systems",
		"Implement flexible data analysis and aggregation tools",
		"Develop multiple regression analysis capabilities",
	},
	catalog.SectionTargetSetting: {
		"Establish statistically-based target setting processes",
		"Ensure realistic and achievable targets based on historical data",
		"Improve EAC owner engagement and accountability",
		"Implement inclusive target-setting processes",
	},
	catalog.SectionPerformanceReports: {
		"Automate report generation for immediate availability",
		"Improve report user-friendliness and accessibility",
		"Implement comprehensive drill-down capabilities",
		"Enhance integration with existing IT systems",
	},
	catalog.SectionSupportSkills: {
		"Develop internal technical capabilities for system maintenance",
		"Improve network integration between systems",
		"Upgrade IT environment to current standards",
		"Enhance analytical and target-setting skills through training",
	},
}

func SectionDescription(section catalog.Section) string {
	if d, ok := sectionDescriptions[section]; ok {
		return d
	}
	return defaultSectionDescription
}

// SectionActions returns the improvement actions for a section result. Lower
// scores get more actions: three below 50%, two below 70%, otherwise one.
func SectionActions(sr SectionResult) []string {
	all := sectionActions[catalog.Section(sr.ID)]
	n := 1
	switch PriorityTier(sr.Percentage) {
	case TierImmediate:
		n = 3
	case TierShortTerm:
		n = 2
	}
	if n > len(all) {
		n = len(all)
	}
	return append([]string(nil), all[:n]...)
}
