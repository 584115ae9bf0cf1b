package specs

import (
	"strconv"
	"strings"
)

// TopicID is a requirement topic such as "4.2". The part before the dot is
// its tab.
type TopicID string

const (
	TopicUtilityData          TopicID = "1.1"
	TopicSubmeterData         TopicID = "1.2"
	TopicBASData              TopicID = "1.3"
	TopicAdditionalMonitoring TopicID = "1.4"
	TopicOtherDataSources     TopicID = "1.6"
	TopicConsumptionTracking  TopicID = "3.1"
	TopicNotificationExport   TopicID = "6.2"
)

func (id TopicID) Tab() Tab {
	head, _, _ := strings.Cut(string(id), ".")
	n, err := strconv.Atoi(head)
	if err != nil {
		return 0
	}
	return Tab(n)
}

// FlagKey is the legacy inclusion flag, e.g. "include_4_2".
func (id TopicID) FlagKey() string {
	return "include_" + strings.ReplaceAll(string(id), ".", "_")
}

// Block is a run of static requirement text: an optional sub-heading, an
// optional lead paragraph and a bullet list. Nested bullets render indented
// under the previous block.
type Block struct {
	Heading   string   `json:"heading,omitempty"`
	Paragraph string   `json:"paragraph,omitempty"`
	Bullets   []string `json:"bullets,omitempty"`
	Nested    bool     `json:"nested,omitempty"`
}

// Topic is one includable requirement. Before and After surround whatever
// the survey answers contribute to the topic (selected options, free text or
// the sub-meter table).
type Topic struct {
	ID     TopicID `json:"id"`
	Title  string  `json:"title"`
	Before []Block `json:"before,omitempty"`
	After  []Block `json:"after,omitempty"`
}

func bullets(items ...string) []Block {
	return []Block{{Bullets: items}}
}

var topics = []Topic{
	{
		ID:    TopicUtilityData,
		Title: "Utility data integration",
		Before: []Block{{
			Paragraph: "The technology will provide the capability to integrate utility meter data from existing systems:",
		}},
	},
	{
		ID:    TopicSubmeterData,
		Title: "Interval sub-meter data integration",
		Before: []Block{{
			Paragraph: "The technology will integrate with new and existing meters and monitoring systems from an interval meter and/or meters with pulse outputs. Where it is necessary to take advantage of existing metering data, the technology will integrate with the following systems for whole facility meters and/or submeters:",
		}},
		After: bullets(
			"Data should be available for analysis in real or near-real time through a continuous and automated data acquisition process.",
			"The technology will have the capability to consolidate meter readings to create virtual meter points. In other words, it can add and subtract the readings from multiple meters at the same interval, to produce a calculated time series of energy use.",
			"The technology will be able to upload and store a minimum history of 5 years of energy use or other data from standard spreadsheet or text file formats.",
			"The technology will have the capacity to store at least 5 years of data, trended at intervals up to 15 minutes for analysis, reporting, and visualization.",
			"The technology will have the ability to parse out data cluster displays into coincident time intervals ranging from 10 minutes to 1 year.",
		),
	},
	{
		ID:    TopicBASData,
		Title: "Building automation system (BAS) data integration",
		Before: []Block{{
			Paragraph: "The technology will extract data from the building control systems for Fault Detection and Diagnostics (FDD) functions:",
			Bullets: []string{
				"The data collection interval will be selected to meet the needs of the FDD software and is compatible with BAS trending, with 15-minute interval data being the most implemented. Change of value and/or slower polling rates may be needed to reduce network burden on the control system, and the effect of data collection interval on network speed will be determined during FDD setup. Slower or faster polling rates may also be implemented based on the type of fault (e.g., hunting and cycling faults may need one- to five-minute interval data).",
				"Integration with non-legacy vintages of BAS providers will occur via common protocols such as BACnet and Modbus, or through the BAS vendor's gateway. If the BAS does not support BACnet, a data gateway or protocol converter will need to be installed by the EMIS vendor.",
				"BAS data will be integrated as follows:",
			},
		}},
		After: bullets(
			"Near-real time data polling or end of day batch uploads to the EMIS are acceptable.",
			"The data integration will not adversely affect the speed of the existing BAS control or visualization functions.",
		),
	},
	{ID: TopicAdditionalMonitoring, Title: "Additional monitoring required or preferred"},
	{
		ID:    "1.5",
		Title: "Metadata / data tagging",
		Before: []Block{
			{
				Paragraph: "The use of standard naming conventions and a metadata schema (which may be referred to as 'data tags') improves the ability of the EMIS to consistently analyze, visualize, and derive value from operational data. A metadata schema will be selected for the EMIS project, defining at a minimum:",
				Bullets: []string{
					"a data dictionary for all terms used in the schema;",
					"a data taxonomy, providing categories and subcategories for the defined terms;",
				},
			},
			{Paragraph: "The specific version of the metadata schema should be noted, as well as noting whether the schema is an adaptation or extension of another existing schema."},
			{Paragraph: "The EMIS vendor will provide appropriate metadata for all data integrated with the EMIS, in alignment with the schema or tagging system selected for the project."},
		},
	},
	{ID: TopicOtherDataSources, Title: "Other data sources and APIs"},
	{
		ID:    "1.7",
		Title: "Data validation",
		Before: bullets(
			"The data connection to the EMIS will be validated by the EMIS vendor. In case of a data connection interruption, the data should be stored locally for at least two weeks of hourly data, or one week of sub-hourly data (e.g., 15-minute or 5-minute data).",
			"The technology will detect meter and sensor data quality issues such as gaps, spikes, and flat-lines, and the technology provider will have an option or service to automatically fill and/or correct data.",
			"The EMIS vendor will help to identify inaccurate data.",
			"The EMIS vendor will address insufficient data collection intervals, false negative and false positive diagnostics, dropped communications, and erroneous metadata tagging.",
		),
	},
	{
		ID:    "2.1",
		Title: "Utility bill management",
		Before: bullets(
			"The technology will provide the capability to allocate utility costs to different tenants or occupant groups sharing a building, to enable recharges and tenant billing.",
			"The technology will provide capabilities for savings analysis and comparison across a building portfolio through benchmarking, deriving energy use intensity, aligning bills with a calendar month, and normalizing usage based on weather data using standard protocols such as IPMVP Option C.",
		),
	},
	{
		ID:    "2.2",
		Title: "Utility budgeting",
		Before: bullets(
			"The technology will chart and report energy costs against budget, indicating surplus/deficit.",
			"The technology will include custom utility tariffs for energy cost and demand calculations.",
		),
	},
	{
		ID:    "2.3",
		Title: "Greenhouse gas (GHG) tracking",
		Before: bullets(
			"The technology will calculate, monitor, and report GHG emissions associated with facility energy use. The technology will supply recommended GHG conversion factors from a referenceable source, and the software will allow the users to enter their own conversion factors.",
			"Greenhouse gas calculations will account for on-site renewables, where relevant.",
		),
	},
	{
		ID:    TopicConsumptionTracking,
		Title: "Energy consumption tracking",
		Before: []Block{{
			Paragraph: "The technology will track and provide flexible charting capabilities for multiple meters on an hourly or sub hourly (e.g., 15-minute) basis.",
		}},
		After: []Block{
			{
				Heading: "Energy cost tracking",
				Bullets: []string{
					"The technology will calculate and provide visualizations of near real-time/daily/monthly and historic energy costs.",
					"The technology will use facility-specific tariffs in $/energy unit.",
				},
			},
			{
				Heading: "Energy unit conversion",
				Bullets: []string{
					"The technology will have the ability to normalize the data according to factors that are known to affect energy consumption, such as production rates, floor area, hours of operation, heating degree days, and cooling degree days.",
					"The technology will have the capability to convert, display, and report energy use in total GJ and additional environmental metrics such as CO2 equivalent.",
				},
			},
		},
	},
	{
		ID:    "3.2",
		Title: "Energy performance analysis",
		Before: []Block{
			{
				Heading: "Time series load profiling",
				Bullets: []string{
					"The technology will provide plots of at least 168-hour periods of hourly (or more frequent) interval energy usage versus time.",
					"The technology will provide options to select the time period and data points that are plotted.",
					"The technology will allow multiple user-selected data points to be plotted on a single chart or graph.",
				},
			},
			{
				Heading: "Benchmarking",
				Bullets: []string{
					"Benchmarking using the following meter-level key performance indicators (KPIs) will be included in the EMIS for the following metrics. The technology will allow the user to add custom KPIs and custom normalization factors. The benchmarks will be configured to allow for comparison to the prior [day/week/month/year].",
				},
			},
			{
				Heading: "Baseline energy consumption modeling",
				Bullets: []string{
					"The technology will characterize and predict the typical or expected energy usage based on key drivers such as weather (degree days or outside air temperature), production, time of day/week, and other variables.",
					"The baseline will be used for energy savings calculations, near-future load predictions, energy use comparisons, and energy anomaly detection.",
					"The technology has the capability to set up multiple baselines, e.g., prior year and a corporate goal baseline.",
				},
			},
			{
				Heading: "Energy anomaly detection",
				Bullets: []string{
					"The technology will identify and flag unexpectedly high or low energy use at the whole-facility and each submeter.",
					"The technology will allow for energy anomaly detection thresholds to be user-defined.",
					"The technology will provide the ability to track energy anomalies (duration and persistence) to facilitate response and resolution.",
				},
			},
			{
				Heading: "Building energy dashboards and reports",
				Bullets: []string{
					"The technology provider will provide a public-facing configurable dashboard display for occupants and visitors to view owner-defined aspects of energy consumed in the facility, including energy use intensity, and cumulative savings over time.",
					"The technology provider will provide an operator-facing or energy manager-facing configurable dashboard display to view building energy performance.",
					"The technology provider will provide all necessary hardware, software, and connectivity for users to create their own shareable reports.",
				},
			},
			{
				Heading: "Demand monitoring",
				Bullets: []string{
					"The technology will provide daily/monthly/annual peak load monitoring.",
					"The technology will provide notification through e-mail, or text message to an individual and/or group of recipients when the demand for critical metered loads passes a threshold.",
				},
			},
		},
	},
	{ID: "4.1", Title: "Fault and Optimization Opportunity Detection", Before: bullets("The technology will provide fault and optimization opportunity detection capabilities.")},
	{ID: "4.2", Title: "Fault and Opportunity Diagnosis", Before: bullets("The technology will diagnose faults and identify opportunities for improvement.")},
	{ID: "4.3", Title: "FDD Configuration", Before: bullets("The technology will support configuration of FDD settings.")},
	{ID: "4.4", Title: "Fault management and FDD results presentation", Before: bullets("The technology will present fault management data in a user-friendly format.")},
	{ID: "4.5", Title: "Work order management", Before: bullets("The technology will integrate with work order systems for managing detected faults.")},
	{ID: "4.6", Title: "System-level diagnostic supports", Before: bullets("The technology will provide system-level diagnostic support capabilities.")},
	{ID: "5.1", Title: "HVAC performance optimization", Before: bullets("The technology will optimize HVAC performance through automated controls.")},
	{ID: "5.2", Title: "Peak demand charge minimization", Before: bullets("The technology will minimize peak demand charges by adjusting loads in real time.")},
	{ID: "5.3", Title: "Provision of grid services", Before: bullets("The technology will enable the provision of grid services where applicable.")},
	{ID: "5.4", Title: "Other supervisory control strategies", Before: bullets("The technology will support additional supervisory control strategies as required.")},
	{
		ID:    "6.1",
		Title: "Project management and verification of savings",
		Before: []Block{
			{Bullets: []string{
				"The technology will provide the capability to log and track the status of energy efficiency projects (e.g., start, ongoing, finish) and personnel assigned. The technology will allow users to annotate charts and displays with key events and will store those annotations.",
				"The technology will provide measurement and verification (M&V) capabilities in accordance with the International Protocol for Measurement and Verification Protocol (IPMVP) Option C or other industry standards, such as ASHRAE Guideline 14. The baseline model type should be described in the proposal, and preferably adhere to transparent/documented model specifications. Additional requirements include:",
			}},
			{Nested: true, Bullets: []string{
				"Provision of baseline model fitness metrics (e.g., NMBE, CV[RMSE], R2)",
				"Ability to create multiple baseline models for a single meter",
				"Ability to perform M&V using monthly and interval data",
				"Ability to convert savings to common units (e.g., GJ, $) and normalize (e.g., GJ/sq ft/yr or GJ/unit of production)",
				"Ability to use ambient temperature data within the baseline models",
				"Ability to acquire other independent variable data, such as production rate, hours of operation, etc. These data may be entered manually or acquired from a facility-level system",
			}},
			{Bullets: []string{
				"The technology will provide the ability to express savings for each discrete project or in aggregate at the whole-building meter or submeter level, for a defined pre- and post- period or as a cumulative aggregated total. Output and charting requirements include: time-series charts including actual and predicted energy use, cumulative sum of energy savings charts (CUSUM), and energy savings report tables.",
				"The technology will provide capabilities to support savings analysis using IPMVP Option B.",
			}},
		},
	},
	{
		ID:    TopicNotificationExport,
		Title: "Notification, reporting and data export",
		Before: bullets(
			"The technology will provide customizable notification schemes including: work order generation, e-mail, phone, text message, to individual and/or group recipients for data quality alerting, anomaly detection, and fault detection.",
			"The technology will provide year-over-year energy, cost, and/or equipment health and performance reports in a format specified or acceptable by the facility.",
			"The technology will provide users the ability to create and save custom reports.",
		),
		After: bullets(
			"The technology will allow users to export data (all, or selected points or totalizations) to the following file formats: .xlsx/.xls, .csv, .xml",
		),
	},
	{ID: "7.1", Title: "Data storage and backup", Before: bullets("Robust data storage and backup solutions will be ensured.")},
	{ID: "7.2", Title: "Software hosting and data ownership", Before: bullets("Hosting arrangements and data ownership protocols will be clearly defined.")},
	{ID: "7.3", Title: "Cybersecurity", Before: bullets("Robust cybersecurity measures will be incorporated.")},
	{ID: "7.4", Title: "Permissions and access control", Before: bullets("Role-based permissions and secure access control will be provided.")},
	{ID: "7.5", Title: "Usability", Before: bullets("The technology will be designed for ease of use and intuitive operation.")},
	{ID: "7.6", Title: "Networking", Before: bullets("Networking requirements for connectivity and performance will be met.")},
	{ID: "8.1", Title: "Warranty", Before: bullets("A defined warranty period with specified terms will be provided.")},
	{ID: "8.2", Title: "Technical support", Before: bullets("Technical support, including service level agreements, will be offered.")},
	{ID: "8.3", Title: "Training", Before: bullets("Training for end users and technical staff will be provided.")},
	{ID: "8.4", Title: "Testing and Commissioning", Before: bullets("Testing and commissioning protocols and procedures will be outlined.")},
}

var topicIndex = func() map[TopicID]int {
	m := make(map[TopicID]int, len(topics))
	for i, t := range topics {
		m[t.ID] = i
	}
	return m
}()

// Topics returns every topic in survey order.
func Topics() []Topic {
	return append([]Topic(nil), topics...)
}

func LookupTopic(id TopicID) (Topic, bool) {
	i, ok := topicIndex[id]
	if !ok {
		return Topic{}, false
	}
	return topics[i], true
}

// TopicsIn returns the topics of one tab in order.
func TopicsIn(tab Tab) []Topic {
	var out []Topic
	for _, t := range topics {
		if t.ID.Tab() == tab {
			out = append(out, t)
		}
	}
	return out
}
