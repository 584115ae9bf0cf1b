package catalog

// facilityQuestions is the built-in assessment. Question order within a
// section is the order the questions are asked and reported in.
var facilityQuestions = []Question{
	// ─── ENERGY METERS ─────────────────────────────────────────────────────
	{
		ID:         "em1",
		Title:      "Key Energy Account Centres (EACs) Identified",
		Subsection: SectionEnergyMeters,
		Explanation: `KEY ENERGY ACCOUNT CENTRES (EACS) IDENTIFIED (SCORE 0–10)

The identification of Energy Account Centres (EACs) is the means whereby energy consumption within a site or facility is delineated. EACs should, at a minimum, match the accounting cost centres for a facility to allow management to treat energy as any other input cost for that centre. In more complex production processes, the use of accounting cost centres may not lead to a sufficiently discrete separation of energy consumptions and costs; as a result, there may be a need for multiple EACs within each accounting cost centre. In these circumstances, EACs may be individual production areas, whole production lines or, if the energy consumption is significant, an individual unit operation such as a drier or furnace.

All of the production equipment within an EAC should be under the responsibility of one operation or production manager who is accountable for the performance of that EAC. A single manager may be responsible for multiple EACs.

Performance and targets should be set and managed at the EAC level.`,
		AnswerOptions: []AnswerOption{
			{Text: "EACs are delineated at an appropriate scale and scope for the site's operations or processes.", Score: 10, Description: "has EACs delineated at an appropriate scale and scope for the site's operations or processes."},
			{Text: "In most cases, EACs have been set at an appropriate level, but further EACs are required to provide a sufficiently discrete view to set targets and manage performance.", Score: 7, Description: "has EACs set at mostly appropriate levels, but further EACs are required for discrete target setting and performance management."},
			{Text: "EACs are set at an Accounting Cost Centre level but this is not sufficiently discrete to either set appropriate targets or manage performance.", Score: 5, Description: "has EACs set at Accounting Cost Centre level but lacks sufficient discreteness for appropriate target setting or performance management."},
			{Text: "EACs are defined at a Departmental level.", Score: 3, Description: "has EACs defined at a departmental level."},
			{Text: "No EACs have been identified.", Score: 0, Description: "has not identified any EACs."},
		},
		MaxScore: 10,
	},
	{
		ID:         "em2",
		Title:      "Energy Sub-metering Coverage on EACs",
		Subsection: SectionEnergyMeters,
		Explanation: `ENERGY SUB-METERING COVERAGE ON EACS (SCORE 0–10)

Once the optimal Energy Account Centres have been defined, the next stage in an Energy Management Information System is to ensure that all energy flows into each Energy Account Centre are measured.

Include both primary utilities (electricity, natural gas, oil) and secondary utilities such as compressed air, where relevant. These measurement devices are normally referred to as sub-meters to distinguish them from the fiscal meters that measure the primary energy flows to the site. Sub-meters should only be installed where the financial value of the energy flow justifies the cost.

To calculate coverage, determine for each EAC its overall energy weighting (Weighted %, summing to 100% across EACs) and the approximate share of its energy that is monitored (Measured %). Nameplate ratings and relative pipe sizes are useful inputs.

Overall Energy Sub-metering Coverage (%) = SUM [(EAC1 Weighted %) × (EAC1 Measured %) + … + (EAC N Weighted %) × (EAC N Measured %)].`,
		AnswerOptions: []AnswerOption{
			{Text: "90-100% coverage", Score: 10, Description: "has 90-100% energy sub-metering coverage on EACs."},
			{Text: "80-89% coverage", Score: 9, Description: "has 80-89% energy sub-metering coverage on EACs."},
			{Text: "70-79% coverage", Score: 8, Description: "has 70-79% energy sub-metering coverage on EACs."},
			{Text: "60-69% coverage", Score: 7, Description: "has 60-69% energy sub-metering coverage on EACs."},
			{Text: "50-59% coverage", Score: 6, Description: "has 50-59% energy sub-metering coverage on EACs."},
			{Text: "40-49% coverage", Score: 5, Description: "has 40-49% energy sub-metering coverage on EACs."},
			{Text: "30-39% coverage", Score: 4, Description: "has 30-39% energy sub-metering coverage on EACs."},
			{Text: "20-29% coverage", Score: 3, Description: "has 20-29% energy sub-metering coverage on EACs."},
			{Text: "10-19% coverage", Score: 2, Description: "has 10-19% energy sub-metering coverage on EACs."},
			{Text: "1-9% coverage", Score: 1, Description: "has 1-9% energy sub-metering coverage on EACs."},
			{Text: "0% coverage", Score: 0, Description: "has 0% energy sub-metering coverage on EACs."},
		},
		MaxScore: 10,
	},
	{
		ID:         "em3",
		Title:      "Meter Types Appropriate for Function",
		Subsection: SectionEnergyMeters,
		Explanation: `METER TYPES APPROPRIATE FOR FUNCTION (SCORE 0–10)

All meters must be suitable for their intended purpose: they should accurately measure the expected range of energy flows. This criterion assesses the selection of meter types for their function.

Primary considerations:
• Rangeability: the ratio of the meter maximum flow rate to the process low flow rate. Orifice plates, for example, have low rangeability because flow follows a square law with pressure drop, so a 4:1 turndown at the plate is 16:1 at the differential pressure transducer.
• Appropriate measurement: whether the meter measures volume, mass or energy rate, and whether that is the parameter required for reporting.
• Process conditions: whether the meter suits the process temperature and pressure, and whether pressure and temperature compensation are needed for steam or gas.`,
		AnswerOptions: []AnswerOption{
			{Text: "All sub-meters have been selected with due regard to the range of energy flows expected and are appropriate for measurement and process conditions.", Score: 10, Description: "has all sub-meters selected with due regard to energy flow ranges and appropriate for measurement and process conditions."},
			{Text: "Most of the sub-meters have been selected with due regard to the range of energy flows expected and are appropriate for measurement and process conditions. Some meters will need replacement.", Score: 7, Description: "has most sub-meters appropriately selected, though some meters will need replacement."},
			{Text: "A minority of sub-meters are appropriate for the range of energy flows expected and as a consequence the majority will need replacement.", Score: 3, Description: "has only a minority of sub-meters appropriate for expected energy flows, with majority needing replacement."},
			{Text: "Meters not functional and/or meter reading suspect.", Score: 0, Description: "has non-functional meters and/or suspect meter readings."},
		},
		MaxScore: 10,
	},
	{
		ID:         "em4",
		Title:      "Meter Installation Satisfactory",
		Subsection: SectionEnergyMeters,
		Explanation: `METER INSTALLATION SATISFACTORY (SCORE 0–5)

The long-term viability of the metering system depends on correct installation and on the ability to maintain it. Meters that are difficult to maintain are less likely to be inspected or calibrated. Calibration records and evidence of regular recalibration indicate a satisfactory installation.

Consider whether meters can be removed from service for inspection, are readily accessible, and have transmitters that can be isolated for calibration; whether mechanical installation follows the manufacturer's recommendations; and whether upstream and downstream straight pipe runs (typically 10 to 15 diameters upstream and 5 to 10 downstream) are provided.

Score is based on inspection and site operations feedback.`,
		AnswerOptions: []AnswerOption{
			{Text: "All metering systems are installed correctly and can easily be inspected/calibrated.", Score: 5, Description: "has all metering systems installed correctly and easily inspected/calibrated."},
			{Text: "Only some of the meters have issues related to installation.", Score: 4, Description: "has some meters with installation-related issues."},
			{Text: "At least ½ of the meters have issues related to installation.", Score: 2, Description: "has at least half of the meters with installation-related issues."},
			{Text: "More than ¾ of meters not functional and/or not installed correctly.", Score: 0, Description: "has more than three-quarters of meters non-functional and/or incorrectly installed."},
		},
		MaxScore: 5,
	},
	{
		ID:         "em5",
		Title:      "Meter Accuracy/Repeatability Understood",
		Subsection: SectionEnergyMeters,
		Explanation: `METER ACCURACY/REPEATABILITY UNDERSTOOD (SCORE 0–5)

Accuracy and repeatability considerations:

Age of the metering systems. Verify whether each meter has been maintained or calibrated. Steam can erode orifice plates, and pressure, temperature and differential pressure transmitters all require calibration.

External fixed factors used in meters or receiving equipment may be inappropriate or out of date, for example fixed pressure and temperature corrections for natural gas, or incorrect current transformer ratios.

Meter type may not be appropriate for the process fluid; dirty or viscous fluids affect accuracy.

Score each meter with one point for each item above and average across all meters, or enter the share of meters that meet all criteria.`,
		AnswerOptions: []AnswerOption{
			{Text: "Unreliable", Score: 0, Description: "has unreliable meters that provide inconsistent readings and cannot be trusted for energy management decisions."},
			{Text: "Poor accuracy", Score: 1, Description: "has meters with poor accuracy that significantly affect energy management effectiveness."},
			{Text: "Fair accuracy", Score: 2, Description: "has meters with fair accuracy but some issues that may affect energy management."},
			{Text: "Good accuracy", Score: 3, Description: "has meters with good accuracy and regular maintenance procedures."},
			{Text: "Excellent accuracy", Score: 4, Description: "has meters with very good accuracy and comprehensive maintenance."},
			{Text: "Accurate and maintained", Score: 5, Description: "has accurate and well-maintained meters that provide reliable data for energy management."},
		},
		MaxScore:          5,
		IsSlider:          true,
		IsPercentageBased: true,
		SliderLabels:      []string{"0%", "20%", "40%", "60%", "80%", "100%"},
		NextSteps:         "Establish a calibration register for every sub-meter and review fixed correction factors against current process conditions.",
	},

	// ─── RELEVANT VARIABLES ────────────────────────────────────────────────
	{
		ID:         "rv1",
		Title:      "Key Drivers Identified",
		Subsection: SectionRelevantVariables,
		Explanation: `KEY DRIVERS IDENTIFIED (SCORE 0–10)

Key drivers are the variables that explain most of the variation in energy consumption for an EAC: production volume or mix, weather (heating and cooling degree days), occupancy, operating hours and raw material properties. Without them, changes in consumption cannot be separated into changes in efficiency and changes in activity.

Drivers should be identified for each EAC and their relationship with energy use confirmed by analysis of historical data.`,
		AnswerOptions: []AnswerOption{
			{Text: "All key drivers of energy consumption have been identified for each EAC and their relationship with energy use has been established.", Score: 10, Description: "has identified all key drivers of energy consumption for each EAC and established their relationship with energy use."},
			{Text: "Key drivers have been identified for most EACs, but their relationship with energy use has not been fully established.", Score: 7, Description: "has identified key drivers for most EACs, but has not fully established their relationship with energy use."},
			{Text: "Key drivers have been identified at a site level only.", Score: 3, Description: "has identified key drivers at a site level only."},
			{Text: "No key drivers have been identified.", Score: 0, Description: "has not identified any key drivers of energy consumption."},
		},
		MaxScore:  10,
		NextSteps: "Compare production, weather and occupancy records with metered consumption for each EAC to confirm which variables explain energy use.",
	},
	{
		ID:         "rv2",
		Title:      "Key Drivers Measured",
		Subsection: SectionRelevantVariables,
		Explanation: `KEY DRIVERS MEASURED (SCORE 0–10)

Once identified, key drivers must be measured at the same frequency and over the same periods as the energy data they explain. Manual records collected weekly cannot explain hourly energy data.`,
		AnswerOptions: []AnswerOption{
			{Text: "All key drivers are measured automatically at the same frequency as the associated energy data.", Score: 10, Description: "measures all key drivers automatically at the same frequency as the associated energy data."},
			{Text: "Most key drivers are measured automatically, with some collected manually.", Score: 7, Description: "measures most key drivers automatically, with some collected manually."},
			{Text: "Key drivers are collected manually and at a lower frequency than the energy data.", Score: 4, Description: "collects key drivers manually and at a lower frequency than the energy data."},
			{Text: "Key drivers are not measured.", Score: 0, Description: "does not measure its key drivers of energy consumption."},
		},
		MaxScore: 10,
	},

	// ─── DATA CAPTURE AND STORAGE ──────────────────────────────────────────
	{
		ID:          "dc1",
		Title:       "Meter Reading Automation",
		Subsection:  SectionDataCapture,
		Explanation: "METER READING AUTOMATION (SCORE 0–5)\n\nAutomatic meter reading removes transcription errors, allows higher capture frequencies and frees staff time for analysis rather than collection.",
		AnswerOptions: []AnswerOption{
			{Text: "All meters are read automatically.", Score: 5, Description: "reads all meters automatically."},
			{Text: "Most meters are read automatically; the remainder are read manually.", Score: 3, Description: "reads most meters automatically, with the remainder read manually."},
			{Text: "Most meters are read manually.", Score: 1, Description: "reads most meters manually."},
			{Text: "All meters are read manually or not read at all.", Score: 0, Description: "reads all meters manually or not at all."},
		},
		MaxScore: 5,
	},
	{
		ID:          "dc2",
		Title:       "Data Entry",
		Subsection:  SectionDataCapture,
		Explanation: "DATA ENTRY (SCORE 0–5)\n\nAssess how meter and driver data reaches the EMIS. Every manual transcription step is a source of error and delay.",
		AnswerOptions: []AnswerOption{
			{Text: "All data enters the EMIS automatically with no manual transcription.", Score: 5, Description: "has all data entering the EMIS automatically with no manual transcription."},
			{Text: "Some data is manually entered into the EMIS from paper or spreadsheet records.", Score: 3, Description: "manually enters some data into the EMIS from paper or spreadsheet records."},
			{Text: "All data is entered manually.", Score: 0, Description: "enters all data into the EMIS manually."},
		},
		MaxScore: 5,
	},
	{
		ID:          "dc3",
		Title:       "Error Checking",
		Subsection:  SectionDataCapture,
		Explanation: "ERROR CHECKING (SCORE 0–5)\n\nCaptured data should be checked for gaps, spikes, flat-lines and out-of-range values before it is used for analysis. Automated validation with alarms and gap filling is best practice.",
		AnswerOptions: []AnswerOption{
			{Text: "No error checking", Score: 0, Description: "performs no error checking on captured energy data."},
			{Text: "Occasional manual checks", Score: 1, Description: "checks captured energy data manually on an occasional basis."},
			{Text: "Regular manual checks", Score: 2, Description: "checks captured energy data manually on a regular basis."},
			{Text: "Automated range checks", Score: 3, Description: "applies automated range checks to captured energy data."},
			{Text: "Automated checks with alarms", Score: 4, Description: "applies automated checks with alarms to captured energy data."},
			{Text: "Automated validation, alarms and gap filling", Score: 5, Description: "applies automated validation, alarms and gap filling to captured energy data."},
		},
		MaxScore:     5,
		IsSlider:     true,
		SliderLabels: []string{"None", "Manual", "Automated"},
	},
	{
		ID:          "dc4",
		Title:       "Data Capture Frequency",
		Subsection:  SectionDataCapture,
		Explanation: "DATA CAPTURE FREQUENCY (SCORE 0–5)\n\nThe capture interval should be short enough to reveal the operating patterns of each EAC. Fifteen-minute data supports load profiling and demand management; monthly data supports little more than billing reconciliation.",
		AnswerOptions: []AnswerOption{
			{Text: "Data is captured at 15-minute intervals or better for all EACs.", Score: 5, Description: "captures data at 15-minute intervals or better for all EACs."},
			{Text: "Data is captured hourly for all EACs.", Score: 4, Description: "captures data hourly for all EACs."},
			{Text: "Data is captured daily.", Score: 2, Description: "captures data daily."},
			{Text: "Data is captured weekly or monthly.", Score: 1, Description: "captures data weekly or monthly."},
			{Text: "Data is captured irregularly.", Score: 0, Description: "captures data irregularly."},
		},
		MaxScore: 5,
	},
	{
		ID:          "dc5",
		Title:       "Historical Data Storage",
		Subsection:  SectionDataCapture,
		Explanation: "HISTORICAL DATA STORAGE (SCORE 0–5)\n\nHistorical data underpins baselines, target setting and measurement and verification of savings. At least five years of data should be retained at the captured interval and remain accessible for analysis.",
		AnswerOptions: []AnswerOption{
			{Text: "At least five years of historical data are stored and readily accessible.", Score: 5, Description: "stores at least five years of readily accessible historical data."},
			{Text: "Two to five years of historical data are stored.", Score: 3, Description: "stores two to five years of historical data."},
			{Text: "Less than two years of historical data are stored.", Score: 1, Description: "stores less than two years of historical data."},
			{Text: "Historical data is not retained.", Score: 0, Description: "does not retain historical energy data."},
		},
		MaxScore: 5,
	},

	// ─── DATA ANALYSIS ─────────────────────────────────────────────────────
	{
		ID:          "da1",
		Title:       "Complex Analysis Capability",
		Subsection:  SectionDataAnalysis,
		Explanation: "COMPLEX ANALYSIS CAPABILITY (SCORE 0–10)\n\nEffective energy analysis relates consumption to its drivers. Multiple regression, cumulative sum (CUSUM) and statistical baselining identify performance changes that simple trend charts hide.",
		AnswerOptions: []AnswerOption{
			{Text: "The system supports multiple regression, CUSUM and statistical baselining for all EACs.", Score: 10, Description: "has a system supporting multiple regression, CUSUM and statistical baselining for all EACs."},
			{Text: "The system supports simple regression and trend analysis.", Score: 6, Description: "has a system supporting simple regression and trend analysis."},
			{Text: "Analysis is limited to charting consumption over time.", Score: 3, Description: "limits analysis to charting consumption over time."},
			{Text: "No analysis is carried out.", Score: 0, Description: "carries out no analysis of energy data."},
		},
		MaxScore:  10,
		NextSteps: "Develop regression models for the largest EACs using the key drivers already identified.",
	},
	{
		ID:          "da2",
		Title:       "Integration with Data Capture",
		Subsection:  SectionDataAnalysis,
		Explanation: "INTEGRATION WITH DATA CAPTURE (SCORE 0–5)\n\nAnalysis tools should draw data directly from the capture system so that results are current and free from transfer errors.",
		AnswerOptions: []AnswerOption{
			{Text: "Analysis software draws data directly from the data capture system.", Score: 5, Description: "has analysis software drawing data directly from the data capture system."},
			{Text: "Data is exported and imported manually between systems.", Score: 2, Description: "exports and imports data manually between capture and analysis systems."},
			{Text: "There is no link between data capture and analysis.", Score: 0, Description: "has no link between data capture and analysis."},
		},
		MaxScore: 5,
	},
	{
		ID:          "da3",
		Title:       "Performance Compared Against Drivers",
		Subsection:  SectionDataAnalysis,
		Explanation: "PERFORMANCE COMPARED AGAINST DRIVERS (SCORE 0–10)\n\nEnergy performance should be assessed as expected consumption, given the key drivers, compared with actual consumption for each EAC.",
		AnswerOptions: []AnswerOption{
			{Text: "Energy performance is routinely compared against the key drivers for every EAC.", Score: 10, Description: "routinely compares energy performance against the key drivers for every EAC."},
			{Text: "Energy performance is compared against key drivers for some EACs.", Score: 6, Description: "compares energy performance against key drivers for some EACs."},
			{Text: "Energy performance is compared against drivers occasionally and at site level only.", Score: 2, Description: "compares energy performance against drivers occasionally and at site level only."},
			{Text: "Energy performance is not compared against drivers.", Score: 0, Description: "does not compare energy performance against its drivers."},
		},
		MaxScore: 10,
	},
	{
		ID:          "da4",
		Title:       "Analysis Flexibility",
		Subsection:  SectionDataAnalysis,
		Explanation: "ANALYSIS FLEXIBILITY (SCORE 0–5)\n\nUsers should be able to aggregate, filter and re-analyse data across any period or group of EACs without specialist help.",
		AnswerOptions: []AnswerOption{
			{Text: "Users can aggregate, filter and re-analyse data on demand across any time period or EAC.", Score: 5, Description: "allows users to aggregate, filter and re-analyse data on demand across any time period or EAC."},
			{Text: "Analysis can be re-run for standard periods and EACs only.", Score: 3, Description: "can re-run analysis for standard periods and EACs only."},
			{Text: "Changes to analysis require vendor or specialist support.", Score: 1, Description: "requires vendor or specialist support for any change to analysis."},
			{Text: "Analysis is fixed and cannot be changed.", Score: 0, Description: "has fixed analysis that cannot be changed."},
		},
		MaxScore: 5,
	},

	// ─── TARGET SETTING ────────────────────────────────────────────────────
	{
		ID:          "ts1",
		Title:       "How Targets Are Set",
		Subsection:  SectionTargetSetting,
		Explanation: "HOW TARGETS ARE SET (SCORE 0–5)\n\nTargets derived from statistical models of historical performance against key drivers remain valid as activity levels change. Flat percentage reductions do not.",
		AnswerOptions: []AnswerOption{
			{Text: "Targets are set from statistical models of historical performance against key drivers.", Score: 5, Description: "sets targets from statistical models of historical performance against key drivers."},
			{Text: "Targets are set as a percentage reduction on historical consumption.", Score: 3, Description: "sets targets as a percentage reduction on historical consumption."},
			{Text: "Targets are set arbitrarily.", Score: 1, Description: "sets targets arbitrarily."},
			{Text: "No targets are set.", Score: 0, Description: "does not set energy targets."},
		},
		MaxScore: 5,
	},
	{
		ID:          "ts2",
		Title:       "Targets Realistic",
		Subsection:  SectionTargetSetting,
		Explanation: "TARGETS REALISTIC (SCORE 0–5)\n\nTargets should be challenging but achievable with the resources available to the EAC owner.",
		AnswerOptions: []AnswerOption{
			{Text: "Targets are challenging but achievable and are reviewed when conditions change.", Score: 5, Description: "has challenging but achievable targets that are reviewed when conditions change."},
			{Text: "Targets are sometimes unrealistic.", Score: 3, Description: "has targets that are sometimes unrealistic."},
			{Text: "Targets are routinely unrealistic.", Score: 0, Description: "has targets that are routinely unrealistic."},
		},
		MaxScore: 5,
	},
	{
		ID:          "ts3",
		Title:       "Targets Accepted by EAC Owners",
		Subsection:  SectionTargetSetting,
		Explanation: "TARGETS ACCEPTED BY EAC OWNERS (SCORE 0–5)\n\nTargets that EAC owners do not accept will not be acted upon.",
		AnswerOptions: []AnswerOption{
			{Text: "All EAC owners have accepted their targets.", Score: 5, Description: "has targets accepted by all EAC owners."},
			{Text: "Some EAC owners have accepted their targets.", Score: 3, Description: "has targets accepted by some EAC owners."},
			{Text: "EAC owners have not accepted their targets.", Score: 0, Description: "has targets that EAC owners have not accepted."},
		},
		MaxScore: 5,
	},
	{
		ID:          "ts4",
		Title:       "Accountability for Performance",
		Subsection:  SectionTargetSetting,
		Explanation: "ACCOUNTABILITY FOR PERFORMANCE (SCORE 0–5)\n\nEach EAC owner should be held accountable for performance against target in regular management reviews.",
		AnswerOptions: []AnswerOption{
			{Text: "EAC owners are held accountable for performance against target in regular reviews.", Score: 5, Description: "holds EAC owners accountable for performance against target in regular reviews."},
			{Text: "Accountability exists but performance is not reviewed regularly.", Score: 3, Description: "has accountability for energy performance that is not reviewed regularly."},
			{Text: "No one is accountable for energy performance.", Score: 0, Description: "has no one accountable for energy performance."},
		},
		MaxScore: 5,
	},
	{
		ID:          "ts5",
		Title:       "Inclusive Target-Setting Process",
		Subsection:  SectionTargetSetting,
		Explanation: "INCLUSIVE TARGET-SETTING PROCESS (SCORE 0–5)\n\nOperators, maintenance and production staff who influence consumption should contribute to the targets they are measured against.",
		AnswerOptions: []AnswerOption{
			{Text: "Operators, maintenance and production staff all contribute to setting targets.", Score: 5, Description: "involves operators, maintenance and production staff in setting targets."},
			{Text: "EAC owners contribute to setting targets.", Score: 3, Description: "involves EAC owners in setting targets."},
			{Text: "Targets are set by the energy manager alone.", Score: 1, Description: "has targets set by the energy manager alone."},
			{Text: "Targets are imposed without consultation.", Score: 0, Description: "imposes targets without consultation."},
		},
		MaxScore: 5,
	},

	// ─── ENERGY PERFORMANCE REPORTING ──────────────────────────────────────
	{
		ID:          "ep1",
		Title:       "Speed of Report Production",
		Subsection:  SectionPerformanceReports,
		Explanation: "SPEED OF REPORT PRODUCTION (SCORE 0–5)\n\nReports should be available as soon as the reporting period closes.",
		AnswerOptions: []AnswerOption{
			{Text: "Reports are produced automatically and are available immediately after the reporting period.", Score: 5, Description: "produces reports automatically, available immediately after the reporting period."},
			{Text: "Reports are produced within a few days of the reporting period.", Score: 3, Description: "produces reports within a few days of the reporting period."},
			{Text: "Reports take more than a week to produce.", Score: 1, Description: "takes more than a week to produce reports."},
			{Text: "No energy performance reports are produced.", Score: 0, Description: "produces no energy performance reports."},
		},
		MaxScore: 5,
	},
	{
		ID:          "ep2",
		Title:       "Responsibility for Report Generation",
		Subsection:  SectionPerformanceReports,
		Explanation: "RESPONSIBILITY FOR REPORT GENERATION (SCORE 0–5)\n\nA named person should own report production, even when generation is automated.",
		AnswerOptions: []AnswerOption{
			{Text: "Report generation is automated and owned by a named person.", Score: 5, Description: "has automated report generation owned by a named person."},
			{Text: "A named person produces reports manually.", Score: 3, Description: "has a named person producing reports manually."},
			{Text: "No one is responsible for producing reports.", Score: 0, Description: "has no one responsible for producing reports."},
		},
		MaxScore: 5,
	},
	{
		ID:          "ep3",
		Title:       "Report Timeliness",
		Subsection:  SectionPerformanceReports,
		Explanation: "REPORT TIMELINESS (SCORE 0–5)\n\nReports must reach users while the information can still be acted upon.",
		AnswerOptions: []AnswerOption{
			{Text: "Reports reach users in time to act on the reporting period.", Score: 5, Description: "delivers reports to users in time to act on the reporting period."},
			{Text: "Reports often arrive too late to act upon.", Score: 2, Description: "delivers reports that often arrive too late to act upon."},
			{Text: "Reports are not received by the people who could act on them.", Score: 0, Description: "does not deliver reports to the people who could act on them."},
		},
		MaxScore: 5,
	},
	{
		ID:          "ep4",
		Title:       "Report User-Friendliness",
		Subsection:  SectionPerformanceReports,
		Explanation: "REPORT USER-FRIENDLINESS (SCORE 0–5)\n\nReports should be clear to their audience: operators need different views from senior management.",
		AnswerOptions: []AnswerOption{
			{Text: "Not usable", Score: 0, Description: "has reports that users cannot interpret."},
			{Text: "Difficult to interpret", Score: 1, Description: "has reports that are difficult to interpret."},
			{Text: "Adequate", Score: 3, Description: "has adequate reports that most users can interpret."},
			{Text: "Clear", Score: 4, Description: "has clear reports that all users can interpret."},
			{Text: "Tailored to each audience", Score: 5, Description: "has clear reports tailored to each audience."},
		},
		MaxScore:     5,
		IsSlider:     true,
		SliderLabels: []string{"Not usable", "Adequate", "Tailored"},
	},
	{
		ID:          "ep5",
		Title:       "Report Content",
		Subsection:  SectionPerformanceReports,
		Explanation: "REPORT CONTENT (SCORE 0–5)\n\nGood reports show actual against target performance, the cost of any variance and the actions required.",
		AnswerOptions: []AnswerOption{
			{Text: "Reports show actual versus target performance, the cost of variance and recommended actions.", Score: 5, Description: "has reports showing actual versus target performance, the cost of variance and recommended actions."},
			{Text: "Reports show actual consumption against target only.", Score: 3, Description: "has reports showing actual consumption against target only."},
			{Text: "Reports show consumption only.", Score: 1, Description: "has reports showing consumption only."},
			{Text: "Reports have no meaningful energy content.", Score: 0, Description: "has reports with no meaningful energy content."},
		},
		MaxScore: 5,
	},
	{
		ID:          "ep6",
		Title:       "Report Accessibility",
		Subsection:  SectionPerformanceReports,
		Explanation: "REPORT ACCESSIBILITY (SCORE 0–5)\n\nEveryone who influences energy use should be able to see the reports relevant to them.",
		AnswerOptions: []AnswerOption{
			{Text: "Reports are available to all relevant staff through a shared portal or dashboard.", Score: 5, Description: "makes reports available to all relevant staff through a shared portal or dashboard."},
			{Text: "Reports are distributed to managers only.", Score: 3, Description: "distributes reports to managers only."},
			{Text: "Reports are held by the energy manager only.", Score: 0, Description: "has reports held by the energy manager only."},
		},
		MaxScore: 5,
	},
	{
		ID:          "ep7",
		Title:       "Drill-Down Capability",
		Subsection:  SectionPerformanceReports,
		Explanation: "DRILL-DOWN CAPABILITY (SCORE 0–5)\n\nUsers should be able to move from a site summary to the EAC and meter data behind it.",
		AnswerOptions: []AnswerOption{
			{Text: "Users can drill down from site level to individual EAC and meter data.", Score: 5, Description: "allows users to drill down from site level to individual EAC and meter data."},
			{Text: "Drill-down is limited to EAC level.", Score: 2, Description: "limits drill-down to EAC level."},
			{Text: "There is no drill-down capability.", Score: 0, Description: "has no drill-down capability in its reports."},
		},
		MaxScore: 5,
	},
	{
		ID:          "ep8",
		Title:       "Integration with IT Systems",
		Subsection:  SectionPerformanceReports,
		Explanation: "INTEGRATION WITH IT SYSTEMS (SCORE 0–5)\n\nReporting that shares data with ERP, maintenance management and business intelligence systems places energy alongside other operating costs.",
		AnswerOptions: []AnswerOption{
			{Text: "Reporting is integrated with corporate IT systems such as ERP, CMMS and business intelligence tools.", Score: 5, Description: "integrates reporting with corporate IT systems such as ERP, CMMS and business intelligence tools."},
			{Text: "Some data is shared with other IT systems manually.", Score: 2, Description: "shares some reporting data with other IT systems manually."},
			{Text: "Reporting is stand-alone.", Score: 0, Description: "has stand-alone reporting with no IT system integration."},
		},
		MaxScore: 5,
	},

	// ─── SYSTEM SUPPORT SKILLS ─────────────────────────────────────────────
	{
		ID:          "ss1",
		Title:       "Meter Maintenance Capability",
		Subsection:  SectionSupportSkills,
		Explanation: "METER MAINTENANCE CAPABILITY (SCORE 0–5)\n\nThe site needs the skills, internally or under contract, to inspect, calibrate and repair its meters.",
		AnswerOptions: []AnswerOption{
			{Text: "Meters are maintained to a documented schedule by competent staff or contractors.", Score: 5, Description: "maintains meters to a documented schedule using competent staff or contractors."},
			{Text: "Meters are maintained when faults are noticed.", Score: 3, Description: "maintains meters only when faults are noticed."},
			{Text: "There is no capability to maintain meters.", Score: 0, Description: "has no capability to maintain meters."},
		},
		MaxScore: 5,
	},
	{
		ID:          "ss2",
		Title:       "Data Capture System Support",
		Subsection:  SectionSupportSkills,
		Explanation: "DATA CAPTURE SYSTEM SUPPORT (SCORE 0–5)\n\nData loggers, gateways and capture software need configuration and support when meters are added or communications fail.",
		AnswerOptions: []AnswerOption{
			{Text: "Data capture systems are supported by trained staff with vendor backup.", Score: 5, Description: "supports its data capture systems with trained staff and vendor backup."},
			{Text: "Data capture systems are supported by the vendor only.", Score: 3, Description: "relies on the vendor alone to support its data capture systems."},
			{Text: "Data capture systems are unsupported.", Score: 0, Description: "has unsupported data capture systems."},
		},
		MaxScore: 5,
	},
	{
		ID:          "ss3",
		Title:       "Network Integration",
		Subsection:  SectionSupportSkills,
		Explanation: "NETWORK INTEGRATION (SCORE 0–5)\n\nMeters, data capture and analysis systems should share a reliable network so data flows without manual intervention.",
		AnswerOptions: []AnswerOption{
			{Text: "Meters, data capture and analysis systems are fully networked.", Score: 5, Description: "has meters, data capture and analysis systems fully networked."},
			{Text: "Systems are partially networked.", Score: 3, Description: "has partially networked energy systems."},
			{Text: "Systems are isolated from one another.", Score: 0, Description: "has energy systems isolated from one another."},
		},
		MaxScore: 5,
	},
	{
		ID:          "ss4",
		Title:       "IT Environment",
		Subsection:  SectionSupportSkills,
		Explanation: "IT ENVIRONMENT (SCORE 0–5)\n\nThe servers, operating systems and databases that host the EMIS must be current, supported and backed up.",
		AnswerOptions: []AnswerOption{
			{Text: "The IT environment is current, supported and backed up.", Score: 5, Description: "has a current, supported and backed-up IT environment."},
			{Text: "The IT environment has some outdated or unsupported components.", Score: 3, Description: "has an IT environment with some outdated or unsupported components."},
			{Text: "The IT environment is outdated and unsupported.", Score: 0, Description: "has an outdated and unsupported IT environment."},
		},
		MaxScore: 5,
	},
	{
		ID:          "ss5",
		Title:       "EMIS Operation Skills",
		Subsection:  SectionSupportSkills,
		Explanation: "EMIS OPERATION SKILLS (SCORE 0–5)\n\nEstimate the share of intended EMIS users who are trained and confident in operating the system day to day.",
		AnswerOptions: []AnswerOption{
			{Text: "No trained users", Score: 0, Description: "has no users trained to operate the EMIS."},
			{Text: "Few trained users", Score: 1, Description: "has few users trained to operate the EMIS."},
			{Text: "Some trained users", Score: 2, Description: "has some users trained to operate the EMIS."},
			{Text: "Most users trained", Score: 3, Description: "has most users trained to operate the EMIS."},
			{Text: "Nearly all users trained", Score: 4, Description: "has nearly all users trained to operate the EMIS."},
			{Text: "All users trained and confident", Score: 5, Description: "has all users trained and confident in operating the EMIS."},
		},
		MaxScore:          5,
		IsSlider:          true,
		IsPercentageBased: true,
		SliderLabels:      []string{"0%", "20%", "40%", "60%", "80%", "100%"},
		NextSteps:         "Schedule role-based EMIS training for operators and EAC owners and repeat it when staff change.",
	},
	{
		ID:          "ss6",
		Title:       "Analytical and Target-Setting Skills",
		Subsection:  SectionSupportSkills,
		Explanation: "ANALYTICAL AND TARGET-SETTING SKILLS (SCORE 0–5)\n\nSomeone on site must be able to build regression models, interpret CUSUM charts and turn analysis into targets.",
		AnswerOptions: []AnswerOption{
			{Text: "Staff are skilled in regression analysis, CUSUM and target setting.", Score: 5, Description: "has staff skilled in regression analysis, CUSUM and target setting."},
			{Text: "Staff can perform basic analysis with external help for target setting.", Score: 3, Description: "has staff able to perform basic analysis, with external help for target setting."},
			{Text: "Analysis and target setting are fully outsourced.", Score: 1, Description: "fully outsources analysis and target setting."},
			{Text: "There are no analytical skills available.", Score: 0, Description: "has no analytical skills available."},
		},
		MaxScore: 5,
	},
}
