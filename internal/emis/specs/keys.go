// Package specs models the EMIS feature-specification survey: which
// requirement topics to include, the options chosen inside them, free-text
// requirements and the interval sub-meter table.
package specs

import (
	"strconv"
	"strings"
	"unicode"
)

// Tab is one of the eight survey modules, numbered from 1. A tab's number is
// also the leading part of its topic ids.
type Tab int

const TabCount = 8

var tabNames = [TabCount]string{
	"Data Integration",
	"Utility Bill Analytics",
	"Interval Meter Data Analytics",
	"System Data Analytics",
	"Automated System Optimization",
	"Project Management and Reporting",
	"IT Requirements",
	"Technical Warranty, Support and Training",
}

func Tabs() []Tab {
	out := make([]Tab, TabCount)
	for i := range out {
		out[i] = Tab(i + 1)
	}
	return out
}

func (t Tab) Valid() bool {
	return t >= 1 && t <= TabCount
}

func (t Tab) Name() string {
	if !t.Valid() {
		return ""
	}
	return tabNames[t-1]
}

// Key is the legacy form identifier, e.g. "tab3".
func (t Tab) Key() string {
	return "tab" + strconv.Itoa(int(t))
}

// ParseTab accepts "tab3" or "3".
func ParseTab(s string) (Tab, bool) {
	n, err := strconv.Atoi(strings.TrimPrefix(s, "tab"))
	if err != nil || !Tab(n).Valid() {
		return 0, false
	}
	return Tab(n), true
}

// Utility is a utility stream offered under topic 1.1. The value is the
// legacy key; Label splits it into words.
type Utility string

const (
	UtilityElectricity     Utility = "Electricity"
	UtilityNaturalGas      Utility = "NaturalGas"
	UtilityPropane         Utility = "Propane"
	UtilitySteam           Utility = "Steam"
	UtilityChilledWater    Utility = "ChilledWater"
	UtilityWater           Utility = "Water"
	UtilityWasteWater      Utility = "WasteWater"
	UtilityCompressedAir   Utility = "CompressedAir"
	UtilityRenewableEnergy Utility = "RenewableEnergy"
)

var utilityOrder = []Utility{
	UtilityElectricity, UtilityNaturalGas, UtilityPropane, UtilitySteam, UtilityChilledWater,
	UtilityWater, UtilityWasteWater, UtilityCompressedAir, UtilityRenewableEnergy,
}

func Utilities() []Utility {
	return append([]Utility(nil), utilityOrder...)
}

func (u Utility) Label() string {
	return splitCamel(string(u))
}

// BASDataType is a class of building automation data for topic 1.3.
type BASDataType string

const (
	BASPlantData      BASDataType = "chillerboilerplantdata"
	BASAirHandlerData BASDataType = "airhandlerdata"
	BASZoneDeviceData BASDataType = "zonedevicedata"
)

var basDataTypes = []struct {
	key   BASDataType
	label string
}{
	{BASPlantData, "chiller/boiler plant data"},
	{BASAirHandlerData, "air handler data"},
	{BASZoneDeviceData, "zone device data"},
}

func BASDataTypes() []BASDataType {
	out := make([]BASDataType, len(basDataTypes))
	for i, d := range basDataTypes {
		out[i] = d.key
	}
	return out
}

func (d BASDataType) Label() string {
	for _, known := range basDataTypes {
		if known.key == d {
			return known.label
		}
	}
	return string(d)
}

// BASIntegrationPoint is a point class to integrate from the BAS under 1.3.
type BASIntegrationPoint string

const (
	BASMeterData           BASIntegrationPoint = "energymeterdataalreadyconnectedintotheBAS"
	BASEquipmentStatus     BASIntegrationPoint = "equipmentstatus"
	BASSetpoints           BASIntegrationPoint = "setpoints"
	BASControlSignals      BASIntegrationPoint = "valvedampercontrolsignals"
	BASFanSpeed            BASIntegrationPoint = "fanspeed"
	BASAirFlowRate         BASIntegrationPoint = "airflowrate"
	BASPumpWaterFlowRate   BASIntegrationPoint = "pumpwaterflowrate"
	BASAirWaterTemperature BASIntegrationPoint = "airandwatertemperatures"
)

// legacyMeterDataKey is a variant spelling of BASMeterData found in older
// exported flag sets.
const legacyMeterDataKey = "energymeteralreadyconnectedintotheBAS"

var basIntegrationPoints = []struct {
	key   BASIntegrationPoint
	label string
}{
	{BASMeterData, "energy meter data already connected into the BAS"},
	{BASEquipmentStatus, "equipment status"},
	{BASSetpoints, "setpoints"},
	{BASControlSignals, "valve/damper control signals"},
	{BASFanSpeed, "fan speed"},
	{BASAirFlowRate, "air flow rate"},
	{BASPumpWaterFlowRate, "pump water flow rate"},
	{BASAirWaterTemperature, "air and water temperatures"},
}

func BASIntegrationPoints() []BASIntegrationPoint {
	out := make([]BASIntegrationPoint, len(basIntegrationPoints))
	for i, p := range basIntegrationPoints {
		out[i] = p.key
	}
	return out
}

func (p BASIntegrationPoint) Label() string {
	for _, known := range basIntegrationPoints {
		if known.key == p {
			return known.label
		}
	}
	return string(p)
}

// ExportFormat is a report export format offered under topic 6.2.
type ExportFormat string

const (
	ExportPDF  ExportFormat = "pdf"
	ExportWord ExportFormat = "docdocx"
	ExportHTML ExportFormat = "html"
)

var exportFormats = []struct {
	key   ExportFormat
	label string
}{
	{ExportPDF, ".pdf"},
	{ExportWord, ".doc/.docx"},
	{ExportHTML, ".html"},
}

func ExportFormats() []ExportFormat {
	out := make([]ExportFormat, len(exportFormats))
	for i, f := range exportFormats {
		out[i] = f.key
	}
	return out
}

func (f ExportFormat) Label() string {
	for _, known := range exportFormats {
		if known.key == f {
			return known.label
		}
	}
	return string(f)
}

// splitCamel turns "NaturalGas" into "Natural Gas".
func splitCamel(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
