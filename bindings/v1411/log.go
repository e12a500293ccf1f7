package v1411

import "encoding/xml"

// Log is the obj_log growing data-object. For id or header queries leave
// LogData nil; a data pull fills it with one comma separated row per index
// step.
type Log struct {
	UidWell            string         `xml:"uidWell,attr,omitempty"`
	UidWellbore        string         `xml:"uidWellbore,attr,omitempty"`
	Uid                string         `xml:"uid,attr,omitempty"`
	NameWell           string         `xml:"nameWell,omitempty"`
	NameWellbore       string         `xml:"nameWellbore,omitempty"`
	Name               string         `xml:"name,omitempty"`
	ServiceCompany     string         `xml:"serviceCompany,omitempty"`
	RunNumber          string         `xml:"runNumber,omitempty"`
	IndexType          string         `xml:"indexType,omitempty"`
	StartIndex         *Measure       `xml:"startIndex,omitempty"`
	EndIndex           *Measure       `xml:"endIndex,omitempty"`
	StartDateTimeIndex string         `xml:"startDateTimeIndex,omitempty"`
	EndDateTimeIndex   string         `xml:"endDateTimeIndex,omitempty"`
	Direction          string         `xml:"direction,omitempty"`
	IndexCurve         string         `xml:"indexCurve,omitempty"`
	StepIncrement      *Measure       `xml:"stepIncrement,omitempty"`
	NullValue          string         `xml:"nullValue,omitempty"`
	LogCurveInfo       []LogCurveInfo `xml:"logCurveInfo,omitempty"`
	LogData            *LogData       `xml:"logData,omitempty"`
	CommonData         *CommonData    `xml:"commonData,omitempty"`
}

// LogCurveInfo describes one curve of a log.
type LogCurveInfo struct {
	Uid              string   `xml:"uid,attr,omitempty"`
	Mnemonic         string   `xml:"mnemonic,omitempty"`
	Unit             string   `xml:"unit,omitempty"`
	MnemAlias        string   `xml:"mnemAlias,omitempty"`
	NullValue        string   `xml:"nullValue,omitempty"`
	MinIndex         *Measure `xml:"minIndex,omitempty"`
	MaxIndex         *Measure `xml:"maxIndex,omitempty"`
	CurveDescription string   `xml:"curveDescription,omitempty"`
	TypeLogData      string   `xml:"typeLogData,omitempty"`
}

// LogData is the growing part of a log: a comma separated mnemonic and unit
// header plus one data element per row.
type LogData struct {
	MnemonicList string   `xml:"mnemonicList,omitempty"`
	UnitList     string   `xml:"unitList,omitempty"`
	Data         []string `xml:"data,omitempty"`
}

// Logs is the plural container for log.
type Logs struct {
	XMLName xml.Name `xml:"http://www.witsml.org/schemas/1series logs"`
	Version string   `xml:"version,attr"`
	Log     []Log    `xml:"log"`
}
