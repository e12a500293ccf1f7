package v1411

import "encoding/xml"

// Well is the obj_well data object.
type Well struct {
	Uid        string      `xml:"uid,attr,omitempty"`
	Name       string      `xml:"name,omitempty"`
	Field      string      `xml:"field,omitempty"`
	Country    string      `xml:"country,omitempty"`
	State      string      `xml:"state,omitempty"`
	County     string      `xml:"county,omitempty"`
	TimeZone   string      `xml:"timeZone,omitempty"`
	Operator   string      `xml:"operator,omitempty"`
	NumAPI     string      `xml:"numAPI,omitempty"`
	StatusWell string      `xml:"statusWell,omitempty"`
	DTimSpud   string      `xml:"dTimSpud,omitempty"`
	WaterDepth *Measure    `xml:"waterDepth,omitempty"`
	CommonData *CommonData `xml:"commonData,omitempty"`
}

// Wells is the plural container for well.
type Wells struct {
	XMLName xml.Name `xml:"http://www.witsml.org/schemas/1series wells"`
	Version string   `xml:"version,attr"`
	Well    []Well   `xml:"well"`
}
