package v1411

import "encoding/xml"

// FluidsReport is the obj_fluidsReport data object.
type FluidsReport struct {
	UidWell      string      `xml:"uidWell,attr,omitempty"`
	UidWellbore  string      `xml:"uidWellbore,attr,omitempty"`
	Uid          string      `xml:"uid,attr,omitempty"`
	NameWell     string      `xml:"nameWell,omitempty"`
	NameWellbore string      `xml:"nameWellbore,omitempty"`
	Name         string      `xml:"name,omitempty"`
	DTim         string      `xml:"dTim,omitempty"`
	Md           *Measure    `xml:"md,omitempty"`
	Tvd          *Measure    `xml:"tvd,omitempty"`
	NumReport    string      `xml:"numReport,omitempty"`
	Fluid        []Fluid     `xml:"fluid,omitempty"`
	CommonData   *CommonData `xml:"commonData,omitempty"`
}

// Fluid is one sampled fluid in a fluids report.
type Fluid struct {
	Uid            string   `xml:"uid,attr,omitempty"`
	Type           string   `xml:"type,omitempty"`
	LocationSample string   `xml:"locationSample,omitempty"`
	Density        *Measure `xml:"density,omitempty"`
	VisFunnel      *Measure `xml:"visFunnel,omitempty"`
	Pv             *Measure `xml:"pv,omitempty"`
	Yp             *Measure `xml:"yp,omitempty"`
	SolidsPc       *Measure `xml:"solidsPc,omitempty"`
	Ph             *Measure `xml:"ph,omitempty"`
}

// FluidsReports is the plural container for fluidsReport.
type FluidsReports struct {
	XMLName      xml.Name       `xml:"http://www.witsml.org/schemas/1series fluidsReports"`
	Version      string         `xml:"version,attr"`
	FluidsReport []FluidsReport `xml:"fluidsReport"`
}
