package v1411

import "encoding/xml"

// Wellbore is the obj_wellbore data object.
type Wellbore struct {
	UidWell        string      `xml:"uidWell,attr,omitempty"`
	Uid            string      `xml:"uid,attr,omitempty"`
	NameWell       string      `xml:"nameWell,omitempty"`
	Name           string      `xml:"name,omitempty"`
	Number         string      `xml:"number,omitempty"`
	SuffixAPI      string      `xml:"suffixAPI,omitempty"`
	StatusWellbore string      `xml:"statusWellbore,omitempty"`
	Shape          string      `xml:"shape,omitempty"`
	DTimKickoff    string      `xml:"dTimKickoff,omitempty"`
	Md             *Measure    `xml:"md,omitempty"`
	Tvd            *Measure    `xml:"tvd,omitempty"`
	MdKickoff      *Measure    `xml:"mdKickoff,omitempty"`
	CommonData     *CommonData `xml:"commonData,omitempty"`
}

// Wellbores is the plural container for wellbore.
type Wellbores struct {
	XMLName  xml.Name   `xml:"http://www.witsml.org/schemas/1series wellbores"`
	Version  string     `xml:"version,attr"`
	Wellbore []Wellbore `xml:"wellbore"`
}
