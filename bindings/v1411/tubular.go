package v1411

import "encoding/xml"

// Tubular is the obj_tubular data object, a drill string assembly.
type Tubular struct {
	UidWell          string             `xml:"uidWell,attr,omitempty"`
	UidWellbore      string             `xml:"uidWellbore,attr,omitempty"`
	Uid              string             `xml:"uid,attr,omitempty"`
	NameWell         string             `xml:"nameWell,omitempty"`
	NameWellbore     string             `xml:"nameWellbore,omitempty"`
	Name             string             `xml:"name,omitempty"`
	TypeTubularAssy  string             `xml:"typeTubularAssy,omitempty"`
	TubularComponent []TubularComponent `xml:"tubularComponent,omitempty"`
	CommonData       *CommonData        `xml:"commonData,omitempty"`
}

// TubularComponent is one component of a tubular assembly, ordered from the
// bottom of the string.
type TubularComponent struct {
	Uid             string   `xml:"uid,attr,omitempty"`
	TypeTubularComp string   `xml:"typeTubularComp,omitempty"`
	Sequence        int      `xml:"sequence,omitempty"`
	Id              *Measure `xml:"id,omitempty"`
	Od              *Measure `xml:"od,omitempty"`
	Len             *Measure `xml:"len,omitempty"`
	Description     string   `xml:"description,omitempty"`
}

// Tubulars is the plural container for tubular.
type Tubulars struct {
	XMLName xml.Name  `xml:"http://www.witsml.org/schemas/1series tubulars"`
	Version string    `xml:"version,attr"`
	Tubular []Tubular `xml:"tubular"`
}
