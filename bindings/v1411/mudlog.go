package v1411

import "encoding/xml"

// MudLog is the obj_mudLog growing data-object.
type MudLog struct {
	UidWell         string            `xml:"uidWell,attr,omitempty"`
	UidWellbore     string            `xml:"uidWellbore,attr,omitempty"`
	Uid             string            `xml:"uid,attr,omitempty"`
	NameWell        string            `xml:"nameWell,omitempty"`
	NameWellbore    string            `xml:"nameWellbore,omitempty"`
	Name            string            `xml:"name,omitempty"`
	DTim            string            `xml:"dTim,omitempty"`
	MudLogCompany   string            `xml:"mudLogCompany,omitempty"`
	StartMd         *Measure          `xml:"startMd,omitempty"`
	EndMd           *Measure          `xml:"endMd,omitempty"`
	Parameter       []MudLogParameter `xml:"parameter,omitempty"`
	GeologyInterval []GeologyInterval `xml:"geologyInterval,omitempty"`
	CommonData      *CommonData       `xml:"commonData,omitempty"`
}

// MudLogParameter is a remark or measurement tied to a depth interval.
type MudLogParameter struct {
	Uid      string   `xml:"uid,attr,omitempty"`
	Type     string   `xml:"type,omitempty"`
	DTime    string   `xml:"dTime,omitempty"`
	MdTop    *Measure `xml:"mdTop,omitempty"`
	MdBottom *Measure `xml:"mdBottom,omitempty"`
	Text     string   `xml:"text,omitempty"`
}

// GeologyInterval describes the geology over a depth interval.
type GeologyInterval struct {
	Uid           string      `xml:"uid,attr,omitempty"`
	TypeLithology string      `xml:"typeLithology,omitempty"`
	MdTop         *Measure    `xml:"mdTop,omitempty"`
	MdBottom      *Measure    `xml:"mdBottom,omitempty"`
	Lithology     []Lithology `xml:"lithology,omitempty"`
	Description   string      `xml:"description,omitempty"`
}

// Lithology is one rock type within a geology interval.
type Lithology struct {
	Uid         string   `xml:"uid,attr,omitempty"`
	Type        string   `xml:"type,omitempty"`
	LithPc      *Measure `xml:"lithPc,omitempty"`
	Description string   `xml:"description,omitempty"`
}

// MudLogs is the plural container for mudLog.
type MudLogs struct {
	XMLName xml.Name `xml:"http://www.witsml.org/schemas/1series mudLogs"`
	Version string   `xml:"version,attr"`
	MudLog  []MudLog `xml:"mudLog"`
}
