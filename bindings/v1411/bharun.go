package v1411

import "encoding/xml"

// BhaRun is the obj_bhaRun data object, one run of a bottom hole assembly.
type BhaRun struct {
	UidWell           string         `xml:"uidWell,attr,omitempty"`
	UidWellbore       string         `xml:"uidWellbore,attr,omitempty"`
	Uid               string         `xml:"uid,attr,omitempty"`
	NameWell          string         `xml:"nameWell,omitempty"`
	NameWellbore      string         `xml:"nameWellbore,omitempty"`
	Name              string         `xml:"name,omitempty"`
	Tubular           *RefNameString `xml:"tubular,omitempty"`
	DTimStart         string         `xml:"dTimStart,omitempty"`
	DTimStop          string         `xml:"dTimStop,omitempty"`
	DTimStartDrilling string         `xml:"dTimStartDrilling,omitempty"`
	DTimStopDrilling  string         `xml:"dTimStopDrilling,omitempty"`
	PlanDogleg        *Measure       `xml:"planDogleg,omitempty"`
	ActDogleg         *Measure       `xml:"actDogleg,omitempty"`
	StatusBha         string         `xml:"statusBha,omitempty"`
	NumBitRun         string         `xml:"numBitRun,omitempty"`
	NumStringRun      string         `xml:"numStringRun,omitempty"`
	ReasonTrip        string         `xml:"reasonTrip,omitempty"`
	ObjectiveBha      string         `xml:"objectiveBha,omitempty"`
	CommonData        *CommonData    `xml:"commonData,omitempty"`
}

// BhaRuns is the plural container for bhaRun.
type BhaRuns struct {
	XMLName xml.Name `xml:"http://www.witsml.org/schemas/1series bhaRuns"`
	Version string   `xml:"version,attr"`
	BhaRun  []BhaRun `xml:"bhaRun"`
}
