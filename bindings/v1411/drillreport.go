package v1411

import "encoding/xml"

// DrillReport is the obj_drillReport data object, one reporting period of
// drilling operations.
type DrillReport struct {
	UidWell       string          `xml:"uidWell,attr,omitempty"`
	UidWellbore   string          `xml:"uidWellbore,attr,omitempty"`
	Uid           string          `xml:"uid,attr,omitempty"`
	NameWell      string          `xml:"nameWell,omitempty"`
	NameWellbore  string          `xml:"nameWellbore,omitempty"`
	Name          string          `xml:"name,omitempty"`
	DTimStart     string          `xml:"dTimStart,omitempty"`
	DTimEnd       string          `xml:"dTimEnd,omitempty"`
	CreateDate    string          `xml:"createDate,omitempty"`
	DrillActivity []DrillActivity `xml:"drillActivity,omitempty"`
	CommonData    *CommonData     `xml:"commonData,omitempty"`
}

// DrillActivity is one activity interval within a drill report.
type DrillActivity struct {
	Uid             string   `xml:"uid,attr,omitempty"`
	DTimStart       string   `xml:"dTimStart,omitempty"`
	DTimEnd         string   `xml:"dTimEnd,omitempty"`
	Duration        *Measure `xml:"duration,omitempty"`
	Md              *Measure `xml:"md,omitempty"`
	Tvd             *Measure `xml:"tvd,omitempty"`
	Phase           string   `xml:"phase,omitempty"`
	ProprietaryCode string   `xml:"proprietaryCode,omitempty"`
	Comments        string   `xml:"comments,omitempty"`
}

// DrillReports is the plural container for drillReport.
type DrillReports struct {
	XMLName     xml.Name      `xml:"http://www.witsml.org/schemas/1series drillReports"`
	Version     string        `xml:"version,attr"`
	DrillReport []DrillReport `xml:"drillReport"`
}
