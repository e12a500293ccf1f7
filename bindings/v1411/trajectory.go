package v1411

import "encoding/xml"

// Trajectory is the obj_trajectory growing data-object.
type Trajectory struct {
	UidWell           string              `xml:"uidWell,attr,omitempty"`
	UidWellbore       string              `xml:"uidWellbore,attr,omitempty"`
	Uid               string              `xml:"uid,attr,omitempty"`
	NameWell          string              `xml:"nameWell,omitempty"`
	NameWellbore      string              `xml:"nameWellbore,omitempty"`
	Name              string              `xml:"name,omitempty"`
	DTimTrajStart     string              `xml:"dTimTrajStart,omitempty"`
	DTimTrajEnd       string              `xml:"dTimTrajEnd,omitempty"`
	MdMn              *Measure            `xml:"mdMn,omitempty"`
	MdMx              *Measure            `xml:"mdMx,omitempty"`
	ServiceCompany    string              `xml:"serviceCompany,omitempty"`
	AziRef            string              `xml:"aziRef,omitempty"`
	TrajectoryStation []TrajectoryStation `xml:"trajectoryStation,omitempty"`
	CommonData        *CommonData         `xml:"commonData,omitempty"`
}

// TrajectoryStation is one survey station of a trajectory.
type TrajectoryStation struct {
	Uid             string   `xml:"uid,attr,omitempty"`
	DTimStn         string   `xml:"dTimStn,omitempty"`
	TypeTrajStation string   `xml:"typeTrajStation,omitempty"`
	Md              *Measure `xml:"md,omitempty"`
	Tvd             *Measure `xml:"tvd,omitempty"`
	Incl            *Measure `xml:"incl,omitempty"`
	Azi             *Measure `xml:"azi,omitempty"`
	DispNs          *Measure `xml:"dispNs,omitempty"`
	DispEw          *Measure `xml:"dispEw,omitempty"`
	VertSect        *Measure `xml:"vertSect,omitempty"`
	Dls             *Measure `xml:"dls,omitempty"`
}

// Trajectories is the plural container for trajectory. The schema spells the
// element trajectorys.
type Trajectories struct {
	XMLName    xml.Name     `xml:"http://www.witsml.org/schemas/1series trajectorys"`
	Version    string       `xml:"version,attr"`
	Trajectory []Trajectory `xml:"trajectory"`
}
