package v1411

import "encoding/xml"

// FormationMarker is the obj_formationMarker data object.
type FormationMarker struct {
	UidWell             string      `xml:"uidWell,attr,omitempty"`
	UidWellbore         string      `xml:"uidWellbore,attr,omitempty"`
	Uid                 string      `xml:"uid,attr,omitempty"`
	NameWell            string      `xml:"nameWell,omitempty"`
	NameWellbore        string      `xml:"nameWellbore,omitempty"`
	Name                string      `xml:"name,omitempty"`
	MdPrognosed         *Measure    `xml:"mdPrognosed,omitempty"`
	TvdPrognosed        *Measure    `xml:"tvdPrognosed,omitempty"`
	MdTopSample         *Measure    `xml:"mdTopSample,omitempty"`
	TvdTopSample        *Measure    `xml:"tvdTopSample,omitempty"`
	ThicknessBed        *Measure    `xml:"thicknessBed,omitempty"`
	Dip                 *Measure    `xml:"dip,omitempty"`
	DipDirection        *Measure    `xml:"dipDirection,omitempty"`
	Lithostratigraphic  string      `xml:"lithostratigraphic,omitempty"`
	Chronostratigraphic string      `xml:"chronostratigraphic,omitempty"`
	Description         string      `xml:"description,omitempty"`
	CommonData          *CommonData `xml:"commonData,omitempty"`
}

// FormationMarkers is the plural container for formationMarker.
type FormationMarkers struct {
	XMLName         xml.Name          `xml:"http://www.witsml.org/schemas/1series formationMarkers"`
	Version         string            `xml:"version,attr"`
	FormationMarker []FormationMarker `xml:"formationMarker"`
}
