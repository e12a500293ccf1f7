package v1411

import "encoding/xml"

// WbGeometry is the obj_wbGeometry data object, the wellbore geometry at a
// point in time.
type WbGeometry struct {
	UidWell           string              `xml:"uidWell,attr,omitempty"`
	UidWellbore       string              `xml:"uidWellbore,attr,omitempty"`
	Uid               string              `xml:"uid,attr,omitempty"`
	NameWell          string              `xml:"nameWell,omitempty"`
	NameWellbore      string              `xml:"nameWellbore,omitempty"`
	Name              string              `xml:"name,omitempty"`
	DTimReport        string              `xml:"dTimReport,omitempty"`
	MdBottom          *Measure            `xml:"mdBottom,omitempty"`
	GapAir            *Measure            `xml:"gapAir,omitempty"`
	DepthWaterMean    *Measure            `xml:"depthWaterMean,omitempty"`
	WbGeometrySection []WbGeometrySection `xml:"wbGeometrySection,omitempty"`
	CommonData        *CommonData         `xml:"commonData,omitempty"`
}

// WbGeometrySection is one hole or casing section of the geometry.
type WbGeometrySection struct {
	Uid            string   `xml:"uid,attr,omitempty"`
	TypeHoleCasing string   `xml:"typeHoleCasing,omitempty"`
	MdTop          *Measure `xml:"mdTop,omitempty"`
	MdBottom       *Measure `xml:"mdBottom,omitempty"`
	TvdTop         *Measure `xml:"tvdTop,omitempty"`
	TvdBottom      *Measure `xml:"tvdBottom,omitempty"`
	IdSection      *Measure `xml:"idSection,omitempty"`
	OdSection      *Measure `xml:"odSection,omitempty"`
	WtPerLen       *Measure `xml:"wtPerLen,omitempty"`
	Grade          string   `xml:"grade,omitempty"`
	DiaDrift       *Measure `xml:"diaDrift,omitempty"`
}

// WbGeometries is the plural container for wbGeometry. The schema spells the
// element wbGeometrys.
type WbGeometries struct {
	XMLName    xml.Name     `xml:"http://www.witsml.org/schemas/1series wbGeometrys"`
	Version    string       `xml:"version,attr"`
	WbGeometry []WbGeometry `xml:"wbGeometry"`
}
