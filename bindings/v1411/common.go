package v1411

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Measure is a double with a unit of measure attribute, the schema's
// cs_measure pattern. A custom codec is needed because encoding/xml only
// accepts string or []byte for chardata fields.
type Measure struct {
	Uom   string
	Value float64
}

func (m Measure) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if m.Uom != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "uom"}, Value: m.Uom})
	}
	return e.EncodeElement(strconv.FormatFloat(m.Value, 'g', -1, 64), start)
}

func (m *Measure) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		if a.Name.Local == "uom" {
			m.Uom = a.Value
		}
	}
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("measure %s: %w", start.Name.Local, err)
	}
	m.Value = v
	return nil
}

// RefNameString references another object by name, carrying its uid in the
// uidRef attribute.
type RefNameString struct {
	UidRef string `xml:"uidRef,attr,omitempty"`
	Value  string `xml:",chardata"`
}

// CommonData is the bookkeeping block shared by every data-object.
type CommonData struct {
	SourceName     string `xml:"sourceName,omitempty"`
	DTimCreation   string `xml:"dTimCreation,omitempty"`
	DTimLastChange string `xml:"dTimLastChange,omitempty"`
	ItemState      string `xml:"itemState,omitempty"`
	Comments       string `xml:"comments,omitempty"`
}
