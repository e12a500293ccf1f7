package soap

import (
	"encoding/xml"
	"fmt"
)

const envelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"

type requestEnvelope struct {
	XMLName xml.Name    `xml:"SOAP-ENV:Envelope"`
	NS      string      `xml:"xmlns:SOAP-ENV,attr"`
	Body    requestBody `xml:"SOAP-ENV:Body"`
}

// requestBody carries the operation payload; the payload's own XMLName
// supplies the element name and namespace.
type requestBody struct {
	Payload interface{}
}

type responseEnvelope struct {
	XMLName xml.Name     `xml:"Envelope"`
	Body    responseBody `xml:"Body"`
}

type responseBody struct {
	Fault *Fault `xml:"Fault"`
	Inner []byte `xml:",innerxml"`
}

// Fault is a SOAP 1.1 envelope fault.
type Fault struct {
	Code   string `xml:"faultcode"`
	String string `xml:"faultstring"`
	Actor  string `xml:"faultactor"`
}

func (f *Fault) Error() string {
	return fmt.Sprintf("soap fault %s: %s", f.Code, f.String)
}
