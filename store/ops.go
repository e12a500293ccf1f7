package store

import "encoding/xml"

// Operation names and SOAPAction values from the Store API 1.2.0 wsdl.
const (
	actionGetFromStore    = "http://www.witsml.org/action/120/Store.WMLS_GetFromStore"
	actionAddToStore      = "http://www.witsml.org/action/120/Store.WMLS_AddToStore"
	actionUpdateInStore   = "http://www.witsml.org/action/120/Store.WMLS_UpdateInStore"
	actionDeleteFromStore = "http://www.witsml.org/action/120/Store.WMLS_DeleteFromStore"
	actionGetVersion      = "http://www.witsml.org/action/120/Store.WMLS_GetVersion"
	actionGetCap          = "http://www.witsml.org/action/120/Store.WMLS_GetCap"
	actionGetBaseMsg      = "http://www.witsml.org/action/120/Store.WMLS_GetBaseMsg"
)

// Request and response payloads. Requests carry the wsdl namespace in their
// XMLName; responses match on local name only since stores differ in how they
// qualify reply elements.

type getFromStoreRequest struct {
	XMLName        xml.Name `xml:"http://www.witsml.org/wsdl/120 WMLS_GetFromStore"`
	WMLtypeIn      string   `xml:"WMLtypeIn"`
	XMLin          string   `xml:"XMLin"`
	OptionsIn      string   `xml:"OptionsIn"`
	CapabilitiesIn string   `xml:"CapabilitiesIn"`
}

type getFromStoreResponse struct {
	XMLName    xml.Name `xml:"WMLS_GetFromStoreResponse"`
	Result     int16    `xml:"Result"`
	XMLOut     string   `xml:"XMLout"`
	SuppMsgOut string   `xml:"SuppMsgOut"`
}

type addToStoreRequest struct {
	XMLName        xml.Name `xml:"http://www.witsml.org/wsdl/120 WMLS_AddToStore"`
	WMLtypeIn      string   `xml:"WMLtypeIn"`
	XMLin          string   `xml:"XMLin"`
	OptionsIn      string   `xml:"OptionsIn"`
	CapabilitiesIn string   `xml:"CapabilitiesIn"`
}

type addToStoreResponse struct {
	XMLName    xml.Name `xml:"WMLS_AddToStoreResponse"`
	Result     int16    `xml:"Result"`
	SuppMsgOut string   `xml:"SuppMsgOut"`
}

type updateInStoreRequest struct {
	XMLName        xml.Name `xml:"http://www.witsml.org/wsdl/120 WMLS_UpdateInStore"`
	WMLtypeIn      string   `xml:"WMLtypeIn"`
	XMLin          string   `xml:"XMLin"`
	OptionsIn      string   `xml:"OptionsIn"`
	CapabilitiesIn string   `xml:"CapabilitiesIn"`
}

type updateInStoreResponse struct {
	XMLName    xml.Name `xml:"WMLS_UpdateInStoreResponse"`
	Result     int16    `xml:"Result"`
	SuppMsgOut string   `xml:"SuppMsgOut"`
}

type deleteFromStoreRequest struct {
	XMLName        xml.Name `xml:"http://www.witsml.org/wsdl/120 WMLS_DeleteFromStore"`
	WMLtypeIn      string   `xml:"WMLtypeIn"`
	QueryIn        string   `xml:"QueryIn"`
	OptionsIn      string   `xml:"OptionsIn"`
	CapabilitiesIn string   `xml:"CapabilitiesIn"`
}

type deleteFromStoreResponse struct {
	XMLName    xml.Name `xml:"WMLS_DeleteFromStoreResponse"`
	Result     int16    `xml:"Result"`
	SuppMsgOut string   `xml:"SuppMsgOut"`
}

type getVersionRequest struct {
	XMLName xml.Name `xml:"http://www.witsml.org/wsdl/120 WMLS_GetVersion"`
}

type getVersionResponse struct {
	XMLName xml.Name `xml:"WMLS_GetVersionResponse"`
	Result  string   `xml:"Result"`
}

type getCapRequest struct {
	XMLName   xml.Name `xml:"http://www.witsml.org/wsdl/120 WMLS_GetCap"`
	OptionsIn string   `xml:"OptionsIn"`
}

type getCapResponse struct {
	XMLName         xml.Name `xml:"WMLS_GetCapResponse"`
	Result          int16    `xml:"Result"`
	CapabilitiesOut string   `xml:"CapabilitiesOut"`
	SuppMsgOut      string   `xml:"SuppMsgOut"`
}

type getBaseMsgRequest struct {
	XMLName       xml.Name `xml:"http://www.witsml.org/wsdl/120 WMLS_GetBaseMsg"`
	ReturnValueIn int16    `xml:"ReturnValueIn"`
}

type getBaseMsgResponse struct {
	XMLName xml.Name `xml:"WMLS_GetBaseMsgResponse"`
	Result  string   `xml:"Result"`
}
