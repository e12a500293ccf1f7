// Package v1411 holds xml bindings for the WITSML 1.4.1.1 data objects served
// by the Store API. Only the element subsets the client works with are mapped;
// unknown elements are skipped on unmarshal. Empty objects marshal to empty
// elements, so a zero value wrapped in its collection is a valid query.
package v1411

// Namespace is the single xml namespace shared by every 1.4.1.1 schema.
const Namespace = "http://www.witsml.org/schemas/1series"

// Version goes into the version attribute of every collection.
const Version = "1.4.1.1"
