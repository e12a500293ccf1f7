package witsgo

// ReturnElements selects how much of each matched object the store sends
// back. Use ReturnIDOnly to discover objects and ReturnAll once you know
// which one to fetch.
type ReturnElements string

const (
	ReturnAll                 ReturnElements = "all"
	ReturnIDOnly              ReturnElements = "id-only"
	ReturnHeaderOnly          ReturnElements = "header-only"
	ReturnDataOnly            ReturnElements = "data-only"
	ReturnStationLocationOnly ReturnElements = "station-location-only"
	ReturnLatestChangeOnly    ReturnElements = "latest-change-only"
	ReturnRequested           ReturnElements = "requested"
)

// Options renders the OptionsIn string for WMLS_GetFromStore.
func (r ReturnElements) Options() string {
	return "returnElements=" + string(r)
}
