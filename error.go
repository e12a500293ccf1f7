package witsgo

import "fmt"

// Result codes shared by every Store API function. ResultPartial only occurs
// on retrieval and means some growing data-object nodes were not returned.
const (
	ResultSuccess int16 = 1
	ResultPartial int16 = 2
)

// StoreError is returned when the store replies with any result code other
// than success. Message carries the server's supplementary message; the full
// text for a code can be resolved with WMLS_GetBaseMsg.
type StoreError struct {
	Code    int16
	Message string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}
