// Package postal wraps libpostal for address expansion and component
// labelling. It is only functional when built with the libpostal tag,
// since gopostal links against the libpostal C library.
package postal

import "errors"

// ErrUnavailable is returned when the binary was built without libpostal
var ErrUnavailable = errors.New("libpostal support not compiled in (build with -tags libpostal)")

// Component is one labelled span of an address, e.g. {"road", "falcon pointe blvd"}
type Component struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
