//go:build libpostal

package postal

import (
	"strings"

	"github.com/openvenues/gopostal/expand"
	lpparser "github.com/openvenues/gopostal/parser"
)

// Available reports whether libpostal is linked in
func Available() bool { return true }

// Expand returns libpostal's normalized expansions of address
func Expand(address string) ([]string, error) {
	if strings.TrimSpace(address) == "" {
		return nil, nil
	}
	return expand.ExpandAddressOptions(address, expand.GetDefaultExpansionOptions()), nil
}

// Components labels the parts of address with libpostal's parser
func Components(address string) ([]Component, error) {
	if strings.TrimSpace(address) == "" {
		return nil, nil
	}

	parsed := lpparser.ParseAddress(address)
	components := make([]Component, 0, len(parsed))
	for _, c := range parsed {
		components = append(components, Component{Label: c.Label, Value: c.Value})
	}
	return components, nil
}
