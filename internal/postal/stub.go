//go:build !libpostal

package postal

// Available reports whether libpostal is linked in
func Available() bool { return false }

// Expand returns ErrUnavailable without libpostal
func Expand(address string) ([]string, error) {
	return nil, ErrUnavailable
}

// Components returns ErrUnavailable without libpostal
func Components(address string) ([]Component, error) {
	return nil, ErrUnavailable
}
