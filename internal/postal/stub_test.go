//go:build !libpostal

package postal

import (
	"errors"
	"testing"
)

func TestStubUnavailable(t *testing.T) {
	if Available() {
		t.Fatal("Available() = true without libpostal tag")
	}
	if _, err := Expand("100 Main St"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expand() error = %v, want ErrUnavailable", err)
	}
	if _, err := Components("100 Main St"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Components() error = %v, want ErrUnavailable", err)
	}
}
