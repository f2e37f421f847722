package match

import (
	"testing"
	"testing/quick"

	"github.com/agnivade/levenshtein"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"falcon point", "falcon pointe", 1},
		{"gelnway", "glenway", 2},
		{"mohiccan", "mohican", 1},
		{"cañada", "canada", 1},
		{"oak", "oak", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"|"+tt.b, func(t *testing.T) {
			if got := LevenshteinDistance(tt.a, tt.b); got != tt.want {
				t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLevenshteinProperties(t *testing.T) {
	symmetric := func(a, b string) bool {
		return LevenshteinDistance(a, b) == LevenshteinDistance(b, a)
	}
	if err := quick.Check(symmetric, nil); err != nil {
		t.Errorf("distance not symmetric: %v", err)
	}

	identity := func(a string) bool {
		return LevenshteinDistance(a, a) == 0 &&
			LevenshteinDistance(a, "") == len([]rune(a))
	}
	if err := quick.Check(identity, nil); err != nil {
		t.Errorf("distance identity failed: %v", err)
	}
}

func TestLevenshteinAgreesWithReference(t *testing.T) {
	agrees := func(a, b string) bool {
		return LevenshteinDistance(a, b) == levenshtein.ComputeDistance(a, b)
	}
	if err := quick.Check(agrees, nil); err != nil {
		t.Errorf("distance disagrees with reference implementation: %v", err)
	}

	names := []string{"american", "amercian", "old settlers", "old settler", "tiburon", "tiberon", "cottondale", "cottendale"}
	for _, a := range names {
		for _, b := range names {
			if got, want := LevenshteinDistance(a, b), levenshtein.ComputeDistance(a, b); got != want {
				t.Errorf("LevenshteinDistance(%q, %q) = %d, reference %d", a, b, got, want)
			}
		}
	}
}
