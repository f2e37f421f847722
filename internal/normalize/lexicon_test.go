package normalize

import (
	"testing"
)

func TestStreetType(t *testing.T) {
	tests := []struct {
		word   string
		want   string
		wantOK bool
	}{
		{"Street", "st", true},
		{"ST.", "st", true},
		{"boulevard", "blvd", true},
		{"Av", "ave", true},
		{"Pointe", "pt", true},
		{"point", "pt", true},
		{"Crossing", "xing", true},
		{"Falcon", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, ok := StreetType(tt.word)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("StreetType(%q) = (%q, %v), want (%q, %v)", tt.word, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCanonicalFallbacks(t *testing.T) {
	if got := CanonicalStreetType("Drive"); got != "dr" {
		t.Errorf("CanonicalStreetType(Drive) = %q, want dr", got)
	}
	if got := CanonicalStreetType("Alley"); got != "alley" {
		t.Errorf("CanonicalStreetType(Alley) = %q, want alley", got)
	}
	if got := CanonicalDirectional("Northeast"); got != "ne" {
		t.Errorf("CanonicalDirectional(Northeast) = %q, want ne", got)
	}
	if got := CanonicalDirectional("Up"); got != "up" {
		t.Errorf("CanonicalDirectional(Up) = %q, want up", got)
	}
}

func TestDirectionalCoversEightPoints(t *testing.T) {
	seen := map[string]bool{}
	for word := range directionals {
		canonical, ok := Directional(word)
		if !ok {
			t.Fatalf("Directional(%q) not found", word)
		}
		seen[canonical] = true
	}
	if len(seen) != 8 {
		t.Errorf("got %d canonical directionals, want 8: %v", len(seen), seen)
	}
}

func TestUnitType(t *testing.T) {
	tests := map[string]string{
		"Apartment": "unit",
		"apt":       "unit",
		"Suite":     "unit",
		"#":         "unit",
		"FL":        "floor",
		"Building":  "bldg",
		"lot":       "lot",
	}
	for word, want := range tests {
		if got, ok := UnitType(word); !ok || got != want {
			t.Errorf("UnitType(%q) = (%q, %v), want %q", word, got, ok, want)
		}
	}
	if _, ok := UnitType("garage"); ok {
		t.Error("UnitType(garage) should not be known")
	}
}

func TestPrimaryAndSecondaryAreDisjoint(t *testing.T) {
	for word := range primaryStreetTypes {
		if secondaryStreetTypes[word] {
			t.Errorf("%q is both primary and secondary", word)
		}
		if _, ok := streetTypes[word]; !ok {
			t.Errorf("primary %q missing from street types", word)
		}
	}
	for word := range secondaryStreetTypes {
		if _, ok := streetTypes[word]; !ok {
			t.Errorf("secondary %q missing from street types", word)
		}
	}

	// a known spelling outside both sets is never a terminator
	if IsPrimaryStreetType("av") || IsSecondaryStreetType("av") {
		t.Error("av should be neither primary nor secondary")
	}

	for _, word := range []string{"Blvd", "drive", "Loop", "pass"} {
		if !IsPrimaryStreetType(word) {
			t.Errorf("%q should be primary", word)
		}
	}
	for _, word := range []string{"Pointe", "ridge", "Hills", "Cove"} {
		if !IsSecondaryStreetType(word) {
			t.Errorf("%q should be secondary", word)
		}
	}
}

func TestKnownCitiesLongestFirst(t *testing.T) {
	cities := KnownCities()
	if len(cities) != len(knownCities) {
		t.Fatalf("got %d cities, want %d", len(cities), len(knownCities))
	}
	for i := 1; i < len(cities); i++ {
		if len(cities[i]) > len(cities[i-1]) {
			t.Errorf("city %q (len %d) after shorter %q", cities[i], len(cities[i]), cities[i-1])
		}
	}
	if cities[0] != "dripping springs" {
		t.Errorf("longest city = %q, want dripping springs", cities[0])
	}

	// callers must not be able to reorder the shared table
	cities[0] = "nowhere"
	if KnownCities()[0] != "dripping springs" {
		t.Error("KnownCities returned the shared slice")
	}
}
