package normalize

import (
	"testing"
)

func TestForSearch(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "abbreviated type expanded",
			input: "1919 American Dr",
			want:  "1919 american drive",
		},
		{
			name:  "full type kept",
			input: "1919 AMERICAN DRIVE",
			want:  "1919 american drive",
		},
		{
			name:  "directional abbreviated",
			input: "100 North Lamar Blvd",
			want:  "100 n lamar boulevard",
		},
		{
			name:  "compound directional",
			input: "5 Southwest Pkwy",
			want:  "5 sw parkway",
		},
		{
			name:  "whitespace collapsed",
			input: "  123   W  Oak   Ln  ",
			want:  "123 w oak lane",
		},
		{
			name:  "accents folded",
			input: "7 Cañada Ct",
			want:  "7 canada court",
		},
		{
			name:  "abbreviation inside a word untouched",
			input: "12 Stillmeadow Ct",
			want:  "12 stillmeadow court",
		},
		{
			name:  "empty",
			input: "   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForSearch(tt.input); got != tt.want {
				t.Errorf("ForSearch(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestForSearchIdempotent(t *testing.T) {
	inputs := []string{
		"18517 Falcon Pointe Blvd",
		"1481 Old Settlers Blvd Unit 1503, Austin, TX 78660",
		"3 Stillmeadow Court",
	}
	for _, input := range inputs {
		once := ForSearch(input)
		if twice := ForSearch(once); twice != once {
			t.Errorf("ForSearch not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}
