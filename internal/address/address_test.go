package address

import (
	"reflect"
	"testing"
)

func TestNormalizedStreet(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1919 American Drive", "1919 american dr"},
		{"1919 American Dr", "1919 american dr"},
		{"18517 Falcon Pointe Boulevard", "18517 falcon pointe blvd"},
		{"123a Oak Lane", "123A oak ln"},
		{"100 North Lamar Blvd South", "100 n lamar blvd s"},
		{"1481 Old Settlers Blvd Unit 1503, Austin, TX 78660", "1481 old settlers blvd"},
		{"4306 Cisco Valley", "4306 cisco vly"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Parse(tt.input).NormalizedStreet(); got != tt.want {
				t.Errorf("NormalizedStreet(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAbbreviationEquivalence(t *testing.T) {
	pairs := [][2]string{
		{"1919 American Drive", "1919 American Dr"},
		{"907 Mohican Street", "907 Mohican St"},
		{"3 Stillmeadow Court", "3 Stillmeadow Ct"},
		{"16 Falling Oaks Trail", "16 Falling Oaks Trl"},
		{"5 Southwest Pkwy", "5 SW Parkway"},
	}
	for _, pair := range pairs {
		a, b := Parse(pair[0]).NormalizedStreet(), Parse(pair[1]).NormalizedStreet()
		if a != b {
			t.Errorf("%q -> %q but %q -> %q", pair[0], a, pair[1], b)
		}
	}
}

func TestMatchKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"18517 Falcon Pointe Blvd", "18517 falcon"},
		{"1481 Old Settlers Blvd Unit 1503", "1481 old"},
		{"Main St", "main"},
		{"42", "42"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Parse(tt.input).MatchKey(); got != tt.want {
			t.Errorf("MatchKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStructuredForm(t *testing.T) {
	got := StructuredForm(Parse("1481 Old Settlers Blvd Unit 1503, Austin, TX 78660"))
	want := map[string]string{
		"street_number":        "1481",
		"street_number_suffix": "",
		"pre_directional":      "",
		"street_name":          "Old Settlers",
		"street_type":          "Blvd",
		"post_directional":     "",
		"unit_type":            "unit",
		"unit_class":           "unit",
		"unit_number":          "1503",
		"city":                 "Austin",
		"state":                "TX",
		"zip_code":             "78660",
		"normalized":           "1481 old settlers blvd",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StructuredForm() =\n%v\nwant\n%v", got, want)
	}

	empty := StructuredForm(ParsedAddress{})
	for key, value := range empty {
		if value != "" {
			t.Errorf("StructuredForm(empty)[%q] = %q, want empty", key, value)
		}
	}
}

func TestExtractSearchTerms(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"18517 Falcon Pointe Blvd", []string{"18517", "Falcon", "Pointe"}},
		{"207 The Hills Dr", []string{"207", "Hills"}},
		{"12 Oak Ln", []string{"12", "Oak"}},
		{"1000 Ranchers Club Of Austin Ln", []string{"1000", "Ranchers", "Club"}},
		{"88 Al Jo Ln", []string{"88"}},
		{"Main St", []string{"Main"}},
		{"", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ExtractSearchTerms(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractSearchTerms(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}
