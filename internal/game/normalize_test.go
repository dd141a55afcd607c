package game

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims and lowercases", "  Ottawa  ", "ottawa"},
		{"strips periods", "St. John's", "st john's"},
		{"folds smart apostrophe", "St. John’s", "st john's"},
		{"folds low-9 quote", "St. John‚s", "st john's"},
		{"folds smart double quotes", "“Quote”", `"quote"`},
		{"folds low-9 double quote", "„Quote‟", `"quote"`},
		{"period then space keeps inner space", "St John's.", "st john's"},
		{"empty input", "", ""},
		{"only punctuation", " . ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"  Ottawa  ",
		"St. John’s",
		"“Quote”",
		"Québec City",
		". Trois-Rivières .",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestNormalizeEquivalentSpellings(t *testing.T) {
	// Every accepted rendering of the same name must collapse to one form.
	variants := []string{
		"St. John's",
		"st. john's",
		"St. John’s",
		"st. john’s",
		"St John's",
	}
	want := Normalize(variants[0])
	for _, v := range variants {
		if got := Normalize(v); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", v, got, want)
		}
	}
}
