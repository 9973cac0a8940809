package pyversion

import (
	"slices"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Version
		wantErr bool
	}{
		{"3.12", Version{3, 12}, false},
		{"3.12.4", Version{3, 12}, false},
		{"10.0", Version{10, 0}, false},
		{"03.12", Version{}, true}, // no leading zeros
		{"3", Version{}, true},
		{"3.x", Version{}, true},
		{"", Version{}, true},
		{"3.12.4.1", Version{}, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEnumerate(t *testing.T) {
	got, err := Enumerate("3.12", "3.14")
	if err != nil {
		t.Fatalf("Enumerate error: %v", err)
	}
	want := []string{"3.12", "3.13", "3.14"}
	if !slices.Equal(got, want) {
		t.Errorf("Enumerate = %v, want %v", got, want)
	}

	// Single version range
	got, err = Enumerate("3.12", "3.12")
	if err != nil {
		t.Fatalf("Enumerate error: %v", err)
	}
	if !slices.Equal(got, []string{"3.12"}) {
		t.Errorf("Enumerate = %v, want [3.12]", got)
	}

	// Major mismatch
	if _, err := Enumerate("2.7", "3.12"); err == nil {
		t.Error("Enumerate should reject different major versions")
	}

	// Wrong order
	if _, err := Enumerate("3.14", "3.12"); err == nil {
		t.Error("Enumerate should reject descending versions")
	}
}

func TestFilterMax(t *testing.T) {
	got, err := FilterMax([]string{"3.14", "3.12", "3.13", "3.12.1"}, "3.13")
	if err != nil {
		t.Fatalf("FilterMax error: %v", err)
	}
	want := []string{"3.12", "3.13"}
	if !slices.Equal(got, want) {
		t.Errorf("FilterMax = %v, want %v", got, want)
	}

	if _, err := FilterMax([]string{"bogus"}, "3.13"); err == nil {
		t.Error("FilterMax should reject invalid versions")
	}
}

func TestIncrement(t *testing.T) {
	got, err := Increment("3.12")
	if err != nil {
		t.Fatalf("Increment error: %v", err)
	}
	if got != "3.13" {
		t.Errorf("Increment = %q, want 3.13", got)
	}

	if _, err := Increment("nope"); err == nil {
		t.Error("Increment should reject invalid versions")
	}
}
