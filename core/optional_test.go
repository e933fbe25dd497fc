package core

import (
	"math"
	"testing"
)

func TestParseOptional(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantDefined bool
		wantVal     float64
	}{
		{
			name:        "plain integer",
			raw:         "3",
			wantDefined: true,
			wantVal:     3,
		},
		{
			name:        "decimal",
			raw:         "475000.50",
			wantDefined: true,
			wantVal:     475000.50,
		},
		{
			name:        "surrounding whitespace",
			raw:         "  2500 ",
			wantDefined: true,
			wantVal:     2500,
		},
		{
			name:        "empty string",
			raw:         "",
			wantDefined: false,
		},
		{
			name:        "whitespace only",
			raw:         "   ",
			wantDefined: false,
		},
		{
			name:        "non-numeric",
			raw:         "three",
			wantDefined: false,
		},
		{
			name:        "NaN literal",
			raw:         "NaN",
			wantDefined: false,
		},
		{
			name:        "infinity literal",
			raw:         "+Inf",
			wantDefined: false,
		},
		{
			name:        "negative value",
			raw:         "-2",
			wantDefined: true,
			wantVal:     -2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseOptional(tt.raw)

			if got.Defined != tt.wantDefined {
				t.Errorf("ParseOptional(%q).Defined = %v, want %v", tt.raw, got.Defined, tt.wantDefined)
			}
			if tt.wantDefined && got.Val != tt.wantVal {
				t.Errorf("ParseOptional(%q).Val = %v, want %v", tt.raw, got.Val, tt.wantVal)
			}
		})
	}
}

func TestSome_NonFinite(t *testing.T) {
	if Some(math.NaN()).Defined {
		t.Error("Some(NaN) should be absent")
	}
	if Some(math.Inf(1)).Defined {
		t.Error("Some(+Inf) should be absent")
	}
	if !Some(0).Defined {
		t.Error("Some(0) should be defined")
	}
}

func TestOptional_String(t *testing.T) {
	if got := Some(500000).String(); got != "500000" {
		t.Errorf("Some(500000).String() = %q", got)
	}
	if got := Some(2.5).String(); got != "2.5" {
		t.Errorf("Some(2.5).String() = %q", got)
	}
	if got := None().String(); got != "unspecified" {
		t.Errorf("None().String() = %q", got)
	}
}
