package cli

import (
	"testing"

	"github.com/unitkit/unitkit/pkg/convert"
	"github.com/unitkit/unitkit/pkg/dimension"
	"github.com/unitkit/unitkit/pkg/errors"
)

func TestParseQuantity(t *testing.T) {
	e := convert.NewEngine()
	length := dimension.Vector{Length: 1}
	energy := dimension.Vector{Mass: 1, Length: 2, Time: -2}

	tests := []struct {
		name       string
		value      string
		expr       string
		wantSI     float64
		wantDims   dimension.Vector
		wantPrefix string
		wantUnit   string
	}{
		{"base unit", "2500", "m", 2500, length, "", ""},
		{"prefixed unit", "2.5", "km", 2500, length, "k", ""},
		{"named unit", "3", "J", 3, energy, "", ""},
		{"non-canonical keeps name", "1", "mi", 1, length, "", "mi"},
		{"expression", "9.8", "m/s^2", 9.8, dimension.Vector{Length: 1, Time: -2}, "", ""},
		{"compound expression", "1", "kg.m^2.s^-2", 1, energy, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := parseQuantity(e, tt.value, tt.expr)
			if err != nil {
				t.Fatalf("parseQuantity error: %v", err)
			}
			if q.SI() != tt.wantSI {
				t.Errorf("SI = %v, want %v", q.SI(), tt.wantSI)
			}
			if q.Dims != tt.wantDims {
				t.Errorf("dims = %+v, want %+v", q.Dims, tt.wantDims)
			}
			if q.Prefix.Symbol != tt.wantPrefix {
				t.Errorf("prefix = %q, want %q", q.Prefix.Symbol, tt.wantPrefix)
			}
			if q.Unit != tt.wantUnit {
				t.Errorf("unit = %q, want %q", q.Unit, tt.wantUnit)
			}
		})
	}
}

func TestParseQuantityErrors(t *testing.T) {
	e := convert.NewEngine()

	if _, err := parseQuantity(e, "abc", "m"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad value = %v, want INVALID_INPUT", err)
	}
	if _, err := parseQuantity(e, "1", "flib"); !errors.Is(err, errors.ErrCodeUnknownUnit) {
		t.Errorf("bad unit = %v, want UNKNOWN_UNIT", err)
	}
}

func TestFormatQuantity(t *testing.T) {
	e := convert.NewEngine()

	q, err := parseQuantity(e, "2.5", "km")
	if err != nil {
		t.Fatal(err)
	}
	if got := formatQuantity(e, q); got != "2.5 km" {
		t.Errorf("formatQuantity = %q, want 2.5 km", got)
	}

	mi, err := e.To(q, "mi")
	if err != nil {
		t.Fatal(err)
	}
	got := formatQuantity(e, mi)
	if got[len(got)-2:] != "mi" {
		t.Errorf("formatQuantity = %q, want mi suffix", got)
	}
}
