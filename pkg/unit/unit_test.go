package unit

import (
	"testing"

	"github.com/unitkit/unitkit/pkg/dimension"
	"github.com/unitkit/unitkit/pkg/errors"
)

var (
	energy   = dimension.Vector{Mass: 1, Length: 2, Time: -2}
	pressure = dimension.Vector{Mass: 1, Length: -1, Time: -2}
	velocity = dimension.Vector{Length: 1, Time: -1}
)

func TestLookup(t *testing.T) {
	r := NewSIRegistry()

	vec, ok := r.Lookup("N")
	if !ok {
		t.Fatal("N should be registered")
	}
	if want := (dimension.Vector{Mass: 1, Length: 1, Time: -2}); vec != want {
		t.Errorf("Lookup(N) = %+v, want %+v", vec, want)
	}

	if _, ok := r.Lookup("flib"); ok {
		t.Error("flib should not be registered")
	}
}

func TestCompositeNamePriority(t *testing.T) {
	r := NewSIRegistry()

	// J, cal, Wh, erg and eV all share the energy vector; J has the
	// highest tier and must always win.
	if got, ok := r.CompositeName(energy); !ok || got != "J" {
		t.Errorf("CompositeName(energy) = %q, %v; want J, true", got, ok)
	}
	// Pa (derived) beats bar (accepted) and atm/mmHg/torr/psi (other).
	if got, ok := r.CompositeName(pressure); !ok || got != "Pa" {
		t.Errorf("CompositeName(pressure) = %q, %v; want Pa, true", got, ok)
	}
	// kg (base) beats g, t, lb, oz.
	if got, ok := r.CompositeName(dimension.Vector{Mass: 1}); !ok || got != "kg" {
		t.Errorf("CompositeName(mass) = %q, %v; want kg, true", got, ok)
	}
	// m/s (extended) beats mph, knot and km/h (other).
	if got, ok := r.CompositeName(velocity); !ok || got != "m/s" {
		t.Errorf("CompositeName(velocity) = %q, %v; want m/s, true", got, ok)
	}
}

func TestCompositeNameOrderIndependent(t *testing.T) {
	// Registration order must not affect the winner when priorities differ.
	a := NewRegistry()
	a.Register("cal", energy, PriorityAcceptedNonSI)
	a.Register("J", energy, PrioritySIDerived)

	b := NewRegistry()
	b.Register("J", energy, PrioritySIDerived)
	b.Register("cal", energy, PriorityAcceptedNonSI)

	for _, r := range []*Registry{a, b} {
		if got, _ := r.CompositeName(energy); got != "J" {
			t.Errorf("CompositeName = %q, want J", got)
		}
	}
}

func TestCompositeNameTieBreaksByInsertion(t *testing.T) {
	r := NewRegistry()
	r.Register("first", velocity, PriorityOther)
	r.Register("second", velocity, PriorityOther)

	if got, _ := r.CompositeName(velocity); got != "first" {
		t.Errorf("CompositeName = %q, want insertion-order winner %q", got, "first")
	}
}

func TestCompositeNameMiss(t *testing.T) {
	r := NewSIRegistry()
	odd := dimension.Vector{Length: 7, Temperature: -3}
	if got, ok := r.CompositeName(odd); ok {
		t.Errorf("CompositeName(odd vector) = %q, want miss", got)
	}
	if got := r.Name(odd); got != "m^7.K^-3" {
		t.Errorf("Name(odd vector) = %q, want raw notation fallback", got)
	}
}

func TestRegisterOverwrite(t *testing.T) {
	r := NewRegistry()
	r.Register("x", velocity, PriorityOther)
	r.Register("x", energy, PrioritySIDerived)

	vec, _ := r.Lookup("x")
	if vec != energy {
		t.Errorf("overwritten Lookup(x) = %+v, want energy", vec)
	}
	if len(r.Symbols()) != 1 {
		t.Errorf("Symbols() = %v, want a single entry", r.Symbols())
	}
}

func TestRegisterInvalidSymbol(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("m/s", velocity, PriorityOther); !errors.Is(err, errors.ErrCodeInvalidSymbol) {
		t.Errorf("Register(m/s) = %v, want INVALID_SYMBOL", err)
	}
}

func TestParseExpr(t *testing.T) {
	r := NewSIRegistry()

	tests := []struct {
		expr string
		want dimension.Vector
	}{
		{"m", dimension.Vector{Length: 1}},
		{"m/s", velocity},
		{"m/s^2", dimension.Vector{Length: 1, Time: -2}},
		{"N*m", energy},
		{"kg*m^2/s^3", dimension.Vector{Mass: 1, Length: 2, Time: -3}},
		{"J/K", dimension.Vector{Mass: 1, Length: 2, Time: -2, Temperature: -1}},
		{"s^-1", dimension.Vector{Time: -1}},
		{"W·s", energy},            // middle dot acts as '*'
		{"kg * m / s^2", dimension.Vector{Mass: 1, Length: 1, Time: -2}}, // spaces stripped
		{"/s", dimension.Vector{Time: -1}},
	}
	for _, tt := range tests {
		got, err := r.ParseExpr(tt.expr)
		if err != nil {
			t.Errorf("ParseExpr(%q) error: %v", tt.expr, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseExpr(%q) = %+v, want %+v", tt.expr, got, tt.want)
		}
	}
}

func TestParseExprBareBaseSymbols(t *testing.T) {
	// The seven SI base symbols resolve even without registry entries.
	r := NewRegistry()
	got, err := r.ParseExpr("kg*m/s^2")
	if err != nil {
		t.Fatalf("ParseExpr error: %v", err)
	}
	if want := (dimension.Vector{Mass: 1, Length: 1, Time: -2}); got != want {
		t.Errorf("ParseExpr = %+v, want %+v", got, want)
	}
}

func TestParseExprErrors(t *testing.T) {
	r := NewSIRegistry()
	for _, expr := range []string{"", "flib", "m/snack^", "2m", "m^x"} {
		if _, err := r.ParseExpr(expr); !errors.Is(err, errors.ErrCodeUnknownUnit) {
			t.Errorf("ParseExpr(%q) = %v, want UNKNOWN_UNIT", expr, err)
		}
	}
}
