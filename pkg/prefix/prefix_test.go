package prefix

import (
	"math/big"
	"testing"

	"github.com/unitkit/unitkit/pkg/errors"
)

func TestResolveStandard(t *testing.T) {
	table := NewTable()

	tests := []struct {
		symbol string
		exp    int
	}{
		{"", 0},
		{"k", 3},
		{"M", 6},
		{"Q", 30},
		{"m", -3},
		{"µ", -6},
		{"q", -30},
		{"da", 1},
		{"h", 2},
		{"d", -1},
		{"c", -2},
		// compounds
		{"dak", 4},  // deca + kilo
		{"hk", 5},   // hecto + kilo
		{"dm", -4},  // deci + milli
		{"cm", -5},  // centi + milli
		{"hz", -19}, // hecto + zepto, the sanctioned exception
	}
	for _, tt := range tests {
		p, err := table.Resolve(tt.symbol)
		if err != nil {
			t.Errorf("Resolve(%q) error: %v", tt.symbol, err)
			continue
		}
		if want := pow10(tt.exp); p.Factor().Cmp(want) != 0 {
			t.Errorf("Resolve(%q) factor = %v, want 10^%d", tt.symbol, p.Factor(), tt.exp)
		}
	}
}

func TestResolveUnknown(t *testing.T) {
	table := NewTable()

	// "d"+"a" is blocked: "da" must resolve as deca, and nothing else may
	// produce a deci-atto compound.
	p, err := table.Resolve("da")
	if err != nil {
		t.Fatalf("Resolve(da) error: %v", err)
	}
	if p.Factor().Cmp(big.NewRat(10, 1)) != 0 {
		t.Errorf("da = %v, want 10 (deca, not deci-atto)", p.Factor())
	}

	// Cross-direction compounds are filtered out.
	for _, sym := range []string{"dam", "ck", "x", "kk"} {
		if _, err := table.Resolve(sym); !errors.Is(err, errors.ErrCodeUnknownPrefix) {
			t.Errorf("Resolve(%q) = %v, want UNKNOWN_PREFIX", sym, err)
		}
	}
}

func TestIdentityAlwaysOne(t *testing.T) {
	table := NewTable()
	p, err := table.Resolve("")
	if err != nil {
		t.Fatalf("Resolve(\"\") error: %v", err)
	}
	if !p.Equal(Identity()) {
		t.Errorf("empty symbol factor = %v, want 1", p.Factor())
	}
}

func TestPrefixEqualByFactor(t *testing.T) {
	table := NewTable()
	k, _ := table.Resolve("k")
	m, _ := table.Resolve("m")

	if !k.Equal(k) {
		t.Error("prefix should equal itself")
	}
	if k.Equal(m) {
		t.Error("k and m have different factors")
	}
}

func TestRegister(t *testing.T) {
	table := NewTable()

	if err := table.Register("Q2", 33); err != nil {
		t.Fatalf("Register(Q2) error: %v", err)
	}

	p, err := table.Resolve("Q2")
	if err != nil {
		t.Fatalf("Resolve(Q2) after register error: %v", err)
	}
	if p.Factor().Cmp(pow10(33)) != 0 {
		t.Errorf("Q2 factor = %v, want 10^33", p.Factor())
	}

	// Compounds with the new symbol appear after the rebuild.
	if _, err := table.Resolve("daQ2"); err != nil {
		t.Errorf("Resolve(daQ2) error: %v", err)
	}

	// Re-registering the same symbol is rejected.
	if err := table.Register("Q2", 33); !errors.Is(err, errors.ErrCodeDuplicatePrefix) {
		t.Errorf("second Register(Q2) = %v, want DUPLICATE_PREFIX", err)
	}
}

func TestRegisterRejectsExistingFamilies(t *testing.T) {
	table := NewTable()

	if err := table.Register("k", 3); !errors.Is(err, errors.ErrCodeDuplicatePrefix) {
		t.Errorf("Register(k) = %v, want DUPLICATE_PREFIX", err)
	}
	if err := table.Register("da", 1); !errors.Is(err, errors.ErrCodeDuplicatePrefix) {
		t.Errorf("Register(da) = %v, want DUPLICATE_PREFIX", err)
	}
	if err := table.Register("hk", 5); !errors.Is(err, errors.ErrCodeDuplicatePrefix) {
		t.Errorf("Register(hk) = %v, want DUPLICATE_PREFIX (compound collision)", err)
	}
	if err := table.Register("k*2", 3); !errors.Is(err, errors.ErrCodeInvalidSymbol) {
		t.Errorf("Register(k*2) = %v, want INVALID_SYMBOL", err)
	}
}

func TestEnsureRegistered(t *testing.T) {
	table := NewTable()

	if err := table.EnsureRegistered("X9", 33); err != nil {
		t.Fatalf("first EnsureRegistered error: %v", err)
	}
	if err := table.EnsureRegistered("X9", 33); err != nil {
		t.Errorf("identical EnsureRegistered = %v, want nil", err)
	}
	if err := table.EnsureRegistered("X9", 36); !errors.Is(err, errors.ErrCodeDuplicatePrefix) {
		t.Errorf("conflicting EnsureRegistered = %v, want DUPLICATE_PREFIX", err)
	}
}

func TestBestSymbolForExponent(t *testing.T) {
	table := NewTable()

	tests := []struct {
		name string
		exp  int
		g    Granularity
		want string
		ok   bool
	}{
		{"exact kilo", 3, Thousands, "k", true},
		{"rounds down to kilo", 4, Thousands, "k", true},
		{"rounds down to kilo upper", 5, Thousands, "k", true},
		{"identity", 0, Thousands, "", true},
		{"identity from above", 2, Thousands, "", true},
		{"negative truncates to identity", -1, Thousands, "", true},
		{"milli from below", -4, Thousands, "m", true},
		{"micro exact", -6, Thousands, "µ", true},
		{"top of table", 31, Thousands, "Q", true},
		{"beyond table", 34, Thousands, "", false},
		{"beyond table negative", -33, Thousands, "", false},
		{"tenths exact deca", 1, Tenths, "da", true},
		{"tenths compound", 4, Tenths, "dak", true},
		{"tenths deci-milli", -4, Tenths, "dm", true},
		{"tenths centi", -2, Tenths, "c", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.BestSymbolForExponent(tt.exp, tt.g)
			if got != tt.want || ok != tt.ok {
				t.Errorf("BestSymbolForExponent(%d, %v) = %q, %v; want %q, %v",
					tt.exp, tt.g, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestBestSymbolAfterRegister(t *testing.T) {
	table := NewTable()

	if _, ok := table.BestSymbolForExponent(33, Thousands); ok {
		t.Fatal("exponent 33 should be unregistered in a fresh table")
	}
	if err := table.Register("Q2", 33); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	got, ok := table.BestSymbolForExponent(34, Thousands)
	if !ok || got != "Q2" {
		t.Errorf("BestSymbolForExponent(34) = %q, %v; want Q2, true", got, ok)
	}
}

func TestHasPrefix(t *testing.T) {
	table := NewTable()

	tests := []struct {
		expr string
		want string
		ok   bool
	}{
		{"km", "k", true},
		{"dak", "dak", true}, // longest match wins
		{"xyz", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := table.HasPrefix(tt.expr)
		if got != tt.want || ok != tt.ok {
			t.Errorf("HasPrefix(%q) = %q, %v; want %q, %v", tt.expr, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSymbolsSorted(t *testing.T) {
	table := NewTable()
	syms := table.Symbols()

	if len(syms) == 0 {
		t.Fatal("Symbols() returned nothing")
	}
	prev := -1000
	for _, sym := range syms {
		exp, ok := table.Exponent(sym)
		if !ok {
			t.Fatalf("Exponent(%q) missing", sym)
		}
		if exp < prev {
			t.Fatalf("Symbols() not sorted by exponent: %q (%d) after %d", sym, exp, prev)
		}
		prev = exp
	}
}
