// Package prefix implements the metric prefix lattice: the thousands family
// (k, M, m, µ, ...), the tenths family (da, h, d, c), and every valid
// compound of the two.
//
// # Overview
//
// Prefixes scale a quantity's displayed value without changing its
// dimension. The combined table is generated from two base families:
//
//   - thousands: powers of ten in multiples of three (10^-30 .. 10^30)
//   - tenths: deca, hecto, deci, centi (10^1, 10^2, 10^-1, 10^-2)
//
// A tenths symbol and a thousands symbol combine by concatenation ("da"+"k"
// is 10^4) only when both scale in the same direction or one of them is the
// identity. Two hand-maintained exceptions exist: "d"+"a" is blocked because
// it collides with deca, and "h"+"z" is allowed despite scaling in opposite
// directions.
//
// # Registries
//
// A [Table] is an owned registry, not ambient global state. Registration
// rebuilds the combined table and the reverse exponent indexes as fresh maps
// under a write lock, so concurrent readers never observe partial state.
//
// Factors are exact rationals (math/big.Rat); float conversion happens only
// at the quantity boundary.
package prefix

import (
	"math/big"
	"slices"
	"strings"
	"sync"

	"github.com/unitkit/unitkit/pkg/errors"
)

// Granularity selects the step between displayable prefix exponents.
type Granularity int

const (
	// Tenths steps through every order of magnitude, making compound
	// prefixes like "dak" (10^4) eligible.
	Tenths Granularity = 1

	// Thousands steps through every third order of magnitude, the usual
	// engineering-notation behavior (k, M, G, ...).
	Thousands Granularity = 3
)

func (g Granularity) step() int {
	if g == Tenths {
		return 1
	}
	return 3
}

// Prefix is a named multiplicative scale factor. Obtain prefixes from
// [Table.Resolve] or [Identity]; the zero value behaves as the identity.
type Prefix struct {
	Symbol string
	factor *big.Rat
}

// Identity returns the empty prefix with factor exactly 1.
func Identity() Prefix {
	return Prefix{Symbol: "", factor: big.NewRat(1, 1)}
}

// Factor returns a copy of the exact scale factor.
func (p Prefix) Factor() *big.Rat {
	if p.factor == nil {
		return big.NewRat(1, 1)
	}
	return new(big.Rat).Set(p.factor)
}

// Float returns the scale factor as a float64.
func (p Prefix) Float() float64 {
	if p.factor == nil {
		return 1
	}
	f, _ := p.factor.Float64()
	return f
}

// Equal reports whether two prefixes have the same factor. Symbols are
// irrelevant: two symbols resolving to the same factor compare equal.
func (p Prefix) Equal(o Prefix) bool {
	return p.Factor().Cmp(o.Factor()) == 0
}

// String returns the prefix symbol.
func (p Prefix) String() string {
	return p.Symbol
}

// pow10 returns 10^exp as an exact rational.
func pow10(exp int) *big.Rat {
	n := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs(exp))), nil)
	if exp < 0 {
		return new(big.Rat).SetFrac(big.NewInt(1), n)
	}
	return new(big.Rat).SetInt(n)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Table is the prefix registry. It owns the two base families, the derived
// combined table, and the reverse exponent indexes used for best-prefix
// selection. All methods are safe for concurrent use.
type Table struct {
	mu        sync.RWMutex
	thousands map[string]int // symbol -> base-10 exponent
	tenths    map[string]int
	combined  map[string]int // every valid pairing, symbol -> exponent
	byExp     map[int]string // reverse index, every order of magnitude
	byExp3    map[int]string // reverse index, multiples of three only
}

// NewTable builds a table populated with the standard SI families.
func NewTable() *Table {
	t := &Table{
		thousands: map[string]int{
			"Q": 30, "R": 27, "Y": 24, "Z": 21, "E": 18,
			"P": 15, "T": 12, "G": 9, "M": 6, "k": 3, "": 0,
			"m": -3, "µ": -6, "n": -9, "p": -12, "f": -15,
			"a": -18, "z": -21, "y": -24, "r": -27, "q": -30,
		},
		tenths: map[string]int{
			"da": 1, "h": 2, "d": -1, "c": -2, "": 0,
		},
	}
	t.rebuild()
	return t
}

// validCombo reports whether a tenths symbol and a thousands symbol may be
// concatenated into a compound prefix.
func (t *Table) validCombo(tenth, thousand string) bool {
	// "d"+"a" would collide with deca
	if tenth == "d" && thousand == "a" {
		return false
	}
	// hecto+zepto is the one sanctioned cross-direction pairing
	if tenth == "h" && thousand == "z" {
		return true
	}
	vt, vth := t.tenths[tenth], t.thousands[thousand]
	return (vt > 0 && vth > 0) || (vt < 0 && vth < 0) || vt == 0 || vth == 0
}

// rebuild regenerates the combined table and both reverse indexes from the
// base families. Caller must hold the write lock (or exclusive ownership
// during construction). The derived maps are fresh on every call; readers
// holding the old maps keep a consistent snapshot.
func (t *Table) rebuild() {
	combined := make(map[string]int, len(t.thousands)*len(t.tenths))
	for tenth, vt := range t.tenths {
		for thousand, vth := range t.thousands {
			if !t.validCombo(tenth, thousand) {
				continue
			}
			combined[tenth+thousand] = vt + vth
		}
	}

	byExp := make(map[int]string, len(combined))
	for sym, exp := range combined {
		// Prefer the shortest symbol when two pairings land on the same
		// exponent, so plain family symbols win over compounds.
		if cur, ok := byExp[exp]; ok && len(cur) <= len(sym) {
			continue
		}
		byExp[exp] = sym
	}

	byExp3 := make(map[int]string, len(t.thousands))
	for sym, exp := range combined {
		if exp%3 != 0 {
			continue
		}
		if cur, ok := byExp3[exp]; ok && len(cur) <= len(sym) {
			continue
		}
		byExp3[exp] = sym
	}

	t.combined = combined
	t.byExp = byExp
	t.byExp3 = byExp3
}

// Resolve looks up a symbol in the combined table.
func (t *Table) Resolve(symbol string) (Prefix, error) {
	t.mu.RLock()
	exp, ok := t.combined[symbol]
	t.mu.RUnlock()
	if !ok {
		return Prefix{}, errors.New(errors.ErrCodeUnknownPrefix, "unknown prefix: %q", symbol)
	}
	return Prefix{Symbol: symbol, factor: pow10(exp)}, nil
}

// Register adds a custom prefix 10^exp to the thousands family and rebuilds
// the derived tables. Registering a symbol already present in either base
// family (or colliding with an existing compound) fails with
// DUPLICATE_PREFIX.
func (t *Table) Register(symbol string, exp int) error {
	if err := errors.ValidateSymbol(symbol); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.thousands[symbol]; ok {
		return errors.New(errors.ErrCodeDuplicatePrefix, "prefix already registered: %q", symbol)
	}
	if _, ok := t.tenths[symbol]; ok {
		return errors.New(errors.ErrCodeDuplicatePrefix, "prefix already registered: %q", symbol)
	}
	if _, ok := t.combined[symbol]; ok {
		return errors.New(errors.ErrCodeDuplicatePrefix, "prefix collides with compound: %q", symbol)
	}

	t.thousands[symbol] = exp
	t.rebuild()
	return nil
}

// EnsureRegistered is the idempotent variant of [Register]: re-registering
// an existing symbol succeeds when (and only when) the exponent matches the
// existing registration.
func (t *Table) EnsureRegistered(symbol string, exp int) error {
	t.mu.RLock()
	cur, ok := t.thousands[symbol]
	t.mu.RUnlock()
	if ok {
		if cur == exp {
			return nil
		}
		return errors.New(errors.ErrCodeDuplicatePrefix,
			"prefix %q already registered with exponent %d", symbol, cur)
	}
	return t.Register(symbol, exp)
}

// BestSymbolForExponent returns the symbol whose factor is 10^e, where e is
// exp stepped toward zero to a multiple of the granularity step. Stepping
// toward zero (not floor) keeps sub-unity values in a readable range:
// 3.2x10^-4 lands on milli (0.32 mm), not micro (320 um). ok=false means no
// prefix is registered at the stepped exponent; callers must not treat the
// empty symbol as the identity unless the stepped exponent is zero.
func (t *Table) BestSymbolForExponent(exp int, g Granularity) (string, bool) {
	step := g.step()
	stepped := (exp / step) * step

	t.mu.RLock()
	defer t.mu.RUnlock()
	if g == Tenths {
		sym, ok := t.byExp[stepped]
		return sym, ok
	}
	sym, ok := t.byExp3[stepped]
	return sym, ok
}

// Symbols returns every registered symbol in the combined table, sorted
// first by exponent and then lexicographically. The empty identity symbol
// is included.
func (t *Table) Symbols() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	syms := make([]string, 0, len(t.combined))
	for sym := range t.combined {
		syms = append(syms, sym)
	}
	slices.SortFunc(syms, func(a, b string) int {
		if d := t.combined[a] - t.combined[b]; d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	return syms
}

// Exponent returns the base-10 exponent for a registered symbol.
func (t *Table) Exponent(symbol string) (int, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	exp, ok := t.combined[symbol]
	return exp, ok
}

// HasPrefix reports whether expr begins with a non-empty registered prefix
// symbol, returning the longest such match.
func (t *Table) HasPrefix(expr string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	best := ""
	for sym := range t.combined {
		if sym == "" || len(sym) <= len(best) {
			continue
		}
		if len(expr) >= len(sym) && expr[:len(sym)] == sym {
			best = sym
		}
	}
	return best, best != ""
}
