// Package unit maps display symbols (N, J, mph, ...) to dimension vectors
// and recovers a canonical display name for a given vector.
//
// # Priorities
//
// Several symbols may share one dimension vector: J, cal, Wh and erg are all
// energy. Each registration carries a priority tier and
// [Registry.CompositeName] deterministically picks the highest-priority
// symbol, breaking ties by insertion order:
//
//   - [PrioritySIBase]: the seven SI base units
//   - [PrioritySIDerived]: named derived units (N, J, W, ...)
//   - [PriorityExtended]: extended SI forms (m², m³)
//   - [PriorityAcceptedNonSI]: accepted metric units (L, bar, cal, ...)
//   - [PriorityOther]: everything else (imperial, historical, ...)
//
// # Expressions
//
// [Registry.ParseExpr] resolves compound expressions like "N*m/s^2" with a
// simple token grammar: symbols separated by '*' or '/', each optionally
// raised with '^<integer>', evaluated left to right. The seven bare SI base
// symbols resolve even when absent from the registry.
package unit

import (
	"regexp"
	"strings"
	"sync"

	"github.com/unitkit/unitkit/pkg/dimension"
	"github.com/unitkit/unitkit/pkg/errors"
)

// Priority tiers for canonical-name selection.
const (
	PrioritySIBase        = 5
	PrioritySIDerived     = 4
	PriorityExtended      = 3
	PriorityAcceptedNonSI = 2
	PriorityOther         = 1
)

// entry is one registered symbol. Entries are kept in a slice to preserve
// insertion order for deterministic tie-breaking.
type entry struct {
	symbol   string
	vec      dimension.Vector
	priority int
}

// Registry is the composite-unit registry. All methods are safe for
// concurrent use; writers swap in fresh state under a single lock.
type Registry struct {
	mu      sync.RWMutex
	entries []entry
	bySym   map[string]int // symbol -> index into entries
}

// NewRegistry returns an empty registry. Most callers want [NewSIRegistry].
func NewRegistry() *Registry {
	return &Registry{bySym: make(map[string]int)}
}

// Register adds or overwrites a symbol. Priority 0 (or negative) defaults
// to [PriorityOther]. Overwriting keeps the original insertion position.
func (r *Registry) Register(symbol string, vec dimension.Vector, priority int) error {
	if err := errors.ValidateSymbol(symbol); err != nil {
		return err
	}
	if priority <= 0 {
		priority = PriorityOther
	}

	r.add(symbol, vec, priority)
	return nil
}

// add inserts without symbol validation. The default table uses it to seed
// display names like "m/s" that are not single parseable tokens.
func (r *Registry) add(symbol string, vec dimension.Vector, priority int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.bySym[symbol]; ok {
		r.entries[i] = entry{symbol: symbol, vec: vec, priority: priority}
		return
	}
	r.bySym[symbol] = len(r.entries)
	r.entries = append(r.entries, entry{symbol: symbol, vec: vec, priority: priority})
}

// Lookup returns the dimension vector registered for a symbol.
func (r *Registry) Lookup(symbol string) (dimension.Vector, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.bySym[symbol]
	if !ok {
		return dimension.Vector{}, false
	}
	return r.entries[i].vec, true
}

// Priority returns the priority tier registered for a symbol.
func (r *Registry) Priority(symbol string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.bySym[symbol]
	if !ok {
		return 0, false
	}
	return r.entries[i].priority, true
}

// CompositeName resolves a dimension vector back to its canonical display
// symbol: the registered symbol with the strictly highest priority whose
// vector equals vec. Ties keep the earliest-registered symbol. ok=false
// signals "no name registered, fall back to raw notation".
func (r *Registry) CompositeName(vec dimension.Vector) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	best, bestPrio := "", 0
	for _, e := range r.entries {
		if e.vec == vec && e.priority > bestPrio {
			best, bestPrio = e.symbol, e.priority
		}
	}
	return best, bestPrio > 0
}

// RawNotation renders vec in base-symbol fallback notation (see
// [dimension.Vector.String]).
func (r *Registry) RawNotation(vec dimension.Vector) string {
	return vec.String()
}

// Name returns the canonical display name for vec: the composite name when
// one is registered, raw notation otherwise.
func (r *Registry) Name(vec dimension.Vector) string {
	if sym, ok := r.CompositeName(vec); ok {
		return sym
	}
	return r.RawNotation(vec)
}

// Symbols returns all registered symbols in insertion order.
func (r *Registry) Symbols() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	syms := make([]string, len(r.entries))
	for i, e := range r.entries {
		syms[i] = e.symbol
	}
	return syms
}

// tokenRe matches one unit token: a symbol with an optional integer power.
var tokenRe = regexp.MustCompile(`^([a-zA-Zµ°ΩÅ²³]+)(?:\^(-?\d+))?$`)

// ParseExpr evaluates a unit expression like "N*m/s^2" to a dimension
// vector. Tokens are separated by '*' or '/', evaluated left to right; '/'
// divides the running product by the next token. Unknown symbols fail with
// UNKNOWN_UNIT.
func (r *Registry) ParseExpr(expr string) (dimension.Vector, error) {
	cleaned := strings.NewReplacer("·", "*", " ", "", "//", "/").Replace(expr)
	if cleaned == "" {
		return dimension.Vector{}, errors.New(errors.ErrCodeUnknownUnit, "empty unit expression")
	}

	var result dimension.Vector
	div := false
	for _, tok := range splitKeepOps(cleaned) {
		switch tok {
		case "*":
			div = false
			continue
		case "/":
			div = true
			continue
		}

		m := tokenRe.FindStringSubmatch(tok)
		if m == nil {
			return dimension.Vector{}, errors.New(errors.ErrCodeUnknownUnit, "invalid unit token: %q", tok)
		}
		symbol, expStr := m[1], m[2]

		vec, ok := r.Lookup(symbol)
		if !ok {
			vec, ok = dimension.Base(symbol)
		}
		if !ok {
			return dimension.Vector{}, errors.New(errors.ErrCodeUnknownUnit, "unknown unit: %q", symbol)
		}

		if expStr != "" {
			vec = vec.Pow(atoi(expStr))
		}
		if div {
			result = result.Div(vec)
		} else {
			result = result.Mul(vec)
		}
	}
	return result, nil
}

// splitKeepOps splits on '*' and '/' while keeping the operators as tokens.
func splitKeepOps(s string) []string {
	var out []string
	start := 0
	for i, r := range s {
		if r == '*' || r == '/' {
			if i > start {
				out = append(out, s[start:i])
			}
			out = append(out, string(r))
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

// atoi parses an integer the token regexp has already validated.
func atoi(s string) int {
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	if neg {
		return -n
	}
	return n
}
