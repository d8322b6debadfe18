// Package pkg provides the core libraries for unitkit dimensional analysis.
//
// # Overview
//
// Unitkit tracks physical dimensions through arithmetic and converts
// quantities between metric prefixes and named units. The pkg directory is
// organized by concern:
//
//  1. [dimension] - SI dimension vectors and their algebra
//  2. [prefix] - metric prefix table with compound-symbol resolution
//  3. [unit] - unit registry, composite naming, expression parsing
//  4. [quantity] - dimensioned values and their arithmetic
//  5. [convert] - conversion engine, best-prefix selection, formatting
//  6. [constants] / [physics] - physical constants and formula helpers
//  7. [config] - TOML-declared custom prefixes, units, and conversions
//  8. [errors] / [observability] / [buildinfo] - cross-cutting support
//
// # Architecture
//
// The typical data flow through unitkit:
//
//	value + unit expression
//	         ↓
//	quantity (value, prefix, dimension vector)
//	         ↓
//	conversion engine (prefix table + unit registry + factor table)
//	         ↓
//	converted or pretty-printed quantity
//
// The engine owns its registries; nothing is ambient or global, so two
// engines with different configurations can coexist in one process.
package pkg
