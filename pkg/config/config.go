// Package config loads engine customizations from a TOML file. A
// unitkit.toml declares extra prefixes, units, and conversion factors
// that are applied on top of the standard tables:
//
//	[[prefixes]]
//	symbol   = "Q2"
//	exponent = 33
//
//	[[units]]
//	symbol   = "BTU"
//	length   = 2
//	mass     = 1
//	time     = -2
//	priority = 1
//	si       = 1055.06
//
//	[[conversions]]
//	from   = "J"
//	to     = "BTU"
//	factor = 0.000947817
package config

import (
	stderrors "errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/unitkit/unitkit/pkg/convert"
	"github.com/unitkit/unitkit/pkg/dimension"
	"github.com/unitkit/unitkit/pkg/errors"
)

// DefaultFile is the file name probed in the working directory when no
// explicit path is given.
const DefaultFile = "unitkit.toml"

// File is the decoded shape of a unitkit.toml.
type File struct {
	Prefixes    []PrefixDecl     `toml:"prefixes"`
	Units       []UnitDecl       `toml:"units"`
	Conversions []ConversionDecl `toml:"conversions"`
}

// PrefixDecl declares a metric prefix by symbol and base-ten exponent.
type PrefixDecl struct {
	Symbol   string `toml:"symbol"`
	Exponent int    `toml:"exponent"`
}

// UnitDecl declares a unit symbol with its dimension exponents, a
// composite-name priority, and an optional SI magnitude. When SI is set
// and the dimensions already have a canonical name, the matching
// conversion pair is registered too.
type UnitDecl struct {
	Symbol            string  `toml:"symbol"`
	Length            int     `toml:"length"`
	Mass              int     `toml:"mass"`
	Time              int     `toml:"time"`
	ElectricCurrent   int     `toml:"electric_current"`
	Temperature       int     `toml:"temperature"`
	AmountOfSubstance int     `toml:"amount_of_substance"`
	LuminousIntensity int     `toml:"luminous_intensity"`
	Priority          int     `toml:"priority"`
	SI                float64 `toml:"si"`
}

// Vector returns the declared dimension exponents as a vector.
func (u UnitDecl) Vector() dimension.Vector {
	return dimension.Vector{
		Length:            u.Length,
		Mass:              u.Mass,
		Time:              u.Time,
		ElectricCurrent:   u.ElectricCurrent,
		Temperature:       u.Temperature,
		AmountOfSubstance: u.AmountOfSubstance,
		LuminousIntensity: u.LuminousIntensity,
	}
}

// ConversionDecl declares a scalar conversion factor between two symbols.
type ConversionDecl struct {
	From   string  `toml:"from"`
	To     string  `toml:"to"`
	Factor float64 `toml:"factor"`
}

// Load reads and decodes a unitkit.toml.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML bytes into a File.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	return &f, nil
}

// Apply registers the file's declarations on the engine, prefixes first
// so that declared units and conversions can rely on them. The first
// failing declaration aborts with its position in the message.
func (f *File) Apply(e *convert.Engine) error {
	for i, p := range f.Prefixes {
		if err := e.Prefixes().EnsureRegistered(p.Symbol, p.Exponent); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "prefixes[%d] (%s)", i, p.Symbol)
		}
	}
	for i, u := range f.Units {
		if err := e.RegisterUnit(u.Symbol, u.Vector(), u.Priority, u.SI); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "units[%d] (%s)", i, u.Symbol)
		}
	}
	for i, c := range f.Conversions {
		if err := e.RegisterConversion(c.From, c.To, c.Factor); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "conversions[%d] (%s→%s)", i, c.From, c.To)
		}
	}
	return nil
}

// LoadInto is the common startup path: decode path and apply it to the
// engine. A missing file at the default location is not an error; an
// explicitly named file must exist.
func LoadInto(e *convert.Engine, path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	f, err := Load(path)
	if err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return f.Apply(e)
}
