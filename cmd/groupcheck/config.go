package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/f3rmion/cyclic/unsigned"
)

// Config is the layout of a vector file.
type Config struct {
	Log     LogConfig `toml:"log"`
	Vectors []Vector  `toml:"vector"`
}

// LogConfig selects the log level and format.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Vector describes one base element and the exponents to check with it.
//
// The base element is the group generator operated with itself Base times,
// or a multiplier derived from Seed with Hash when Base is empty.
//
// Expect, when set, has one entry per exponent: "neutral" requires the
// result to be the neutral element, and any other value m requires the
// result to equal the base operated with itself m times.
type Vector struct {
	Name      string   `toml:"name"`
	Group     string   `toml:"group"`
	Modulus   uint64   `toml:"modulus"`
	Seed      string   `toml:"seed"`
	Hash      string   `toml:"hash"`
	Base      string   `toml:"base"`
	Exponents []string `toml:"exponents"`
	Expect    []string `toml:"expect"`
}

const expectNeutral = "neutral"

type expectation struct {
	neutral bool
	m       unsigned.U256
}

// resolved is a vector with its numbers parsed.
type resolved struct {
	Vector
	base      unsigned.U256
	exponents []unsigned.U256
	expect    []expectation
}

func loadConfig(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return &cfg, nil
}

func (v Vector) resolve() (*resolved, error) {
	if v.Name == "" {
		return nil, errors.New("vector without name")
	}
	if len(v.Exponents) == 0 {
		return nil, fmt.Errorf("vector %s: no exponents", v.Name)
	}
	if len(v.Expect) != 0 && len(v.Expect) != len(v.Exponents) {
		return nil, fmt.Errorf("vector %s: %d expectations for %d exponents", v.Name, len(v.Expect), len(v.Exponents))
	}

	r := &resolved{Vector: v}
	if v.Base != "" {
		base, err := unsigned.ParseU256(v.Base)
		if err != nil {
			return nil, fmt.Errorf("vector %s: base: %w", v.Name, err)
		}
		r.base = base
	} else {
		h, err := hasherFor(v.Hash)
		if err != nil {
			return nil, fmt.Errorf("vector %s: %w", v.Name, err)
		}
		r.base = deriveExponent(h, "base", v.Seed)
	}

	for _, s := range v.Exponents {
		e, err := unsigned.ParseU256(s)
		if err != nil {
			return nil, fmt.Errorf("vector %s: exponent: %w", v.Name, err)
		}
		r.exponents = append(r.exponents, e)
	}

	for _, s := range v.Expect {
		if s == expectNeutral {
			r.expect = append(r.expect, expectation{neutral: true})
			continue
		}
		m, err := unsigned.ParseU256(s)
		if err != nil {
			return nil, fmt.Errorf("vector %s: expect: %w", v.Name, err)
		}
		r.expect = append(r.expect, expectation{m: m})
	}
	return r, nil
}
