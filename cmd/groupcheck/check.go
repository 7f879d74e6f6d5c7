package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/f3rmion/cyclic/curve"
	"github.com/f3rmion/cyclic/field"
	"github.com/f3rmion/cyclic/group"
	"github.com/f3rmion/cyclic/grouptest"
	"github.com/f3rmion/cyclic/unsigned"
)

var (
	// ErrUnknownGroup is returned for a vector naming an unsupported group.
	ErrUnknownGroup = errors.New("unknown group")
	// ErrMismatch is returned when two computations of the same value disagree.
	ErrMismatch = errors.New("mismatch")
)

// repeatLimit bounds the exponents also checked by repeated operation.
const repeatLimit = 64

type checker func(r *resolved) (int, error)

// checkers maps group names to their vector checkers.
var checkers = map[string]checker{
	"zn": func(r *resolved) (int, error) {
		if r.Modulus == 0 {
			return 0, fmt.Errorf("vector %s: zn requires a non-zero modulus", r.Name)
		}
		return check(grouptest.NewZn(1, r.Modulus), r)
	},
	"fr-add": func(r *resolved) (int, error) {
		return check(field.NewAdditive(1), r)
	},
	"fr-mul": func(r *resolved) (int, error) {
		g, err := field.MultiplicativeFromUint64(5)
		if err != nil {
			return 0, err
		}
		return check(g, r)
	},
	"babyjubjub": func(r *resolved) (int, error) {
		return check(curve.BabyJubjubGenerator(), r)
	},
	"bn254-g1": func(r *resolved) (int, error) {
		return check(curve.G1Generator(), r)
	},
	"secp256k1": func(r *resolved) (int, error) {
		return check(curve.Secp256k1Generator(), r)
	},
}

// groupNames returns the supported group names in order.
func groupNames() []string {
	names := make([]string, 0, len(checkers))
	for name := range checkers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// checkVector runs the checks of one vector and returns the number of
// exponents checked.
func checkVector(v Vector) (int, error) {
	c, ok := checkers[v.Group]
	if !ok {
		return 0, fmt.Errorf("vector %s: %w %q", v.Name, ErrUnknownGroup, v.Group)
	}
	r, err := v.resolve()
	if err != nil {
		return 0, err
	}
	return c(r)
}

// check derives the base element from gen and compares every way of
// computing each exponentiation.
func check[E group.Selectable[E]](gen E, r *resolved) (int, error) {
	base := group.DoubleAndAdd(gen, r.base)

	if !group.IsNeutralElement(base.OperateWith(base.Neg())) {
		return 0, fmt.Errorf("vector %s: %w: base operated with its inverse is not neutral", r.Name, ErrMismatch)
	}

	for i, e := range r.exponents {
		vt := group.DoubleAndAdd(base, e)
		if ct := group.MontgomeryLadder(base, e); !ct.Equal(vt) {
			return i, fmt.Errorf("vector %s exponent %d: %w: ladder %v, double-and-add %v", r.Name, i, ErrMismatch, ct, vt)
		}
		if def := group.OperateWithSelf(base, e); !def.Equal(vt) {
			return i, fmt.Errorf("vector %s exponent %d: %w: %s %v, double-and-add %v", r.Name, i, ErrMismatch, group.Algorithm, def, vt)
		}

		if b := unsigned.BigInt(e); b.IsUint64() && b.Uint64() <= repeatLimit {
			acc := base.NeutralElement()
			for n := uint64(0); n < b.Uint64(); n++ {
				acc = acc.OperateWith(base)
			}
			if !acc.Equal(vt) {
				return i, fmt.Errorf("vector %s exponent %d: %w: repeated operation %v, double-and-add %v", r.Name, i, ErrMismatch, acc, vt)
			}
		}

		if len(r.expect) == 0 {
			continue
		}
		want := r.expect[i]
		switch {
		case want.neutral && !group.IsNeutralElement(vt):
			return i, fmt.Errorf("vector %s exponent %d: %w: got %v, want neutral element", r.Name, i, ErrMismatch, vt)
		case !want.neutral:
			if w := group.DoubleAndAdd(base, want.m); !w.Equal(vt) {
				return i, fmt.Errorf("vector %s exponent %d: %w: got %v, want base^%v = %v", r.Name, i, ErrMismatch, vt, want.m, w)
			}
		}
	}
	return len(r.exponents), nil
}
