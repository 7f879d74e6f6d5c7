package grouptest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/f3rmion/cyclic/group"
	"github.com/f3rmion/cyclic/unsigned"
)

// CheckLaws runs CheckIdentity, CheckInverse, CheckAssociativity and
// CheckExponentiation (exponents 0 through 16) over elems.
func CheckLaws[E group.Group[E]](t testing.TB, elems ...E) {
	t.Helper()
	CheckIdentity(t, elems...)
	CheckInverse(t, elems...)
	CheckAssociativity(t, elems...)
	for _, g := range elems {
		CheckExponentiation(t, g, 16)
	}
}

// CheckIdentity checks that the neutral element is a two-sided identity for
// every element and that IsNeutralElement agrees with equality.
func CheckIdentity[E group.Element[E]](t testing.TB, elems ...E) {
	t.Helper()
	for i, g := range elems {
		e := g.NeutralElement()
		assert.True(t, e.OperateWith(g).Equal(g), "e*g != g for element %d (%v)", i, g)
		assert.True(t, g.OperateWith(e).Equal(g), "g*e != g for element %d (%v)", i, g)
		assert.True(t, group.IsNeutralElement(e), "neutral element %d not reported neutral", i)
		assert.Equal(t, g.Equal(e), group.IsNeutralElement(g), "IsNeutralElement disagrees with Equal for element %d", i)
	}
}

// CheckInverse checks that g operated with g.Neg() is neutral for every element.
func CheckInverse[E group.Element[E]](t testing.TB, elems ...E) {
	t.Helper()
	for i, g := range elems {
		assert.True(t, group.IsNeutralElement(g.OperateWith(g.Neg())), "g*g^-1 != e for element %d (%v)", i, g)
		assert.True(t, group.IsNeutralElement(g.Neg().OperateWith(g)), "g^-1*g != e for element %d (%v)", i, g)
	}
}

// CheckAssociativity checks (a*b)*c == a*(b*c) for every triple of elems.
func CheckAssociativity[E group.Element[E]](t testing.TB, elems ...E) {
	t.Helper()
	for i, a := range elems {
		for j, b := range elems {
			for k, c := range elems {
				l := a.OperateWith(b).OperateWith(c)
				r := a.OperateWith(b.OperateWith(c))
				assert.True(t, l.Equal(r), "associativity fails for elements (%d, %d, %d)", i, j, k)
			}
		}
	}
}

// CheckExponentiation checks OperateWithSelf and DoubleAndAdd against
// repeated application of OperateWith for every exponent in [0, max].
func CheckExponentiation[E group.Group[E]](t testing.TB, g E, max uint64) {
	t.Helper()
	want := g.NeutralElement()
	for n := uint64(0); n <= max; n++ {
		got := group.OperateWithSelf(g, unsigned.U64(n))
		assert.True(t, got.Equal(want), "OperateWithSelf(%v, %d) = %v, want %v", g, n, got, want)

		got = group.DoubleAndAdd(g, unsigned.U64(n))
		assert.True(t, got.Equal(want), "DoubleAndAdd(%v, %d) = %v, want %v", g, n, got, want)

		want = want.OperateWith(g)
	}
}

// CheckEquivalence checks that DoubleAndAdd, MontgomeryLadder and
// OperateWithSelf agree for g and every exponent at every exponent width
// that can hold it.
func CheckEquivalence[E group.Selectable[E]](t testing.TB, g E, exponents ...uint64) {
	t.Helper()
	for _, n := range exponents {
		if n <= 0xff {
			equivalent(t, g, unsigned.U8(n))
		}
		if n <= 0xffff {
			equivalent(t, g, unsigned.U16(n))
		}
		if n <= 0xffffffff {
			equivalent(t, g, unsigned.U32(n))
		}
		equivalent(t, g, unsigned.U64(n))
		equivalent(t, g, unsigned.NewU128(0, n))
		equivalent(t, g, unsigned.U256{}.FromUint64(n))
	}
}

// CheckEquivalenceWide is CheckEquivalence for exponents wider than 64 bits.
func CheckEquivalenceWide[E group.Selectable[E]](t testing.TB, g E, exponents ...unsigned.U256) {
	t.Helper()
	for _, n := range exponents {
		equivalent(t, g, n)
	}
}

func equivalent[E group.Selectable[E], T unsigned.Integer[T]](t testing.TB, g E, n T) {
	t.Helper()
	vt := group.DoubleAndAdd(g, n)
	ct := group.MontgomeryLadder(g, n)
	assert.True(t, vt.Equal(ct), "%d-bit exponent %v: double-and-add %v, ladder %v", n.Bits(), unsigned.BigInt(n), vt, ct)

	def := group.OperateWithSelf(g, n)
	assert.True(t, def.Equal(vt), "%d-bit exponent %v: OperateWithSelf %v, double-and-add %v", n.Bits(), unsigned.BigInt(n), def, vt)
}
