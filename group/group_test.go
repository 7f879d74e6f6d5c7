package group_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/cyclic/group"
	"github.com/f3rmion/cyclic/grouptest"
	"github.com/f3rmion/cyclic/unsigned"
)

func TestCyclicGroupMod7(t *testing.T) {
	three := grouptest.NewZn(3, 7)

	t.Run("OperateWithSelf", func(t *testing.T) {
		// 3+3+3+3+3 = 15 = 1 (mod 7)
		assert.Equal(t, uint64(1), group.OperateWithSelf(three, unsigned.U64(5)).Value())
		assert.Equal(t, uint64(1), group.DoubleAndAdd(three, unsigned.U8(5)).Value())
		assert.Equal(t, uint64(1), group.MontgomeryLadder(three, unsigned.U32(5)).Value())
	})

	t.Run("ZeroExponent", func(t *testing.T) {
		assert.True(t, group.OperateWithSelf(three, unsigned.U64(0)).Equal(three.NeutralElement()))
		assert.True(t, group.DoubleAndAdd(three, unsigned.U128{}).Equal(three.NeutralElement()))
		assert.True(t, group.MontgomeryLadder(three, unsigned.U256{}).Equal(three.NeutralElement()))
	})

	t.Run("Neg", func(t *testing.T) {
		assert.Equal(t, uint64(4), three.Neg().Value())
		assert.True(t, group.IsNeutralElement(three.OperateWith(three.Neg())))
	})

	t.Run("Sub", func(t *testing.T) {
		assert.Equal(t, uint64(5), group.Sub(three, grouptest.NewZn(5, 7)).Value())
	})

	t.Run("RepeatedOperation", func(t *testing.T) {
		want := three.OperateWith(three).OperateWith(three)
		assert.True(t, group.OperateWithSelf(three, unsigned.U16(3)).Equal(want))
	})
}

func TestConditionalSwap(t *testing.T) {
	a, b := grouptest.NewZn(1, 13), grouptest.NewZn(8, 13)

	x, y := a, b
	group.ConditionalSwap(&x, &y, 0)
	assert.Equal(t, a, x)
	assert.Equal(t, b, y)

	group.ConditionalSwap(&x, &y, 1)
	assert.Equal(t, b, x)
	assert.Equal(t, a, y)
}

func TestLadderFixedIterations(t *testing.T) {
	g := grouptest.NewZn(5, 101)

	t.Run("U8", func(t *testing.T) {
		for _, e := range []unsigned.U8{0, 1, 2, 0x80, 0xff} {
			ladderCounts(t, g, e)
		}
	})

	t.Run("U64", func(t *testing.T) {
		for _, e := range []unsigned.U64{0, 1, 1 << 63, ^unsigned.U64(0)} {
			ladderCounts(t, g, e)
		}
	})

	t.Run("U128", func(t *testing.T) {
		for _, e := range []unsigned.U128{{}, unsigned.NewU128(0, 1), unsigned.NewU128(1<<63, 0)} {
			ladderCounts(t, g, e)
		}
	})

	t.Run("U256", func(t *testing.T) {
		var zero unsigned.U256
		for _, e := range []unsigned.U256{zero, zero.FromUint64(1), zero.FromUint64(1).Lsh(255)} {
			ladderCounts(t, g, e)
		}
	})
}

// ladderCounts checks the ladder makes four selects and two group
// operations per bit of the declared width.
func ladderCounts[T unsigned.Integer[T]](t *testing.T, g grouptest.Zn, e T) {
	t.Helper()
	var c grouptest.Counts
	got := group.MontgomeryLadder(grouptest.Count(g, &c), e)

	w := unsigned.Width[T]()
	assert.Equal(t, 4*w, c.Selects, "selects for %d-bit exponent %v", w, unsigned.BigInt(e))
	assert.Equal(t, 2*w, c.Operations, "operations for %d-bit exponent %v", w, unsigned.BigInt(e))
	assert.True(t, got.Elem.Equal(group.DoubleAndAdd(g, e)))
}

func TestDoubleAndAddStopsEarly(t *testing.T) {
	g := grouptest.NewZn(5, 101)

	var c grouptest.Counts
	group.DoubleAndAdd(grouptest.Count(g, &c), unsigned.U256{}.FromUint64(1))
	// One addition and one doubling for a single-bit exponent.
	assert.Equal(t, 2, c.Operations)
	assert.Equal(t, 0, c.Selects)

	c = grouptest.Counts{}
	group.DoubleAndAdd(grouptest.Count(g, &c), unsigned.U64(0))
	assert.Equal(t, 0, c.Operations)
}

func TestCrossAlgorithmEquivalence(t *testing.T) {
	for _, n := range []uint64{2, 7, 97, 65521, 1<<61 - 1} {
		for _, v := range []uint64{0, 1, 3, n - 1} {
			g := grouptest.NewZn(v, n)
			grouptest.CheckEquivalence(t, g, 0, 1, 2, 3, 5, 127, 128, 255, 256, 1<<31, 1<<40+7, ^uint64(0))
		}
	}

	var zero unsigned.U256
	wide := []unsigned.U256{
		zero.FromUint64(1).Lsh(255),
		zero.FromUint64(0xdeadbeef).Lsh(100).Or(zero.FromUint64(17)),
		zero.FromUint64(^uint64(0)).Lsh(192).Or(zero.FromUint64(^uint64(0))),
	}
	grouptest.CheckEquivalenceWide(t, grouptest.NewZn(42, 1000003), wide...)
}

func TestExponentiator(t *testing.T) {
	g := grouptest.NewZn(2, 19)
	elems := []grouptest.Zn{g, g.Neg(), g.NeutralElement()}
	exps := []unsigned.U32{3, 10, 1 << 20}

	vt := group.VariableTime[grouptest.Zn, unsigned.U32]().Apply(elems, exps)
	ct := group.ConstantTime[grouptest.Zn, unsigned.U32]().Apply(elems, exps)
	require.Len(t, vt, 3)
	for i := range vt {
		assert.True(t, vt[i].Equal(ct[i]), "index %d", i)
	}
	assert.Equal(t, uint64(6), vt[0].Value())
	assert.Equal(t, uint64(18), vt[1].Value()) // -2*10 = -20 = 18 (mod 19)
	assert.True(t, group.IsNeutralElement(vt[2]))

	assert.Panics(t, func() {
		group.VariableTime[grouptest.Zn, unsigned.U32]().Apply(elems, exps[:1])
	})
}

// plain is Z/nZ without the IsNeutralElement override.
type plain struct{ z grouptest.Zn }

func (p plain) NeutralElement() plain     { return plain{p.z.NeutralElement()} }
func (p plain) OperateWith(o plain) plain { return plain{p.z.OperateWith(o.z)} }
func (p plain) Neg() plain                { return plain{p.z.Neg()} }
func (p plain) Equal(o plain) bool        { return p.z.Equal(o.z) }

func TestIsNeutralElementDefault(t *testing.T) {
	assert.True(t, group.IsNeutralElement(plain{grouptest.NewZn(0, 5)}))
	assert.False(t, group.IsNeutralElement(plain{grouptest.NewZn(4, 5)}))
}

// shortcut is Z/nZ with a ScalarMultiplier override that records its use.
type shortcut struct {
	z    grouptest.Zn
	used *bool
}

func (s shortcut) NeutralElement() shortcut { return shortcut{s.z.NeutralElement(), s.used} }
func (s shortcut) OperateWith(o shortcut) shortcut {
	return shortcut{s.z.OperateWith(o.z), s.used}
}
func (s shortcut) Neg() shortcut         { return shortcut{s.z.Neg(), s.used} }
func (s shortcut) Equal(o shortcut) bool { return s.z.Equal(o.z) }
func (s shortcut) ConditionalSelect(a, b shortcut, c int) shortcut {
	return shortcut{s.z.ConditionalSelect(a.z, b.z, c), s.used}
}

func (s shortcut) MultiplyBig(k *big.Int) shortcut {
	*s.used = true
	n := new(big.Int).SetUint64(s.z.Modulus())
	v := new(big.Int).SetUint64(s.z.Value())
	v.Mul(v, k).Mod(v, n)
	return shortcut{grouptest.NewZn(v.Uint64(), s.z.Modulus()), s.used}
}

func TestScalarMultiplierOverride(t *testing.T) {
	var used bool
	g := shortcut{grouptest.NewZn(3, 7), &used}

	got := group.OperateWithSelf(g, unsigned.U64(5))
	assert.Equal(t, uint64(1), got.z.Value())

	switch {
	case group.Algorithm == "montgomery-ladder":
		assert.False(t, used, "constant-time builds must ignore overrides")
	case group.Compatible:
		assert.False(t, used, "compatibility builds must ignore overrides")
	default:
		assert.True(t, used, "default build should use the override")
	}

	// The explicit algorithms never use the override.
	used = false
	group.DoubleAndAdd(g, unsigned.U64(5))
	group.MontgomeryLadder(g, unsigned.U64(5))
	assert.False(t, used)
}

func TestAlgorithm(t *testing.T) {
	assert.Contains(t, []string{"double-and-add", "montgomery-ladder"}, group.Algorithm)
}

func BenchmarkDoubleAndAdd(b *testing.B) {
	g := grouptest.NewZn(3, 1<<61-1)
	e := unsigned.U64(0x9e3779b97f4a7c15)
	for i := 0; i < b.N; i++ {
		group.DoubleAndAdd(g, e)
	}
}

func BenchmarkMontgomeryLadder(b *testing.B) {
	g := grouptest.NewZn(3, 1<<61-1)
	e := unsigned.U64(0x9e3779b97f4a7c15)
	for i := 0; i < b.N; i++ {
		group.MontgomeryLadder(g, e)
	}
}
