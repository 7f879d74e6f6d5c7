package unsigned

// U128 is a 128-bit exponent stored as two 64-bit limbs.
type U128 struct {
	Hi, Lo uint64
}

// NewU128 returns the 128-bit value hi*2^64 + lo.
func NewU128(hi, lo uint64) U128 {
	return U128{Hi: hi, Lo: lo}
}

// FromUint64 returns v as the low limb.
func (U128) FromUint64(v uint64) U128 { return U128{Lo: v} }

// And returns x & y.
func (x U128) And(y U128) U128 { return U128{Hi: x.Hi & y.Hi, Lo: x.Lo & y.Lo} }

// Or returns x | y.
func (x U128) Or(y U128) U128 { return U128{Hi: x.Hi | y.Hi, Lo: x.Lo | y.Lo} }

// Lsh returns x << n. It relies on Go shifts of n >= 64 yielding zero,
// including the wrapped counts n-64 and 64-n.
func (x U128) Lsh(n uint) U128 {
	return U128{
		Hi: x.Hi<<n | x.Lo<<(n-64) | x.Lo>>(64-n),
		Lo: x.Lo << n,
	}
}

// Rsh returns x >> n.
func (x U128) Rsh(n uint) U128 {
	return U128{
		Hi: x.Hi >> n,
		Lo: x.Lo>>n | x.Hi>>(n-64) | x.Hi<<(64-n),
	}
}

// Equal reports whether x == y.
func (x U128) Equal(y U128) bool { return x == y }

// Bits returns 128.
func (U128) Bits() int { return 128 }

// Uint64 returns the low limb.
func (x U128) Uint64() uint64 { return x.Lo }
