package unsigned

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// ErrOverflow is returned when a value does not fit in 256 bits.
var ErrOverflow = errors.New("unsigned: value overflows 256 bits")

// U256 is a 256-bit exponent backed by uint256.Int.
type U256 uint256.Int

// NewU256 returns a U256 holding a copy of v.
func NewU256(v *uint256.Int) U256 {
	return U256(*v)
}

// FromBig converts a non-negative big.Int to a U256.
// Returns ErrOverflow if b needs more than 256 bits and an error if b is negative.
func FromBig(b *big.Int) (U256, error) {
	if b.Sign() < 0 {
		return U256{}, fmt.Errorf("unsigned: negative value %s", b)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return U256{}, ErrOverflow
	}
	return U256(*v), nil
}

// ParseU256 parses a decimal string, or a hexadecimal string with a 0x prefix
// and no leading zero digits.
func ParseU256(s string) (U256, error) {
	var (
		v   *uint256.Int
		err error
	)
	if strings.HasPrefix(s, "0x") {
		v, err = uint256.FromHex(s)
	} else {
		v, err = uint256.FromDecimal(s)
	}
	if err != nil {
		return U256{}, fmt.Errorf("unsigned: parse %q: %w", s, err)
	}
	return U256(*v), nil
}

func (x *U256) int() *uint256.Int { return (*uint256.Int)(x) }

// Int returns a copy of x as a uint256.Int.
func (x U256) Int() *uint256.Int {
	v := uint256.Int(x)
	return &v
}

// FromUint64 returns v as a U256.
func (U256) FromUint64(v uint64) U256 { return U256(*uint256.NewInt(v)) }

// And returns x & y.
func (x U256) And(y U256) U256 {
	var z uint256.Int
	z.And(x.int(), y.int())
	return U256(z)
}

// Or returns x | y.
func (x U256) Or(y U256) U256 {
	var z uint256.Int
	z.Or(x.int(), y.int())
	return U256(z)
}

// Lsh returns x << n, truncated to 256 bits.
func (x U256) Lsh(n uint) U256 {
	var z uint256.Int
	z.Lsh(x.int(), n)
	return U256(z)
}

// Rsh returns x >> n.
func (x U256) Rsh(n uint) U256 {
	var z uint256.Int
	z.Rsh(x.int(), n)
	return U256(z)
}

// Equal reports whether x == y.
func (x U256) Equal(y U256) bool { return x.int().Eq(y.int()) }

// Bits returns 256.
func (U256) Bits() int { return 256 }

// Uint64 returns the low 64 bits of x.
func (x U256) Uint64() uint64 { return x.int().Uint64() }

// String returns x in decimal.
func (x U256) String() string { return x.int().ToBig().String() }
