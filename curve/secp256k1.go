package curve

import (
	"crypto/subtle"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/f3rmion/cyclic/group"
)

var (
	_ group.Selectable[Secp256k1]       = Secp256k1{}
	_ group.ScalarMultiplier[Secp256k1] = Secp256k1{}
)

// Secp256k1 is a point of the secp256k1 group in Jacobian coordinates.
// The zero value is the point at infinity.
//
// Point arithmetic is btcec's non-constant-time implementation. The
// constant-time ladder hides the exponent's control flow, but point
// additions still branch on their inputs.
type Secp256k1 struct {
	p btcec.JacobianPoint
}

// Secp256k1Generator returns the standard base point G.
func Secp256k1Generator() Secp256k1 {
	var (
		one btcec.ModNScalar
		r   Secp256k1
	)
	one.SetInt(1)
	btcec.ScalarBaseMultNonConst(&one, &r.p)
	normalize(&r.p)
	return r
}

// Secp256k1FromPublicKey converts a parsed public key.
func Secp256k1FromPublicKey(pub *btcec.PublicKey) Secp256k1 {
	var r Secp256k1
	pub.AsJacobian(&r.p)
	normalize(&r.p)
	return r
}

// Secp256k1Order returns the order of the group.
func Secp256k1Order() *big.Int {
	return new(big.Int).Set(btcec.S256().N)
}

// PublicKey returns q as a public key. It returns nil for the point at
// infinity, which has no public key encoding.
func (q Secp256k1) PublicKey() *btcec.PublicKey {
	if q.IsNeutralElement() {
		return nil
	}
	a := q.p
	a.ToAffine()
	return btcec.NewPublicKey(&a.X, &a.Y)
}

// NeutralElement returns the point at infinity.
func (Secp256k1) NeutralElement() Secp256k1 { return Secp256k1{} }

// OperateWith returns q + o.
func (q Secp256k1) OperateWith(o Secp256k1) Secp256k1 {
	var r Secp256k1
	btcec.AddNonConst(&q.p, &o.p, &r.p)
	normalize(&r.p)
	return r
}

// Neg returns -q.
func (q Secp256k1) Neg() Secp256k1 {
	r := q
	r.p.Y.Normalize().Negate(1).Normalize()
	return r
}

// normalize brings every coordinate to magnitude 1, as btcec's point
// arithmetic expects.
func normalize(p *btcec.JacobianPoint) {
	p.X.Normalize()
	p.Y.Normalize()
	p.Z.Normalize()
}

func isInfinity(p *btcec.JacobianPoint) bool {
	x, y, z := p.X, p.Y, p.Z
	x.Normalize()
	y.Normalize()
	z.Normalize()
	return (x.IsZero() && y.IsZero()) || z.IsZero()
}

// Equal reports whether q and o represent the same point.
func (q Secp256k1) Equal(o Secp256k1) bool {
	qi, oi := isInfinity(&q.p), isInfinity(&o.p)
	if qi || oi {
		return qi == oi
	}
	a, b := q.p, o.p
	a.ToAffine()
	b.ToAffine()
	return a.X.Equals(&b.X) && a.Y.Equals(&b.Y)
}

// IsNeutralElement reports whether q is the point at infinity.
func (q Secp256k1) IsNeutralElement() bool { return isInfinity(&q.p) }

// ConditionalSelect returns a if c == 0 and b if c == 1. Each coordinate is
// normalized, serialized and selected bytewise with crypto/subtle.
func (Secp256k1) ConditionalSelect(a, b Secp256k1, c int) Secp256k1 {
	var r Secp256k1
	selectField(&r.p.X, &a.p.X, &b.p.X, c)
	selectField(&r.p.Y, &a.p.Y, &b.p.Y, c)
	selectField(&r.p.Z, &a.p.Z, &b.p.Z, c)
	return r
}

func selectField(r, a, b *btcec.FieldVal, c int) {
	x, y := *a, *b
	buf := x.Normalize().Bytes()
	subtle.ConstantTimeCopy(c, buf[:], y.Normalize().Bytes()[:])
	r.SetBytes(buf)
}

// MultiplyBig returns k*q using btcec's endomorphism-accelerated scalar
// multiplication. k is reduced modulo the group order.
func (q Secp256k1) MultiplyBig(k *big.Int) Secp256k1 {
	if isInfinity(&q.p) {
		return Secp256k1{}
	}
	var s btcec.ModNScalar
	s.SetByteSlice(new(big.Int).Mod(k, btcec.S256().N).Bytes())

	var r Secp256k1
	btcec.ScalarMultNonConst(&s, &q.p, &r.p)
	normalize(&r.p)
	return r
}

func (q Secp256k1) String() string {
	if q.IsNeutralElement() {
		return "infinity"
	}
	a := q.p
	a.ToAffine()
	return "(" + a.X.String() + ", " + a.Y.String() + ")"
}
