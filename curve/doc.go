// Package curve provides elliptic-curve point groups as implementations of
// [group.Selectable].
//
// Three curves are available, each wrapping an existing implementation of
// the curve arithmetic:
//
//   - [BabyJubjub]: the twisted Edwards curve defined over the BN254 scalar
//     field, from gnark-crypto
//   - [G1]: the BN254 G1 group in Jacobian coordinates, from gnark-crypto
//   - [Secp256k1]: the secp256k1 group in Jacobian coordinates, from btcec
//
// # Curve Parameters
//
// Baby Jubjub is defined by the equation:
//
//	a*x^2 + y^2 = 1 + d*x^2*y^2
//
// where a = 168700 and d = 168696 over the BN254 scalar field. Its
// prime-order subgroup has size:
//
//	2736030358979909402780800718157159386076813972158567259200215660948447373041
//
// # Usage
//
//	g := curve.BabyJubjubGenerator()
//	p := group.OperateWithSelf(g, k) // k is any unsigned.Integer
//
// Every point type also implements [group.ScalarMultiplier], so default
// builds delegate OperateWithSelf to the library's own scalar
// multiplication. The result is the same point DoubleAndAdd computes.
//
// # Security
//
// ConditionalSelect is a masked select for every type. The Secp256k1 point
// additions are btcec's variable-time formulas, and gnark-crypto's Jacobian
// addition branches on the point at infinity; the Montgomery ladder over these
// types is therefore not constant time end to end.
package curve
