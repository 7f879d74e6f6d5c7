// Package grouptest provides helpers for testing implementations of the
// group contract.
//
// The Check functions assert the algebraic laws every [group.Element] must
// satisfy and the agreement of the exponentiation algorithms:
//
//	func TestLaws(t *testing.T) {
//		grouptest.CheckLaws(t, a, b, c)
//		grouptest.CheckEquivalence(t, a, 0, 1, 5, 1<<40+3)
//	}
//
// [Zn] is a small reference group, the integers modulo n under addition,
// and [Counting] instruments another group to count primitive calls.
package grouptest
