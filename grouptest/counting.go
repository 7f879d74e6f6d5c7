package grouptest

import (
	"github.com/f3rmion/cyclic/group"
)

// Counts records the primitive calls made through Counting elements.
type Counts struct {
	Operations int
	Selects    int
}

// Counting wraps a selectable element and records every OperateWith and
// ConditionalSelect call into a shared Counts. Equality ignores the counter.
type Counting[E group.Selectable[E]] struct {
	Elem   E
	counts *Counts
}

// Count wraps e so that operations on it and on every element derived from
// it are recorded in c.
func Count[E group.Selectable[E]](e E, c *Counts) Counting[E] {
	return Counting[E]{Elem: e, counts: c}
}

// NeutralElement returns the wrapped neutral element, sharing the counter.
func (x Counting[E]) NeutralElement() Counting[E] {
	return Counting[E]{Elem: x.Elem.NeutralElement(), counts: x.counts}
}

// OperateWith counts one operation and operates the wrapped elements.
func (x Counting[E]) OperateWith(o Counting[E]) Counting[E] {
	x.counts.Operations++
	return Counting[E]{Elem: x.Elem.OperateWith(o.Elem), counts: x.counts}
}

// Neg returns the wrapped inverse. It is not counted.
func (x Counting[E]) Neg() Counting[E] {
	return Counting[E]{Elem: x.Elem.Neg(), counts: x.counts}
}

// Equal compares the wrapped elements.
func (x Counting[E]) Equal(o Counting[E]) bool { return x.Elem.Equal(o.Elem) }

// ConditionalSelect counts one select and selects between the wrapped elements.
func (x Counting[E]) ConditionalSelect(a, b Counting[E], c int) Counting[E] {
	x.counts.Selects++
	return Counting[E]{Elem: x.Elem.ConditionalSelect(a.Elem, b.Elem, c), counts: x.counts}
}
