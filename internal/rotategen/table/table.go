// Package table computes successor and predecessor transitions over the
// variants of an enum. The declaration order of the variants defines the
// sequence order; the policy decides what happens at its boundaries.
package table

import (
	"fmt"
	"go/types"
	"iter"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Policy selects how transitions behave at the ends of the variant sequence.
type Policy int

const (
	// PolicyRotate wraps around at both ends. Next and Prev are total.
	PolicyRotate Policy = iota

	// PolicyShift exhausts at both ends. Next of the last variant and Prev of
	// the first variant are absent.
	PolicyShift

	// PolicyIterate traverses forward only, from a starting variant to the
	// last declared one. Boundary transitions are absent like PolicyShift.
	PolicyIterate
)

func (p Policy) String() string {
	switch p {
	case PolicyRotate:
		return "rotate"
	case PolicyShift:
		return "shift"
	case PolicyIterate:
		return "iter"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy parses a policy name as written in a rotategen directive or
// passed to the -policy flag.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "rotate":
		return PolicyRotate, nil
	case "shift":
		return PolicyShift, nil
	case "iter":
		return PolicyIterate, nil
	}
	return 0, fmt.Errorf("unknown rotategen policy %q; want rotate, shift, or iter", name)
}

// Variant is one named case of an enum.
type Variant struct {
	Name string

	// Con is the constant declaring the variant.
	Con *types.Const
}

func (v Variant) Object() types.Object { return v.Con }

// Sequence is the immutable, declaration-ordered variant list of one enum.
type Sequence struct {
	variants []Variant
}

// NewSequence creates a sequence from constants in declaration order.
func NewSequence(consts []*types.Const) Sequence {
	variants := make([]Variant, len(consts))
	for i, con := range consts {
		variants[i] = Variant{Name: con.Name(), Con: con}
	}
	return Sequence{variants: variants}
}

func (s Sequence) Len() int { return len(s.variants) }

// At returns the i-th variant in declaration order.
func (s Sequence) At(i int) Variant { return s.variants[i] }

// Transition holds the neighbors of a variant. A nil neighbor means the
// transition is absent under the active policy.
type Transition struct {
	Next *Variant
	Prev *Variant
}

// Table maps every variant of a sequence to its transition under one policy.
type Table struct {
	policy Policy
	seq    Sequence
	m      *linkedhashmap.Map
}

// Build computes the transition table for the sequence under the policy.
//
// For PolicyRotate both neighbors are always present; a single variant maps to
// itself in both directions. For PolicyShift and PolicyIterate the last
// variant has no Next and the first has no Prev; a single variant has neither.
func Build(seq Sequence, policy Policy) Table {
	n := seq.Len()
	m := linkedhashmap.New()

	for i := range n {
		v := seq.At(i)

		var tr Transition
		switch policy {
		case PolicyRotate:
			next := seq.At((i + 1) % n)
			prev := seq.At((i - 1 + n) % n)
			tr = Transition{Next: &next, Prev: &prev}

		case PolicyShift, PolicyIterate:
			if i < n-1 {
				next := seq.At(i + 1)
				tr.Next = &next
			}
			if i > 0 {
				prev := seq.At(i - 1)
				tr.Prev = &prev
			}

		default:
			panic(fmt.Sprintf("unknown policy %d", int(policy)))
		}

		m.Put(v.Name, tr)
	}

	t := Table{policy: policy, seq: seq, m: m}

	// Every variant must appear exactly once as a key. A miss here is a bug in
	// the construction above, never a user error.
	if m.Size() != n {
		panic(fmt.Sprintf("transition table has %d entries for %d variants", m.Size(), n))
	}
	for i := range n {
		if _, ok := m.Get(seq.At(i).Name); !ok {
			panic(fmt.Sprintf("transition table misses variant %s", seq.At(i).Name))
		}
	}

	return t
}

func (t Table) Policy() Policy { return t.policy }

func (t Table) Len() int { return t.seq.Len() }

// First returns the first declared variant. The sequence must not be empty.
func (t Table) First() Variant { return t.seq.At(0) }

// Lookup returns the transition of the named variant.
func (t Table) Lookup(name string) (Transition, bool) {
	v, ok := t.m.Get(name)
	if !ok {
		return Transition{}, false
	}
	return v.(Transition), true
}

// All iterates over variants and their transitions in declaration order.
func (t Table) All() iter.Seq2[Variant, Transition] {
	return func(yield func(Variant, Transition) bool) {
		for i := range t.seq.Len() {
			v := t.seq.At(i)
			tr, _ := t.Lookup(v.Name)
			if !yield(v, tr) {
				return
			}
		}
	}
}
