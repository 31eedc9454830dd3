package natded

// Deduction is a hypothetical sub-proof: a capability that turns evidence
// for A into evidence for B, representing the boxed fragment
//
//	... A   assumption
//	...
//	... B
//
// of a natural-deduction proof. A Deduction is supplied as a closure at
// the point a larger proof needs "assume A, derive B" reasoning, either
// as the payload of an Implication or as a branch given to Cases.
// Closures may capture outer premises; captured evidence is immutable,
// so capture by reference is safe.
//
// The type system does not enforce purity. For the proof reading to be
// sound, a Deduction must be a pure, total function of its argument:
// it terminates, and it observes nothing beyond the evidence it is given.
type Deduction[A, B any] func(A) B

// Activate runs the sub-proof against concrete evidence for A,
// producing evidence for B.
func (d Deduction[A, B]) Activate(a A) B {
	return d(a)
}
