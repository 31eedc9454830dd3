package natded

// Conjunction holds evidence for two propositions at once. It is the
// product form of evidence: a value of Conjunction[A, B] witnesses A ^ B.
// Both components are fixed at construction and never reassigned.
type Conjunction[A, B any] struct {
	a A
	b B
}

// Conjoin is the and-introduction rule: given evidence for A and
// evidence for B, it produces evidence for A ^ B.
//
//	A   B
//	----- (^i)
//	A ^ B
func Conjoin[A, B any](a A, b B) Conjunction[A, B] {
	return Conjunction[A, B]{a: a, b: b}
}

// First is the and-elimination rule ^e1. It projects the A evidence
// and cannot fail: any well-typed Conjunction carries both components.
//
//	A ^ B
//	----- (^e1)
//	  A
func (c Conjunction[A, B]) First() A {
	return c.a
}

// Second is the and-elimination rule ^e2, projecting the B evidence.
//
//	A ^ B
//	----- (^e2)
//	  B
func (c Conjunction[A, B]) Second() B {
	return c.b
}
