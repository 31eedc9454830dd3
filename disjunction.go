package natded

// Disjunction holds evidence for exactly one of two propositions,
// tagged by which: a value of Disjunction[A, B] witnesses A v B.
//
// The interface is sealed. The only implementations are the two variants
// produced by Left and Right, so the tag is immutable after construction
// and the payload of the inactive side is structurally absent. There is
// no accessor for either payload; the sole consumer is Cases, which makes
// reading the wrong side unrepresentable rather than a guarded runtime
// error.
type Disjunction[A, B any] interface {
	disjunction(A, B)
}

type leftEvidence[A, B any] struct {
	a A
}

func (leftEvidence[A, B]) disjunction(A, B) {}

type rightEvidence[A, B any] struct {
	b B
}

func (rightEvidence[A, B]) disjunction(A, B) {}

// Left is the or-introduction rule vi1: evidence for A alone suffices
// for A v B, tagged so that later case analysis knows the left side holds.
//
//	  A
//	----- (vi1)
//	A v B
func Left[A, B any](a A) Disjunction[A, B] {
	return leftEvidence[A, B]{a: a}
}

// Right is the or-introduction rule vi2, the mirror of Left.
//
//	  B
//	----- (vi2)
//	A v B
func Right[A, B any](b B) Disjunction[A, B] {
	return rightEvidence[A, B]{b: b}
}

// Cases is the or-elimination rule: case analysis over a Disjunction.
// Exactly one of onLeft and onRight is activated, exactly once, with the
// payload of the active variant; the other branch is never invoked.
//
//	        ... A assume   ... B assume
//	A v B   ... C          ... C
//	---------------------------------- (ve)
//	               C
//
// Cases is a package-level function because the result proposition C is
// independent of the Disjunction's own parameters, and Go methods cannot
// introduce type parameters.
func Cases[A, B, C any](d Disjunction[A, B], onLeft Deduction[A, C], onRight Deduction[B, C]) C {
	switch v := d.(type) {
	case leftEvidence[A, B]:
		return onLeft.Activate(v.a)
	case rightEvidence[A, B]:
		return onRight.Activate(v.b)
	}
	// Unreachable for any value built with Left or Right; only a nil
	// interface, which no constructor returns, can reach here.
	panic("natded: Disjunction must be constructed with Left or Right")
}
