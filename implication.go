package natded

// Implication is function-shaped evidence: a value of Implication[A, B]
// witnesses A -> B by wrapping a single Deduction from A-evidence to
// B-evidence. The wrapped deduction is fixed for the lifetime of the
// value.
//
// Implications nest freely: an Implication is itself evidence and may
// instantiate any combinator parameter, including another Implication's.
type Implication[A, B any] struct {
	d Deduction[A, B]
}

// Discharge is the implication-introduction rule ->i. Closing a
// hypothetical sub-proof "assume A, derive B" discharges the assumption
// and yields standalone evidence for A -> B.
//
//	... A assume
//	... B
//	------------ (->i)
//	   A -> B
func Discharge[A, B any](d Deduction[A, B]) Implication[A, B] {
	return Implication[A, B]{d: d}
}

// Eliminate is the implication-elimination rule ->e (modus ponens):
// given evidence for A, the wrapped deduction is activated exactly once
// to produce evidence for B.
//
//	A -> B   A
//	---------- (->e)
//	    B
func (i Implication[A, B]) Eliminate(a A) B {
	return i.d.Activate(a)
}
