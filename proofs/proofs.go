// Package proofs contains derived theorems of the natded combinators:
// each function is a complete natural-deduction derivation, generic over
// its proposition types and built from introduction and elimination
// rules alone. Compiling this package type-checks every derivation.
package proofs

import (
	"github.com/gnolang/natded"
)

// CommuteConjunction proves p ^ q |- q ^ p by projecting both
// components and pairing them in the opposite order.
func CommuteConjunction[P, Q any](pANDq natded.Conjunction[P, Q]) natded.Conjunction[Q, P] {
	p := pANDq.First()
	q := pANDq.Second()
	return natded.Conjoin(q, p)
}

// EmbedDisjunct proves q |- (p v q) v r with two or-introductions.
func EmbedDisjunct[P, Q, R any](q Q) natded.Disjunction[natded.Disjunction[P, Q], R] {
	pORq := natded.Right[P](q)
	return natded.Left[natded.Disjunction[P, Q], R](pORq)
}

// ChainThroughPair proves (p ^ q) -> r, p -> q, p |- r: modus ponens
// yields q, pairing yields p ^ q, modus ponens again yields r.
func ChainThroughPair[P, Q, R any](
	pqIMPLYr natded.Implication[natded.Conjunction[P, Q], R],
	pIMPLYq natded.Implication[P, Q],
	p P,
) R {
	q := pIMPLYq.Eliminate(p)
	pANDq := natded.Conjoin(p, q)
	return pqIMPLYr.Eliminate(pANDq)
}

// ApplyToInjected proves (p v q) -> r, q |- r by injecting q into the
// disjunction before eliminating the implication.
func ApplyToInjected[P, Q, R any](pqIMPLYr natded.Implication[natded.Disjunction[P, Q], R], q Q) R {
	return pqIMPLYr.Eliminate(natded.Right[P](q))
}

// BindConjunct proves p, (q ^ p) -> r |- q -> r. The sub-proof assumes
// q, pairs it with the captured premise p, and applies the implication;
// discharging the assumption leaves q -> r.
func BindConjunct[P, Q, R any](p P, qpIMPLYr natded.Implication[natded.Conjunction[Q, P], R]) natded.Implication[Q, R] {
	return natded.Discharge(natded.Deduction[Q, R](func(q Q) R {
		qANDp := natded.Conjoin(q, p)
		return qpIMPLYr.Eliminate(qANDp)
	}))
}

// MergeBranches proves p -> r, q -> r |- (p v q) -> r: assuming p v q,
// case analysis applies whichever premise matches the active variant.
func MergeBranches[P, Q, R any](
	pIMPLYr natded.Implication[P, R],
	qIMPLYr natded.Implication[Q, R],
) natded.Implication[natded.Disjunction[P, Q], R] {
	return natded.Discharge(natded.Deduction[natded.Disjunction[P, Q], R](func(pORq natded.Disjunction[P, Q]) R {
		return natded.Cases(pORq,
			natded.Deduction[P, R](pIMPLYr.Eliminate),
			natded.Deduction[Q, R](qIMPLYr.Eliminate),
		)
	}))
}

// PairUnderAssumption proves q |- p -> (q ^ p): the sub-proof assumes p
// and pairs the captured premise q with it.
func PairUnderAssumption[P, Q any](q Q) natded.Implication[P, natded.Conjunction[Q, P]] {
	return natded.Discharge(natded.Deduction[P, natded.Conjunction[Q, P]](func(p P) natded.Conjunction[Q, P] {
		return natded.Conjoin(q, p)
	}))
}

// DistributeImplication proves p -> (q -> r) |- (p -> q) -> (p -> r),
// the self-distribution law of implication. Two nested sub-proofs assume
// p -> q and then p; three modus ponens steps derive r.
func DistributeImplication[P, Q, R any](
	pIMPLYqr natded.Implication[P, natded.Implication[Q, R]],
) natded.Implication[natded.Implication[P, Q], natded.Implication[P, R]] {
	return natded.Discharge(natded.Deduction[natded.Implication[P, Q], natded.Implication[P, R]](
		func(pIMPLYq natded.Implication[P, Q]) natded.Implication[P, R] {
			return natded.Discharge(natded.Deduction[P, R](func(p P) R {
				qIMPLYr := pIMPLYqr.Eliminate(p)
				q := pIMPLYq.Eliminate(p)
				return qIMPLYr.Eliminate(q)
			}))
		},
	))
}
