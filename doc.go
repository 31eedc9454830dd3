// Package natded encodes the connectives of propositional logic as
// parametric Go types, following the Curry-Howard correspondence:
// a value of a connective type is simultaneously ordinary program data
// and evidence that the corresponding proposition holds.
//
// Each connective comes with the introduction and elimination operations
// of natural deduction:
//
//   - Conjunction: Conjoin (^i), First (^e1), Second (^e2)
//   - Disjunction: Left (vi1), Right (vi2), Cases (ve)
//   - Implication: Discharge (->i), Eliminate (->e)
//
// Deduction represents a hypothetical sub-proof ("assume A, derive B")
// and is the payload of Implication as well as the branch argument of
// Cases. Composing these operations builds a proof tree bottom-up;
// the Go type checker is the proof checker. A composition that compiles
// is a valid derivation, and an invalid derivation is a compile error,
// never a runtime one.
//
// Out of scope:
//   - parsing logical formulas
//   - proof search or automated theorem proving
//   - proof-term normalization
//   - persistence of proof terms
package natded
