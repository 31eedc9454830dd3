// Package trace models natural-deduction proof listings: numbered lines
// carrying a formula, the inference rule that produced it, and references
// to earlier lines. A Derivation is pure data; it describes a proof that
// the combinator packages construct for real, and the formatter package
// renders it Fitch-style, with assumptions opening boxed sub-proofs.
package trace

import (
	"errors"
	"fmt"
)

// Rule identifies the inference rule annotated on a proof line.
type Rule string

const (
	RulePremise    Rule = "premise"
	RuleAssumption Rule = "assumption"
	RuleConjIntro  Rule = "^i"
	RuleConjElim1  Rule = "^e1"
	RuleConjElim2  Rule = "^e2"
	RuleDisjIntro1 Rule = "vi1"
	RuleDisjIntro2 Rule = "vi2"
	RuleDisjElim   Rule = "ve"
	RuleImplIntro  Rule = "->i"
	RuleImplElim   Rule = "->e"
)

// Step is one numbered line of a derivation. Refs are 1-based line
// numbers of the lines the rule was applied to. Depth is the sub-proof
// nesting level; lines at depth > 0 sit inside assumption boxes.
type Step struct {
	Formula string
	Rule    Rule
	Refs    []int
	Depth   int
}

// Validation failures reported by Check.
var (
	ErrBadRef     = errors.New("reference to a line not yet derived")
	ErrUnbalanced = errors.New("assumption left undischarged")
)

// Derivation is an ordered proof listing with builder methods that keep
// the sub-proof depth bookkeeping. Steps is append-only; the builder
// methods return the 1-based number of the line they added so later
// steps can reference it.
type Derivation struct {
	Name    string
	Sequent string
	Steps   []Step

	depth int
}

// New starts an empty derivation for the given sequent.
func New(name, sequent string) *Derivation {
	return &Derivation{Name: name, Sequent: sequent}
}

func (d *Derivation) add(s Step) int {
	d.Steps = append(d.Steps, s)
	return len(d.Steps)
}

// Premise records an externally supplied piece of evidence.
func (d *Derivation) Premise(formula string) int {
	return d.add(Step{Formula: formula, Rule: RulePremise, Depth: d.depth})
}

// Assume opens a boxed sub-proof with the given assumption.
func (d *Derivation) Assume(formula string) int {
	d.depth++
	return d.add(Step{Formula: formula, Rule: RuleAssumption, Depth: d.depth})
}

// Infer records a rule application at the current depth.
func (d *Derivation) Infer(formula string, rule Rule, refs ...int) int {
	return d.add(Step{Formula: formula, Rule: rule, Refs: refs, Depth: d.depth})
}

// EndBox closes the innermost assumption box without recording a line.
// Or-elimination uses it between sibling sub-proofs, where the next
// line opens the other branch's box rather than concluding anything.
func (d *Derivation) EndBox() {
	d.depth--
}

// Close discharges the innermost open assumption and records the
// concluding rule application one level up, outside the box.
func (d *Derivation) Close(formula string, rule Rule, refs ...int) int {
	d.depth--
	return d.add(Step{Formula: formula, Rule: rule, Refs: refs, Depth: d.depth})
}

// Len reports the number of recorded lines.
func (d *Derivation) Len() int {
	return len(d.Steps)
}

// Check validates the listing: every reference points at an earlier
// line, depth changes one level at a time and only through Assume,
// and the conclusion sits outside every box.
func (d *Derivation) Check() error {
	prevDepth := 0
	for i, s := range d.Steps {
		line := i + 1
		for _, ref := range s.Refs {
			if ref < 1 || ref >= line {
				return fmt.Errorf("%s line %d: ref %d: %w", d.Name, line, ref, ErrBadRef)
			}
		}
		switch {
		case s.Depth == prevDepth+1:
			if s.Rule != RuleAssumption {
				return fmt.Errorf("%s line %d: entered a box without an assumption", d.Name, line)
			}
		case s.Depth > prevDepth+1:
			return fmt.Errorf("%s line %d: depth jumped from %d to %d", d.Name, line, prevDepth, s.Depth)
		case s.Depth < 0:
			return fmt.Errorf("%s line %d: negative depth", d.Name, line)
		}
		prevDepth = s.Depth
	}
	if len(d.Steps) > 0 && d.Steps[len(d.Steps)-1].Depth != 0 {
		return fmt.Errorf("%s: %w", d.Name, ErrUnbalanced)
	}
	return nil
}

// Conclusion returns the formula of the final line, or "" for an empty
// derivation.
func (d *Derivation) Conclusion() string {
	if len(d.Steps) == 0 {
		return ""
	}
	return d.Steps[len(d.Steps)-1].Formula
}
