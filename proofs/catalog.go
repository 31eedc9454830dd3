package proofs

import (
	"fmt"
	"sort"

	"github.com/gnolang/natded"
	"github.com/gnolang/natded/trace"
)

// P, Q and R are placeholder propositions for the catalog. Evidence for
// a placeholder is simply a value of the type; any nominal type works,
// the combinators impose no structure on leaf propositions.
type (
	P struct{}
	Q struct{}
	R struct{}
)

// Entry pairs a displayable proof listing with a runner that executes
// the corresponding generic theorem over the placeholder propositions.
// Run reports the dynamic type of the derived evidence, which spells
// out the concluded proposition.
type Entry struct {
	Name       string
	Derivation *trace.Derivation
	Run        func() string
}

// Sequent returns the sequent this entry derives.
func (e Entry) Sequent() string {
	return e.Derivation.Sequent
}

func evidence(v any) string {
	return fmt.Sprintf("%T", v)
}

// Catalog returns the worked derivations, sorted by name. Each listing
// mirrors, line for line, the derivation its runner performs.
func Catalog() []Entry {
	entries := []Entry{
		commuteConjunction(),
		embedDisjunct(),
		chainThroughPair(),
		applyToInjected(),
		bindConjunct(),
		mergeBranches(),
		pairUnderAssumption(),
		distributeImplication(),
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// Lookup finds a catalog entry by name.
func Lookup(name string) (Entry, bool) {
	for _, e := range Catalog() {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

func commuteConjunction() Entry {
	d := trace.New("commute-conjunction", "p ^ q |- q ^ p")
	l1 := d.Premise("p ^ q")
	l2 := d.Infer("p", trace.RuleConjElim1, l1)
	l3 := d.Infer("q", trace.RuleConjElim2, l1)
	d.Infer("q ^ p", trace.RuleConjIntro, l3, l2)
	return Entry{
		Name:       d.Name,
		Derivation: d,
		Run: func() string {
			return evidence(CommuteConjunction(natded.Conjoin(P{}, Q{})))
		},
	}
}

func embedDisjunct() Entry {
	d := trace.New("embed-disjunct", "q |- (p v q) v r")
	l1 := d.Premise("q")
	l2 := d.Infer("p v q", trace.RuleDisjIntro2, l1)
	d.Infer("(p v q) v r", trace.RuleDisjIntro1, l2)
	return Entry{
		Name:       d.Name,
		Derivation: d,
		Run: func() string {
			return evidence(EmbedDisjunct[P, Q, R](Q{}))
		},
	}
}

func chainThroughPair() Entry {
	d := trace.New("chain-through-pair", "(p ^ q) -> r, p, p -> q |- r")
	l1 := d.Premise("(p ^ q) -> r")
	l2 := d.Premise("p")
	l3 := d.Premise("p -> q")
	l4 := d.Infer("q", trace.RuleImplElim, l3, l2)
	l5 := d.Infer("p ^ q", trace.RuleConjIntro, l2, l4)
	d.Infer("r", trace.RuleImplElim, l1, l5)
	return Entry{
		Name:       d.Name,
		Derivation: d,
		Run: func() string {
			pqIMPLYr := natded.Discharge(natded.Deduction[natded.Conjunction[P, Q], R](
				func(natded.Conjunction[P, Q]) R { return R{} },
			))
			pIMPLYq := natded.Discharge(natded.Deduction[P, Q](func(P) Q { return Q{} }))
			return evidence(ChainThroughPair(pqIMPLYr, pIMPLYq, P{}))
		},
	}
}

func applyToInjected() Entry {
	d := trace.New("apply-to-injected", "(p v q) -> r, q |- r")
	l1 := d.Premise("(p v q) -> r")
	l2 := d.Premise("q")
	l3 := d.Infer("p v q", trace.RuleDisjIntro2, l2)
	d.Infer("r", trace.RuleImplElim, l1, l3)
	return Entry{
		Name:       d.Name,
		Derivation: d,
		Run: func() string {
			pqIMPLYr := natded.Discharge(natded.Deduction[natded.Disjunction[P, Q], R](
				func(natded.Disjunction[P, Q]) R { return R{} },
			))
			return evidence(ApplyToInjected(pqIMPLYr, Q{}))
		},
	}
}

func bindConjunct() Entry {
	d := trace.New("bind-conjunct", "p, (q ^ p) -> r |- q -> r")
	l1 := d.Premise("p")
	l2 := d.Premise("(q ^ p) -> r")
	l3 := d.Assume("q")
	l4 := d.Infer("q ^ p", trace.RuleConjIntro, l3, l1)
	l5 := d.Infer("r", trace.RuleImplElim, l2, l4)
	d.Close("q -> r", trace.RuleImplIntro, l3, l5)
	return Entry{
		Name:       d.Name,
		Derivation: d,
		Run: func() string {
			qpIMPLYr := natded.Discharge(natded.Deduction[natded.Conjunction[Q, P], R](
				func(natded.Conjunction[Q, P]) R { return R{} },
			))
			return evidence(BindConjunct(P{}, qpIMPLYr))
		},
	}
}

func mergeBranches() Entry {
	d := trace.New("merge-branches", "p -> r, q -> r |- (p v q) -> r")
	l1 := d.Premise("p -> r")
	l2 := d.Premise("q -> r")
	l3 := d.Assume("p v q")
	l4 := d.Assume("p")
	l5 := d.Infer("r", trace.RuleImplElim, l1, l4)
	d.EndBox()
	l6 := d.Assume("q")
	l7 := d.Infer("r", trace.RuleImplElim, l2, l6)
	l8 := d.Close("r", trace.RuleDisjElim, l3, l4, l5, l6, l7)
	d.Close("(p v q) -> r", trace.RuleImplIntro, l3, l8)
	return Entry{
		Name:       d.Name,
		Derivation: d,
		Run: func() string {
			pIMPLYr := natded.Discharge(natded.Deduction[P, R](func(P) R { return R{} }))
			qIMPLYr := natded.Discharge(natded.Deduction[Q, R](func(Q) R { return R{} }))
			return evidence(MergeBranches(pIMPLYr, qIMPLYr))
		},
	}
}

func pairUnderAssumption() Entry {
	d := trace.New("pair-under-assumption", "q |- p -> (q ^ p)")
	l1 := d.Premise("q")
	l2 := d.Assume("p")
	l3 := d.Infer("q ^ p", trace.RuleConjIntro, l1, l2)
	d.Close("p -> (q ^ p)", trace.RuleImplIntro, l2, l3)
	return Entry{
		Name:       d.Name,
		Derivation: d,
		Run: func() string {
			return evidence(PairUnderAssumption[P](Q{}))
		},
	}
}

func distributeImplication() Entry {
	d := trace.New("distribute-implication", "p -> (q -> r) |- (p -> q) -> (p -> r)")
	l1 := d.Premise("p -> (q -> r)")
	l2 := d.Assume("p -> q")
	l3 := d.Assume("p")
	l4 := d.Infer("q -> r", trace.RuleImplElim, l1, l3)
	l5 := d.Infer("q", trace.RuleImplElim, l2, l3)
	l6 := d.Infer("r", trace.RuleImplElim, l4, l5)
	l7 := d.Close("p -> r", trace.RuleImplIntro, l3, l6)
	d.Close("(p -> q) -> (p -> r)", trace.RuleImplIntro, l2, l7)
	return Entry{
		Name:       d.Name,
		Derivation: d,
		Run: func() string {
			pIMPLYqr := natded.Discharge(natded.Deduction[P, natded.Implication[Q, R]](
				func(P) natded.Implication[Q, R] {
					return natded.Discharge(natded.Deduction[Q, R](func(Q) R { return R{} }))
				},
			))
			return evidence(DistributeImplication(pIMPLYqr))
		},
	}
}
