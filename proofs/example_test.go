package proofs_test

import (
	"fmt"

	"github.com/gnolang/natded"
	"github.com/gnolang/natded/proofs"
)

// ExampleCommuteConjunction swaps the components of p ^ q.
func ExampleCommuteConjunction() {
	swapped := proofs.CommuteConjunction(natded.Conjoin("p", "q"))
	fmt.Println(swapped.First(), swapped.Second())
	// Output: q p
}

// ExampleMergeBranches derives (p v q) -> r from p -> r and q -> r,
// then eliminates it against both variants.
func ExampleMergeBranches() {
	pIMPLYr := natded.Discharge(natded.Deduction[int, string](func(p int) string {
		return fmt.Sprintf("r from p=%d", p)
	}))
	qIMPLYr := natded.Discharge(natded.Deduction[string, string](func(q string) string {
		return "r from q=" + q
	}))

	merged := proofs.MergeBranches(pIMPLYr, qIMPLYr)
	fmt.Println(merged.Eliminate(natded.Left[int, string](1)))
	fmt.Println(merged.Eliminate(natded.Right[int]("q")))
	// Output:
	// r from p=1
	// r from q=q
}

// ExampleDistributeImplication chains p -> (q -> r) through p -> q.
func ExampleDistributeImplication() {
	pIMPLYqr := natded.Discharge(natded.Deduction[int, natded.Implication[int, int]](
		func(p int) natded.Implication[int, int] {
			return natded.Discharge(natded.Deduction[int, int](func(q int) int { return p * q }))
		},
	))
	pIMPLYq := natded.Discharge(natded.Deduction[int, int](func(p int) int { return p + 1 }))

	pIMPLYr := proofs.DistributeImplication(pIMPLYqr).Eliminate(pIMPLYq)
	fmt.Println(pIMPLYr.Eliminate(4))
	// Output: 20
}
