package natded

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImplicationIdentity(t *testing.T) {
	t.Parallel()
	id := Discharge(Deduction[string, string](func(a string) string { return a }))

	assert.Equal(t, "v", id.Eliminate("v"))
}

func TestImplicationActivatesOncePerElimination(t *testing.T) {
	t.Parallel()
	var calls int
	imp := Discharge(Deduction[int, int](func(a int) int {
		calls++
		return a + 1
	}))

	assert.Equal(t, 2, imp.Eliminate(1))
	assert.Equal(t, 3, imp.Eliminate(2))
	assert.Equal(t, 2, calls)
}

// p -> (q -> r), p -> q, p |- r, chained as
// i1.Eliminate(p).Eliminate(i2.Eliminate(p)), must agree with composing
// the same underlying deductions by hand.
func TestNestedImplicationChain(t *testing.T) {
	t.Parallel()
	toQ := func(p int) string { return "q:" + string(rune('0'+p)) }
	toR := func(p int) Deduction[string, float64] {
		return func(q string) float64 { return float64(p + len(q)) }
	}

	i1 := Discharge(Deduction[int, Implication[string, float64]](func(p int) Implication[string, float64] {
		return Discharge(toR(p))
	}))
	i2 := Discharge(Deduction[int, string](toQ))

	p := 3
	r := i1.Eliminate(p).Eliminate(i2.Eliminate(p))

	direct := toR(p)(toQ(p))
	require.Equal(t, direct, r)
}

// Implications are themselves evidence, so combinators must accept them
// as parameters at any nesting depth.
func TestImplicationAsEvidence(t *testing.T) {
	t.Parallel()
	inc := Discharge(Deduction[int, int](func(a int) int { return a + 1 }))

	c := Conjoin(inc, "tag")
	assert.Equal(t, 8, c.First().Eliminate(7))

	d := Left[Implication[int, int], string](inc)
	got := Cases(d,
		Deduction[Implication[int, int], int](func(i Implication[int, int]) int { return i.Eliminate(1) }),
		Deduction[string, int](func(string) int { return -1 }),
	)
	assert.Equal(t, 2, got)
}
