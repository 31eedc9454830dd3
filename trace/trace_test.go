package trace

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSwap() *Derivation {
	d := New("commute-conjunction", "p ^ q |- q ^ p")
	l1 := d.Premise("p ^ q")
	l2 := d.Infer("p", RuleConjElim1, l1)
	l3 := d.Infer("q", RuleConjElim2, l1)
	d.Infer("q ^ p", RuleConjIntro, l3, l2)
	return d
}

func TestBuilderNumbersLines(t *testing.T) {
	t.Parallel()
	d := buildSwap()

	require.Equal(t, 4, d.Len())
	assert.Equal(t, "q ^ p", d.Conclusion())
	assert.Equal(t, []int{3, 2}, d.Steps[3].Refs)
	assert.Equal(t, RuleConjIntro, d.Steps[3].Rule)
}

func TestAssumeCloseDepth(t *testing.T) {
	t.Parallel()
	d := New("pair-under-assumption", "q |- p -> (q ^ p)")
	l1 := d.Premise("q")
	l2 := d.Assume("p")
	l3 := d.Infer("q ^ p", RuleConjIntro, l1, l2)
	d.Close("p -> (q ^ p)", RuleImplIntro, l2, l3)

	require.NoError(t, d.Check())
	assert.Equal(t, 0, d.Steps[0].Depth)
	assert.Equal(t, 1, d.Steps[1].Depth)
	assert.Equal(t, 1, d.Steps[2].Depth)
	assert.Equal(t, 0, d.Steps[3].Depth)
}

func TestCheckValid(t *testing.T) {
	t.Parallel()
	require.NoError(t, buildSwap().Check())
}

func TestCheckForwardRef(t *testing.T) {
	t.Parallel()
	d := New("bad", "p |- p")
	d.Premise("p")
	d.Infer("p", RuleConjElim1, 5)

	err := d.Check()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadRef))
}

func TestCheckSelfRef(t *testing.T) {
	t.Parallel()
	d := New("bad", "p |- p")
	d.Infer("p", RuleConjElim1, 1)

	assert.True(t, errors.Is(d.Check(), ErrBadRef))
}

func TestCheckUndischargedAssumption(t *testing.T) {
	t.Parallel()
	d := New("bad", "|- p -> p")
	d.Assume("p")

	assert.True(t, errors.Is(d.Check(), ErrUnbalanced))
}

func TestCheckBoxWithoutAssumption(t *testing.T) {
	t.Parallel()
	d := New("bad", "p |- p")
	d.Premise("p")
	d.Steps = append(d.Steps, Step{Formula: "p", Rule: RuleConjElim1, Refs: []int{1}, Depth: 1})

	assert.Error(t, d.Check())
}
