package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateSkipsFarOverBudget(t *testing.T) {
	e := NewEstimator(2, 50)

	// (0 + 2 + 260) / 50 + 1 = 6 pages, past budget+threshold of 5.
	d := e.Evaluate(260)

	assert.Equal(t, Skip, d.Verdict)
	assert.Equal(t, 6, d.EstimatedPages)
	// A skip leaves state untouched.
	assert.Equal(t, 0, e.CumulativeLines)
}

func TestEvaluateOverflowStillIncludes(t *testing.T) {
	e := NewEstimator(2, 50)

	// (0 + 2 + 140) / 50 + 1 = 3 pages: over budget 2, within 2+3.
	d := e.Evaluate(140)

	assert.Equal(t, IncludeOverflow, d.Verdict)
	assert.Equal(t, 3, d.EstimatedPages)
}

func TestEvaluateWithinBudget(t *testing.T) {
	e := NewEstimator(2, 50)

	// (0 + 2 + 40) / 50 + 1 = 1 page.
	d := e.Evaluate(40)

	assert.Equal(t, Include, d.Verdict)
	assert.Equal(t, 1, d.EstimatedPages)
}

func TestEvaluateNoBudgetAlwaysIncludes(t *testing.T) {
	e := NewEstimator(0, 50)

	d := e.Evaluate(100000)
	assert.Equal(t, Include, d.Verdict)
}

func TestCommitAdvancesState(t *testing.T) {
	e := NewEstimator(10, 50)

	e.Commit(48)
	assert.Equal(t, 50, e.CumulativeLines)
	assert.Equal(t, 2, e.CurrentPages())

	e.Commit(23)
	assert.Equal(t, 75, e.CumulativeLines)
	assert.Equal(t, 2, e.CurrentPages())
}

func TestGreedySingleRunDoesNotBacktrack(t *testing.T) {
	e := NewEstimator(1, 10)

	// First file fills the budget.
	d := e.Evaluate(6)
	assert.Equal(t, Include, d.Verdict)
	e.Commit(6)

	// A huge file is skipped...
	d = e.Evaluate(100)
	assert.Equal(t, Skip, d.Verdict)

	// ...but a later small file is still evaluated against the same
	// grown cumulative count and can get in.
	d = e.Evaluate(2)
	assert.Equal(t, IncludeOverflow, d.Verdict)
}

func TestCustomSkipThreshold(t *testing.T) {
	e := NewEstimator(2, 50)
	e.SkipThreshold = 0

	// 3 estimated pages with budget 2: skipped once the threshold is 0.
	d := e.Evaluate(140)
	assert.Equal(t, Skip, d.Verdict)
}

func TestEstimateAlwaysAtLeastOnePage(t *testing.T) {
	e := NewEstimator(5, 50)
	d := e.Evaluate(0)
	assert.Equal(t, 1, d.EstimatedPages)
}
