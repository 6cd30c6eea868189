// Package paginate implements the page-budget estimator: a greedy,
// single-pass heuristic that decides per candidate file whether the
// document stays within the configured page budget. Estimates only —
// the true page count comes from the rendering engine afterwards.
package paginate

import (
	"github.com/arthur-debert/codepdf/pkg/constants"
	"github.com/arthur-debert/codepdf/pkg/logging"
)

// Verdict is the estimator's decision for one candidate file.
type Verdict int

const (
	// Include accepts the file silently.
	Include Verdict = iota
	// IncludeOverflow accepts the file but the estimate runs past the
	// budget; informational only, never blocks inclusion.
	IncludeOverflow
	// Skip rejects the file: it would overshoot the budget by more
	// than the skip threshold. State is unchanged and later, smaller
	// candidates are still evaluated.
	Skip
)

func (v Verdict) String() string {
	switch v {
	case Include:
		return "include"
	case IncludeOverflow:
		return "include-overflow"
	case Skip:
		return "skip"
	default:
		return "unknown"
	}
}

// Decision pairs the verdict with the page estimate that produced it.
type Decision struct {
	Verdict        Verdict
	EstimatedPages int
}

// Estimator tracks the running line count for one document build.
// It is not reused across builds.
type Estimator struct {
	// CumulativeLines counts heading and content lines committed so far.
	CumulativeLines int
	// PageBudget is the target maximum page count; zero disables the
	// budget entirely.
	PageBudget int
	// LinesPerPage converts line counts into page estimates.
	LinesPerPage int
	// SkipThreshold is how many pages past the budget a file may
	// estimate to before it is skipped rather than included.
	SkipThreshold int
}

// NewEstimator creates an estimator with the default skip threshold.
// pageBudget zero means no budget.
func NewEstimator(pageBudget, linesPerPage int) *Estimator {
	return &Estimator{
		PageBudget:    pageBudget,
		LinesPerPage:  linesPerPage,
		SkipThreshold: constants.DefaultSkipThresholdPages,
	}
}

// Evaluate decides whether a file contributing fileLines wrapped lines
// (plus the heading) fits the budget. It does not mutate state; call
// Commit after the file is actually accepted.
func (e *Estimator) Evaluate(fileLines int) Decision {
	estimatedTotal := e.CumulativeLines + constants.HeadingLines + fileLines
	estimatedPages := estimatedTotal/e.LinesPerPage + 1

	if e.PageBudget <= 0 {
		return Decision{Verdict: Include, EstimatedPages: estimatedPages}
	}

	switch {
	case estimatedPages > e.PageBudget+e.SkipThreshold:
		return Decision{Verdict: Skip, EstimatedPages: estimatedPages}
	case estimatedPages > e.PageBudget:
		return Decision{Verdict: IncludeOverflow, EstimatedPages: estimatedPages}
	default:
		return Decision{Verdict: Include, EstimatedPages: estimatedPages}
	}
}

// Commit records an accepted file's lines in the running count.
func (e *Estimator) Commit(fileLines int) {
	e.CumulativeLines += constants.HeadingLines + fileLines
}

// CurrentPages is the page estimate for what has been committed so far.
func (e *Estimator) CurrentPages() int {
	return e.CumulativeLines/e.LinesPerPage + 1
}

// LogDecision emits the informational log line for a decision, in the
// component's voice.
func LogDecision(rel string, d Decision, budget int) {
	logger := logging.GetLogger("paginate")
	switch d.Verdict {
	case Skip:
		logger.Info().
			Str("file", rel).
			Int("estimatedPages", d.EstimatedPages).
			Int("pageBudget", budget).
			Msg("Skipping file, would exceed page budget by too much")
	case IncludeOverflow:
		logger.Info().
			Str("file", rel).
			Int("estimatedPages", d.EstimatedPages).
			Int("pageBudget", budget).
			Msg("Including file past the page budget")
	}
}
