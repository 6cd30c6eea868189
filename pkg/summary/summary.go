// Package summary composes the one-line description of a generated
// document. An AI-backed summarizer is tried first when enabled; any
// failure falls through silently to a deterministic rule-based summary
// built from the processed files' extensions.
package summary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/codepdf/pkg/config"
	"github.com/arthur-debert/codepdf/pkg/logging"
	"github.com/arthur-debert/codepdf/pkg/types"
)

// EmptyMessage is returned when no files made it into the document.
// No external call is made in that case.
const EmptyMessage = "Empty PDF. No files processed."

// Summarizer abstracts the external summarization backend.
type Summarizer interface {
	Summarize(processed []types.ProcessedFile, pageCount int) (string, error)
}

// Composer picks between the AI and rule-based summary paths with a
// fixed fallback order.
type Composer struct {
	ai      Summarizer
	enabled bool
}

// NewComposer builds a composer from the AI configuration. The AI path
// is active only when enabled and an API key is present.
func NewComposer(cfg config.AI) *Composer {
	c := &Composer{enabled: cfg.EnableAISummary}
	if cfg.EnableAISummary && cfg.AnthropicAPIKey != "" {
		c.ai = NewAnthropicSummarizer(cfg)
	}
	return c
}

// NewComposerWith builds a composer around an explicit summarizer,
// mainly for tests.
func NewComposerWith(ai Summarizer) *Composer {
	return &Composer{ai: ai, enabled: ai != nil}
}

// Summarize produces the final description. It never fails: every
// error path degrades to the rule-based summary.
func (c *Composer) Summarize(processed []types.ProcessedFile, pageCount int) string {
	logger := logging.GetLogger("summary")

	if len(processed) == 0 {
		return EmptyMessage
	}

	if c.enabled && c.ai != nil {
		s, err := c.ai.Summarize(processed, pageCount)
		if err == nil && s != "" {
			// Make sure the page count shows up even when the model
			// leaves it out.
			if !strings.Contains(s, strconv.Itoa(pageCount)) {
				s += fmt.Sprintf(". %s.", pagesPhrase(pageCount))
			}
			return s
		}
		logger.Warn().Err(err).Msg("AI summary failed, using rule-based summary")
	}

	return RuleBased(processed, pageCount)
}

// pagesPhrase renders the page count, with zero meaning the engine
// could not report one.
func pagesPhrase(pageCount int) string {
	if pageCount <= 0 {
		return "unknown pages"
	}
	return fmt.Sprintf("%d pages", pageCount)
}
