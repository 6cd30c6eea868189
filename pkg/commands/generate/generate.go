// Package generate implements the main pipeline: discover candidate
// files, wrap their content, let the pagination estimator rule on each
// one, render the survivors to PDF, summarize, and persist the
// side effects the caller asked for.
package generate

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/codepdf/pkg/config"
	"github.com/arthur-debert/codepdf/pkg/discover"
	"github.com/arthur-debert/codepdf/pkg/errors"
	"github.com/arthur-debert/codepdf/pkg/ignore"
	"github.com/arthur-debert/codepdf/pkg/layout"
	"github.com/arthur-debert/codepdf/pkg/logging"
	"github.com/arthur-debert/codepdf/pkg/paginate"
	"github.com/arthur-debert/codepdf/pkg/render"
	"github.com/arthur-debert/codepdf/pkg/sidecar"
	"github.com/arthur-debert/codepdf/pkg/summary"
	"github.com/arthur-debert/codepdf/pkg/types"
)

// Options holds everything one document build needs. Config must be
// validated; flag overrides are already folded in by the CLI layer.
type Options struct {
	Config *config.Config
	FS     types.FS

	// NoIgnore processes all files, skipping the ignore list entirely.
	NoIgnore bool
	// UpdateIgnore appends the processed files to the ignore list
	// after a successful build.
	UpdateIgnore bool
	// MaxFiles caps discovery; zero means no cap.
	MaxFiles int
	// ExcludeDirs are directories never scanned, e.g. the tool's own
	// installation directory.
	ExcludeDirs []string

	// Renderer substitutes the PDF engine; nil selects fpdf.
	Renderer render.Renderer
	// Summarizer substitutes the AI backend; nil selects the
	// configured one.
	Summarizer summary.Summarizer
}

// SkippedFile records one budget-skip decision for reporting.
type SkippedFile struct {
	RelativePath   string
	EstimatedPages int
}

// Result describes a finished build.
type Result struct {
	// OutputPath is empty when nothing was rendered (no candidates).
	OutputPath  string
	PageCount   int
	Processed   []types.ProcessedFile
	Skipped     []SkippedFile
	Summary     string
	SidecarPath string
	// SavedToIgnore is how many new paths were appended to the ignore
	// file, when that was requested.
	SavedToIgnore int
}

// Generate runs one document build.
func Generate(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.generate")
	defer logging.LogOperationStart(logger, "generate")()

	cfg := opts.Config
	fs := opts.FS

	root, err := filepath.Abs(cfg.CodeFolder)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "cannot resolve code folder %s", cfg.CodeFolder)
	}

	ignorePath := cfg.IgnoreFile
	if !filepath.IsAbs(ignorePath) {
		ignorePath, err = filepath.Abs(ignorePath)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "cannot resolve ignore file %s", cfg.IgnoreFile)
		}
	}

	var rules *ignore.RuleSet
	if opts.NoIgnore {
		logger.Info().Msg("Ignore file disabled for this run")
	} else {
		rules = ignore.LoadRules(fs, ignorePath, root)
	}

	candidates, err := discover.Discover(fs, root, discover.Options{
		MaxFiles:    opts.MaxFiles,
		Rules:       rules,
		ExcludeDirs: opts.ExcludeDirs,
	})
	if err != nil {
		return nil, err
	}

	result := &Result{}
	if len(candidates) == 0 {
		logger.Info().Msg("No files to process, nothing to render")
		result.Summary = summary.EmptyMessage
		return result, nil
	}

	wrapper := &layout.Wrapper{
		MaxChars:           cfg.Layout.MaxChars,
		ContinuationIndent: cfg.Layout.ContinuationIndent,
	}
	estimator := &paginate.Estimator{
		PageBudget:    cfg.Defaults.Pages,
		LinesPerPage:  cfg.LinesPerPage(),
		SkipThreshold: cfg.Pagination.SkipThresholdPages,
	}

	var blocks []types.LayoutBlock
	for _, candidate := range candidates {
		if candidate.AbsolutePath == ignorePath {
			continue
		}

		content, err := discover.ReadContent(fs, candidate.AbsolutePath)
		if err != nil {
			// The listing still documents the file; the error text
			// stands in for the content.
			logger.Warn().Str("path", candidate.RelativePath).Err(err).Msg("Cannot read file")
			content = fmt.Sprintf("Error reading file: %v", err)
		}

		block := wrapper.Block(candidate.RelativePath, content)

		decision := estimator.Evaluate(len(block.Lines))
		paginate.LogDecision(candidate.RelativePath, decision, cfg.Defaults.Pages)
		if decision.Verdict == paginate.Skip {
			result.Skipped = append(result.Skipped, SkippedFile{
				RelativePath:   candidate.RelativePath,
				EstimatedPages: decision.EstimatedPages,
			})
			continue
		}

		estimator.Commit(len(block.Lines))
		blocks = append(blocks, block)
		result.Processed = append(result.Processed, types.ProcessedFile{
			AbsolutePath: candidate.AbsolutePath,
			RelativePath: candidate.RelativePath,
		})
	}

	if len(blocks) == 0 {
		logger.Info().Int("skipped", len(result.Skipped)).Msg("Every candidate was skipped, nothing to render")
		result.Summary = summary.EmptyMessage
		return result, nil
	}

	outputPath := cfg.Defaults.Filename
	if !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(cfg.OutputFolder, outputPath)
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = render.NewPDFRenderer(cfg)
	}
	pageCount, err := renderer.Render(render.Document{
		Title:      cfg.Defaults.Title,
		OutputPath: outputPath,
		Blocks:     blocks,
	})
	if err != nil {
		// No partial-document recovery: a failed render aborts the build.
		return nil, err
	}
	result.OutputPath = outputPath
	result.PageCount = pageCount

	composer := summary.NewComposerWith(opts.Summarizer)
	if opts.Summarizer == nil {
		composer = summary.NewComposer(cfg.AI)
	}
	result.Summary = composer.Summarize(result.Processed, pageCount)

	sidecarPath, err := sidecar.Write(fs, outputPath, sidecar.Meta{
		PageCount: pageCount,
		FileCount: len(result.Processed),
		Summary:   result.Summary,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("Could not write sidecar file")
	} else {
		result.SidecarPath = sidecarPath
	}

	if opts.UpdateIgnore && len(result.Processed) > 0 {
		saved, err := ignore.AppendProcessed(fs, ignorePath, result.Processed)
		if err != nil {
			logger.Warn().Err(err).Msg("Could not update ignore file")
		} else {
			result.SavedToIgnore = saved
		}
	}

	logger.Info().
		Int("processed", len(result.Processed)).
		Int("skipped", len(result.Skipped)).
		Int("pages", pageCount).
		Msg("Document build finished")
	return result, nil
}
