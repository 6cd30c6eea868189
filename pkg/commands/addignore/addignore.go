// Package addignore appends ignore patterns to the ignore file without
// running a generation pass.
package addignore

import (
	"path/filepath"

	"github.com/arthur-debert/codepdf/pkg/config"
	"github.com/arthur-debert/codepdf/pkg/errors"
	"github.com/arthur-debert/codepdf/pkg/ignore"
	"github.com/arthur-debert/codepdf/pkg/logging"
	"github.com/arthur-debert/codepdf/pkg/types"
)

// Options configures the add-ignore command.
type Options struct {
	Config   *config.Config
	FS       types.FS
	Patterns []string
}

// Result reports what was appended.
type Result struct {
	IgnorePath string
	Added      int
}

// AddIgnore appends the given patterns to the configured ignore file,
// creating it if needed. Duplicate patterns are silently dropped.
func AddIgnore(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.addignore")

	if len(opts.Patterns) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no patterns given")
	}

	path := opts.Config.IgnoreFile
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve ignore file %s", path)
		}
		path = abs
	}

	added, err := ignore.AppendPatterns(opts.FS, path, opts.Patterns)
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("added", added).Msg("Ignore file updated")
	return &Result{IgnorePath: path, Added: added}, nil
}
