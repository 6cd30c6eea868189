// Package genconfig writes a starter configuration file with the
// shipped defaults, ready to be edited.
package genconfig

import (
	"path/filepath"

	"github.com/arthur-debert/codepdf/pkg/config"
	"github.com/arthur-debert/codepdf/pkg/errors"
	"github.com/arthur-debert/codepdf/pkg/logging"
	"github.com/arthur-debert/codepdf/pkg/types"
)

// Options configures the gen-config command.
type Options struct {
	FS types.FS

	// Path is where the file is written. Empty means ./config.toml.
	Path string

	// Force overwrites an existing file.
	Force bool
}

// Result reports where the starter file landed.
type Result struct {
	Path string
}

// GenConfig materializes the default configuration as TOML at the
// requested path. It refuses to clobber an existing file unless Force
// is set.
func GenConfig(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.genconfig")

	path := opts.Path
	if path == "" {
		path = "config.toml"
	}

	if !opts.Force {
		if _, err := opts.FS.Stat(path); err == nil {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"%s already exists, use --force to overwrite", path)
		}
	}

	data, err := config.Starter()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render starter configuration")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := opts.FS.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to create %s", dir)
		}
	}
	if err := opts.FS.WriteFile(path, data, 0o644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to write %s", path)
	}

	logger.Info().Str("path", path).Msg("Wrote starter configuration")
	return &Result{Path: path}, nil
}
