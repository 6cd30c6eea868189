// Package discover walks a root directory and produces the ordered
// list of candidate files for the document: text files only, transient
// and hidden entries skipped, ignore rules applied, sorted by path so
// two runs over the same tree give the same list.
package discover

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/codepdf/pkg/ignore"
	"github.com/arthur-debert/codepdf/pkg/logging"
	"github.com/arthur-debert/codepdf/pkg/types"
)

// textExtensions is the fixed allow-list of source and text file
// extensions eligible for inclusion.
var textExtensions = map[string]bool{
	".py": true, ".js": true, ".html": true, ".css": true, ".php": true,
	".java": true, ".cpp": true, ".c": true, ".h": true,
	".json": true, ".xml": true, ".yaml": true, ".yml": true, ".md": true,
	".txt": true, ".sh": true, ".bash": true,
	".sql": true, ".r": true, ".rb": true, ".go": true, ".rs": true,
	".swift": true, ".kt": true, ".scala": true,
	".ts": true, ".jsx": true, ".tsx": true, ".vue": true, ".svelte": true,
	".pug": true, ".styl": true,
}

// transientSuffixes are throwaway artifacts never worth listing.
var transientSuffixes = []string{".tmp", ".log", ".cache"}

// Options tunes a discovery run.
type Options struct {
	// MaxFiles truncates the result to the first N entries after
	// sorting. Zero means no limit.
	MaxFiles int

	// Rules is the ignore rule set; nil means no rules.
	Rules *ignore.RuleSet

	// ExcludeDirs are absolute directory paths never descended into,
	// e.g. the tool's own installation directory.
	ExcludeDirs []string
}

// Discover walks root and returns the candidates in stable order.
// A missing root is not an error: the caller gets an empty list and a
// logged warning, and decides whether that is fatal.
func Discover(fs types.FS, root string, opts Options) ([]types.Candidate, error) {
	logger := logging.GetLogger("discover")

	root = filepath.Clean(root)
	if info, err := fs.Stat(root); err != nil || !info.IsDir() {
		logger.Warn().Str("root", root).Msg("Code folder does not exist")
		return nil, nil
	}

	excluded := make(map[string]bool, len(opts.ExcludeDirs))
	for _, dir := range opts.ExcludeDirs {
		excluded[filepath.Clean(dir)] = true
	}

	var candidates []types.Candidate
	var walk func(dir string) error
	walk = func(dir string) error {
		entries, err := fs.ReadDir(dir)
		if err != nil {
			// An unreadable subdirectory should not sink the whole run.
			logger.Warn().Str("dir", dir).Err(err).Msg("Skipping unreadable directory")
			return nil
		}
		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, ".") {
				continue
			}
			path := filepath.Join(dir, name)

			if entry.IsDir() {
				if excluded[path] {
					logger.Debug().Str("dir", path).Msg("Skipping excluded directory")
					continue
				}
				if err := walk(path); err != nil {
					return err
				}
				continue
			}

			if hasTransientSuffix(name) || !isTextFile(name) {
				continue
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				rel = path
			}
			if opts.Rules.Matches(rel, path) {
				logger.Debug().Str("path", rel).Msg("Skipping ignored file")
				continue
			}

			candidates = append(candidates, types.Candidate{
				AbsolutePath: path,
				RelativePath: rel,
			})
		}
		return nil
	}

	if err := walk(root); err != nil {
		return nil, err
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].AbsolutePath < candidates[j].AbsolutePath
	})

	// Truncation happens after sorting so the kept prefix is stable
	// across runs.
	if opts.MaxFiles > 0 && len(candidates) > opts.MaxFiles {
		logger.Info().Int("maxFiles", opts.MaxFiles).Msg("Limiting file count")
		candidates = candidates[:opts.MaxFiles]
	}

	logger.Info().
		Str("root", root).
		Int("count", len(candidates)).
		Msg("Discovery complete")
	return candidates, nil
}

func hasTransientSuffix(name string) bool {
	for _, suffix := range transientSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

func isTextFile(name string) bool {
	return textExtensions[strings.ToLower(filepath.Ext(name))]
}
