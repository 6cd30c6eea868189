package ignore

import (
	"bufio"
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/codepdf/pkg/errors"
	"github.com/arthur-debert/codepdf/pkg/logging"
	"github.com/arthur-debert/codepdf/pkg/types"
)

// AppendProcessed appends the given processed-file paths to the ignore
// file so subsequent runs skip them. Paths already present as literal
// (non-wildcard) entries are deduplicated; each appended batch is
// preceded by a timestamped comment. Returns how many new paths were
// written.
func AppendProcessed(fs types.FS, path string, files []types.ProcessedFile) (int, error) {
	logger := logging.GetLogger("ignore")

	existing := make(map[string]bool)
	if data, err := fs.ReadFile(path); err == nil {
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" && !strings.HasPrefix(line, "#") && !strings.Contains(line, "*") {
				existing[line] = true
			}
		}
	}

	var newPaths []string
	for _, f := range files {
		if !existing[f.AbsolutePath] {
			newPaths = append(newPaths, f.AbsolutePath)
		}
	}

	if len(newPaths) == 0 {
		logger.Debug().Str("path", path).Msg("No new files to save to ignore file")
		return 0, nil
	}

	sort.Strings(newPaths)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "\n# Files processed on %s\n", time.Now().Format("2006-01-02 15:04:05"))
	for _, p := range newPaths {
		fmt.Fprintln(&buf, p)
	}

	if err := fs.AppendFile(path, buf.Bytes(), 0644); err != nil {
		return 0, errors.Wrapf(err, errors.ErrIgnoreWrite, "failed to update ignore file %s", path)
	}

	logger.Info().
		Int("newFiles", len(newPaths)).
		Str("path", path).
		Msg("Saved processed files to ignore file")
	return len(newPaths), nil
}

// AppendPatterns appends user-supplied patterns to the ignore file,
// skipping ones already present verbatim. Returns how many patterns
// were written.
func AppendPatterns(fs types.FS, path string, patterns []string) (int, error) {
	logger := logging.GetLogger("ignore")

	existing := make(map[string]bool)
	if data, err := fs.ReadFile(path); err == nil {
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" && !strings.HasPrefix(line, "#") {
				existing[line] = true
			}
		}
	}

	var buf bytes.Buffer
	added := 0
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" || existing[p] {
			continue
		}
		existing[p] = true
		fmt.Fprintln(&buf, p)
		added++
	}

	if added == 0 {
		return 0, nil
	}

	if err := fs.AppendFile(path, buf.Bytes(), 0644); err != nil {
		return 0, errors.Wrapf(err, errors.ErrIgnoreWrite, "failed to update ignore file %s", path)
	}

	logger.Info().
		Int("patterns", added).
		Str("path", path).
		Msg("Added patterns to ignore file")
	return added, nil
}
