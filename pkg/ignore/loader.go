package ignore

import (
	"bytes"

	"github.com/arthur-debert/codepdf/pkg/logging"
	"github.com/arthur-debert/codepdf/pkg/types"
)

// LoadRules reads the ignore file at path and parses it against root.
// A missing or unreadable file is non-fatal: the matcher degrades to an
// empty rule set and the condition is logged as a warning.
func LoadRules(fs types.FS, path, root string) *RuleSet {
	logger := logging.GetLogger("ignore")

	data, err := fs.ReadFile(path)
	if err != nil {
		logger.Warn().
			Str("path", path).
			Err(err).
			Msg("Cannot read ignore file, proceeding without rules")
		return &RuleSet{}
	}

	set, err := ParseRules(bytes.NewReader(data), root)
	if err != nil {
		logger.Warn().
			Str("path", path).
			Err(err).
			Msg("Cannot parse ignore file, proceeding without rules")
		return &RuleSet{}
	}

	logger.Debug().
		Str("path", path).
		Int("ruleCount", set.Len()).
		Msg("Loaded ignore rules")
	return set
}
