package ignore

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/arthur-debert/codepdf/pkg/logging"
)

// Kind discriminates the four rule shapes.
type Kind int

const (
	// ExactPath matches one literal path.
	ExactPath Kind = iota
	// DirectoryPrefix matches a directory and everything under it
	// (pattern ends in "/*").
	DirectoryPrefix
	// ExtensionGlob matches any path with a given extension (pattern of
	// the form "*.ext").
	ExtensionGlob
	// GeneralGlob matches with shell-style glob semantics (any other
	// pattern containing "*").
	GeneralGlob
)

func (k Kind) String() string {
	switch k {
	case ExactPath:
		return "exact"
	case DirectoryPrefix:
		return "dir-prefix"
	case ExtensionGlob:
		return "ext-glob"
	case GeneralGlob:
		return "glob"
	default:
		return "unknown"
	}
}

// Rule is one immutable exclusion directive.
type Rule struct {
	Kind Kind
	// Pattern is the raw rule line as loaded.
	Pattern string
	// resolved is the root-resolved absolute path for ExactPath rules.
	resolved string
}

// RuleSet is an ordered sequence of rules evaluated top to bottom.
// The first matching rule wins; a match means the path is ignored.
type RuleSet struct {
	Rules []Rule
}

// ParseRule classifies one non-comment line into a typed rule.
// Relative literal paths are resolved against root.
func ParseRule(line, root string) Rule {
	switch {
	case strings.HasSuffix(line, "/*"):
		return Rule{Kind: DirectoryPrefix, Pattern: line}
	case strings.HasPrefix(line, "*."):
		return Rule{Kind: ExtensionGlob, Pattern: line}
	case strings.Contains(line, "*"):
		return Rule{Kind: GeneralGlob, Pattern: line}
	default:
		resolved := line
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(root, resolved)
		}
		return Rule{Kind: ExactPath, Pattern: line, resolved: filepath.Clean(resolved)}
	}
}

// ParseRules reads rule lines from r, skipping blanks and comments.
func ParseRules(r io.Reader, root string) (*RuleSet, error) {
	set := &RuleSet{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set.Rules = append(set.Rules, ParseRule(line, root))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

// Matches reports whether the candidate identified by its relative and
// absolute paths is ignored by this rule set.
func (s *RuleSet) Matches(rel, abs string) bool {
	if s == nil {
		return false
	}
	for _, rule := range s.Rules {
		if rule.matches(rel, abs) {
			return true
		}
	}
	return false
}

// Len returns the number of rules in the set.
func (s *RuleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Rules)
}

func (r Rule) matches(rel, abs string) bool {
	switch r.Kind {
	case ExactPath:
		return abs == r.resolved || rel == r.Pattern

	case DirectoryPrefix:
		prefix := strings.TrimSuffix(r.Pattern, "/*")
		return rel == prefix || strings.HasPrefix(rel, prefix+"/")

	case ExtensionGlob:
		return strings.HasSuffix(rel, r.Pattern[1:])

	case GeneralGlob:
		ok, err := doublestar.Match(r.Pattern, rel)
		if err != nil {
			logger := logging.GetLogger("ignore")
			logger.Warn().
				Str("pattern", r.Pattern).
				Err(err).
				Msg("Bad glob pattern, treating as non-matching")
			return false
		}
		return ok

	default:
		return false
	}
}
