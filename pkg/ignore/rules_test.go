package ignore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRuleClassification(t *testing.T) {
	tests := []struct {
		line string
		want Kind
	}{
		{"build/*", DirectoryPrefix},
		{"node_modules/*", DirectoryPrefix},
		{"*.log", ExtensionGlob},
		{"*.min.js", ExtensionGlob},
		{"test_*_old.py", GeneralGlob},
		{"src/*/gen.go", GeneralGlob},
		{"src/main.py", ExactPath},
		{"/abs/path/file.go", ExactPath},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			rule := ParseRule(tt.line, "/repo")
			assert.Equal(t, tt.want, rule.Kind)
		})
	}
}

func TestExactPathMatching(t *testing.T) {
	rule := ParseRule("src/foo.py", "/repo")

	assert.True(t, rule.matches("src/foo.py", "/repo/src/foo.py"))
	assert.False(t, rule.matches("src/foo.pyc", "/repo/src/foo.pyc"))
	assert.False(t, rule.matches("other/src/foo.py", "/repo/other/src/foo.py"))
}

func TestExactPathAbsoluteRule(t *testing.T) {
	rule := ParseRule("/repo/src/foo.py", "/repo")

	assert.True(t, rule.matches("src/foo.py", "/repo/src/foo.py"))
	assert.False(t, rule.matches("src/bar.py", "/repo/src/bar.py"))
}

func TestDirectoryPrefixMatching(t *testing.T) {
	rule := ParseRule("build/*", "/repo")

	assert.True(t, rule.matches("build/x.js", "/repo/build/x.js"))
	assert.True(t, rule.matches("build", "/repo/build"))
	assert.True(t, rule.matches("build/deep/y.js", "/repo/build/deep/y.js"))
	assert.False(t, rule.matches("buildx.js", "/repo/buildx.js"))
	assert.False(t, rule.matches("src/build.py", "/repo/src/build.py"))
}

func TestExtensionGlobMatching(t *testing.T) {
	rule := ParseRule("*.log", "/repo")

	assert.True(t, rule.matches("debug.log", "/repo/debug.log"))
	assert.True(t, rule.matches("deep/nested/err.log", "/repo/deep/nested/err.log"))
	assert.False(t, rule.matches("log.txt", "/repo/log.txt"))
	assert.False(t, rule.matches("catalog", "/repo/catalog"))
}

func TestGeneralGlobMatching(t *testing.T) {
	rule := ParseRule("test_*_old.py", "/repo")

	assert.True(t, rule.matches("test_auth_old.py", "/repo/test_auth_old.py"))
	assert.False(t, rule.matches("test_auth_new.py", "/repo/test_auth_new.py"))

	// Case-sensitive.
	assert.False(t, rule.matches("TEST_auth_old.py", "/repo/TEST_auth_old.py"))
}

func TestGeneralGlobBadPatternMatchesNothing(t *testing.T) {
	// An unterminated character class is a glob syntax error; the rule
	// must report non-matching instead of failing.
	rule := ParseRule("src/[*", "/repo")
	require.Equal(t, GeneralGlob, rule.Kind)

	assert.False(t, rule.matches("src/a.py", "/repo/src/a.py"))
	assert.False(t, rule.matches("src/[x", "/repo/src/[x"))
}

func TestRuleSetFirstMatchWins(t *testing.T) {
	set, err := ParseRules(strings.NewReader("*.md\nbuild/*\nsrc/keep.py\n"), "/repo")
	require.NoError(t, err)
	require.Equal(t, 3, set.Len())

	assert.True(t, set.Matches("README.md", "/repo/README.md"))
	assert.True(t, set.Matches("build/out.js", "/repo/build/out.js"))
	assert.True(t, set.Matches("src/keep.py", "/repo/src/keep.py"))
	assert.False(t, set.Matches("src/other.py", "/repo/src/other.py"))
}

func TestParseRulesSkipsCommentsAndBlanks(t *testing.T) {
	input := `
# processed batch
*.tmp

# another comment
src/app.py
`
	set, err := ParseRules(strings.NewReader(input), "/repo")
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
}

func TestNilRuleSetMatchesNothing(t *testing.T) {
	var set *RuleSet
	assert.False(t, set.Matches("anything.py", "/repo/anything.py"))
	assert.Equal(t, 0, set.Len())
}
