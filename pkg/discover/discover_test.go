package discover

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/codepdf/pkg/ignore"
	"github.com/arthur-debert/codepdf/pkg/testutil"
)

func relPaths(t *testing.T, fsFiles map[string]string, root string, opts Options) []string {
	t.Helper()
	fs := testutil.NewMemoryFSWithFiles(fsFiles)
	candidates, err := Discover(fs, root, opts)
	require.NoError(t, err)
	var rels []string
	for _, c := range candidates {
		rels = append(rels, c.RelativePath)
	}
	return rels
}

func TestDiscoverBasic(t *testing.T) {
	rels := relPaths(t, map[string]string{
		"/repo/main.py":       "print()",
		"/repo/lib/util.js":   "x",
		"/repo/notes.txt":     "n",
		"/repo/image.png":     "binary",
		"/repo/session.cache": "c",
		"/repo/trace.tmp":     "t",
		"/repo/.hidden.py":    "h",
	}, "/repo", Options{})

	assert.Equal(t, []string{"lib/util.js", "main.py", "notes.txt"}, rels)
}

func TestDiscoverMissingRoot(t *testing.T) {
	fs := testutil.NewMemoryFS()
	candidates, err := Discover(fs, "/nowhere", Options{})
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestDiscoverDeterministicOrder(t *testing.T) {
	files := map[string]string{
		"/repo/z.py":     "z",
		"/repo/a.py":     "a",
		"/repo/m/mid.go": "m",
		"/repo/b/c.rb":   "c",
	}
	first := relPaths(t, files, "/repo", Options{})
	second := relPaths(t, files, "/repo", Options{})

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a.py", "b/c.rb", "m/mid.go", "z.py"}, first)
}

func TestDiscoverMaxFilesAfterSort(t *testing.T) {
	rels := relPaths(t, map[string]string{
		"/repo/c.py": "c",
		"/repo/a.py": "a",
		"/repo/b.py": "b",
	}, "/repo", Options{MaxFiles: 2})

	// Truncation happens post-sort: always the lexicographic head.
	assert.Equal(t, []string{"a.py", "b.py"}, rels)
}

func TestDiscoverAppliesIgnoreRules(t *testing.T) {
	set, err := ignore.ParseRules(strings.NewReader("*.md\n"), "/repo")
	require.NoError(t, err)

	rels := relPaths(t, map[string]string{
		"/repo/a.py": strings.Repeat("line\n", 10),
		"/repo/b.md": strings.Repeat("line\n", 5),
	}, "/repo", Options{Rules: set})

	assert.Equal(t, []string{"a.py"}, rels)
}

func TestDiscoverExcludedDirs(t *testing.T) {
	rels := relPaths(t, map[string]string{
		"/repo/app.py":          "a",
		"/repo/tooling/self.py": "s",
	}, "/repo", Options{ExcludeDirs: []string{"/repo/tooling"}})

	assert.Equal(t, []string{"app.py"}, rels)
}

func TestDiscoverSkipsHiddenDirectories(t *testing.T) {
	rels := relPaths(t, map[string]string{
		"/repo/src/ok.py":       "o",
		"/repo/.git/config.txt": "g",
	}, "/repo", Options{})

	assert.Equal(t, []string{"src/ok.py"}, rels)
}

func TestReadContentUTF8(t *testing.T) {
	fs := testutil.NewMemoryFSWithFiles(map[string]string{
		"/repo/a.py": "print('héllo')",
	})

	content, err := ReadContent(fs, "/repo/a.py")
	require.NoError(t, err)
	assert.Equal(t, "print('héllo')", content)
}

func TestReadContentLatin1Fallback(t *testing.T) {
	fs := testutil.NewMemoryFS()
	// 0xE9 is 'é' in Latin-1 and invalid as a standalone UTF-8 byte.
	require.NoError(t, fs.WriteFile("/repo/legacy.txt", []byte{'c', 'a', 'f', 0xE9}, 0644))

	content, err := ReadContent(fs, "/repo/legacy.txt")
	require.NoError(t, err)
	assert.Equal(t, "café", content)
}

func TestReadContentMissingFile(t *testing.T) {
	fs := testutil.NewMemoryFS()
	_, err := ReadContent(fs, "/repo/gone.py")
	assert.Error(t, err)
}
