package addignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/codepdf/pkg/config"
	"github.com/arthur-debert/codepdf/pkg/testutil"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.IgnoreFile = "/state/processed_files.txt"
	return cfg
}

func TestAddIgnoreCreatesFile(t *testing.T) {
	fs := testutil.NewMemoryFS()

	result, err := AddIgnore(Options{
		Config:   testConfig(),
		FS:       fs,
		Patterns: []string{"*.md", "build/*"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, "/state/processed_files.txt", result.IgnorePath)

	data, err := fs.ReadFile("/state/processed_files.txt")
	require.NoError(t, err)
	assert.Equal(t, "*.md\nbuild/*\n", string(data))
}

func TestAddIgnoreSkipsDuplicates(t *testing.T) {
	fs := testutil.NewMemoryFSWithFiles(map[string]string{
		"/state/processed_files.txt": "*.md\n",
	})

	result, err := AddIgnore(Options{
		Config:   testConfig(),
		FS:       fs,
		Patterns: []string{"*.md", "*.txt", "*.md"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Added)

	data, err := fs.ReadFile("/state/processed_files.txt")
	require.NoError(t, err)
	assert.Equal(t, "*.md\n*.txt\n", string(data))
}

func TestAddIgnoreRequiresPatterns(t *testing.T) {
	_, err := AddIgnore(Options{Config: testConfig(), FS: testutil.NewMemoryFS()})
	assert.Error(t, err)
}
