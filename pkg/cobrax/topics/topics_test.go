package topics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTopic(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadFindsTopics(t *testing.T) {
	dir := t.TempDir()
	writeTopic(t, dir, "ignore-rules.md", "# Ignore rules\n")
	writeTopic(t, dir, "pagination.txt", "How pagination works.\n")
	writeTopic(t, dir, "notes.json", "{}")

	m, err := Load(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"ignore-rules", "pagination"}, m.Names())

	topic, ok := m.Get("ignore-rules")
	require.True(t, ok)
	assert.Equal(t, "# Ignore rules\n", topic.Content)
}

func TestLoadMissingDirIsEmpty(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "nope"), nil)
	require.NoError(t, err)
	assert.Empty(t, m.Names())
}

func TestGetToleratesFlagSpelling(t *testing.T) {
	dir := t.TempDir()
	writeTopic(t, dir, "update-ignore.md", "details\n")

	m, err := Load(dir, nil)
	require.NoError(t, err)

	_, ok := m.Get("--update-ignore")
	assert.True(t, ok)
}

func TestPlainRendererPassthrough(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "x", r.Render("x", ".md"))
}

func TestGlamourRendererLeavesTextAlone(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}
