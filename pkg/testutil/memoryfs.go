package testutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/codepdf/pkg/types"
)

// MemoryFS is an in-memory implementation of types.FS for tests.
// Paths are stored slash-cleaned; directories exist implicitly once a
// file is created beneath them and explicitly after MkdirAll.
type MemoryFS struct {
	files map[string][]byte
	dirs  map[string]bool
}

// NewMemoryFS creates an empty in-memory filesystem
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// NewMemoryFSWithFiles creates an in-memory filesystem pre-populated
// with the given path -> content map.
func NewMemoryFSWithFiles(files map[string]string) *MemoryFS {
	m := NewMemoryFS()
	for path, content := range files {
		_ = m.WriteFile(path, []byte(content), 0644)
	}
	return m
}

func clean(name string) string {
	return filepath.Clean(name)
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	name = clean(name)
	if data, ok := m.files[name]; ok {
		return &memFileInfo{name: filepath.Base(name), size: int64(len(data))}, nil
	}
	if m.isDir(name) {
		return &memFileInfo{name: filepath.Base(name), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	name = clean(name)
	data, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemoryFS) WriteFile(name string, data []byte, _ fs.FileMode) error {
	name = clean(name)
	m.files[name] = append([]byte(nil), data...)
	for dir := filepath.Dir(name); dir != "." && dir != "/" && dir != ""; dir = filepath.Dir(dir) {
		m.dirs[dir] = true
	}
	return nil
}

func (m *MemoryFS) AppendFile(name string, data []byte, perm fs.FileMode) error {
	name = clean(name)
	existing := m.files[name]
	return m.WriteFile(name, append(append([]byte(nil), existing...), data...), perm)
}

func (m *MemoryFS) MkdirAll(path string, _ fs.FileMode) error {
	path = clean(path)
	for dir := path; dir != "." && dir != "/" && dir != ""; dir = filepath.Dir(dir) {
		m.dirs[dir] = true
	}
	return nil
}

func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	name = clean(name)
	if !m.isDir(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	seen := make(map[string]bool)
	var entries []fs.DirEntry
	add := func(child string, dir bool) {
		if seen[child] {
			return
		}
		seen[child] = true
		entries = append(entries, &memDirEntry{name: child, dir: dir})
	}

	prefix := name + string(filepath.Separator)
	if name == "/" {
		prefix = "/"
	}
	for path := range m.files {
		if rest, ok := strings.CutPrefix(path, prefix); ok {
			parts := strings.SplitN(rest, string(filepath.Separator), 2)
			add(parts[0], len(parts) > 1)
		}
	}
	for path := range m.dirs {
		if rest, ok := strings.CutPrefix(path, prefix); ok {
			parts := strings.SplitN(rest, string(filepath.Separator), 2)
			add(parts[0], true)
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (m *MemoryFS) isDir(name string) bool {
	if m.dirs[name] {
		return true
	}
	// Root of any populated tree counts as a directory.
	prefix := name + string(filepath.Separator)
	if name == "/" {
		prefix = "/"
	}
	for path := range m.files {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

var _ types.FS = (*MemoryFS)(nil)

type memFileInfo struct {
	name string
	size int64
	dir  bool
}

func (f *memFileInfo) Name() string { return f.name }
func (f *memFileInfo) Size() int64  { return f.size }
func (f *memFileInfo) Mode() fs.FileMode {
	if f.dir {
		return fs.ModeDir | 0755
	}
	return 0644
}
func (f *memFileInfo) ModTime() time.Time { return time.Time{} }
func (f *memFileInfo) IsDir() bool        { return f.dir }
func (f *memFileInfo) Sys() interface{}   { return nil }

type memDirEntry struct {
	name string
	dir  bool
}

func (e *memDirEntry) Name() string { return e.name }
func (e *memDirEntry) IsDir() bool  { return e.dir }
func (e *memDirEntry) Type() fs.FileMode {
	if e.dir {
		return fs.ModeDir
	}
	return 0
}
func (e *memDirEntry) Info() (fs.FileInfo, error) {
	return &memFileInfo{name: e.name, dir: e.dir}, nil
}
