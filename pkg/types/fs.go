package types

import "io/fs"

// FS is the narrow filesystem interface the pipeline depends on.
// Production code uses the OS implementation in pkg/filesystem; tests
// use the in-memory implementation in pkg/testutil.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	// AppendFile appends data to name, creating it if necessary.
	AppendFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
}
