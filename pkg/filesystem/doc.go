// Package filesystem provides the OS-backed implementation of the
// types.FS interface. Tests use the in-memory implementation in
// pkg/testutil instead, which keeps the pipeline independent of the
// real filesystem.
package filesystem
