// Package filesystem abstracts read access to the host filesystem.
//
// Available implementations:
//   - OSFileSystem: Reads from the real filesystem
//   - MemoryFileSystem: Serves an in-memory tree (useful for testing)
//
// The mapping store and the generator service take a FileSystemProvider so
// tests can exercise missing-dictionary and malformed-diagram paths without
// touching the disk.
package filesystem
