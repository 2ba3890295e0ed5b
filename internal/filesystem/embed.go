package filesystem

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// EmbedFileSystem implements FileSystemProvider for an embed.FS subtree.
// It lets callers read embedded assets, such as the init templates,
// through the same abstraction as real directories.
type EmbedFileSystem struct {
	embedFS embed.FS
	root    string // root path within the embed.FS, forward slashes
}

// NewEmbedFileSystem creates a new filesystem provider wrapping an embed.FS.
// The root parameter specifies the subdirectory within the embed.FS to
// treat as the root. All paths are normalized to forward slashes for
// consistency with embed.FS.
func NewEmbedFileSystem(embedFS embed.FS, root string) *EmbedFileSystem {
	return &EmbedFileSystem{
		embedFS: embedFS,
		root:    path.Clean(root),
	}
}

// resolve maps a caller path onto the embedded subtree.
func (efs *EmbedFileSystem) resolve(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	if p == "." || p == "" {
		return efs.root
	}
	if path.IsAbs(p) {
		// embed.FS has no absolute paths; pass through and let the read fail
		// with the underlying error.
		return path.Clean(p)
	}
	return path.Clean(path.Join(efs.root, p))
}

func (efs *EmbedFileSystem) ReadFile(filePath string) ([]byte, error) {
	content, err := efs.embedFS.ReadFile(efs.resolve(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return content, nil
}

func (efs *EmbedFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	entries, err := efs.embedFS.ReadDir(efs.resolve(dirPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dirPath, err)
	}

	// embed.FS returns entries sorted by filename
	result := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to get file info for %s: %w", entry.Name(), err)
		}
		result = append(result, info)
	}

	return result, nil
}

func (efs *EmbedFileSystem) Stat(statPath string) (FileInfo, error) {
	info, err := fs.Stat(efs.embedFS, efs.resolve(statPath))
	if err != nil {
		return nil, fmt.Errorf("failed to stat path %s: %w", statPath, err)
	}
	return info, nil
}
