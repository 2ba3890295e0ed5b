package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryEntry is one file or directory of the virtual tree
type memoryEntry struct {
	absPath string
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// All paths use forward slashes regardless of the host platform.
type MemoryFileSystem struct {
	entries map[string]*memoryEntry // absolute path -> entry
	root    string
}

// NewMemoryFileSystem creates a new in-memory filesystem rooted at root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}

	mfs.entries[root] = &memoryEntry{
		absPath: root,
		info: &memoryFileInfo{
			name:    path.Base(root),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}

	return mfs
}

// AddFile adds a file to the virtual tree. A relative path is resolved
// against the root. Parent directories are created implicitly.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	absPath := mfs.resolve(filePath)
	contentBytes := []byte(content)

	mfs.entries[absPath] = &memoryEntry{
		absPath: absPath,
		content: contentBytes,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(contentBytes)),
			mode:    0644,
			modTime: time.Now(),
			isDir:   false,
		},
	}

	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an empty directory to the virtual tree.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.resolve(dirPath)

	mfs.entries[absPath] = &memoryEntry{
		absPath: absPath,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}

	mfs.ensureDirectoriesExist(absPath)
}

// resolve normalizes filePath to an absolute forward-slash path inside
// the virtual tree.
func (mfs *MemoryFileSystem) resolve(filePath string) string {
	filePath = filepath.ToSlash(filePath)
	if filePath == "." || filePath == "" {
		return mfs.root
	}
	if !strings.HasPrefix(filePath, "/") {
		filePath = path.Join(mfs.root, filePath)
	}
	return path.Clean(filePath)
}

// ensureDirectoriesExist creates directory entries for all parents of absPath.
func (mfs *MemoryFileSystem) ensureDirectoriesExist(absPath string) {
	dir := path.Dir(absPath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}

	if _, exists := mfs.entries[dir]; exists {
		return
	}

	mfs.entries[dir] = &memoryEntry{
		absPath: dir,
		info: &memoryFileInfo{
			name:    path.Base(dir),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}

	mfs.ensureDirectoriesExist(dir)
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	absPath := mfs.resolve(filePath)

	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("file not found: %s", filePath)
	}
	if entry.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	return entry.content, nil
}

// ReadDir implements FileSystemProvider.ReadDir. Entries are the direct
// children of the directory, sorted by name.
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	absPath := mfs.resolve(dirPath)

	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s", dirPath)
	}
	if !entry.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	var result []FileInfo
	for entryPath, e := range mfs.entries {
		if entryPath != absPath && path.Dir(entryPath) == absPath {
			result = append(result, e.info)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})

	return result, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	absPath := mfs.resolve(statPath)

	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("path not found: %s", statPath)
	}

	return entry.info, nil
}
