package mapping

import (
	"path/filepath"
	"strings"

	"github.com/uvl-tools/istar2uvl/internal/filesystem"
	"github.com/uvl-tools/istar2uvl/internal/label"
	"github.com/uvl-tools/istar2uvl/pkg/istar2uvl"
)

// Store loads the category dictionaries that drive keyword classification.
// Store is safe for concurrent use as long as the provided filesystem
// provider and logger are also thread-safe.
type Store struct {
	fsProvider filesystem.FileSystemProvider
	logger     istar2uvl.Logger
}

// NewStore creates a store reading from the OS filesystem.
// Panics if logger is nil.
func NewStore(logger istar2uvl.Logger) *Store {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Store{
		fsProvider: filesystem.NewOSFileSystem(),
		logger:     logger,
	}
}

// NewStoreWithFS creates a store with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if logger or fsProvider is nil.
func NewStoreWithFS(logger istar2uvl.Logger, fsProvider filesystem.FileSystemProvider) *Store {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Store{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// LoadAll loads the four fixed categories from configDir, resolving each
// category name to <configDir>/<category>.txt. Every category is present
// in the result; missing sources come back as empty tables.
func (s *Store) LoadAll(configDir string) istar2uvl.MappingSet {
	if _, err := s.fsProvider.Stat(configDir); err != nil {
		s.logger.Verbose("configuration directory %s not accessible (%v), all dictionaries empty", configDir, err)
	} else {
		s.noteUnknownFiles(configDir)
	}

	set := istar2uvl.MappingSet{}
	for _, category := range istar2uvl.Categories() {
		path := filepath.Join(configDir, category+istar2uvl.MappingFileExtension)
		table := s.LoadCategory(path)
		s.logger.Verbose("category %s: %d entries", category, len(table))
		set[category] = table
	}
	return set
}

// LoadCategory reads one dictionary file. A missing or unreadable file is
// not an error: the category is simply empty. Lines have the form
//
//	key => Feature
//
// Keys are normalized the same way diagram labels are; features keep their
// exact spelling. Blank lines and #-comments are ignored; lines without
// the delimiter, or with an empty key or feature, are skipped with a
// verbose note.
func (s *Store) LoadCategory(path string) istar2uvl.MappingTable {
	content, err := s.fsProvider.ReadFile(path)
	if err != nil {
		s.logger.Verbose("dictionary %s not readable (%v), treating category as empty", path, err)
		return istar2uvl.MappingTable{}
	}
	return s.parseTable(string(content), path)
}

func (s *Store) parseTable(content string, path string) istar2uvl.MappingTable {
	table := istar2uvl.MappingTable{}

	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		// Split at the first delimiter so feature names may contain one
		rawKey, rawFeature, found := strings.Cut(trimmed, istar2uvl.MappingDelimiter)
		if !found {
			s.logger.Verbose("%s:%d: skipping line without %q delimiter", path, i+1, istar2uvl.MappingDelimiter)
			continue
		}

		key := label.Normalize(rawKey)
		feature := strings.TrimSpace(rawFeature)
		if key == "" || feature == "" {
			s.logger.Verbose("%s:%d: skipping mapping with empty key or feature", path, i+1)
			continue
		}

		table[key] = feature
	}

	return table
}

// noteUnknownFiles logs dictionary-looking files in configDir that no
// category will ever read.
func (s *Store) noteUnknownFiles(configDir string) {
	entries, err := s.fsProvider.ReadDir(configDir)
	if err != nil {
		return
	}

	known := make(map[string]bool)
	for _, category := range istar2uvl.Categories() {
		known[category+istar2uvl.MappingFileExtension] = true
	}

	for _, entry := range entries {
		if entry.IsDir() || known[entry.Name()] {
			continue
		}
		if filepath.Ext(entry.Name()) == istar2uvl.MappingFileExtension {
			s.logger.Verbose("ignoring %s: not a known category dictionary", filepath.Join(configDir, entry.Name()))
		}
	}
}

// Merge layers override entries over the loaded dictionaries without
// mutating either input. Override keys are expected in normalized form.
func Merge(base, overrides istar2uvl.MappingSet) istar2uvl.MappingSet {
	merged := istar2uvl.MappingSet{}
	for category, table := range base {
		copied := make(istar2uvl.MappingTable, len(table))
		for key, feature := range table {
			copied[key] = feature
		}
		merged[category] = copied
	}

	for category, table := range overrides {
		target, ok := merged[category]
		if !ok {
			target = istar2uvl.MappingTable{}
			merged[category] = target
		}
		for key, feature := range table {
			target[key] = feature
		}
	}

	return merged
}
