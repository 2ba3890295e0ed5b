package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/uvl-tools/istar2uvl/internal/config"
	"github.com/uvl-tools/istar2uvl/pkg/istar2uvl"
)

//go:embed all:templates
var templatesFS embed.FS

// Files the init command itself manages. Their presence alone does not
// make a target directory count as occupied.
var managedFiles = map[string]bool{
	config.ConfigFileName: true,
	".env":                true,
}

// Scaffolder creates starter configuration directories from embedded templates.
type Scaffolder struct {
	logger istar2uvl.Logger
}

// NewScaffolder creates a new Scaffolder instance.
// Panics if logger is nil.
func NewScaffolder(logger istar2uvl.Logger) *Scaffolder {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scaffolder{
		logger: logger,
	}
}

// CreateProject materializes a template into targetPath.
//
// The target must not exist, be empty, or contain only managed files.
// projectName replaces the {{PROJECT_NAME}} placeholder in template
// content, so generated READMEs can reference the directory they live in.
func (s *Scaffolder) CreateProject(projectName, templateName, targetPath string) error {
	templatePath := fmt.Sprintf("templates/%s", templateName)
	if _, err := templatesFS.ReadDir(templatePath); err != nil {
		return fmt.Errorf("template '%s' not found: %w", templateName, istar2uvl.ErrTemplateNotFound)
	}

	isEmpty, err := isDirectoryEmpty(targetPath)
	if err != nil {
		return fmt.Errorf("failed to check target directory: %w", err)
	}
	if !isEmpty {
		return fmt.Errorf("target directory '%s' is not empty\n\nistar2uvl init requires an empty directory to avoid overwriting existing files.\n\nOptions:\n• Choose a different location\n• Remove existing files manually\n• Use a new directory name", targetPath)
	}

	if err := os.MkdirAll(targetPath, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	s.logger.Verbose("Creating project '%s' at %s with template '%s'", projectName, targetPath, templateName)

	if err := s.copyTemplateFiles(templatePath, targetPath, projectName); err != nil {
		return fmt.Errorf("failed to copy template files: %w", err)
	}

	s.logger.Verbose("Project created successfully")
	return nil
}

// copyTemplateFiles recursively copies files from embedded template to target directory
func (s *Scaffolder) copyTemplateFiles(templatePath, targetPath, projectName string) error {
	return fs.WalkDir(templatesFS, templatePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == templatePath {
			return nil
		}

		relPath := strings.TrimPrefix(path, templatePath+"/")
		targetFilePath := filepath.Join(targetPath, filepath.FromSlash(relPath))

		if d.IsDir() {
			s.logger.Verbose("Creating directory: %s", relPath)
			return os.MkdirAll(targetFilePath, 0755)
		}

		content, err := templatesFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		processedContent := s.processTemplate(string(content), projectName)

		s.logger.Verbose("Creating file: %s", relPath)
		if err := os.WriteFile(targetFilePath, []byte(processedContent), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", targetFilePath, err)
		}

		return nil
	})
}

// processTemplate replaces template variables in content
func (s *Scaffolder) processTemplate(content, projectName string) string {
	content = strings.ReplaceAll(content, "{{PROJECT_NAME}}", projectName)
	return content
}

// ListTemplates returns available template names
func ListTemplates() ([]string, error) {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil, err
	}

	var templates []string
	for _, entry := range entries {
		if entry.IsDir() {
			templates = append(templates, entry.Name())
		}
	}

	return templates, nil
}

// IsValidTemplate reports whether name matches an embedded template.
func IsValidTemplate(name string) bool {
	templates, err := ListTemplates()
	if err != nil {
		return false
	}
	for _, template := range templates {
		if template == name {
			return true
		}
	}
	return false
}

// TemplateInfo describes one embedded template set.
type TemplateInfo struct {
	Name   string
	Files  []string
	Readme string
}

// DescribeTemplate returns the file listing and README content of an
// embedded template.
func DescribeTemplate(name string) (*TemplateInfo, error) {
	templatePath := "templates/" + name
	if _, err := templatesFS.ReadDir(templatePath); err != nil {
		return nil, fmt.Errorf("template '%s' not found: %w", name, istar2uvl.ErrTemplateNotFound)
	}

	info := &TemplateInfo{Name: name}
	err := fs.WalkDir(templatesFS, templatePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, templatePath+"/")
		info.Files = append(info.Files, relPath)

		if relPath == "README.md" {
			content, err := templatesFS.ReadFile(path)
			if err != nil {
				return err
			}
			info.Readme = string(content)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(info.Files)
	return info, nil
}

// isDirectoryEmpty checks if a directory is empty or doesn't exist.
// Returns (true, nil) if the directory doesn't exist, is empty, or holds
// only managed files.
// Returns (false, nil) if it contains anything else.
// Returns (false, error) if the check itself fails.
func isDirectoryEmpty(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check directory: %w", err)
	}

	if !info.IsDir() {
		return false, fmt.Errorf("path exists but is not a directory")
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return false, fmt.Errorf("failed to read directory: %w", err)
	}

	for _, entry := range entries {
		if !managedFiles[entry.Name()] {
			return false, nil
		}
	}
	return true, nil
}

// BuildFileTree creates a visual tree representation of the directory
// structure, for display after a successful init.
func BuildFileTree(rootPath string) (string, error) {
	var sb strings.Builder

	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		absPath = rootPath
	}

	sb.WriteString(absPath + "/\n")

	err = filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if path == rootPath {
			return nil
		}

		relPath, err := filepath.Rel(rootPath, path)
		if err != nil {
			return err
		}

		depth := strings.Count(relPath, string(os.PathSeparator))

		indent := strings.Repeat("│   ", depth)

		parentDir := filepath.Dir(path)
		entries, err := os.ReadDir(parentDir)
		if err != nil {
			return err
		}

		isLast := len(entries) > 0 && entries[len(entries)-1].Name() == filepath.Base(path)

		branch := "├── "
		if isLast {
			branch = "└── "
			if depth > 0 {
				indent = strings.Repeat("│   ", depth-1) + "    "
			}
		}

		name := info.Name()
		if info.IsDir() {
			name += "/"
		}

		sb.WriteString(indent + branch + name + "\n")

		return nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to build file tree: %w", err)
	}

	return sb.String(), nil
}
