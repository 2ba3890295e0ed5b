package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// resetInitFlags resets the init flag globals between tests.
func resetInitFlags() {
	initTemplate = "basic"
	initList = false
	if flag := initCmd.Flags().Lookup("template"); flag != nil {
		flag.Changed = false
	}
}

// pinInitTemplate sets the template flag the way the command line would,
// so the interactive selector is skipped.
func pinInitTemplate(t *testing.T, name string) {
	t.Helper()
	if err := initCmd.Flags().Set("template", name); err != nil {
		t.Fatalf("set template flag: %v", err)
	}
}

func TestRunInit_BasicTemplate(t *testing.T) {
	resetInitFlags()
	targetDir := t.TempDir()
	configDir := filepath.Join(targetDir, "config")

	pinInitTemplate(t, "basic")
	err := initCmd.RunE(initCmd, []string{configDir})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	for _, name := range []string{"algorithms.txt", "nfrs.txt", "backend.txt", "integration.txt", "README.md"} {
		path := filepath.Join(configDir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Errorf("Expected %s to exist", name)
		}
	}
}

func TestRunInit_ChemistryTemplate(t *testing.T) {
	resetInitFlags()
	targetDir := t.TempDir()
	configDir := filepath.Join(targetDir, "config")

	pinInitTemplate(t, "chemistry")
	err := initCmd.RunE(initCmd, []string{configDir})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(configDir, "algorithms.txt"))
	if err != nil {
		t.Fatalf("reading algorithms.txt: %v", err)
	}
	if !strings.Contains(string(data), "molecular dynamics") {
		t.Errorf("Expected chemistry keywords in algorithms.txt, got:\n%s", data)
	}
}

func TestRunInit_InvalidTemplate(t *testing.T) {
	resetInitFlags()
	targetDir := t.TempDir()
	configDir := filepath.Join(targetDir, "config")

	pinInitTemplate(t, "nonexistent")
	err := initCmd.RunE(initCmd, []string{configDir})
	if err == nil {
		t.Fatal("Expected error for invalid template")
	}
	if !strings.Contains(err.Error(), "invalid template") {
		t.Errorf("Expected 'invalid template' error, got: %v", err)
	}
}

func TestRunInit_NonEmptyDirectory(t *testing.T) {
	resetInitFlags()
	targetDir := t.TempDir()
	os.WriteFile(filepath.Join(targetDir, "existing.txt"), []byte("data"), 0644)

	pinInitTemplate(t, "basic")
	err := initCmd.RunE(initCmd, []string{targetDir})
	if err == nil {
		t.Fatal("Expected error for non-empty directory")
	}
}

func TestRunInit_ExistingEmptyDirectory(t *testing.T) {
	resetInitFlags()
	targetDir := t.TempDir()
	emptySubdir := filepath.Join(targetDir, "empty")
	os.MkdirAll(emptySubdir, 0755)

	pinInitTemplate(t, "basic")
	err := initCmd.RunE(initCmd, []string{emptySubdir})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	nfrs := filepath.Join(emptySubdir, "nfrs.txt")
	if _, err := os.Stat(nfrs); os.IsNotExist(err) {
		t.Error("Expected nfrs.txt to exist")
	}
}

func TestRunInit_ListFlag(t *testing.T) {
	resetInitFlags()
	initList = true
	defer resetInitFlags()

	err := initCmd.RunE(initCmd, []string{})
	if err != nil {
		t.Fatalf("Expected no error in list mode, got: %v", err)
	}
}
