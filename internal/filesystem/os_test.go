package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_ReadFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "algorithms.txt")
	expected := "aes => AES"
	os.WriteFile(filePath, []byte(expected), 0644)

	fs := NewOSFileSystem()

	data, err := fs.ReadFile(filePath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != expected {
		t.Errorf("ReadFile() = %q, want %q", string(data), expected)
	}
}

func TestOSFileSystem_ReadFile_Nonexistent(t *testing.T) {
	fs := NewOSFileSystem()

	_, err := fs.ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Error("ReadFile(nonexistent) should return error")
	}
}

func TestOSFileSystem_ReadDir(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "nfrs.txt"), []byte("x"), 0644)
	os.WriteFile(filepath.Join(dir, "backend.txt"), []byte("y"), 0644)

	fs := NewOSFileSystem()

	entries, err := fs.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ReadDir() returned %d entries, want 2", len(entries))
	}
	// os.ReadDir sorts by filename
	if entries[0].Name() != "backend.txt" || entries[1].Name() != "nfrs.txt" {
		t.Errorf("ReadDir() order = [%s, %s], want [backend.txt, nfrs.txt]",
			entries[0].Name(), entries[1].Name())
	}
}

func TestOSFileSystem_ReadDir_Nonexistent(t *testing.T) {
	fs := NewOSFileSystem()

	_, err := fs.ReadDir(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("ReadDir(nonexistent) should return error")
	}
}

func TestOSFileSystem_Stat_File(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "diagram.xml")
	os.WriteFile(filePath, []byte("<mxfile/>"), 0644)

	fs := NewOSFileSystem()

	info, err := fs.Stat(filePath)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.IsDir() {
		t.Error("Stat(file) should not be a directory")
	}
	if info.Name() != "diagram.xml" {
		t.Errorf("Stat().Name() = %q, want %q", info.Name(), "diagram.xml")
	}
}

func TestOSFileSystem_Stat_Directory(t *testing.T) {
	dir := t.TempDir()
	fs := NewOSFileSystem()

	info, err := fs.Stat(dir)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Error("Stat(dir) should be a directory")
	}
}

func TestOSFileSystem_Stat_Nonexistent(t *testing.T) {
	fs := NewOSFileSystem()

	_, err := fs.Stat(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("Stat(nonexistent) should return error")
	}
}
