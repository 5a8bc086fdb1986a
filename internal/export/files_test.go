package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteFile(dir, "2014-03-05-hello-world.markdown", "---\ntitle: x\n---\n")
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if want := filepath.Join(dir, "2014-03-05-hello-world.markdown"); path != want {
		t.Errorf("WriteFile() path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	if string(data) != "---\ntitle: x\n---\n" {
		t.Errorf("file content = %q", string(data))
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	dir := t.TempDir()

	if _, err := WriteFile(dir, "comments-42.html", "a much longer first version"); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	path, err := WriteFile(dir, "comments-42.html", "short")
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	if string(data) != "short" {
		t.Errorf("file content = %q, want %q", string(data), "short")
	}
}

func TestWriteFile_MissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")

	path, err := WriteFile(dir, "x.markdown", "x")
	if err == nil {
		t.Fatal("WriteFile() expected error for missing directory")
	}

	var werr *WriteError
	if !errors.As(err, &werr) {
		t.Fatalf("error = %T, want *WriteError", err)
	}
	if werr.Path != path {
		t.Errorf("WriteError.Path = %q, want %q", werr.Path, path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("errors.Is(err, os.ErrNotExist) = false for %v", err)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "_posts", "nested")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", dir)
	}

	// Existing directories are fine
	if err := EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir() on existing dir error = %v", err)
	}
}
