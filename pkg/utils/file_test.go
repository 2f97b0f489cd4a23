package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileWithOwnership(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "id_ed25519.pub.png")

	if err := WriteFileWithOwnership(testFile, []byte("first"), 0644); err != nil {
		t.Fatalf("WriteFileWithOwnership failed: %v", err)
	}
	// A second write silently replaces the first one
	if err := WriteFileWithOwnership(testFile, []byte("second"), 0644); err != nil {
		t.Fatalf("WriteFileWithOwnership (overwrite) failed: %v", err)
	}

	content, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != "second" {
		t.Errorf("Content mismatch: got %q, want %q", string(content), "second")
	}
}

func TestWriteFileWithOwnershipMissingDir(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "missing", "out.png")

	if err := WriteFileWithOwnership(testFile, []byte("x"), 0644); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}

func TestMkdirAllWithOwnership(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := MkdirAllWithOwnership(nested, 0755); err != nil {
		t.Fatalf("MkdirAllWithOwnership failed: %v", err)
	}

	info, err := os.Stat(nested)
	if err != nil {
		t.Fatalf("Directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected directory, got file")
	}
}

func TestGetActualUserWithoutSudo(t *testing.T) {
	t.Setenv("SUDO_USER", "")

	_, home, err := GetActualUser()
	if err != nil {
		t.Skipf("no home directory in this environment: %v", err)
	}
	if home == "" {
		t.Error("GetActualUser returned an empty home directory")
	}
}

func TestFixFileOwnershipNoSudo(t *testing.T) {
	t.Setenv("SUDO_USER", "")

	if err := FixFileOwnership(filepath.Join(t.TempDir(), "does-not-matter")); err != nil {
		t.Errorf("FixFileOwnership without sudo should be a no-op, got %v", err)
	}
}
