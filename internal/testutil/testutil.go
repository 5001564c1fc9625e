// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// FileTo writes contents to rel under dir, creating parent directories.
// t is the active test; it returns the absolute path of the written file.
func FileTo(t *testing.T, dir string, rel string, contents string) string {
	t.Helper()
	target := filepath.Join(dir, rel)
	if parent := filepath.Dir(target); parent != "" {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", parent, err)
		}
	}
	if err := os.WriteFile(target, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", target, err)
	}
	return target
}

// DirTo creates the directory rel under dir along with any missing parents.
// t is the active test; it returns the absolute path of the created directory.
func DirTo(t *testing.T, dir string, rel string) string {
	t.Helper()
	target := filepath.Join(dir, rel)
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", target, err)
	}
	return target
}

// ReadFile reads the file at path and returns its contents as a string.
// t is the active test; a read failure fails the test.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
