package tabfile

import (
	"os"
	"path"
	"testing"
)

// createTestFile writes contents to a file in a per-test temporary
// directory and returns its path. Cleanup is automatic via t.TempDir.
func createTestFile(t *testing.T, contents string) string {
	t.Helper()

	filepath := path.Join(t.TempDir(), "test.tsv")
	if err := os.WriteFile(filepath, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	return filepath
}
