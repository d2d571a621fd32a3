// Package testsupport loads JSON fixtures and compares results against golden
// files kept under a package's testdata directory.
package testsupport

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// UpdateEnv names the environment variable that rewrites golden files instead
// of comparing against them.
const UpdateEnv = "UPDATE_GOLDEN"

// LoadFixture loads test data from a fixture file.
// The path is relative to the test package directory.
func LoadFixture(t testing.TB, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture from %s: %v", path, err)
	}

	return data
}

// LoadFixtureJSON loads JSON test data from a fixture file and unmarshals it.
func LoadFixtureJSON(t testing.TB, path string, dest any) {
	t.Helper()

	data := LoadFixture(t, path)
	if err := json.Unmarshal(data, dest); err != nil {
		t.Fatalf("failed to unmarshal JSON fixture from %s: %v", path, err)
	}
}

// WriteGoldenJSON writes data as indented JSON to path, creating directories.
func WriteGoldenJSON(t testing.TB, path string, data any) {
	t.Helper()

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal JSON for golden file %s: %v", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, append(encoded, '\n'), 0o644); err != nil {
		t.Fatalf("failed to write golden file to %s: %v", path, err)
	}
}

// CompareGoldenJSON compares actual with the JSON stored at path. Both sides
// are compacted first, so formatting of the golden file does not matter.
// With UPDATE_GOLDEN set, or when the file is missing, the golden file is
// written from actual instead.
func CompareGoldenJSON(t testing.TB, path string, actual any) {
	t.Helper()

	if os.Getenv(UpdateEnv) != "" {
		WriteGoldenJSON(t, path, actual)
		return
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Logf("golden file %s does not exist, creating it", path)
			WriteGoldenJSON(t, path, actual)
			return
		}
		t.Fatalf("failed to read golden file %s: %v", path, err)
	}

	got, err := json.Marshal(actual)
	if err != nil {
		t.Fatalf("failed to marshal actual value: %v", err)
	}

	var want bytes.Buffer
	if err := json.Compact(&want, expected); err != nil {
		t.Fatalf("golden file %s is not valid JSON: %v", path, err)
	}

	if !bytes.Equal(want.Bytes(), got) {
		t.Errorf("output mismatch for %s:\nExpected:\n%s\nActual:\n%s", path, want.Bytes(), got)
	}
}

// FixturePath constructs a path to a fixture file relative to the testdata directory.
func FixturePath(filename string) string {
	return filepath.Join("testdata", filename)
}

// GoldenPath constructs a path to a golden file relative to the testdata directory.
func GoldenPath(filename string) string {
	return filepath.Join("testdata", "golden", filename)
}
