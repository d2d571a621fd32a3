package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_SeedAndSearch(t *testing.T) {
	db := filepath.Join(t.TempDir(), "gym.db")
	base := []string{"--db", db, "--log-level", "error"}

	out, err := run(t, append(base, "seed")...)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if !strings.Contains(out, "seeded 8 records") {
		t.Errorf("unexpected seed output %q", out)
	}

	out, err = run(t, append(base, "search", "users", "garcia")...)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out, "Ana García") || strings.Contains(out, "Luis Pérez") {
		t.Errorf("expected only Ana García, got:\n%s", out)
	}
	if !strings.Contains(out, "1 users") {
		t.Errorf("expected a count line, got:\n%s", out)
	}

	out, err = run(t, append(base, "search", "trainers")...)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out, "3 trainers") || !strings.Contains(out, "N/A") {
		t.Errorf("expected all trainers with a missing hire date, got:\n%s", out)
	}
}

func TestCLI_AddAndDelete(t *testing.T) {
	db := filepath.Join(t.TempDir(), "gym.db")
	base := []string{"--db", db, "--log-level", "error"}

	out, err := run(t, append(base, "add", "member", "--first", "Zoë", "--last", "Çelik", "--join-date", "09/10/2024")...)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	fields := strings.Fields(out)
	if len(fields) != 3 || fields[0] != "created" || fields[1] != "user" {
		t.Fatalf("unexpected add output %q", out)
	}
	id := fields[2]

	out, err = run(t, append(base, "search", "members", "zoe", "celik")...)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out, "Zoë Çelik") || !strings.Contains(out, "09/10/2024") {
		t.Errorf("expected the new member, got:\n%s", out)
	}

	if _, err := run(t, append(base, "delete", "users", id)...); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	out, err = run(t, append(base, "search", "users")...)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out, "0 users") {
		t.Errorf("expected no members after delete, got:\n%s", out)
	}
}

func TestCLI_Errors(t *testing.T) {
	db := filepath.Join(t.TempDir(), "gym.db")
	base := []string{"--db", db, "--log-level", "error"}

	if _, err := run(t, append(base, "search", "visitors")...); !goerrors.IsValidation(err) {
		t.Errorf("expected validation error for unknown kind, got %v", err)
	}
	if _, err := run(t, append(base, "add", "trainer", "--first", "Ana", "--hire-date", "2024-01-01")...); !goerrors.IsValidation(err) {
		t.Errorf("expected validation error for bad date, got %v", err)
	}
	if _, err := run(t, append(base, "add", "admin", "--role", "desk")...); !goerrors.IsValidation(err) {
		t.Errorf("expected validation error for missing username, got %v", err)
	}
	if _, err := run(t, append(base, "delete", "users", "not-a-uuid")...); !goerrors.IsValidation(err) {
		t.Errorf("expected validation error for bad id, got %v", err)
	}
}
