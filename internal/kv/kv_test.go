package kv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// exerciseStorage runs the behavior every backend must share.
func exerciseStorage(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing): ok=%v err=%v, want absent", ok, err)
	}

	if err := s.Set(ctx, "hs_tracker_v2", `[{"id":"s1"}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, ok, err := s.Get(ctx, "hs_tracker_v2")
	if err != nil || !ok {
		t.Fatalf("Get after Set: ok=%v err=%v", ok, err)
	}
	if v != `[{"id":"s1"}]` {
		t.Errorf("value: got %q", v)
	}

	if err := s.Set(ctx, "hs_tracker_v2", "second"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	if v, _, _ := s.Get(ctx, "hs_tracker_v2"); v != "second" {
		t.Errorf("after overwrite: got %q, want second", v)
	}

	if err := s.Set(ctx, "other", ""); err != nil {
		t.Fatalf("Set empty value failed: %v", err)
	}
	if v, ok, _ := s.Get(ctx, "other"); !ok || v != "" {
		t.Errorf("empty value: got %q ok=%v", v, ok)
	}
	if v, _, _ := s.Get(ctx, "hs_tracker_v2"); v != "second" {
		t.Errorf("unrelated key changed: got %q", v)
	}
}

func TestMemory(t *testing.T) {
	s := NewMemory()
	exerciseStorage(t, s)
	if s.Driver() != DriverMemory {
		t.Errorf("driver: got %s", s.Driver())
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "storage.json")
	s, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	exerciseStorage(t, s)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read storage file: %v", err)
	}
	if !strings.Contains(string(data), `"hs_tracker_v2": "second"`) {
		t.Errorf("unexpected file contents:\n%s", data)
	}
}

func TestFilePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	ctx := context.Background()

	a, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	if err := a.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	b, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	if v, ok, err := b.Get(ctx, "k"); err != nil || !ok || v != "v" {
		t.Errorf("Get: v=%q ok=%v err=%v", v, ok, err)
	}
}

func TestFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	s, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	if _, _, err := s.Get(ctx, "k"); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("Get: got %v, want ErrCorrupt", err)
	}

	if err := s.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set over corrupt file failed: %v", err)
	}
	if v, ok, err := s.Get(ctx, "k"); err != nil || !ok || v != "v" {
		t.Errorf("after repair: v=%q ok=%v err=%v", v, ok, err)
	}
}

func TestFileEmptyAndNull(t *testing.T) {
	for _, content := range []string{"", "null"} {
		path := filepath.Join(t.TempDir(), "storage.json")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		s, err := NewFile(path)
		if err != nil {
			t.Fatalf("NewFile failed: %v", err)
		}
		if _, ok, err := s.Get(context.Background(), "k"); ok || err != nil {
			t.Errorf("content %q: ok=%v err=%v, want absent", content, ok, err)
		}
		if err := s.Set(context.Background(), "k", "v"); err != nil {
			t.Errorf("content %q: Set failed: %v", content, err)
		}
	}
}

func TestNewFileEmptyPath(t *testing.T) {
	if _, err := NewFile(""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db", "storage.db")

	s, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	exerciseStorage(t, s)
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()
	if v, ok, err := reopened.Get(ctx, "hs_tracker_v2"); err != nil || !ok || v != "second" {
		t.Errorf("after reopen: v=%q ok=%v err=%v", v, ok, err)
	}
	if reopened.Driver() != DriverSQLite {
		t.Errorf("driver: got %s", reopened.Driver())
	}
}

func TestPostgres(t *testing.T) {
	dsn := os.Getenv("HENHOUSE_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("HENHOUSE_TEST_POSTGRES_DSN not set")
	}
	s, err := OpenPostgres(context.Background(), dsn)
	if err != nil {
		t.Fatalf("OpenPostgres failed: %v", err)
	}
	defer s.Close()
	exerciseStorage(t, s)
}

func TestOpenPostgresEmptyDSN(t *testing.T) {
	if _, err := OpenPostgres(context.Background(), ""); err == nil {
		t.Error("expected error for empty dsn")
	}
}

func TestParseDriver(t *testing.T) {
	tests := []struct {
		in      string
		want    Driver
		wantErr bool
	}{
		{"", DriverFile, false},
		{"file", DriverFile, false},
		{"JSON", DriverFile, false},
		{"sqlite", DriverSQLite, false},
		{"sqlite3", DriverSQLite, false},
		{" postgres ", DriverPostgres, false},
		{"pg", DriverPostgres, false},
		{"memory", DriverMemory, false},
		{"redis", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDriver(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDriver(%q): err=%v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDriver(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name string
		opts Options
		want Driver
	}{
		{"memory", Options{Driver: DriverMemory}, DriverMemory},
		{"file", Options{Driver: DriverFile, Path: filepath.Join(dir, "s.json")}, DriverFile},
		{"default is file", Options{Path: filepath.Join(dir, "d.json")}, DriverFile},
		{"sqlite", Options{Driver: DriverSQLite, Path: filepath.Join(dir, "s.db")}, DriverSQLite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(ctx, tt.opts)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer s.Close()
			if s.Driver() != tt.want {
				t.Errorf("driver: got %s, want %s", s.Driver(), tt.want)
			}
		})
	}

	if _, err := Open(ctx, Options{Driver: "redis"}); err == nil {
		t.Error("expected error for unknown driver")
	}
}
