package credentials

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := NewFileStore(path)

	if _, ok := s.Token(); ok {
		t.Fatal("expected no token in a fresh store")
	}

	if err := s.SetToken("abc123"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	tok, ok := s.Token()
	if !ok || tok != "abc123" {
		t.Errorf("expected token 'abc123', got %q (ok=%v)", tok, ok)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat token file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("expected mode 0600, got %o", perm)
	}
}

func TestFileStoreReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("persisted\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(path)
	tok, ok := s.Token()
	if !ok || tok != "persisted" {
		t.Errorf("expected trimmed token 'persisted', got %q (ok=%v)", tok, ok)
	}
}

func TestFileStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := NewFileStore(path)

	if err := s.SetToken("abc"); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := s.Token(); ok {
		t.Error("expected no token after Clear")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected credential file to be removed")
	}
}

func TestFileStoreClearWhenAbsent(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "token"))
	if err := s.Clear(); err != nil {
		t.Errorf("Clear on absent file should be a no-op, got %v", err)
	}
}
