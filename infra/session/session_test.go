package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"huddle/domain"
)

func TestSessionCookie_TrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	if err := os.WriteFile(path, []byte("  abc123\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := NewFileCookieProvider(path).SessionCookie()
	if err != nil {
		t.Fatalf("session cookie: %v", err)
	}
	if got != "abc123" {
		t.Fatalf("expected trimmed cookie, got %q", got)
	}
}

func TestSessionCookie_EmptyFileMeansNotSignedIn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	if err := os.WriteFile(path, []byte("   \n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := NewFileCookieProvider(path).SessionCookie()
	if !errors.Is(err, domain.ErrNotSignedIn) {
		t.Fatalf("expected ErrNotSignedIn for empty session file, got %v", err)
	}
}

func TestSessionCookie_MissingFileMeansNotSignedIn(t *testing.T) {
	_, err := NewFileCookieProvider("/nonexistent/session").SessionCookie()
	if !errors.Is(err, domain.ErrNotSignedIn) {
		t.Fatalf("expected ErrNotSignedIn for missing session file, got %v", err)
	}
}
