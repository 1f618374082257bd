package session

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"huddle/domain"
)

// CookieProvider supplies the ambient session cookie value for API requests.
type CookieProvider interface {
	SessionCookie() (string, error)
}

// FileCookieProvider reads the session cookie value from a file on disk.
// Sign-in happens outside this program; whatever writes the session drops the
// cookie value here.
type FileCookieProvider struct {
	path string
}

// NewFileCookieProvider creates a CookieProvider reading from the given path.
func NewFileCookieProvider(path string) *FileCookieProvider {
	return &FileCookieProvider{path: path}
}

// SessionCookie reads and returns the cookie value, trimming whitespace. A
// missing or empty file means nobody has signed in on this machine.
func (f *FileCookieProvider) SessionCookie() (string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("no session at %s: %w", f.path, domain.ErrNotSignedIn)
	}
	if err != nil {
		return "", fmt.Errorf("reading session from %s: %w", f.path, err)
	}

	value := strings.TrimSpace(string(data))
	if value == "" {
		return "", fmt.Errorf("session file %s is empty: %w", f.path, domain.ErrNotSignedIn)
	}

	return value, nil
}
