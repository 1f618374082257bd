package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application-level configuration.
type Config struct {
	ServerURL   string // e.g. "https://huddle.example.com/api"
	SessionPath string // Path to file containing the session cookie value
	FeedLimit   int    // Posts per feed fetch
}

const defaultFeedLimit = 20

// Load reads configuration from the environment, with a best-effort .env
// file merge beforehand (existing environment wins).
//
//	HUDDLE_SERVER      — backend base URL, https only (required)
//	HUDDLE_SESSION     — path to session cookie file (default: ~/.config/huddle/session)
//	HUDDLE_FEED_LIMIT  — posts per feed fetch (default: 20)
func Load() (Config, error) {
	_ = godotenv.Load() // Missing .env is fine.

	server := os.Getenv("HUDDLE_SERVER")
	if server == "" {
		return Config{}, fmt.Errorf("HUDDLE_SERVER is required")
	}
	parsed, err := url.Parse(server)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid HUDDLE_SERVER: must be an absolute URL")
	}
	if parsed.Scheme != "https" {
		return Config{}, fmt.Errorf("invalid HUDDLE_SERVER: only https is allowed")
	}
	server = strings.TrimRight(parsed.String(), "/")

	sessionPath := os.Getenv("HUDDLE_SESSION")
	if sessionPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		sessionPath = filepath.Join(home, ".config", "huddle", "session")
	}

	limit := defaultFeedLimit
	if raw := os.Getenv("HUDDLE_FEED_LIMIT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("invalid HUDDLE_FEED_LIMIT: %q", raw)
		}
		limit = n
	}

	return Config{
		ServerURL:   server,
		SessionPath: sessionPath,
		FeedLimit:   limit,
	}, nil
}
