package rest

import (
	"fmt"
	"io"
	"net/http"

	"huddle/infra/session"
)

// SessionCookieName is the cookie the backend expects on every request.
const SessionCookieName = "huddle_session"

// Client is a thin HTTP wrapper for the Huddle API. It handles base URL
// construction and ambient session cookie injection. No timeouts are set
// beyond the transport's defaults and no request is retried.
type Client struct {
	baseURL string
	cookies session.CookieProvider
	http    *http.Client
}

// NewClient creates a Huddle API client.
func NewClient(baseURL string, cookies session.CookieProvider) *Client {
	return &Client{
		baseURL: baseURL,
		cookies: cookies,
		http:    &http.Client{},
	}
}

// Get performs a GET request with session credentials.
func (c *Client) Get(path string) ([]byte, error) {
	return c.do(http.MethodGet, path, nil)
}

// Post performs a POST request with session credentials.
func (c *Client) Post(path string, body io.Reader) ([]byte, error) {
	return c.do(http.MethodPost, path, body)
}

// Put performs a PUT request with session credentials.
func (c *Client) Put(path string, body io.Reader) ([]byte, error) {
	return c.do(http.MethodPut, path, body)
}

// Delete performs a DELETE request with session credentials.
func (c *Client) Delete(path string) ([]byte, error) {
	return c.do(http.MethodDelete, path, nil)
}

func (c *Client) do(method, path string, body io.Reader) ([]byte, error) {
	cookie, err := c.cookies.SessionCookie()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	url := c.baseURL + path

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie})
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API %s %s returned %d: %s", method, path, resp.StatusCode, string(data))
	}

	return data, nil
}
