package themestore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kastheco/orgtheme/theme"
)

// HTTPStore is a Store implementation that talks to a remote theme server
// over HTTP. Connection errors are wrapped with "theme store unreachable" so
// callers can detect and surface them gracefully.
type HTTPStore struct {
	baseURL string
	client  *http.Client
}

// NewHTTPStore creates a new HTTPStore client pointing at baseURL.
// The underlying http.Client has a 5-second timeout.
func NewHTTPStore(baseURL string) *HTTPStore {
	return &HTTPStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *HTTPStore) themeURL(org string) string {
	return fmt.Sprintf("%s/v1/orgs/%s/theme", s.baseURL, url.PathEscape(org))
}

// do executes an HTTP request, wrapping connection errors.
func (s *HTTPStore) do(req *http.Request) (*http.Response, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("theme store unreachable: %w", err)
	}
	return resp, nil
}

// decodeError reads an error response body and returns a formatted error.
// 404 responses wrap ErrNotFound.
func decodeError(resp *http.Response, org string) error {
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return notFound(org)
	}
	var errResp struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
		return fmt.Errorf("theme store: %s (status %d)", errResp.Error, resp.StatusCode)
	}
	return fmt.Errorf("theme store: unexpected status %d", resp.StatusCode)
}

// getJSON issues a GET and decodes a 200 response into v.
func (s *HTTPStore) getJSON(u, org string, v any) error {
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("theme store: build request: %w", err)
	}
	resp, err := s.do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return decodeError(resp, org)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("theme store: decode response: %w", err)
	}
	return nil
}

// Ping checks that the server is reachable and its store healthy.
func (s *HTTPStore) Ping() error {
	req, err := http.NewRequest(http.MethodGet, s.baseURL+"/v1/ping", nil)
	if err != nil {
		return fmt.Errorf("theme store: build request: %w", err)
	}
	resp, err := s.do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return decodeError(resp, "")
	}
	resp.Body.Close()
	return nil
}

// Get retrieves an organization's stored theme.
func (s *HTTPStore) Get(org string) (Entry, error) {
	var entry Entry
	if err := s.getJSON(s.themeURL(org), org, &entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Put stores an organization's theme and returns the saved entry.
func (s *HTTPStore) Put(entry Entry) (Entry, error) {
	body, err := json.Marshal(entry.Theme())
	if err != nil {
		return Entry{}, fmt.Errorf("theme store: marshal theme: %w", err)
	}
	req, err := http.NewRequest(http.MethodPut, s.themeURL(entry.Org), bytes.NewReader(body))
	if err != nil {
		return Entry{}, fmt.Errorf("theme store: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.do(req)
	if err != nil {
		return Entry{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return Entry{}, decodeError(resp, entry.Org)
	}
	defer resp.Body.Close()

	var saved Entry
	if err := json.NewDecoder(resp.Body).Decode(&saved); err != nil {
		return Entry{}, fmt.Errorf("theme store: decode response: %w", err)
	}
	return saved, nil
}

// Delete removes an organization's theme.
func (s *HTTPStore) Delete(org string) error {
	req, err := http.NewRequest(http.MethodDelete, s.themeURL(org), nil)
	if err != nil {
		return fmt.Errorf("theme store: build request: %w", err)
	}
	resp, err := s.do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return decodeError(resp, org)
	}
	resp.Body.Close()
	return nil
}

// List returns every stored theme.
func (s *HTTPStore) List() ([]Entry, error) {
	var entries []Entry
	if err := s.getJSON(s.baseURL+"/v1/orgs", "", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Derived fetches the derived colors for an organization. Organizations
// without a stored theme get the server's default.
func (s *HTTPStore) Derived(org string) (theme.Derived, error) {
	var d theme.Derived
	if err := s.getJSON(s.themeURL(org)+"/derived", org, &d); err != nil {
		return theme.Derived{}, err
	}
	return d, nil
}

// Close is a no-op; the HTTP client holds no resources that need releasing.
func (s *HTTPStore) Close() error {
	return nil
}
