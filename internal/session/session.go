// Package session holds the authenticated-user state for the client: the API
// token and the username, persisted between runs in a small JSON file so a
// restarted client can skip login.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Session is the authenticated-user context gating all data operations.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`

	path string
	mu   sync.Mutex
}

// New returns a Session persisted at the given file path. Call Load to pick
// up state from a previous run.
func New(path string) *Session {
	return &Session{path: path}
}

// Load reads the session file. A missing file means no one is logged in and
// is not an error.
func (s *Session) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.Token = ""
			s.Username = ""
			return nil
		}
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(s)
}

// Set stores the token and username and writes them to disk.
func (s *Session) Set(token, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Token = token
	s.Username = username
	return s.save()
}

// Clear wipes both keys unconditionally and removes the session file.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Token = ""
	s.Username = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Token != ""
}

// BearerToken returns the stored token for use in an Authorization header.
func (s *Session) BearerToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Token
}

// User returns the stored display name.
func (s *Session) User() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Username
}

func (s *Session) save() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(s)
}
