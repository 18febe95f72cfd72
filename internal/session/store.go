// Package session persists the single admin bearer token. It replaces the
// ambient browser-storage token with an explicit store handed to the HTTP
// client and the guards.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// StorageKey is the fixed name the token is stored under.
const StorageKey = "access_token"

type tokenFile struct {
	AccessToken string `json:"access_token"`
}

// Store holds the process-wide bearer token, persisted to disk so a restart
// keeps the admin signed in. Mutation happens only through Set and Clear.
type Store struct {
	mu    sync.RWMutex
	path  string
	token string
}

// NewStore creates a store persisting to path and loads any existing token.
// A missing or unreadable file just means "signed out".
func NewStore(path string) *Store {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var tf tokenFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return s
	}
	s.token = tf.AccessToken
	return s
}

// Token returns the current bearer token, empty when signed out.
// Satisfies easyplug.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Set stores a new token and persists it.
func (s *Store) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token

	data, err := json.Marshal(tokenFile{AccessToken: token})
	if err != nil {
		return fmt.Errorf("failed to encode token file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	return nil
}

// Clear removes the token from memory and disk. Called only by sign-out.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
