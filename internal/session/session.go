// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package session provides file-backed local persistence for the small
// set of values that must survive a restart: the auth token, the cached
// user record and the site language. Each key is one small file under
// the application's data directory.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Well-known keys.
const (
	KeyAuthToken = "auth_token"
	KeyAuthUser  = "auth_user"
	KeyLanguage  = "site_language"
)

// ErrNotFound is returned by Get when the key has never been set.
var ErrNotFound = errors.New("session: key not found")

// Store persists string values under a directory, one file per key.
// Values are opaque to the store; callers marshal structured data
// themselves.
type Store struct {
	dir string
}

// NewStore creates the data directory if needed and returns a store
// rooted there. The directory is private to the current user.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Get reads the value stored under key. Returns ErrNotFound when the
// key is absent.
func (s *Store) Get(key string) (string, error) {
	b, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read session key %s: %w", key, err)
	}
	return string(b), nil
}

// Set writes value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	if err := os.WriteFile(s.path(key), []byte(value), 0o600); err != nil {
		return fmt.Errorf("write session key %s: %w", key, err)
	}
	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete session key %s: %w", key, err)
	}
	return nil
}

// path maps a key to its backing file. Keys are sanitized so a crafted
// key cannot escape the data directory.
func (s *Store) path(key string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		}
		return '_'
	}, key)
	return filepath.Join(s.dir, clean)
}
