// Package session is the sign-in gate: a snapshot of the authenticated
// admin plus the bearer token, persisted in a single JSON file so a new
// process starts where the last one signed in.
//
// Usage:
//
//	store := session.NewStore(config.SessionFile())
//	sess := store.Restore()
//	if !sess.Authenticated() { ... }
//
// A Session value is an immutable snapshot; only Login, Logout and Save
// touch the file, and each rewrites it wholesale.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrSignedOut is returned by Require when no session is persisted.
var ErrSignedOut = errors.New("not signed in: run 'pharmadesk signin' first")

// User is the signed-in admin record, as returned by the API at sign-in.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session pairs the admin record with the bearer token. Token present
// and user present go together; an empty Session has neither.
type Session struct {
	User  *User  `json:"user,omitempty"`
	Token string `json:"token,omitempty"`
}

// Authenticated reports whether this snapshot can make authenticated calls.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// Store reads and writes the persisted session file.
type Store struct {
	path string
}

// NewStore returns a Store over the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Restore reads the persisted session. A missing, unreadable or corrupt
// file yields an empty session: the user is simply signed out.
func (st *Store) Restore() Session {
	raw, err := os.ReadFile(st.path)
	if err != nil {
		return Session{}
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return Session{}
	}
	if !s.Authenticated() {
		return Session{}
	}
	return s
}

// Require returns the persisted session, or ErrSignedOut when there is
// none. This is the route guard: every authenticated command calls it
// before touching the API.
func (st *Store) Require() (Session, error) {
	s := st.Restore()
	if !s.Authenticated() {
		return Session{}, ErrSignedOut
	}
	return s, nil
}

// Login replaces any persisted session with the given user and token.
func (st *Store) Login(user User, token string) (Session, error) {
	s := Session{User: &user, Token: token}
	if err := st.Save(s); err != nil {
		return Session{}, err
	}
	return s, nil
}

// Logout clears the persisted session.
func (st *Store) Logout() error {
	if err := os.Remove(st.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session: clear %s: %w", st.path, err)
	}
	return nil
}

// Save persists a session snapshot wholesale. The write goes through a
// temp file and rename so a crash never leaves a half-written session.
func (st *Store) Save(s Session) error {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}

	dir := filepath.Dir(st.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("session: mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "session-*.json")
	if err != nil {
		return fmt.Errorf("session: temp file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("session: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("session: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), st.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("session: rename: %w", err)
	}
	return nil
}
