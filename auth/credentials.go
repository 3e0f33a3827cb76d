// Package auth provides credential verification for the admin panel.
package auth

import "golang.org/x/crypto/bcrypt"

// Verifier checks a username/password pair. Handlers depend on this
// interface so a real credential store can be swapped in later.
type Verifier interface {
	Verify(username, password string) bool
}

// Static verifies against a single admin account fixed at startup.
// The password is held only as a bcrypt hash.
type Static struct {
	username string
	hash     []byte
}

// NewStatic builds a Static verifier from a plaintext password,
// hashing it immediately.
func NewStatic(username, password string) (*Static, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Static{username: username, hash: hash}, nil
}

// Verify reports whether the pair matches the configured account.
func (s *Static) Verify(username, password string) bool {
	if username != s.username {
		return false
	}
	return bcrypt.CompareHashAndPassword(s.hash, []byte(password)) == nil
}
