package test

import (
	pkgAuth "github.com/userhub/userhub/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn func(string) (string, error)
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
