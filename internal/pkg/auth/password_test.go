package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

var _ PasswordHasher = (*BcryptHasher)(nil)

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must not equal the raw password")
	}
	if strings.Contains(hash, "secret1") {
		t.Fatal("hash must not embed the raw password")
	}

	if err := hasher.Compare(hash, "secret1"); err != nil {
		t.Fatalf("compare rejected correct password: %v", err)
	}
	if err := hasher.Compare(hash, "wrong"); err == nil {
		t.Fatal("compare accepted wrong password")
	}
}

func TestBcryptHasherDefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(0)
	if hasher.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost %d, got %d", bcrypt.DefaultCost, hasher.cost)
	}
}

func TestBcryptHasherHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	first, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	second, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if first == second {
		t.Fatal("expected salted hashes to differ")
	}
}
