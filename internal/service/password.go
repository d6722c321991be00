// File: internal/service/password.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

// Hasher is the one-way password-hashing collaborator. Hashing the same
// plaintext twice yields different outputs (salted).
type Hasher interface {
	Hash(password string) (string, error)
}

// BcryptHasher hashes with bcrypt at the default cost.
type BcryptHasher struct{}

func (BcryptHasher) Hash(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword checks plaintext against a bcrypt hash, nil on match.
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
