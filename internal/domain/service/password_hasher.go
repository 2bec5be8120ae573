// Package service defines the ports the use cases depend on: identity, storage,
// messaging and crypto helpers implemented in infra.
package service

// PasswordHasher hashes and verifies passwords for the local identity provider.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
