// Package service declares the ports the usecases depend on for work that is
// not persistence: hashing, session tokens, time, rate limiting and metrics.
package service

// PasswordHasher turns account passwords into stored hashes and verifies
// login attempts against them.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Any malformed hash is a mismatch.
	Check(password, hash string) bool
}
