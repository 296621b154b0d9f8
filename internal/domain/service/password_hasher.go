// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	// An unparsable hash never matches.
	Check(password, hash string) bool

	// CheckDummy burns the same CPU time as Check against a fixed hash.
	// Callers use it when there is no stored hash so that response timing
	// does not reveal whether an account exists.
	CheckDummy(password string)
}
