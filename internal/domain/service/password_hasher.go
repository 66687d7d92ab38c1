// Package service declares the ports the usecases need from infrastructure: password hashing,
// token signing and blob storage.
package service

// PasswordHasher turns account passwords into stored hashes. The implementation is bcrypt at
// auth.bcryptCost, so hashes are self-describing and older hashes keep verifying after the cost
// is raised.
type PasswordHasher interface {
	// Hash fails for passwords longer than 72 bytes rather than truncating them.
	Hash(password string) (string, error)

	// Check backs login and change-password. A malformed hash never matches.
	Check(password, hash string) bool
}
