package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// Password hashing cost
const BcryptCost = 12

// CredentialVerifier abstracts password verification so the services stay
// agnostic to the hashing scheme.
type CredentialVerifier interface {
	// Hash derives a storable credential from a plaintext password.
	Hash(password string) (string, error)
	// Verify reports whether candidate matches the stored credential.
	Verify(stored, candidate string) bool
}

// BcryptVerifier implements CredentialVerifier with salted bcrypt hashes.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier creates a BcryptVerifier with the default cost.
func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{cost: BcryptCost}
}

// Hash hashes a plaintext password.
func (v *BcryptVerifier) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify checks a plaintext password against a stored hash.
func (v *BcryptVerifier) Verify(stored, candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate))
	return err == nil
}
