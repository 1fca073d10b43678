// Package accounts holds the credential store: persisted user identities
// keyed by normalized email, with bcrypt password hashing helpers.
package accounts

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Account is a persisted user identity. PasswordHash never leaves the
// store's trust boundary - it is excluded from serialization and from the
// diagnostic listing surfaces.
type Account struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NormalizeEmail trims surrounding whitespace and lowercases an email.
// Every lookup and insert goes through this, so "A@B.com" and "a@b.com"
// refer to the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HashPassword hashes a plaintext password with bcrypt and a per-call
// random salt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash verifies a plaintext password against a stored bcrypt
// hash. bcrypt's comparison is constant-time.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
