package directory

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Dovecot password scheme prefix for bcrypt hashes.
const bcryptScheme = "{BLF-CRYPT}"

// HashPassword hashes a cleartext password for storage in the directory.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return bcryptScheme + string(hashed), nil
}

// VerifyPassword reports whether password matches a stored hash.
func VerifyPassword(stored, password string) bool {
	hashed := strings.TrimPrefix(stored, bcryptScheme)
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
