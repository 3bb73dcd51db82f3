package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor used for password digests.
const BcryptCost = 12

// HashPassword derives a salted one-way digest from a plaintext password.
// Hashing the same plaintext twice yields different digests; both verify.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether the plaintext matches the stored digest.
// An empty plaintext or a malformed digest verifies as false, never as an
// error.
func CheckPassword(hashedPassword, password string) bool {
	if password == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
