package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor historically used for existing accounts.
const bcryptCost = 8

// HashPassword returns a salted one-way hash of password.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(hash []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
