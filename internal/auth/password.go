package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt hash with the salt embedded in the output.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

// CheckPassword reports whether pw matches the stored hash. Any failure,
// including a malformed stored hash, counts as a mismatch.
func CheckPassword(pw, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
