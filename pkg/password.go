package pkg

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt hash stored in place of a user's password.
func HashPassword(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
	return string(b), err
}

// ComparePassword reports a nil error when pw matches hash.
func ComparePassword(hash, pw string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw))
}
