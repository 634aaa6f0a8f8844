package auth

import "golang.org/x/crypto/bcrypt"

// dummyHash is compared against when a login targets an unknown email, so
// that lookup misses cost the same as a real password check.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("nusacare-dummy"), bcrypt.DefaultCost)

// HashPassword derives a bcrypt hash from the raw password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BurnPasswordCheck runs a bcrypt comparison against a throwaway hash.
// Used to equalize timing between "user not found" and "wrong password".
func BurnPasswordCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
