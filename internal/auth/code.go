package auth

import "golang.org/x/crypto/bcrypt"

// The SPA compared the elevation code against a constant shipped in the
// client bundle. Here the code lives only as a bcrypt hash in server
// config and is checked server-side.

// bcryptCost of 8 keeps the check around 25ms; the limiter throttles
// brute-force attempts before cost matters.
const bcryptCost = 8

// HashCode generates a bcrypt hash of an elevation code (used by operators
// to produce the config value).
func HashCode(code string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyCode checks a submitted elevation code against the configured hash
func VerifyCode(hashedCode, code string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedCode), []byte(code))
	return err == nil
}
