package password

import "golang.org/x/crypto/bcrypt"

// Hash derives a salted bcrypt hash from the plaintext. The salt is random
// and embedded in the output, so two hashes of the same password differ.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the plaintext matches the stored hash.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
