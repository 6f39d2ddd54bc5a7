package crypto

import "golang.org/x/crypto/bcrypt"

// Credentials are stored as bcrypt hashes; there is no way to recover the
// plaintext and no reason to compare anything but hashes.

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
