package auth

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// GenerateCode returns a new single-use confirmation code.
// A UUID string gives 36 URL-safe characters of entropy.
func GenerateCode() string {
	return uuid.New().String()
}

// HashCode creates a bcrypt hash from the given plaintext confirmation code.
// Codes are stored hashed so a leaked store cannot be replayed.
func HashCode(code string) (string, error) {
	// the cost determines the computational complexity of the hashing process
	// default cost is 10, adjust based on security needs and performance
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyCode checks if the provided plaintext code matches the stored bcrypt hash.
func VerifyCode(hashedCode, providedCode string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedCode), []byte(providedCode))
}
