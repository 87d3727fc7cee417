package auth

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var cost = bcrypt.DefaultCost

// SetCost changes the bcrypt cost used by Hash. Values outside bcrypt's
// accepted range are rejected
func SetCost(c int) error {
	if c < bcrypt.MinCost || c > bcrypt.MaxCost {
		return errors.Errorf(
			"bcrypt cost %d outside [%d, %d]",
			c,
			bcrypt.MinCost,
			bcrypt.MaxCost)
	}

	cost = c
	return nil
}

// Hash returns the bcrypt hash of the given password
func Hash(password string) (string, error) {
	return HashWithCost(password, cost)
}

// HashWithCost returns the bcrypt hash of the given password using the given
// cost
func HashWithCost(password string, c int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), c)
	return string(hash), errors.Wrap(err, "failed to generate password hash")
}

// Compare reports whether the password matches the hash. A mismatch is not an
// error
func Compare(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}

	return err == nil, errors.Wrap(err, "failed to compare hash and password")
}
