package auth

import (
	"math"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ErrEmptySecret is returned when signing with an empty secret key
var ErrEmptySecret = errors.New("secret key is empty")

// EncodeToken signs a token carrying id under the claim named key. The token
// expires expiresIn from now
func EncodeToken(key string, id uint, secret string, expiresIn time.Duration) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	claims := jwt.MapClaims{
		key:   id,
		"exp": jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	return signed, errors.Wrap(err, "failed to sign token")
}

// DecodeToken returns the id carried under the claim named key. ok is false
// when the token is malformed, signed with another secret or algorithm,
// expired, or does not carry the claim
func DecodeToken(key, secret, token string) (id uint, ok bool) {
	if secret == "" || token == "" {
		return 0, false
	}

	parsed, err := jwt.Parse(
		token,
		func(*jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return 0, false
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	// JSON numbers decode as float64
	v, ok := claims[key].(float64)
	if !ok || v < 1 || v != math.Trunc(v) || v > math.MaxUint32 {
		return 0, false
	}

	return uint(v), true
}
