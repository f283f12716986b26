package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	verificationCodeLength = 6

	leadingDigits = "123456789"
	allDigits     = "0123456789"
)

var errEmptyAlphabet = errors.New("alphabet must not be empty")

// VerificationCode returns a uniformly random 6-digit code in
// [100000, 999999]. The first digit is drawn from 1-9 so the code is never
// zero-padded.
func VerificationCode() (string, error) {
	first, err := randomFromAlphabet(1, leadingDigits)
	if err != nil {
		return "", err
	}
	rest, err := randomFromAlphabet(verificationCodeLength-1, allDigits)
	if err != nil {
		return "", err
	}
	return first + rest, nil
}

// randomFromAlphabet builds an unbiased string of the requested length from
// crypto/rand.
func randomFromAlphabet(length int, alphabet string) (string, error) {
	if length <= 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}

	return string(value), nil
}
