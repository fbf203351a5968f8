package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/lkoehl/propscribe/internal/constants"
)

// PasswordCharset contains the 70 symbols passwords are drawn from.
const PasswordCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*"

const (
	DefaultPasswordLength = 16
	passwordBatchSize     = 5
)

// PasswordSet is a batch of candidate passwords for operator setup, together
// with instructions on how to activate them.
type PasswordSet struct {
	Passwords    []string `json:"passwords"`
	Instructions string   `json:"instructions"`
	Example      string   `json:"example"`
}

// GeneratePassword draws length characters uniformly and independently from
// PasswordCharset.
func GeneratePassword(length int) (string, error) {
	var sb strings.Builder
	sb.Grow(length)

	max := big.NewInt(int64(len(PasswordCharset)))

	for i := 0; i < length; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("reading randomness: %w", err)
		}

		sb.WriteByte(PasswordCharset[idx.Int64()])
	}

	return sb.String(), nil
}

// GeneratePasswordSet produces 5 independent passwords of the default length
// plus a ready-to-paste assignment for the passwords env variable.
func GeneratePasswordSet() (*PasswordSet, error) {
	passwords := make([]string, passwordBatchSize)

	for i := range passwords {
		password, err := GeneratePassword(DefaultPasswordLength)
		if err != nil {
			return nil, err
		}

		passwords[i] = password
	}

	return &PasswordSet{
		Passwords: passwords,
		Instructions: fmt.Sprintf("Add these passwords to your %s environment variable, separated by commas.",
			constants.EnvAppPasswords),
		Example: fmt.Sprintf("%s=%s", constants.EnvAppPasswords, strings.Join(passwords, ",")),
	}, nil
}
