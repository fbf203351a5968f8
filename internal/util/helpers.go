package util

import (
	"crypto/rand"
	"crypto/sha256"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Make32ByteSecret derives a 32-byte key from input, or generates a random
// one when input is empty.
func Make32ByteSecret(input string) ([]byte, error) {
	if input != "" {
		hash := sha256.Sum256([]byte(input))
		return hash[:], nil
	}

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}

	return key, nil
}

// Env returns the trimmed value of envName, falling back to defaultValue
// when the variable is unset.
func Env(envName, defaultValue string) string {
	val, exists := os.LookupEnv(envName)
	if !exists {
		log.Warn().Msgf("'%s' is not set. Using default value ('%s').", envName, defaultValue)
		return defaultValue
	}

	return strings.TrimSpace(val)
}
