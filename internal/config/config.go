package config

import (
	"os"
	"strings"

	"github.com/lkoehl/propscribe/internal/constants"
)

// LookupFunc resolves an environment variable, mirroring os.LookupEnv.
// Injected so tests can run against a fake environment.
type LookupFunc func(name string) (string, bool)

// Config is a read-only view onto the process configuration. It is created
// once at startup and shared between all requests; the accessors re-read the
// environment on every call so that operators can rotate passwords and API
// keys without restarting the process.
type Config struct {
	lookup    LookupFunc
	isDevMode bool
}

func FromEnv(isDevMode bool) *Config {
	return New(os.LookupEnv, isDevMode)
}

func New(lookup LookupFunc, isDevMode bool) *Config {
	return &Config{lookup: lookup, isDevMode: isDevMode}
}

func (c *Config) IsDevMode() bool {
	return c.isDevMode
}

// Passwords returns the login allow-list: the comma-separated entries of
// APP_PASSWORDS, each trimmed of surrounding whitespace. An unset, empty or
// blank variable yields an empty list, meaning no login can ever succeed.
func (c *Config) Passwords() []string {
	raw, _ := c.lookup(constants.EnvAppPasswords)
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	passwords := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			passwords = append(passwords, part)
		}
	}

	return passwords
}

func (c *Config) OpenAIKey() string {
	val, _ := c.lookup(constants.EnvOpenAIKey)
	return strings.TrimSpace(val)
}

func (c *Config) OpenRouterKey() string {
	val, _ := c.lookup(constants.EnvOpenRouterKey)
	return strings.TrimSpace(val)
}

// GatewayKey is the optional credential for the zero-configuration default
// gateway. Unlike the two provider keys it does not take part in provider
// selection; it is only forwarded when the default gateway is chosen.
func (c *Config) GatewayKey() string {
	val, _ := c.lookup(constants.EnvGatewayKey)
	return strings.TrimSpace(val)
}

// SessionSecret is the optional secret for signing the session cookie. When
// empty the cookie carries the plain sentinel value.
func (c *Config) SessionSecret() string {
	val, _ := c.lookup(constants.EnvSecret)
	return strings.TrimSpace(val)
}
