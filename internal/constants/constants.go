package constants

import "time"

const (
	SessionCookieName   = "auth_token"
	SessionTokenValue   = "authenticated"
	SessionCookieMaxAge = 60 * 60 * 24 * 7 // 7 days

	DefaultNetworkInterface = "localhost"
	DefaultPort             = "8080"
	DefaultInternalPort     = "9090"
	WebStaticContentPath    = "./web/dist"

	GenerationTimeout = 30 * time.Second

	// Names of envs
	EnvENV                      = "PROPSCRIBE_ENV"
	EnvNetworkInterface         = "PROPSCRIBE_NETWORK_INTERFACE"
	EnvPort                     = "PROPSCRIBE_PORT"
	EnvInternalNetworkInterface = "PROPSCRIBE_INTERNAL_NETWORK_INTERFACE"
	EnvInternalPort             = "PROPSCRIBE_INTERNAL_PORT"
	EnvSecret                   = "PROPSCRIBE_SECRET"
	EnvAppPasswords             = "APP_PASSWORDS"
	EnvOpenAIKey                = "OPENAI_API_KEY"
	EnvOpenRouterKey            = "OPENROUTER_API_KEY"
	EnvGatewayKey               = "AI_GATEWAY_API_KEY"

	// Keys for context fields
	FieldKeyConfig    = ctxKey("config")
	FieldKeyGate      = ctxKey("sessionGate")
	FieldKeyDescriber = ctxKey("describer")
)

type ctxKey string
