package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/lkoehl/propscribe/internal/auth"
	"github.com/lkoehl/propscribe/internal/config"
	"github.com/lkoehl/propscribe/internal/constants"
	"github.com/lkoehl/propscribe/internal/describe"
)

// Faults never leave a handler as anything but a structured JSON response;
// the messages below are deliberately generic so nothing internal leaks.
const (
	msgAuthFailed       = "Authentication failed"
	msgPasswordsFailed  = "Failed to generate passwords"
	msgGenerationFailed = "Failed to generate description"
)

func PasswordGenerateHandler(w http.ResponseWriter, r *http.Request) {
	set, err := auth.GeneratePasswordSet()
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Could not generate password batch.")
		writeJSON(w, http.StatusInternalServerError, m{"error": msgPasswordsFailed})
		return
	}

	writeJSON(w, http.StatusOK, set)
}

func LoginHandler(w http.ResponseWriter, r *http.Request) {
	gate := r.Context().Value(constants.FieldKeyGate).(*auth.SessionGate)

	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		hlog.FromRequest(r).Debug().Err(err).Msg("Could not decode login request body.")
		writeJSON(w, http.StatusInternalServerError, m{"success": false, "error": msgAuthFailed})
		return
	}

	if !gate.Login(body.Password) {
		writeJSON(w, http.StatusUnauthorized, m{"success": false})
		return
	}

	if err := gate.IssueCookie(w); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Could not issue session cookie.")
		writeJSON(w, http.StatusInternalServerError, m{"success": false, "error": msgAuthFailed})
		return
	}

	writeJSON(w, http.StatusOK, m{"success": true})
}

// VerifyHandler always answers 200; every fault while reading the cookie
// degrades to authenticated=false.
func VerifyHandler(w http.ResponseWriter, r *http.Request) {
	gate := r.Context().Value(constants.FieldKeyGate).(*auth.SessionGate)

	writeJSON(w, http.StatusOK, m{"authenticated": gate.Verify(r)})
}

func DescriptionGenerateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cfg := ctx.Value(constants.FieldKeyConfig).(*config.Config)
	describer := ctx.Value(constants.FieldKeyDescriber).(*describe.Describer)

	// Reported on failure so operators can tell a missing key from a broken
	// one. Booleans only, the values themselves must never appear here.
	hasAPIKeys := m{
		"openai":     cfg.OpenAIKey() != "",
		"openrouter": cfg.OpenRouterKey() != "",
	}

	var attrs describe.Attributes
	if err := json.NewDecoder(r.Body).Decode(&attrs); err != nil {
		hlog.FromRequest(r).Debug().Err(err).Msg("Could not decode generation request body.")
		writeJSON(w, http.StatusInternalServerError, m{
			"error":      msgGenerationFailed,
			"details":    err.Error(),
			"hasApiKeys": hasAPIKeys,
		})
		return
	}

	description, err := describer.Generate(ctx, attrs)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Description generation failed.")
		writeJSON(w, http.StatusInternalServerError, m{
			"error":      msgGenerationFailed,
			"details":    err.Error(),
			"hasApiKeys": hasAPIKeys,
		})
		return
	}

	writeJSON(w, http.StatusOK, m{"description": description})
}

type m map[string]interface{}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to serialize response.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
