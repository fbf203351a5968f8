package e2e_test

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gavv/httpexpect/v2"
	"github.com/golang/mock/gomock"

	main "github.com/lkoehl/propscribe/internal"
	"github.com/lkoehl/propscribe/internal/config"
	"github.com/lkoehl/propscribe/internal/describe"
	"github.com/lkoehl/propscribe/internal/e2e_test/mocks"
	"github.com/lkoehl/propscribe/internal/llm"
)

const passwordCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*"

func TestGeneratePassword(t *testing.T) {
	e, ctrl, _ := beforeEach(t, map[string]string{})
	defer ctrl.Finish()

	obj := e.GET("/api/auth/generate-password").Expect().
		Status(http.StatusOK).JSON().Object()

	passwords := obj.Value("passwords").Array()
	passwords.Length().Equal(5)

	var values []string
	for _, raw := range passwords.Iter() {
		password := raw.String().Raw()
		values = append(values, password)

		if len(password) != 16 {
			t.Errorf("Expected password of length 16, got %q", password)
		}

		for _, r := range password {
			if !strings.ContainsRune(passwordCharset, r) {
				t.Errorf("Password %q contains %q which is not part of the charset", password, r)
			}
		}
	}

	obj.Value("example").String().Equal("APP_PASSWORDS=" + strings.Join(values, ","))
	obj.Value("instructions").String().Contains("APP_PASSWORDS")
}

func TestLogin(t *testing.T) {
	e, ctrl, _ := beforeEach(t, map[string]string{"APP_PASSWORDS": "a, b ,c"})
	defer ctrl.Finish()

	// Before logging in the session is not authenticated
	e.GET("/api/auth/verify").Expect().
		Status(http.StatusOK).JSON().Object().Value("authenticated").Boolean().False()

	r := e.POST("/api/auth/login").WithJSON(map[string]string{"password": "b"}).Expect()
	r.Status(http.StatusOK)
	r.JSON().Object().Value("success").Boolean().True()
	r.Cookie("auth_token").Value().Equal("authenticated")

	// The cookie jar now carries the session cookie
	e.GET("/api/auth/verify").Expect().
		Status(http.StatusOK).JSON().Object().Value("authenticated").Boolean().True()
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	e, ctrl, _ := beforeEach(t, map[string]string{"APP_PASSWORDS": "a,b,c"})
	defer ctrl.Finish()

	r := e.POST("/api/auth/login").WithJSON(map[string]string{"password": "z"}).Expect()
	r.Status(http.StatusUnauthorized)
	r.JSON().Object().Value("success").Boolean().False()
	r.Cookies().Empty()

	e.GET("/api/auth/verify").Expect().
		Status(http.StatusOK).JSON().Object().Value("authenticated").Boolean().False()
}

func TestLoginFailsWithoutConfiguredPasswords(t *testing.T) {
	e, ctrl, _ := beforeEach(t, map[string]string{})
	defer ctrl.Finish()

	r := e.POST("/api/auth/login").WithJSON(map[string]string{"password": "anything"}).Expect()
	r.Status(http.StatusUnauthorized)
	r.JSON().Object().Value("success").Boolean().False()
	r.Cookies().Empty()
}

func TestLoginWithMalformedBody(t *testing.T) {
	e, ctrl, _ := beforeEach(t, map[string]string{"APP_PASSWORDS": "a"})
	defer ctrl.Finish()

	r := e.POST("/api/auth/login").WithText("this is not JSON").Expect()
	r.Status(http.StatusInternalServerError)
	r.JSON().Object().Value("success").Boolean().False()
	r.Cookies().Empty()
}

func TestVerifyRejectsTamperedCookie(t *testing.T) {
	e, ctrl, _ := beforeEach(t, map[string]string{"APP_PASSWORDS": "a"})
	defer ctrl.Finish()

	e.GET("/api/auth/verify").WithCookie("auth_token", "authenticated-not-really").Expect().
		Status(http.StatusOK).JSON().Object().Value("authenticated").Boolean().False()
}

func TestGenerateDescription(t *testing.T) {
	e, ctrl, providerMock := beforeEach(t, map[string]string{"OPENROUTER_API_KEY": "or-key"})
	defer ctrl.Finish()

	// Echo the prompt so we can check the attributes ended up in it
	providerMock.EXPECT().Complete(gomock.Any(), gomock.Any()).Times(1).DoAndReturn(
		func(_ context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
			if req.Model != "openai/gpt-4o-mini" {
				t.Errorf("Expected the alternate gateway model, got %q", req.Model)
			}
			if req.MaxTokens != 1000 || req.Temperature != 0.8 {
				t.Errorf("Unexpected sampling parameters: %d tokens, temperature %f", req.MaxTokens, req.Temperature)
			}

			return &llm.CompletionResponse{Content: req.Messages[0].Content}, nil
		})

	r := e.POST("/api/generate-description").WithJSON(map[string]string{
		"propertyType":  "Townhouse",
		"bedrooms":      "3",
		"bathrooms":     "2.5",
		"squareFootage": "1850",
		"address":       "42 Elm Street, Springfield",
		"features":      "renovated kitchen, south-facing garden",
		"tone":          "cozy",
	}).Expect()

	r.Status(http.StatusOK)
	description := r.JSON().Object().Value("description").String()
	description.Contains("42 Elm Street, Springfield")
	description.Contains("renovated kitchen, south-facing garden")
}

func TestGenerateDescriptionUpstreamFailure(t *testing.T) {
	e, ctrl, providerMock := beforeEach(t, map[string]string{"OPENAI_API_KEY": "sk-key"})
	defer ctrl.Finish()

	providerMock.EXPECT().Complete(gomock.Any(), gomock.Any()).Times(1).
		Return(nil, errors.New("upstream exploded"))

	r := e.POST("/api/generate-description").WithJSON(map[string]string{
		"propertyType": "Condo",
		"tone":         "modern",
	}).Expect()

	r.Status(http.StatusInternalServerError)

	obj := r.JSON().Object()
	obj.Value("error").String().Equal("Failed to generate description")
	obj.Value("details").String().Contains("upstream exploded")

	hasAPIKeys := obj.Value("hasApiKeys").Object()
	hasAPIKeys.Value("openai").Boolean().True()
	hasAPIKeys.Value("openrouter").Boolean().False()
}

func beforeEach(t *testing.T, env map[string]string) (*httpexpect.Expect, *gomock.Controller, *mocks.MockProvider) {
	ctrl := gomock.NewController(t)

	providerMock := mocks.NewMockProvider(ctrl)
	providerCreator := func(choice describe.ProviderChoice) llm.Provider {
		return providerMock
	}

	cfg := config.New(func(name string) (string, bool) {
		val, ok := env[name]
		return val, ok
	}, true)

	webRoot, err := filepath.Abs("../../")
	if err != nil {
		t.Fatalf("Could not get path of web root: %s", err)
	}

	handler, err := main.SetupForTest(cfg, providerCreator, webRoot)
	if err != nil {
		t.Fatalf("Could not set up handler for test: %s", err)
	}

	e := httpexpect.WithConfig(httpexpect.Config{
		BaseURL: "http://propscribe.test",
		Client: &http.Client{
			Transport: httpexpect.NewBinder(handler),
			Jar:       httpexpect.NewJar(),
		},
		Reporter: httpexpect.NewAssertReporter(t),
		Printers: []httpexpect.Printer{
			httpexpect.NewDebugPrinter(t, true),
		},
	})

	return e, ctrl, providerMock
}
