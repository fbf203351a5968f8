package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	metrics "github.com/slok/go-http-metrics/metrics/prometheus"
	httpMetricsMiddleware "github.com/slok/go-http-metrics/middleware"
	"github.com/slok/go-http-metrics/middleware/std"

	"github.com/lkoehl/propscribe/internal/auth"
	"github.com/lkoehl/propscribe/internal/config"
	"github.com/lkoehl/propscribe/internal/constants"
	"github.com/lkoehl/propscribe/internal/describe"
	"github.com/lkoehl/propscribe/internal/handler"
	"github.com/lkoehl/propscribe/internal/middleware"
	"github.com/lkoehl/propscribe/internal/util"
)

var (
	appConfig   *config.Config
	sessionGate *auth.SessionGate
	describer   *describe.Describer
)

func RunInProduction() {
	ctx, cancelFn := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancelFn()

	isDevMode := util.Env(constants.EnvENV, "") == "DEV"

	networkInterface := util.Env(constants.EnvNetworkInterface, constants.DefaultNetworkInterface)
	// We also have to check for "PORT" as that is how Heroku/Dokku etc. tells the app where to listen
	port := util.Env(constants.EnvPort, os.Getenv("PORT"))
	if port == "" {
		port = constants.DefaultPort
	}

	appConfig = config.FromEnv(isDevMode)

	var err error
	sessionGate, err = auth.NewSessionGate(appConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not set up session gate. Aborting.")
	}

	describer = describe.NewDescriber(appConfig, describe.NewProviderCreator(appConfig))

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not get current working directory.")
	}

	publicRouter := chi.NewRouter()

	internalRouter := chi.NewRouter()

	promMiddleware := httpMetricsMiddleware.New(httpMetricsMiddleware.Config{
		Recorder: metrics.NewRecorder(metrics.Config{}),
	})

	publicRouter.Use(std.HandlerProvider("", promMiddleware))

	setupAPI(cwd, isDevMode, publicRouter)

	internalRouter.Handle("/internal/metrics", promhttp.Handler())

	publicServerAddr := fmt.Sprintf("%s:%s", networkInterface, port)
	internalServerAddr := fmt.Sprintf("%s:%s",
		util.Env(constants.EnvInternalNetworkInterface, constants.DefaultNetworkInterface),
		util.Env(constants.EnvInternalPort, constants.DefaultInternalPort))

	publicServer := http.Server{
		Addr:    publicServerAddr,
		Handler: publicRouter,
	}
	internalServer := http.Server{
		Addr:    internalServerAddr,
		Handler: internalRouter,
	}

	serveWG := &sync.WaitGroup{}
	serveWG.Add(3)

	go func() {
		defer serveWG.Done()

		<-ctx.Done()

		log.Debug().Msg("Shutdown signal received. Shutting down server...")

		timeout, cancelFn := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancelFn()

		if err := publicServer.Shutdown(timeout); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown public server gracefully.")
		}

		timeout, cancelFn = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancelFn()

		if err := internalServer.Shutdown(timeout); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown internal server gracefully.")
		}
	}()

	go func() {
		defer serveWG.Done()

		if err := publicServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed running public server.")
		}
	}()

	go func() {
		defer serveWG.Done()

		if err := internalServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed running internal server.")
		}
	}()

	log.Info().Msgf("Public server is ready to handle requests at http://%s", publicServerAddr)
	log.Info().Msgf("Internal server is ready to handle requests at http://%s", internalServerAddr)

	<-ctx.Done()

	log.Info().Msg("Waiting for connections to be closed and for server to shutdown...")

	serveWG.Wait()

	log.Info().Msg("Server have been shut down. Bye.")
}

// SetupForTest wires the API with an injected configuration and provider
// creator so tests can fake the environment and the upstream service.
func SetupForTest(cfg *config.Config, createProvider describe.ProviderCreator, webRoot string) (http.Handler, error) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)

	appConfig = cfg

	var err error
	sessionGate, err = auth.NewSessionGate(cfg)
	if err != nil {
		return nil, err
	}

	describer = describe.NewDescriber(cfg, createProvider)

	r := chi.NewRouter()
	setupAPI(webRoot, false, r)

	return r, nil
}

func setupAPI(webRoot string, isDevMode bool, r chi.Router) {
	if isDevMode {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		log.Debug().Msg("Running in PROD mode. Being less verbose. Set environment variable 'PROPSCRIBE_ENV' to 'DEV' to activate.")
	}

	staticAssetsPath := filepath.Join(webRoot, constants.WebStaticContentPath)
	spaHandler := handler.
		NewSpaHandler(staticAssetsPath, "index.html").
		SetFileServer(http.FileServer(http.Dir(staticAssetsPath)))
	log.Info().Msgf("Loading assets from: '%s'", staticAssetsPath)

	r.Use(chiMiddleware.Compress(5))
	r.Use(chiMiddleware.RequestID)
	r.Use(hlog.NewHandler(log.Logger))
	r.Use(middleware.ChiRequestIDHandler("reqID", ""))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Dur("dur(ms)", duration).
			Int("size(bytes)", size).
			Int("status", status).
			Stringer("url", r.URL).
			Str("verb", r.Method).
			Msg("")
	}))
	r.Use(chiMiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Get("/generate-password", handler.PasswordGenerateHandler)
			r.With(attachGate).Post("/login", handler.LoginHandler)
			r.With(attachGate).Get("/verify", handler.VerifyHandler)
		})

		r.With(attachConfig).With(attachDescriber).Post("/generate-description", handler.DescriptionGenerateHandler)

		r.NotFound(http.NotFound)
	})

	// Provide the webapp following the SPA pattern: all non-API routes not
	// being able to be resolved within the assets directory will return the
	// webapp entry point.
	r.NotFound(spaHandler.ServeHTTP)
}

func attachConfig(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		newCtx := context.WithValue(r.Context(), constants.FieldKeyConfig, appConfig)

		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func attachGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		newCtx := context.WithValue(r.Context(), constants.FieldKeyGate, sessionGate)

		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func attachDescriber(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		newCtx := context.WithValue(r.Context(), constants.FieldKeyDescriber, describer)

		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
