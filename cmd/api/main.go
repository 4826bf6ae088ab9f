package main

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"nanosite/internal/auth/supabase"
	"nanosite/internal/content"
	"nanosite/internal/http/handlers"
	"nanosite/internal/http/httpapi"
	"nanosite/internal/infra"
	"nanosite/internal/infra/geoip"
	"nanosite/internal/middleware"
	"nanosite/internal/openrouter"
	"nanosite/internal/relay"
	"nanosite/web"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	templates, err := template.ParseFS(web.FS, "index.html.tmpl")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse templates")
	}

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	var lookup middleware.CountryLookup
	if resolver != nil {
		lookup = resolver.CountryCode
	}

	client := openrouter.NewClient(openrouter.Options{
		APIKey:   cfg.OpenRouterAPIKey,
		BaseURL:  cfg.OpenRouterBaseURL,
		Model:    cfg.OpenRouterModel,
		SiteURL:  cfg.OpenRouterSiteURL,
		SiteName: cfg.OpenRouterSiteName,
		Logger:   &logger,
	})
	if !client.HasCredentials() {
		logger.Warn().Msg("OPENROUTER_API_KEY not set; generation requests will fail")
	}

	auth := supabase.NewClient(supabase.Options{
		URL:     cfg.SupabaseURL,
		AnonKey: cfg.SupabaseAnonKey,
	})
	if !auth.Enabled() {
		logger.Warn().Msg("supabase not configured; sign-in disabled")
	}

	app := &handlers.App{
		Config:    cfg,
		Logger:    logger,
		Relay:     relay.NewService(client, logger),
		Auth:      auth,
		Content:   content.Default(),
		Templates: templates,
	}

	router := httpapi.NewRouter(app, lookup)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("listening on :%s (model=%s)", cfg.Port, client.Model())
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
