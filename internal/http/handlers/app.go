package handlers

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"

	"nanosite/internal/auth/supabase"
	"nanosite/internal/content"
	"nanosite/internal/infra"
)

// Generator is the slice of the relay service the HTTP layer depends on.
type Generator interface {
	Generate(ctx context.Context, prompt, image string) ([]string, error)
}

// AuthProvider is the slice of the Supabase client the HTTP layer depends on.
type AuthProvider interface {
	Enabled() bool
	AuthorizeURL(provider, redirectTo string) (string, error)
	ExchangeCode(ctx context.Context, code string) (*supabase.Session, error)
	User(ctx context.Context, accessToken string) (*supabase.User, error)
	SignOut(ctx context.Context, accessToken string) error
}

// App bundles the dependencies shared by all handlers.
type App struct {
	Config    *infra.Config
	Logger    infra.Logger
	Relay     Generator
	Auth      AuthProvider
	Content   content.Catalog
	Templates *template.Template
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]string{"error": message})
}
