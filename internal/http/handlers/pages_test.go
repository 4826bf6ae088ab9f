package handlers

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"nanosite/internal/auth/supabase"
	"nanosite/internal/content"
	"nanosite/internal/infra"
	"nanosite/web"
)

func newPageApp(t *testing.T, auth *stubAuth) *App {
	t.Helper()
	templates, err := template.ParseFS(web.FS, "index.html.tmpl")
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	return &App{
		Config:    &infra.Config{AppEnv: "development"},
		Logger:    zerolog.Nop(),
		Auth:      auth,
		Content:   content.Default(),
		Templates: templates,
	}
}

func TestHomeSignedOut(t *testing.T) {
	app := newPageApp(t, &stubAuth{enabled: true})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	app.Home(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Fatalf("Content-Type = %q", got)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Nano Banana") {
		t.Fatal("hero title missing from page")
	}
	if !strings.Contains(body, "/auth/google") {
		t.Fatal("sign-in links missing for signed-out visitor")
	}
}

func TestHomeSignedIn(t *testing.T) {
	auth := &stubAuth{
		enabled: true,
		user:    &supabase.User{ID: "u1", Email: "ada@example.com", UserMetadata: map[string]any{"full_name": "Ada Lovelace"}},
	}
	app := newPageApp(t, auth)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "token-abc"})
	rec := httptest.NewRecorder()
	app.Home(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "Ada Lovelace") {
		t.Fatal("display name missing for signed-in visitor")
	}
	if !strings.Contains(body, "/auth/logout") {
		t.Fatal("logout form missing for signed-in visitor")
	}
}

func TestHomeAuthErrorBanner(t *testing.T) {
	app := newPageApp(t, &stubAuth{enabled: true})

	req := httptest.NewRequest(http.MethodGet, "/?authError=google_exchange_failed", nil)
	rec := httptest.NewRecorder()
	app.Home(rec, req)

	if !strings.Contains(rec.Body.String(), "google_exchange_failed") {
		t.Fatal("auth error code missing from page")
	}
}
