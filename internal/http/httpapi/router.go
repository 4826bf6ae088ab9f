package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"nanosite/internal/http/handlers"
	"nanosite/internal/middleware"
	"nanosite/web"
)

// NewRouter assembles the full route table with the shared middleware chain.
func NewRouter(app *handlers.App, lookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		chimw.Recoverer,
		middleware.RequestID,
		middleware.Logger(app.Logger),
	)
	if len(app.Config.CORSOrigins) > 0 {
		r.Use(middleware.CORS(app.Config.CORSOrigins))
	}
	r.Use(middleware.I18N("en", lookup))

	r.Get("/", app.Home)
	r.Get("/healthz", app.Health)

	r.With(middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute)).
		Post("/api/generate", app.Generate)

	r.Route("/auth", func(r chi.Router) {
		r.Get("/google", app.OAuthSignIn("google"))
		r.Get("/github", app.OAuthSignIn("github"))
		r.Get("/callback", app.OAuthCallback)
		r.Post("/logout", app.Logout)
	})

	r.Handle("/static/*", http.FileServer(http.FS(web.FS)))

	return r
}
