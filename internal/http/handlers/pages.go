package handlers

import (
	"net/http"

	"nanosite/internal/content"
	"nanosite/internal/middleware"
)

type homePageData struct {
	Content       content.Catalog
	Locale        string
	Authenticated bool
	DisplayName   string
	AuthError     string
}

// Home renders the landing page. Auth state only affects the header; the page
// renders the same for failures anywhere in the session lookup.
func (a *App) Home(w http.ResponseWriter, r *http.Request) {
	data := homePageData{
		Content:   a.Content,
		Locale:    middleware.LocaleFromContext(r.Context()),
		AuthError: r.URL.Query().Get("authError"),
	}
	if user := a.sessionUser(r); user != nil {
		data.Authenticated = true
		data.DisplayName = user.DisplayName()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.Templates.ExecuteTemplate(w, "index.html.tmpl", data); err != nil {
		a.Logger.Error().Err(err).Msg("render home failed")
	}
}
