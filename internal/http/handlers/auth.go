package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"nanosite/internal/auth/supabase"
)

// sessionCookie stores the Supabase access token between requests.
const sessionCookie = "nb_session"

// OAuthSignIn redirects the browser to the hosted OAuth entry point for the
// given provider. Sign-in failures never error the page; they land back on the
// home page with an authError query flag.
func (a *App) OAuthSignIn(provider string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		redirectPath := sanitizeRedirect(firstNonEmpty(
			r.URL.Query().Get("redirect_to"),
			r.URL.Query().Get("next"),
		))
		if a.Auth == nil || !a.Auth.Enabled() {
			a.redirectWithAuthError(w, r, provider+"_sign_in")
			return
		}
		callback := a.Config.PublicBaseURL + "/auth/callback?redirect_to=" +
			url.QueryEscape(redirectPath) + "&provider=" + url.QueryEscape(provider)
		target, err := a.Auth.AuthorizeURL(provider, callback)
		if err != nil {
			a.Logger.Error().Err(err).Str("provider", provider).Msg("authorize url failed")
			a.redirectWithAuthError(w, r, provider+"_sign_in")
			return
		}
		http.Redirect(w, r, target, http.StatusFound)
	}
}

// OAuthCallback exchanges the returned code for a session and stores the
// access token in the session cookie.
func (a *App) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	provider := query.Get("provider")
	if provider != "google" && provider != "github" {
		provider = "oauth"
	}
	redirectPath := sanitizeRedirect(firstNonEmpty(query.Get("redirect_to"), query.Get("next")))

	if query.Get("error") != "" || query.Get("error_description") != "" {
		a.redirectWithAuthError(w, r, provider+"_callback")
		return
	}
	code := query.Get("code")
	if code == "" {
		a.redirectWithAuthError(w, r, "missing_code")
		return
	}
	if a.Auth == nil || !a.Auth.Enabled() {
		a.redirectWithAuthError(w, r, provider+"_exchange_failed")
		return
	}

	session, err := a.Auth.ExchangeCode(r.Context(), code)
	if err != nil {
		a.Logger.Error().Err(err).Str("provider", provider).Msg("code exchange failed")
		a.redirectWithAuthError(w, r, provider+"_exchange_failed")
		return
	}

	http.SetCookie(w, a.sessionCookie(session.AccessToken, session.ExpiresIn))
	http.Redirect(w, r, redirectPath, http.StatusFound)
}

// Logout revokes the session upstream, clears the cookie and sends the browser
// back. The cookie is cleared even when revocation fails.
func (a *App) Logout(w http.ResponseWriter, r *http.Request) {
	redirectPath := "/"
	if err := r.ParseForm(); err == nil {
		redirectPath = sanitizeRedirect(firstNonEmpty(
			r.PostFormValue("redirect_to"),
			r.URL.Query().Get("redirect_to"),
		))
	}

	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		if a.Auth != nil && a.Auth.Enabled() {
			if err := a.Auth.SignOut(r.Context(), cookie.Value); err != nil {
				a.Logger.Warn().Err(err).Msg("sign out failed")
				redirectPath = "/?authError=signout_failed"
			}
		}
	}

	http.SetCookie(w, a.sessionCookie("", -1))
	http.Redirect(w, r, redirectPath, http.StatusSeeOther)
}

// sessionUser resolves the signed-in user from the session cookie. Any failure
// renders as signed out; pages never surface auth errors.
func (a *App) sessionUser(r *http.Request) *supabase.User {
	if a.Auth == nil || !a.Auth.Enabled() {
		return nil
	}
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	user, err := a.Auth.User(r.Context(), cookie.Value)
	if err != nil {
		a.Logger.Debug().Err(err).Msg("session lookup failed")
		return nil
	}
	return user
}

func (a *App) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.AppEnv != "development",
		Expires:  time.Now().Add(time.Duration(maxAge) * time.Second),
	}
}

func (a *App) redirectWithAuthError(w http.ResponseWriter, r *http.Request, code string) {
	http.Redirect(w, r, "/?authError="+url.QueryEscape(code), http.StatusFound)
}

// sanitizeRedirect only allows local paths; anything else falls back to the
// home page so the callback cannot be used as an open redirect.
func sanitizeRedirect(value string) string {
	if value == "" || !strings.HasPrefix(value, "/") || strings.HasPrefix(value, "//") {
		return "/"
	}
	return value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
