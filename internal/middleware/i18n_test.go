package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func runI18N(t *testing.T, lookup CountryLookup, mutate func(*http.Request)) (locale, country string) {
	t.Helper()
	handler := I18N("en", lookup)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale = LocaleFromContext(r.Context())
		country = CountryFromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.10:51234"
	if mutate != nil {
		mutate(req)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return locale, country
}

func TestI18NDetection(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*http.Request)
		lookup     CountryLookup
		wantLocale string
	}{
		{
			name:       "explicit x-locale header wins",
			mutate:     func(r *http.Request) { r.Header.Set("X-Locale", "id-ID") },
			wantLocale: "id",
		},
		{
			name:       "unsupported x-locale falls back to english",
			mutate:     func(r *http.Request) { r.Header.Set("X-Locale", "not-a-tag") },
			wantLocale: "en",
		},
		{
			name:       "accept-language matched",
			mutate:     func(r *http.Request) { r.Header.Set("Accept-Language", "zh-CN,zh;q=0.9,en;q=0.5") },
			wantLocale: "zh",
		},
		{
			name:       "indonesian country implies indonesian locale",
			mutate:     func(r *http.Request) { r.Header.Set("CF-IPCountry", "id") },
			wantLocale: "id",
		},
		{
			name:       "geoip lookup as last resort",
			lookup:     func(ip string) (string, error) { return "ID", nil },
			wantLocale: "id",
		},
		{
			name:       "no signals falls back to default",
			wantLocale: "en",
		},
		{
			name:       "lookup error is ignored",
			lookup:     func(ip string) (string, error) { return "", errors.New("db closed") },
			wantLocale: "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locale, _ := runI18N(t, tt.lookup, tt.mutate)
			if locale != tt.wantLocale {
				t.Fatalf("locale = %q, want %q", locale, tt.wantLocale)
			}
		})
	}
}

func TestI18NCountryInContext(t *testing.T) {
	_, country := runI18N(t, nil, func(r *http.Request) { r.Header.Set("X-Country-Code", "sg") })
	if country != "SG" {
		t.Fatalf("country = %q, want SG", country)
	}

	lookup := func(ip string) (string, error) {
		if ip != "203.0.113.10" {
			return "", errors.New("unexpected ip " + ip)
		}
		return "JP", nil
	}
	_, country = runI18N(t, lookup, nil)
	if country != "JP" {
		t.Fatalf("country = %q, want JP", country)
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.7:4242"
	if got := ClientIP(req); got != "198.51.100.7" {
		t.Fatalf("ClientIP = %q", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.4, 10.0.0.1")
	if got := ClientIP(req); got != "203.0.113.4" {
		t.Fatalf("ClientIP with forwarded header = %q", got)
	}
}
