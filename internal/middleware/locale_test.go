package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDetectLocale(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(r *http.Request)
		fallback string
		country  string
		want     string
	}{
		{
			name: "x-locale overrides",
			setup: func(r *http.Request) {
				r.Header.Set("X-Locale", "ES")
			},
			country: "US",
			want:    "es",
		},
		{
			name: "accept-language used",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "en-US,en;q=0.9")
			},
			want: "en",
		},
		{
			name: "accept-language es preference",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "es-MX,en;q=0.8")
			},
			want: "es",
		},
		{
			name:    "spanish country",
			country: "MX",
			want:    "es",
		},
		{
			name:    "other country uses fallback",
			country: "DE",
			fallback: "en",
			want:    "en",
		},
		{
			name: "no signal defaults to en",
			want: "en",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if tc.setup != nil {
				tc.setup(r)
			}
			if got := detectLocale(r, tc.fallback, tc.country); got != tc.want {
				t.Fatalf("detectLocale() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLocaleMiddlewareStoresContextValues(t *testing.T) {
	var gotLocale, gotCountry string
	handler := Locale("en", func(ip string) (string, error) {
		return "mx", nil
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLocale = LocaleFromContext(r.Context())
		gotCountry = CountryFromContext(r.Context())
	}))

	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "203.0.113.7:1234"
	handler.ServeHTTP(httptest.NewRecorder(), r)

	if gotLocale != "es" {
		t.Fatalf("locale = %q, want es via GeoIP country", gotLocale)
	}
	if gotCountry != "MX" {
		t.Fatalf("country = %q, want MX", gotCountry)
	}
}

func TestLocaleMiddlewareToleratesLookupFailure(t *testing.T) {
	var gotLocale string
	handler := Locale("en", func(ip string) (string, error) {
		return "", errors.New("db unavailable")
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLocale = LocaleFromContext(r.Context())
	}))

	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "203.0.113.7:1234"
	handler.ServeHTTP(httptest.NewRecorder(), r)

	if gotLocale != "en" {
		t.Fatalf("locale = %q, want fallback en", gotLocale)
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "198.51.100.10:9000"
	if got := ClientIP(r); got != "198.51.100.10" {
		t.Fatalf("ClientIP() = %q", got)
	}
	r.Header.Set("X-Forwarded-For", "203.0.113.1, 198.51.100.2")
	if got := ClientIP(r); got != "203.0.113.1" {
		t.Fatalf("ClientIP() with forwarded header = %q", got)
	}
}
