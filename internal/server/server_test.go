package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pasteboard/internal/config"
	"pasteboard/internal/database"
)

func newTestServer(t *testing.T) *FiberServer {
	t.Helper()
	cfg := &config.Config{
		Port:          "0",
		DBPath:        ":memory:",
		SessionSecret: "test-secret",
		SessionMaxAge: time.Hour,
		SessionSecure: false,
		BcryptCost:    4,
	}
	db, err := database.New(cfg.DBPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s := New(cfg, db, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.RegisterFiberRoutes()
	return s
}

// apiToken registers an account directly through the auth service and
// returns its session token for header-based requests.
func apiToken(t *testing.T, s *FiberServer, email string) string {
	t.Helper()
	_, session, err := s.auth.Register(context.Background(), email, "secret1", "secret1", "")
	require.NoError(t, err)
	return session.Token
}

func jsonRequest(method, target, token, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("X-Session-ID", token)
	}
	return req
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", sessionCookieName)
	return nil
}
