package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/samuelnapitupulu18/NusaCare/internal/logging"
	"github.com/samuelnapitupulu18/NusaCare/internal/server/config"
	"github.com/samuelnapitupulu18/NusaCare/internal/server/repositories/users"
	"github.com/samuelnapitupulu18/NusaCare/internal/server/services"
)

const testSecret = "test-secret"

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newTestServer wires a full API server against the in-memory credential
// store, a seeded telemetry source, a fast tracking interval, and no
// payment delay.
func newTestServer(t *testing.T, seed int64) (*httptest.Server, *users.InMemoryRepository) {
	t.Helper()

	repo := users.NewInMemoryRepository()
	cfg := &config.Config{
		SecretKey:             testSecret,
		TokenValidityDuration: 24 * time.Hour,
	}

	telemetry := services.NewTelemetry(rand.NewSource(seed))
	userService := services.NewUserService(repo, cfg)

	srv := NewServer(
		":0",
		testLogger(),
		userService,
		services.NewBillingService(telemetry, 0),
		services.NewTicketService(),
		services.NewTrackingSimulator(telemetry, 10*time.Millisecond),
		telemetry,
	)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, repo
}

func postJSON(t *testing.T, ts *httptest.Server, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, bytes.NewReader(b))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return doJSON(t, req)
}

func getJSON(t *testing.T, ts *httptest.Server, path, token string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return doJSON(t, req)
}

func doJSON(t *testing.T, req *http.Request) (*http.Response, map[string]any) {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	var payload map[string]any
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &payload)
	}
	return resp, payload
}

// registerAndLogin creates the canonical test account and returns a valid
// session token.
func registerAndLogin(t *testing.T, ts *httptest.Server) string {
	t.Helper()

	resp, _ := postJSON(t, ts, "/api/auth/register", "", map[string]any{
		"name": "Budi", "email": "budi@x.com", "password": "pw123", "wifiId": "NUSA-001",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("register status %d", resp.StatusCode)
	}

	resp, body := postJSON(t, ts, "/api/auth/login", "", map[string]any{
		"email": "budi@x.com", "password": "pw123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status %d", resp.StatusCode)
	}

	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("login returned no token")
	}
	return token
}
