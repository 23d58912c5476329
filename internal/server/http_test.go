package server

import (
	"apple-chase/internal/engine"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestServer поднимает сервис с циклом и httptest-сервер над ним
func newTestServer(t *testing.T) (*engine.GameService, *httptest.Server) {
	t.Helper()
	svc := engine.NewService(engine.NewConfig())
	ctx, cancel := context.WithCancel(context.Background())
	go svc.Run(ctx)

	ts := httptest.NewServer(New(svc, "0").Handler())
	t.Cleanup(func() {
		ts.Close()
		cancel()
	})
	return svc, ts
}

func TestSecureHeaders(t *testing.T) {
	_, ts := newTestServer(t)

	want := map[string]string{
		"X-Content-Type-Options":      "nosniff",
		"X-XSS-Protection":            "1; mode=block",
		"Surrogate-Control":           "no-store",
		"Cache-Control":               "no-store, no-cache, must-revalidate, proxy-revalidate",
		"Pragma":                      "no-cache",
		"Expires":                     "0",
		"X-Powered-By":                "PHP 7.4.3",
		"Access-Control-Allow-Origin": "*",
	}

	for _, path := range []string{"/health", "/version", "/debug/players", "/nope"} {
		t.Run(path, func(t *testing.T) {
			resp, err := http.Get(ts.URL + path)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			for k, v := range want {
				if got := resp.Header.Get(k); got != v {
					t.Errorf("%s: expected %q, got %q", k, v, got)
				}
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	_, ts := newTestServer(t)

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/health", http.StatusOK, "ok"},
		{"/debug/players", http.StatusOK, "[]\n"},
		{"/debug/item", http.StatusOK, "null\n"},
		{"/debug/leaderboard", http.StatusOK, "[]\n"},
		{"/debug/sessions", http.StatusOK, "[]\n"},
		{"/index.html", http.StatusNotFound, "404 page not found\n"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tt.path)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, resp.StatusCode)
			}
			body, _ := io.ReadAll(resp.Body)
			if string(body) != tt.wantBody {
				t.Errorf("Expected body %q, got %q", tt.wantBody, body)
			}
		})
	}
}

func TestVersionRoute(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/version")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var info map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		t.Fatalf("version is not JSON: %v", err)
	}
	if _, ok := info["calculated"]; !ok {
		t.Errorf("Expected calculated field, got %v", info)
	}
}

func TestDebugRoutes_StoppedService(t *testing.T) {
	svc := engine.NewService(engine.NewConfig())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	ts := httptest.NewServer(New(svc, "0").Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/debug/players")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Expected 503, got %d", resp.StatusCode)
	}
}
