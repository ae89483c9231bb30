package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	config "github.com/drummonds/goOrders/config"
	engine "github.com/drummonds/goOrders/engine"
	"github.com/drummonds/goOrders/router"
	"github.com/drummonds/goOrders/webapp"
)

const testShellTitle = "Orders Test"

// newShellTestServer serves the real go-app shell through the echo server
func newShellTestServer(t *testing.T, rt *router.Router) *httptest.Server {
	t.Helper()
	serverConfig := config.ServerConfig{
		ListenAddrIP:   "127.0.0.1",
		ListenAddrPort: "0",
		WebDir:         t.TempDir(),
	}
	shell := webapp.Handler(webapp.HandlerConfig{
		Name:        "goOrders",
		Title:       testShellTitle,
		Description: "test shell",
	})
	srv := httptest.NewServer(engine.NewServer(serverConfig, rt, shell))
	t.Cleanup(srv.Close)
	return srv
}

// TestShellServer checks the server answers with the real app shell
func TestShellServer(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	rt := startWebapp(t)
	srv := newShellTestServer(t, rt)
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	tests := []struct {
		path         string
		wantStatus   int
		wantLocation string
	}{
		{"/", http.StatusFound, "/login"},
		{"/login", http.StatusOK, ""},
		{"/home", http.StatusOK, ""},
		{"/orders", http.StatusOK, ""},
		{"/orders_report", http.StatusOK, ""},
		{"/unknown", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := client.Get(srv.URL + tt.path)
			if err != nil {
				t.Fatalf("GET %s: %v", tt.path, err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if loc := resp.Header.Get("Location"); loc != tt.wantLocation {
				t.Errorf("Location = %q, want %q", loc, tt.wantLocation)
			}
			if tt.wantStatus == http.StatusFound {
				return
			}
			if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("Content-Type = %q, want text/html", ct)
			}
		})
	}

	// prerendering a page must not write to the router shared by all visitors
	if loc := rt.Location(); loc != "" {
		t.Errorf("router Location() = %q after shell requests, want empty", loc)
	}
	if loc, ok := rt.Back(); ok {
		t.Errorf("router Back() = %q, want no history", loc)
	}
}
