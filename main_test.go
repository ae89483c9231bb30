package main

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/drummonds/goOrders/router"
	"github.com/drummonds/goOrders/webapp"
)

var (
	startOnce sync.Once
	startedRT *router.Router
)

// startWebapp registers the routes with go-app once per test binary and
// returns the router the registered root component uses. MemoryHistory is
// the mode that would record navigations, so shared state writes show up.
func startWebapp(t *testing.T) *router.Router {
	t.Helper()
	startOnce.Do(func() {
		rt, err := webapp.NewRouter(router.MemoryHistory)
		if err != nil {
			t.Fatalf("NewRouter() error: %v", err)
		}
		if _, err := webapp.Start(webapp.NewApp, rt, webapp.DefaultMountTarget); err != nil {
			t.Fatalf("Start() error: %v", err)
		}
		startedRT = rt
	})
	if startedRT == nil {
		t.Fatal("webapp did not start")
	}
	return startedRT
}

// getBrowser finds an available browser for testing
func getBrowser() (string, error) {
	browsers := []string{"chromium", "chromium-browser", "google-chrome", "chrome"}
	for _, browser := range browsers {
		if path, err := exec.LookPath(browser); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no suitable browser found")
}

func TestRoutesCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"routes"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("routes command error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out.String())
	}
	want := [][]string{
		{"/", "-", "redirect -> /login"},
		{"/login", "Login", "page"},
		{"/home", "Home", "page"},
		{"/orders", "OrdersPage", "page"},
		{"/orders_report", "OrdersReportPage", "page"},
	}
	for i, fields := range want {
		for _, f := range fields {
			if !strings.Contains(lines[i], f) {
				t.Errorf("line %d %q is missing %q", i, lines[i], f)
			}
		}
	}
}

func TestBindFlags(t *testing.T) {
	v := viper.New()
	v.Set("serverConfig.ServerPort", "8000")

	cmd := &cobra.Command{Use: "serve"}
	cmd.Flags().String("addr", "", "")
	cmd.Flags().StringP("port", "p", "", "")
	if err := cmd.Flags().Parse([]string{"--port", "9300"}); err != nil {
		t.Fatal(err)
	}

	bindFlags(cmd, v)
	if got := v.GetString("serverConfig.ServerPort"); got != "9300" {
		t.Errorf("port = %q, want 9300", got)
	}
	if v.IsSet("serverConfig.ServerAddr") {
		t.Error("unchanged flags should not override the config")
	}
}

// TestFrontendRendering loads the served shell in a headless browser
func TestFrontendRendering(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	browserPath, err := getBrowser()
	if err != nil {
		t.Skip("No Chrome or Chromium found, skipping browser test")
	}
	t.Logf("Using browser: %s", browserPath)

	srv := newShellTestServer(t, startWebapp(t))

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(browserPath),
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Headless,
	)
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancel()
	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()
	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var location, title string
	err = chromedp.Run(ctx,
		chromedp.Navigate(srv.URL+"/"),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Location(&location),
		chromedp.Title(&title),
	)
	if err != nil {
		t.Fatalf("browser run failed: %v", err)
	}
	if !strings.HasSuffix(location, "/login") {
		t.Errorf("browser ended at %q, want the /login redirect", location)
	}
	if title != testShellTitle {
		t.Errorf("title = %q, want %q", title, testShellTitle)
	}
}
