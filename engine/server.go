package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/drummonds/goOrders/config"
	"github.com/drummonds/goOrders/router"
)

// Logger is global since we will need it everywhere
var Logger = slog.Default()

const (
	maxPortRetries  = 5
	shutdownTimeout = 10 * time.Second
)

// ServerHandler will inject the variables needed into routes
type ServerHandler struct {
	Router       *router.Router
	Shell        http.Handler
	Echo         *echo.Echo
	ServerConfig config.ServerConfig
}

// NewServer creates the echo server answering every page request with the shell
func NewServer(serverConfig config.ServerConfig, rt *router.Router, shell http.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return ulid.Make().String() },
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelDebug
			if v.Error != nil {
				level = slog.LevelError
			}
			Logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("id", v.RequestID),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.Any("error", v.Error),
			)
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))

	serverHandler := &ServerHandler{Router: rt, Shell: shell, Echo: e, ServerConfig: serverConfig}
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	serverHandler.AddRoutes()
	return e
}

// Run starts the server and shuts it down once ctx is done. When the port is
// taken the next ones are tried, up to maxPortRetries. Run returns only after
// the listening goroutine has exited.
func Run(ctx context.Context, e *echo.Echo, serverConfig config.ServerConfig) error {
	if serverConfig.ListenAddrIP == "" {
		Logger.Info("No Ip Addr set, binding on ALL addresses")
	}

	errs := make(chan error, 1)
	go func() {
		errs <- start(ctx, e, serverConfig)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	Logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	shutdownErr := e.Shutdown(shutdownCtx)
	// a listener bound after Shutdown is refused by net/http and closed
	select {
	case err := <-errs:
		if shutdownErr != nil {
			return fmt.Errorf("shutting down: %w", shutdownErr)
		}
		return err
	case <-shutdownCtx.Done():
		return fmt.Errorf("server did not stop within %s", shutdownTimeout)
	}
}

func start(ctx context.Context, e *echo.Echo, serverConfig config.ServerConfig) error {
	startPort := serverConfig.ListenAddrPort
	for attempt := 0; attempt < maxPortRetries; attempt++ {
		if ctx.Err() != nil {
			return nil
		}
		addr := serverConfig.Addr()
		Logger.Info("Attempting to start server", "address", addr, "attempt", attempt+1)

		err := e.Start(addr)
		switch {
		case err == nil, errors.Is(err, http.ErrServerClosed):
			return nil
		case !isAddressInUse(err):
			return fmt.Errorf("starting server: %w", err)
		}

		Logger.Warn("Port already in use, trying next port",
			"port", serverConfig.ListenAddrPort,
			"attempt", attempt+1,
			"max_attempts", maxPortRetries)
		portNum, convErr := strconv.Atoi(serverConfig.ListenAddrPort)
		if convErr != nil {
			return fmt.Errorf("port %q in use and not numeric: %w", serverConfig.ListenAddrPort, err)
		}
		serverConfig.ListenAddrPort = strconv.Itoa(portNum + 1)
	}
	return fmt.Errorf("no free port between %s and %s", startPort, serverConfig.ListenAddrPort)
}

// isAddressInUse checks if the error is due to address already in use
func isAddressInUse(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "address already in use")
}
