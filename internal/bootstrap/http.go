package bootstrap

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	rangebook "github.com/archerhq/rangebook"
	"github.com/archerhq/rangebook/config"
	httpx "github.com/archerhq/rangebook/internal/http"
)

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// StartHTTPServer creates and starts the HTTP server.
// Returns the server instance for graceful shutdown.
func StartHTTPServer(cfg *HTTPServerConfig) (*http.Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	appCfg := cfg.Config

	templateFS, staticFS, err := assetFilesystems(appCfg.IsDev)
	if err != nil {
		return nil, err
	}

	router, err := httpx.NewRouter(httpx.RouterServices{
		Auth:          cfg.Services.Auth,
		Bookings:      cfg.Services.Bookings,
		TemplateFS:    templateFS,
		StaticFS:      staticFS,
		CookieDomain:  appCfg.HTTP.CookieDomain,
		SecureCookies: appCfg.HTTP.SecureCookies,
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}

	addr := appCfg.HTTP.Addr
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
		}
	}()

	return server, nil
}

// assetFilesystems returns the template and static filesystems.
// Dev mode serves from disk for hot reloading; production serves the
// embedded copies.
func assetFilesystems(isDev bool) (fs.FS, fs.FS, error) {
	if isDev {
		return os.DirFS("frontend/templates"), os.DirFS("frontend"), nil
	}

	templateFS, err := fs.Sub(rangebook.TemplateFS, "frontend/templates")
	if err != nil {
		return nil, nil, fmt.Errorf("template FS: %w", err)
	}
	staticFS, err := fs.Sub(rangebook.StaticFS, "frontend")
	if err != nil {
		return nil, nil, fmt.Errorf("static FS: %w", err)
	}
	return templateFS, staticFS, nil
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	if server == nil {
		return nil
	}
	if logger != nil {
		logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if logger != nil {
		logger.Info("HTTP server stopped")
	}
	return nil
}
