// The proxy exposes the backend's read endpoints through same-origin routes
// so the deployed backend origin is never visible to browsers. It forwards
// path and query string as-is and streams the backend response back.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Shwetanshu13/me-api-playground/config"
)

// proxiedRoutes are the backend endpoints reachable through the proxy;
// everything else 404s locally without touching the backend.
var proxiedRoutes = []string{
	"/health",
	"/profile",
	"/projects",
	"/skills/top",
	"/search",
}

func normalizeBaseURL(value string) string {
	return strings.TrimSuffix(value, "/")
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded")
	}

	c := config.New()

	base := normalizeBaseURL(config.GetString(c, "BACKEND_BASE_URL", "http://localhost:8080"))
	target, err := url.Parse(base)
	if err != nil {
		log.Fatal().Err(err).Str("base", base).Msg("invalid BACKEND_BASE_URL")
	}

	proxy := &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.Out.Header.Set("Accept", "application/json")
		},
	}

	router := chi.NewRouter()
	for _, route := range proxiedRoutes {
		router.Get(route, func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			proxy.ServeHTTP(w, r)
			log.Info().
				Str("path", r.URL.Path).
				Dur("duration", time.Since(start)).
				Msg("proxied request")
		})
	}

	addr := fmt.Sprintf("0.0.0.0:%s", config.GetString(c, "PROXY_PORT", "3000"))
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  config.GetDuration(c, "READ_TIMEOUT_SECONDS", 60*time.Second),
		WriteTimeout: config.GetDuration(c, "WRITE_TIMEOUT_SECONDS", 60*time.Second),
		IdleTimeout:  config.GetDuration(c, "IDLE_TIMEOUT_SECONDS", 60*time.Second),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info().Str("addr", addr).Str("backend", base).Msg("proxy listening")
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatal().Err(err).Msg("proxy stopped")
	}
	log.Info().Msg("proxy shut down")
}
