// Package monitor serves the operational endpoints of a long-running kupu
// process:
//
//   - /metrics: Prometheus exposition of the OpenTelemetry instruments.
//   - /healthz: liveness probe; always returns 200 OK.
//   - /readyz: readiness probe; returns 200 only when every [Check] passes.
//
// Probe responses are JSON objects with a top-level "status" field ("ok" or
// "fail") and a "checks" map holding the outcome of each named check.
package monitor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/MrWong99/kupu/internal/observe"
	"github.com/MrWong99/kupu/pkg/lexicon"
)

const (
	// checkTimeout bounds a single readiness check.
	checkTimeout = 5 * time.Second

	// shutdownTimeout bounds the graceful shutdown in [Serve].
	shutdownTimeout = 5 * time.Second
)

// Check is a named readiness probe. Probe returns nil when the dependency is
// usable. It must respect context cancellation.
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

// LexiconCheck reports ready once store holds at least one entry.
func LexiconCheck(store *lexicon.Store) Check {
	return Check{
		Name: "lexicon",
		Probe: func(context.Context) error {
			if store == nil || store.Len() == 0 {
				return errors.New("no lexicon entries loaded")
			}
			return nil
		},
	}
}

type report struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Handler returns the routes of the monitoring endpoint, each request traced
// and timed through [observe.Middleware].
func Handler(m *observe.Metrics, checks ...Check) http.Handler {
	c := make([]Check, len(checks))
	copy(c, checks)

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, report{Status: "ok"})
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		readyz(w, r, c)
	})
	return observe.Middleware(m)(mux)
}

// readyz runs every check concurrently under its own deadline.
func readyz(w http.ResponseWriter, r *http.Request, checks []Check) {
	outcomes := make([]error, len(checks))
	var g errgroup.Group
	for i, c := range checks {
		g.Go(func() error {
			ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
			defer cancel()
			if err := r.Context().Err(); err != nil {
				outcomes[i] = err
				return nil
			}
			outcomes[i] = c.Probe(ctx)
			return nil
		})
	}
	_ = g.Wait()

	rep := report{Status: "ok", Checks: make(map[string]string, len(checks))}
	status := http.StatusOK
	for i, c := range checks {
		if err := outcomes[i]; err != nil {
			rep.Checks[c.Name] = "fail: " + err.Error()
			rep.Status = "fail"
			status = http.StatusServiceUnavailable
			continue
		}
		rep.Checks[c.Name] = "ok"
	}
	writeJSON(w, status, rep)
}

// Serve serves h on ln until ctx is cancelled, then shuts the server down
// gracefully. It returns nil after a clean shutdown.
func Serve(ctx context.Context, ln net.Listener, h http.Handler) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	slog.Info("monitoring endpoint listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		return fmt.Errorf("monitor: serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("monitor: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("monitor: serve: %w", err)
	}
	return nil
}

// writeJSON encodes v as JSON and writes it with the given status code. On
// encoding failure it falls back to a plain-text 500 response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"status":"error"}`, http.StatusInternalServerError)
	}
}
