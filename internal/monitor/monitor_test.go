package monitor_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/MrWong99/kupu/internal/monitor"
	"github.com/MrWong99/kupu/internal/observe"
	"github.com/MrWong99/kupu/pkg/lexicon"
)

type report struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func newMetrics(t *testing.T) *observe.Metrics {
	t.Helper()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewManualReader()))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	m, err := observe.NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	return m
}

func get(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, report) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var rep report
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(rec.Body).Decode(&rep); err != nil {
			t.Fatalf("decode JSON: %v", err)
		}
	}
	return rec, rep
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	rec, rep := get(t, monitor.Handler(newMetrics(t)), "/healthz")
	if rec.Code != http.StatusOK || rep.Status != "ok" {
		t.Errorf("healthz = %d %q, want 200 ok", rec.Code, rep.Status)
	}
}

func TestReadyz(t *testing.T) {
	t.Parallel()

	store, err := lexicon.NewBuiltinStore()
	if err != nil {
		t.Fatalf("NewBuiltinStore: %v", err)
	}
	empty, err := lexicon.NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	failing := monitor.Check{Name: "disk", Probe: func(context.Context) error { return errors.New("full") }}

	tests := []struct {
		name       string
		checks     []monitor.Check
		wantStatus int
		wantChecks map[string]string
	}{
		{name: "no checks", wantStatus: http.StatusOK, wantChecks: map[string]string{}},
		{name: "lexicon loaded", checks: []monitor.Check{monitor.LexiconCheck(store)}, wantStatus: http.StatusOK, wantChecks: map[string]string{"lexicon": "ok"}},
		{name: "lexicon empty", checks: []monitor.Check{monitor.LexiconCheck(empty)}, wantStatus: http.StatusServiceUnavailable, wantChecks: map[string]string{"lexicon": "fail: no lexicon entries loaded"}},
		{name: "one of two fails", checks: []monitor.Check{monitor.LexiconCheck(store), failing}, wantStatus: http.StatusServiceUnavailable, wantChecks: map[string]string{"lexicon": "ok", "disk": "fail: full"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, rep := get(t, monitor.Handler(newMetrics(t), tt.checks...), "/readyz")
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			for name, want := range tt.wantChecks {
				if rep.Checks[name] != want {
					t.Errorf("check %q = %q, want %q", name, rep.Checks[name], want)
				}
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	rec, _ := get(t, monitor.Handler(newMetrics(t)), "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "go_goroutines") {
		t.Error("metrics body lacks the Go runtime collector")
	}
}

func TestServe(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- monitor.Serve(ctx, ln, monitor.Handler(newMetrics(t))) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), `"ok"`) {
		t.Errorf("GET /healthz = %d %s", resp.StatusCode, body)
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Serve returned %v after cancel, want nil", err)
	}
}
