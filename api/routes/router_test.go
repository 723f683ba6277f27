package routes

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/retailops/shiftbot/internal/bot"
	"github.com/retailops/shiftbot/pkg/logger"
)

type stubDispatcher struct {
	dispatched int
}

func (s *stubDispatcher) Dispatch(_ context.Context, _ bot.Update) error {
	s.dispatched++
	return nil
}

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(_ context.Context) error { return s.err }

func newTestRouter(t *testing.T, pinger *stubPinger, dispatcher *stubDispatcher) http.Handler {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "routes-test", Output: io.Discard})
	return NewRouter(logg, pinger, dispatcher, prometheus.NewRegistry())
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t, &stubPinger{}, &stubDispatcher{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("readyz: expected 200, got %d", rec.Code)
	}
}

func TestReadyzFailsWhenStoreDown(t *testing.T) {
	router := newTestRouter(t, &stubPinger{err: errors.New("connection refused")}, &stubDispatcher{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestUpdatesRouteDispatches(t *testing.T) {
	dispatcher := &stubDispatcher{}
	router := newTestRouter(t, &stubPinger{}, dispatcher)

	body := `{"kind":"callback","chat_id":9,"from":{"id":9},"callback_data":"admin_reports"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/updates", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if dispatcher.dispatched != 1 {
		t.Fatalf("expected one dispatch, got %d", dispatcher.dispatched)
	}
}

func TestMetricsEndpointExposed(t *testing.T) {
	router := newTestRouter(t, &stubPinger{}, &stubDispatcher{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rec.Code)
	}
}
