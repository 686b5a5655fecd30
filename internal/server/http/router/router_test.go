package router

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/presto/internal/adapter/events"
	"github.com/polkiloo/presto/internal/adapter/partners"
	"github.com/polkiloo/presto/internal/app"
	"github.com/polkiloo/presto/internal/metrics"
	"github.com/polkiloo/presto/internal/scheduler"
	"github.com/polkiloo/presto/internal/server/http/dto"
	testhelpers "github.com/polkiloo/presto/internal/test"
	"github.com/polkiloo/presto/internal/usecase"
)

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	m := metrics.New()
	registry := app.NewRegistry()
	t.Cleanup(registry.CloseAll)
	facade := app.NewPrestoFacade(app.FacadeDeps{
		Registry:  registry,
		Partners:  partners.NewStaticSource(),
		Responder: &testhelpers.ResponderStub{},
		Theme:     usecase.NewThemeService(testhelpers.NewPreferenceRepositoryStub()),
		Scheduler: scheduler.New(clock.NewMock()),
		Publisher: events.NoopPublisher{},
		Recorder:  m,
		Config: app.SessionConfig{
			StartingBalance: 500,
			Ledger:          usecase.LedgerConfig{TopUpAmount: 1000, WithdrawAmount: 500, MinLatency: time.Second, MaxLatency: time.Second},
			Chat:            usecase.ChatConfig{GreetingDelay: time.Second, TypingDelay: time.Second, SystemUpdateDelay: 8 * time.Second},
		},
		Logger: logger,
	})
	return Setup(facade, m, logger)
}

func do(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestSetupRoutes(t *testing.T) {
	engine := newEngine(t)

	resp := do(t, engine, http.MethodPost, "/api/sessions", nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for create, got %d", resp.Code)
	}
	var session dto.SessionResponse
	_ = json.Unmarshal(resp.Body.Bytes(), &session)
	base := "/api/sessions/" + session.ID

	steps := []struct {
		method string
		path   string
		body   any
		want   int
	}{
		{http.MethodGet, base, nil, http.StatusOK},
		{http.MethodPut, base + "/tab", dto.TabRequest{Tab: "wallet"}, http.StatusOK},
		{http.MethodPut, base + "/tab", dto.TabRequest{Tab: "settings"}, http.StatusUnprocessableEntity},
		{http.MethodGet, base + "/chat", nil, http.StatusOK},
		{http.MethodPost, base + "/chat/order", nil, http.StatusConflict},
		{http.MethodPost, base + "/request", dto.SubmitRequest{Text: ""}, http.StatusUnprocessableEntity},
		{http.MethodPost, base + "/request", dto.SubmitRequest{Text: "Get 2 milk packets"}, http.StatusOK},
		{http.MethodGet, base + "/partners", nil, http.StatusOK},
		{http.MethodPost, base + "/partners/p9", nil, http.StatusNotFound},
		{http.MethodPost, base + "/partners/p1", nil, http.StatusOK},
		{http.MethodPost, base + "/chat/messages", dto.MessageRequest{Text: "add bread"}, http.StatusOK},
		{http.MethodPost, base + "/chat/order", nil, http.StatusCreated},
		{http.MethodGet, base + "/orders?view=ongoing", nil, http.StatusOK},
		{http.MethodGet, base + "/orders?view=later", nil, http.StatusBadRequest},
		{http.MethodGet, base + "/wallet", nil, http.StatusOK},
		{http.MethodPost, base + "/back", nil, http.StatusOK},
		{http.MethodPost, base + "/close", nil, http.StatusConflict},
		{http.MethodPost, base + "/request", dto.SubmitRequest{Text: "Pick up my parcel"}, http.StatusOK},
		{http.MethodPost, base + "/close", nil, http.StatusOK},
		{http.MethodGet, "/api/theme", nil, http.StatusOK},
		{http.MethodPut, "/api/theme", dto.ThemeRequest{Theme: "dark"}, http.StatusOK},
		{http.MethodPost, "/api/theme/toggle", nil, http.StatusOK},
		{http.MethodGet, "/healthz", nil, http.StatusOK},
		{http.MethodDelete, base, nil, http.StatusNoContent},
		{http.MethodGet, base, nil, http.StatusNotFound},
		{http.MethodPost, base + "/wallet/topup", nil, http.StatusNotFound},
	}
	for _, step := range steps {
		resp := do(t, engine, step.method, step.path, step.body)
		if resp.Code != step.want {
			t.Fatalf("%s %s: expected %d, got %d (%s)", step.method, step.path, step.want, resp.Code, resp.Body.String())
		}
	}
}

func TestSetupExposesMetrics(t *testing.T) {
	engine := newEngine(t)
	do(t, engine, http.MethodPost, "/api/sessions", nil)
	do(t, engine, http.MethodGet, "/api/sessions/missing", nil)

	resp := do(t, engine, http.MethodGet, "/metrics", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, want := range []string{
		`presto_http_requests_total{method="POST",route="/api/sessions",status="201"} 1`,
		`route="/api/sessions/:id",status="404"`,
		`presto_active_sessions 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in metrics output", want)
		}
	}
}

func TestSetupDecompressesRequests(t *testing.T) {
	engine := newEngine(t)

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte(`{"theme":"dark"}`))
	_ = gz.Close()

	req := httptest.NewRequest(http.MethodPut, "/api/theme", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), `"theme":"dark"`) {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestSetupCompressesResponses(t *testing.T) {
	engine := newEngine(t)
	req := httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip response, got headers %v", resp.Header())
	}
	reader, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	data, _ := io.ReadAll(reader)
	if !strings.Contains(string(data), `"theme":"light"`) {
		t.Fatalf("unexpected body %s", data)
	}
}
