package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-forecast-api/pkg/log"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:5000"})(okHandler)

	tests := []struct {
		name         string
		method       string
		origin       string
		expectHeader string
		expectStatus int
	}{
		{
			name:         "Origem liberada - deve devolver cabeçalhos CORS",
			method:       http.MethodGet,
			origin:       "http://localhost:5000",
			expectHeader: "http://localhost:5000",
			expectStatus: http.StatusOK,
		},
		{
			name:         "Origem desconhecida - não deve devolver cabeçalhos",
			method:       http.MethodGet,
			origin:       "https://evil.example.com",
			expectHeader: "",
			expectStatus: http.StatusOK,
		},
		{
			name:         "Preflight - deve responder sem chamar o handler",
			method:       http.MethodOptions,
			origin:       "http://localhost:5000",
			expectHeader: "http://localhost:5000",
			expectStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/forecast/tomorrow", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectStatus, rec.Code)
			assert.Equal(t, tt.expectHeader, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLoggingMiddleware_PropagatesCorrelationID(t *testing.T) {
	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
	}))

	incoming := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(CorrelationIDHeader, incoming)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, incoming, seen)
	assert.Equal(t, incoming, rec.Header().Get(CorrelationIDHeader))
}

func TestLoggingMiddleware_IncludesRequestFields(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.AddRequestField(r.Context(), "route", "/v1/forecast/stock")
		log.AddRequestField(r.Context(), "forecast_success", true)
		log.AddRequestField(r.Context(), "analysis_id", "abc123")
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/forecast/stock", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "/v1/forecast/stock", entry.Data["route"])
	assert.Equal(t, true, entry.Data["forecast_success"])
	assert.Equal(t, "abc123", entry.Data["analysis_id"])
	assert.Equal(t, http.StatusOK, entry.Data["status_code"])
	assert.NotEmpty(t, entry.Data[log.CorrelationIDField])
}

func TestLogPanicMiddleware(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	handler := LoggingMiddleware()(LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	req := httptest.NewRequest(http.MethodGet, "/v1/forecast/stock", nil)
	rec := httptest.NewRecorder()

	require.NotPanics(t, func() { handler.ServeHTTP(rec, req) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"SRV_001"`)

	// O log do panic e o log de fim da requisição compartilham o ID de correlação
	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "boom", entries[0].Data["panic_error"])
	assert.Equal(t, entries[0].Data[log.CorrelationIDField], entries[1].Data[log.CorrelationIDField])
	assert.Equal(t, logrus.ErrorLevel, entries[1].Level)
}

func TestDeprecated(t *testing.T) {
	handler := Deprecated("/v1/forecast/tomorrow")(okHandler)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tahmin/yarin", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("Deprecation"))
	assert.Equal(t, `</v1/forecast/tomorrow>; rel="successor-version"`, rec.Header().Get("Link"))
}
