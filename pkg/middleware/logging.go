package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/vfg2006/sales-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/sales-forecast-api/pkg/log"
)

// CorrelationIDHeader é o cabeçalho usado para propagar o ID de correlação
const CorrelationIDHeader = "X-Correlation-ID"

// Acima deste tempo a requisição é registrada como lenta
const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware grava uma linha por requisição ao final do processamento.
// Além de método, caminho, status e duração, a linha leva os campos que a rota e os
// handlers registraram com log.AddRequestField (rota, resultado da previsão, analysis_id).
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context(), r.Header.Get(CorrelationIDHeader))
			ctx = log.WithRequestFields(ctx)
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			recorder := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			startTime := time.Now()

			next.ServeHTTP(recorder, r)

			elapsed := time.Since(startTime)

			fields := log.RequestFields(ctx)
			fields[log.CorrelationIDField] = correlationID
			fields["method"] = r.Method
			fields["path"] = r.URL.Path
			fields["status_code"] = recorder.statusCode
			fields["duration_ms"] = elapsed.Milliseconds()

			logger := log.L.WithFields(fields)
			switch {
			case recorder.statusCode >= http.StatusInternalServerError:
				logger.Error("Requisição finalizada com erro")
			case recorder.statusCode >= http.StatusBadRequest:
				logger.Warn("Requisição finalizada com aviso")
			case elapsed > slowRequestThreshold:
				logger.Warn("Requisição lenta")
			default:
				logger.Info("Requisição finalizada com sucesso")
			}
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.statusCode = code
	s.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware registra panics que escaparam dos handlers e responde 500 padronizado
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.ForContext(r.Context()).WithFields(log.Fields{
						"panic_error": err,
						"method":      r.Method,
						"path":        r.URL.Path,
						"stack_trace": string(debug.Stack()),
					}).Error("Erro não tratado na aplicação")

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
