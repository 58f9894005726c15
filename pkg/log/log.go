// Package log concentra o logrus do serviço: nível, ID de correlação e os campos
// acumulados durante uma requisição.
package log

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields = logrus.Fields

type Logger = logrus.FieldLogger

// L é o logger global, sem campos de requisição
var L Logger = logrus.StandardLogger()

type contextKey string

const (
	correlationIDKey contextKey = "correlation_id"
	requestFieldsKey contextKey = "request_fields"

	CorrelationIDField = "correlation_id"
)

// Configure ajusta formato e nível do logrus a partir de LOG_LEVEL.
// Um nível inválido mantém "info" e devolve o erro para quem chamou decidir.
func Configure(level string) error {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.SetLevel(logrus.InfoLevel)
		return err
	}

	logrus.SetLevel(parsed)
	return nil
}

// WithCorrelationID guarda no contexto o ID recebido do cliente, ou um novo uuid
// quando o recebido está vazio ou não é um uuid
func WithCorrelationID(ctx context.Context, incoming string) (context.Context, string) {
	correlationID := incoming
	if _, err := uuid.Parse(correlationID); err != nil {
		correlationID = uuid.New().String()
	}
	return context.WithValue(ctx, correlationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	correlationID, _ := ctx.Value(correlationIDKey).(string)
	return correlationID
}

// ForContext devolve um logger com o ID de correlação da requisição, quando houver
func ForContext(ctx context.Context) Logger {
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		return L.WithField(CorrelationIDField, correlationID)
	}
	return L
}

// requestFields acumula campos que os handlers querem ver no log de fim da requisição
type requestFields struct {
	mu     sync.Mutex
	fields Fields
}

// WithRequestFields prepara o contexto para receber campos via AddRequestField
func WithRequestFields(ctx context.Context) context.Context {
	return context.WithValue(ctx, requestFieldsKey, &requestFields{fields: Fields{}})
}

// AddRequestField registra um campo no log de fim da requisição.
// Fora de uma requisição preparada com WithRequestFields não faz nada.
func AddRequestField(ctx context.Context, key string, value any) {
	rf, ok := ctx.Value(requestFieldsKey).(*requestFields)
	if !ok {
		return
	}
	rf.mu.Lock()
	rf.fields[key] = value
	rf.mu.Unlock()
}

// RequestFields devolve uma cópia dos campos acumulados
func RequestFields(ctx context.Context) Fields {
	out := Fields{}
	rf, ok := ctx.Value(requestFieldsKey).(*requestFields)
	if !ok {
		return out
	}
	rf.mu.Lock()
	defer rf.mu.Unlock()
	for k, v := range rf.fields {
		out[k] = v
	}
	return out
}
