package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	t.Run("ID válido do cliente - deve ser reaproveitado", func(t *testing.T) {
		incoming := uuid.New().String()

		ctx, id := WithCorrelationID(context.Background(), incoming)

		assert.Equal(t, incoming, id)
		assert.Equal(t, incoming, GetCorrelationID(ctx))
	})

	t.Run("ID ausente ou inválido - deve gerar um novo", func(t *testing.T) {
		for _, incoming := range []string{"", "não-é-uuid"} {
			ctx, id := WithCorrelationID(context.Background(), incoming)

			_, err := uuid.Parse(id)
			require.NoError(t, err)
			assert.NotEqual(t, incoming, id)
			assert.Equal(t, id, GetCorrelationID(ctx))
		}
	})
}

func TestGetCorrelationID_Empty(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background(), "")

	entry, ok := ForContext(ctx).(*logrus.Entry)
	require.True(t, ok)
	assert.Equal(t, id, entry.Data[CorrelationIDField])

	assert.Equal(t, L, ForContext(context.Background()))
}

func TestRequestFields(t *testing.T) {
	t.Run("Contexto preparado - deve acumular campos", func(t *testing.T) {
		ctx := WithRequestFields(context.Background())

		AddRequestField(ctx, "forecast_success", true)
		AddRequestField(ctx, "analysis_id", "abc123")

		fields := RequestFields(ctx)
		assert.Equal(t, Fields{"forecast_success": true, "analysis_id": "abc123"}, fields)

		// A cópia devolvida não altera os campos guardados
		fields["route"] = "/x"
		assert.NotContains(t, RequestFields(ctx), "route")
	})

	t.Run("Contexto sem preparo - deve ignorar", func(t *testing.T) {
		ctx := context.Background()

		AddRequestField(ctx, "forecast_success", true)

		assert.Empty(t, RequestFields(ctx))
	})
}

func TestConfigure(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	require.NoError(t, Configure("warn"))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	assert.Error(t, Configure("verbose"))
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
