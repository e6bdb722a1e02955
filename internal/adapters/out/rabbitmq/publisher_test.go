package rabbitmq_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"deliveryapi/internal/adapters/out/rabbitmq"
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChannel struct{ mock.Mock }

func (m *MockChannel) PublishWithContext(
	ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing,
) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func (m *MockChannel) Close() error {
	return m.Called().Error(0)
}

func statusChanged() order.StatusChanged {
	return order.StatusChanged{
		OrderID:      kernel.NewUUID(),
		CustomerID:   kernel.NewUUID(),
		RestaurantID: kernel.NewUUID(),
		From:         order.Preparing,
		To:           order.OutForDelivery,
		Total:        kernel.MustMoney("42.5"),
		OccurredAt:   time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC),
	}
}

func TestPublisher_PublishStatusChanged(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes a persistent json message routed by event name", func(t *testing.T) {
		event := statusChanged()
		ch := &MockChannel{}

		var sent amqp.Publishing
		ch.On("PublishWithContext", mock.Anything, "orders", "order.status_changed", false, false, mock.Anything).
			Run(func(args mock.Arguments) {
				_, hasDeadline := args.Get(0).(context.Context).Deadline()
				assert.True(t, hasDeadline, "publish must be bounded by a timeout")
				sent = args.Get(5).(amqp.Publishing)
			}).
			Return(nil).Once()

		err := rabbitmq.NewPublisher(ch, "orders", nil).PublishStatusChanged(ctx, event)

		require.NoError(t, err)
		ch.AssertExpectations(t)
		assert.Equal(t, "application/json", sent.ContentType)
		assert.Equal(t, amqp.Persistent, sent.DeliveryMode)

		var body map[string]any
		require.NoError(t, json.Unmarshal(sent.Body, &body))
		assert.Equal(t, event.OrderID.String(), body["order_id"])
		assert.Equal(t, "PREPARING", body["from"])
		assert.Equal(t, "OUT_FOR_DELIVERY", body["to"])
		assert.Equal(t, "42.50", body["total"])
	})

	t.Run("wraps broker errors", func(t *testing.T) {
		boom := errors.New("channel closed")
		ch := &MockChannel{}
		ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, false, false, mock.Anything).
			Return(boom).Once()

		err := rabbitmq.NewPublisher(ch, "orders", nil).PublishStatusChanged(ctx, statusChanged())

		assert.ErrorIs(t, err, boom)
	})
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	err := rabbitmq.NewLogPublisher(logger).PublishStatusChanged(context.Background(), statusChanged())

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"order.status_changed"`)
	assert.Contains(t, buf.String(), `"to":"OUT_FOR_DELIVERY"`)
}
