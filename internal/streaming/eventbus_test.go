package streaming

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithankit/dhankavach/internal/domain/models"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "disabled", Format: "json"})
}

func TestEventBus_PublishReachesSubscriber(t *testing.T) {
	bus := NewEventBus(nil, testLogger())
	defer bus.Close()

	ch, unsubscribe := bus.Subscribe(context.Background(), &Subscription{})
	defer unsubscribe()

	event := NewAlertEvent(AlertTypeIntelligenceMatch, models.RiskLevelCritical,
		"Recipient linked to flagged scam", "", []string{"scamloans@paytm"})
	require.NoError(t, bus.Publish(context.Background(), event))

	select {
	case received := <-ch:
		assert.Equal(t, event.ID, received.ID)
		assert.Equal(t, AlertTypeIntelligenceMatch, received.Type)
	case <-time.After(time.Second):
		t.Fatal("expected event on subscriber channel")
	}
}

func TestEventBus_UnsubscribeClosesChannel(t *testing.T) {
	bus := NewEventBus(nil, testLogger())
	defer bus.Close()

	ch, unsubscribe := bus.Subscribe(context.Background(), &Subscription{})
	assert.Equal(t, 1, bus.SubscriberCount())

	unsubscribe()
	assert.Equal(t, 0, bus.SubscriberCount())

	_, open := <-ch
	assert.False(t, open)
}

func TestEventBus_UnsubscribeIsIdempotent(t *testing.T) {
	bus := NewEventBus(nil, testLogger())
	defer bus.Close()

	_, unsubscribe := bus.Subscribe(context.Background(), &Subscription{})
	unsubscribe()
	unsubscribe()

	assert.Equal(t, 0, bus.SubscriberCount())
}

func TestEventBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewEventBus(nil, testLogger())
	defer bus.Close()

	event := NewAlertEvent(AlertTypeFamilyNotification, models.RiskLevelMedium, "t", "", nil)
	assert.NoError(t, bus.Publish(context.Background(), event))
}
