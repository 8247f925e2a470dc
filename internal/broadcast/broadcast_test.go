package broadcast

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammirack/admin-sync/internal/logger"
	"github.com/sammirack/admin-sync/models"
)

func TestChannel_DeliversToOtherChannels(t *testing.T) {
	hub := NewHub()
	a := hub.Channel(logger.Nop())
	b := hub.Channel(logger.Nop())

	var got []models.Message
	var mu sync.Mutex
	b.Subscribe(func(msg models.Message) {
		mu.Lock()
		got = append(got, msg)
		mu.Unlock()
	})

	a.Publish(models.Message{Type: models.InventoryUpdated})

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1)
	assert.Equal(t, models.InventoryUpdated, got[0].Type)
	assert.Equal(t, a.ID(), got[0].Source)
	assert.False(t, got[0].Timestamp.IsZero())
}

func TestChannel_IgnoresOwnMessages(t *testing.T) {
	hub := NewHub()
	a := hub.Channel(logger.Nop())

	calls := 0
	a.Subscribe(func(models.Message) { calls++ })

	a.Publish(models.Message{Type: models.DocumentsUpdated})

	assert.Zero(t, calls, "a channel must not receive its own messages")
}

func TestChannel_DistinctInstanceIDs(t *testing.T) {
	hub := NewHub()
	a := hub.Channel(logger.Nop())
	b := hub.Channel(logger.Nop())

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestChannel_Unsubscribe(t *testing.T) {
	hub := NewHub()
	a := hub.Channel(logger.Nop())
	b := hub.Channel(logger.Nop())

	calls := 0
	unsubscribe := b.Subscribe(func(models.Message) { calls++ })

	a.Publish(models.Message{Type: models.PricesUpdated})
	unsubscribe()
	a.Publish(models.Message{Type: models.PricesUpdated})

	assert.Equal(t, 1, calls)
}

func TestChannel_CloseStopsDelivery(t *testing.T) {
	hub := NewHub()
	a := hub.Channel(logger.Nop())
	b := hub.Channel(logger.Nop())

	calls := 0
	b.Subscribe(func(models.Message) { calls++ })
	b.Close()

	a.Publish(models.Message{Type: models.ForceReload})

	assert.Zero(t, calls)
}

func TestChannel_PublishAfterCloseIsNoOp(t *testing.T) {
	hub := NewHub()
	a := hub.Channel(logger.Nop())
	b := hub.Channel(logger.Nop())

	calls := 0
	b.Subscribe(func(models.Message) { calls++ })

	a.Close()
	a.Publish(models.Message{Type: models.ForceReload})

	assert.Zero(t, calls)
}
