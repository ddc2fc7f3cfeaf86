package notify

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/avGenie/go-order-lifecycle/internal/app/converter"
	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	"github.com/avGenie/go-order-lifecycle/internal/app/metrics"
)

// Channel is a live push connection to a staff client. Send must not block.
type Channel interface {
	ID() string
	Send(message []byte) error
	Close() error
}

// Hub keeps the registry of connected staff channels.
type Hub struct {
	mu       sync.RWMutex
	channels map[string]Channel
}

func NewHub() *Hub {
	return &Hub{
		channels: make(map[string]Channel),
	}
}

// Register adds the channel. A channel already registered under the same id
// is replaced and closed.
func (h *Hub) Register(channel Channel) {
	h.mu.Lock()
	previous, ok := h.channels[channel.ID()]
	h.channels[channel.ID()] = channel
	count := len(h.channels)
	h.mu.Unlock()

	if ok && previous != channel {
		_ = previous.Close()
	}

	metrics.Channels.Set(float64(count))
	zap.L().Info("push channel registered", zap.String("sid", channel.ID()), zap.Int("channels", count))
}

// Unregister removes the channel if it is still the registered one for its
// id.
func (h *Hub) Unregister(channel Channel) {
	if !h.remove(channel) {
		return
	}

	_ = channel.Close()
	zap.L().Info("push channel unregistered", zap.String("sid", channel.ID()))
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.channels)
}

// Broadcast delivers the event to every registered channel. Failing channels
// are dropped; errors never reach the caller.
func (h *Hub) Broadcast(event entity.StatusEvent) {
	message, err := json.Marshal(converter.ConvertStatusEventToOutput(event))
	if err != nil {
		zap.L().Error("error while marshalling status event", zap.Error(err))
		return
	}

	for _, channel := range h.snapshot() {
		if err := channel.Send(message); err != nil {
			metrics.Deliveries.WithLabelValues(metrics.ResultError).Inc()
			zap.L().Warn("push delivery failed, dropping channel",
				zap.String("sid", channel.ID()),
				zap.Int64("order_id", int64(event.OrderID)),
				zap.Error(err),
			)
			h.Unregister(channel)

			continue
		}

		metrics.Deliveries.WithLabelValues(metrics.ResultOK).Inc()
	}
}

func (h *Hub) snapshot() []Channel {
	h.mu.RLock()
	defer h.mu.RUnlock()

	channels := make([]Channel, 0, len(h.channels))
	for _, channel := range h.channels {
		channels = append(channels, channel)
	}

	return channels
}

func (h *Hub) remove(channel Channel) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	current, ok := h.channels[channel.ID()]
	if !ok || current != channel {
		return false
	}
	delete(h.channels, channel.ID())
	metrics.Channels.Set(float64(len(h.channels)))

	return true
}
