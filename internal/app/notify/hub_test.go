package notify

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
)

type fakeChannel struct {
	id      string
	sendErr error

	mu       sync.Mutex
	messages []string
	closed   bool
}

func (c *fakeChannel) ID() string {
	return c.id
}

func (c *fakeChannel) Send(message []byte) error {
	if c.sendErr != nil {
		return c.sendErr
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, string(message))

	return nil
}

func (c *fakeChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true

	return nil
}

func (c *fakeChannel) received() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string(nil), c.messages...)
}

func TestBroadcast(t *testing.T) {
	hub := NewHub()

	first := &fakeChannel{id: "a"}
	broken := &fakeChannel{id: "b", sendErr: errors.New("buffer full")}
	second := &fakeChannel{id: "c"}

	hub.Register(first)
	hub.Register(broken)
	hub.Register(second)
	require.Equal(t, 3, hub.Len())

	hub.Broadcast(entity.CreateNewOrderEvent(entity.Order{ID: 42, Number: "N42"}))

	want := `{"type":1,"orderId":42,"content":"order number: N42"}`
	assert.Equal(t, []string{want}, first.received())
	assert.Equal(t, []string{want}, second.received())

	assert.True(t, broken.closed)
	assert.Equal(t, 2, hub.Len())

	hub.Broadcast(entity.CreateReminderEvent(entity.Order{ID: 42, Number: "N42"}))
	assert.Len(t, first.received(), 2)
}

func TestBroadcastWithoutChannels(t *testing.T) {
	hub := NewHub()

	assert.NotPanics(t, func() {
		hub.Broadcast(entity.CreateReminderEvent(entity.Order{ID: 1, Number: "N1"}))
	})
}

func TestRegisterReplacesSession(t *testing.T) {
	hub := NewHub()

	old := &fakeChannel{id: "a"}
	fresh := &fakeChannel{id: "a"}

	hub.Register(old)
	hub.Register(fresh)

	assert.True(t, old.closed)
	assert.False(t, fresh.closed)
	assert.Equal(t, 1, hub.Len())

	// a late unregister of the replaced channel keeps the new one
	hub.Unregister(old)
	assert.Equal(t, 1, hub.Len())

	hub.Unregister(fresh)
	assert.True(t, fresh.closed)
	assert.Zero(t, hub.Len())
}

func TestConcurrentRegisterAndBroadcast(t *testing.T) {
	hub := NewHub()

	const workers = 16

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(2)

		channel := &fakeChannel{id: string(rune('a' + i))}
		go func() {
			defer wg.Done()
			hub.Register(channel)
			hub.Unregister(channel)
		}()
		go func() {
			defer wg.Done()
			hub.Broadcast(entity.CreateNewOrderEvent(entity.Order{ID: 1, Number: "N1"}))
		}()
	}
	wg.Wait()

	assert.Zero(t, hub.Len())
}
