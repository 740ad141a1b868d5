package realtime

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu       sync.Mutex
	messages [][]byte
	deadline time.Time
	closed   bool

	failWrite bool
	started   chan struct{} // closed when a write begins, when set
	release   chan struct{} // write blocks until closed, when set
}

func (c *fakeConn) WriteMessage(messageType int, data []byte) error {
	if c.started != nil {
		close(c.started)
		c.started = nil
	}
	if c.release != nil {
		<-c.release
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failWrite {
		return errors.New("write failed")
	}
	c.messages = append(c.messages, data)
	return nil
}

func (c *fakeConn) SetWriteDeadline(t time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deadline = t
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) received() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.messages
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	a, b := &fakeConn{}, &fakeConn{}
	hub.Register(a)
	hub.Register(b)

	hub.Broadcast([]byte(`{"type":"product_update"}`))

	require.Len(t, a.received(), 1)
	require.Len(t, b.received(), 1)
	assert.Equal(t, `{"type":"product_update"}`, string(a.received()[0]))
	assert.False(t, a.deadline.IsZero(), "write deadline must be set")
	assert.Equal(t, 2, hub.Count())
}

func TestHub_FailingClientDropped(t *testing.T) {
	hub := NewHub()
	bad := &fakeConn{failWrite: true}
	good := &fakeConn{}
	hub.Register(bad)
	hub.Register(good)

	hub.Broadcast([]byte("payload"))

	assert.Equal(t, 1, hub.Count())
	assert.True(t, bad.closed)
	assert.False(t, good.closed)
	require.Len(t, good.received(), 1)
}

func TestHub_SlowClientDoesNotBlockRegister(t *testing.T) {
	hub := NewHub()
	slow := &fakeConn{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	hub.Register(slow)

	started := slow.started
	go hub.Broadcast([]byte("payload"))
	<-started

	registered := make(chan struct{})
	go func() {
		hub.Register(&fakeConn{})
		close(registered)
	}()
	select {
	case <-registered:
	case <-time.After(time.Second):
		t.Fatal("Register blocked behind a slow broadcast write")
	}
	close(slow.release)
}

func TestHub_UnregisterUnknownConn(t *testing.T) {
	hub := NewHub()
	hub.Register(&fakeConn{})
	hub.Unregister(&fakeConn{})
	assert.Equal(t, 1, hub.Count())
}
