package realtime

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	id      string
	mu      sync.Mutex
	got     [][]byte
	closed  bool
	fail    error
	touched time.Time
}

func newFakeConn() *fakeConn {
	return &fakeConn{id: uuid.NewString(), touched: time.Now()}
}

func (f *fakeConn) SessionID() string { return f.id }

func (f *fakeConn) Send(payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.got = append(f.got, payload)
	return nil
}

func (f *fakeConn) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func (f *fakeConn) LastActive() time.Time { return f.touched }

func (f *fakeConn) received() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte(nil), f.got...)
}

func (f *fakeConn) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func TestHub_MultipleSessionsPerUser(t *testing.T) {
	req := require.New(t)
	hub := NewHub()
	c1, c2 := newFakeConn(), newFakeConn()

	// Given no user is connected
	req.False(hub.IsConnected(1))

	// When the same user opens two sessions
	req.Equal(1, hub.Register(1, c1))
	req.Equal(2, hub.Register(1, c2))

	// Then both receive pushes
	req.True(hub.IsConnected(1))
	req.Equal(2, hub.ConnectionCount())
	req.Equal(1, hub.UserCount())
	req.Equal(2, hub.Push(1, []byte("hi")))
	req.Len(c1.received(), 1)
	req.Len(c2.received(), 1)

	// And the user stays online until the last session leaves
	req.True(hub.Unregister(1, c1))
	req.True(hub.IsConnected(1))
	req.False(hub.Unregister(1, c1))
	req.True(hub.Unregister(1, c2))
	req.False(hub.IsConnected(1))
	req.Zero(hub.UserCount())
}

func TestHub_PushToOfflineUserIsNoop(t *testing.T) {
	req := require.New(t)
	hub := NewHub()
	req.Zero(hub.Push(42, []byte("nobody")))
}

func TestHub_PushSkipsFailingSession(t *testing.T) {
	req := require.New(t)
	hub := NewHub()
	good, bad := newFakeConn(), newFakeConn()
	bad.fail = ErrSendBufferFull
	hub.Register(1, good)
	hub.Register(1, bad)

	req.Equal(1, hub.Push(1, []byte("x")))
	req.Len(good.received(), 1)
}

func TestHub_SweepClosesStaleSessions(t *testing.T) {
	req := require.New(t)
	hub := NewHub()
	fresh, stale := newFakeConn(), newFakeConn()
	stale.touched = time.Now().Add(-2 * pongWait)
	hub.Register(1, fresh)
	hub.Register(2, stale)

	req.Equal(1, hub.Sweep(time.Now().Add(-pongWait)))
	req.True(stale.isClosed())
	req.False(fresh.isClosed())
	req.False(hub.IsConnected(2))
	req.True(hub.IsConnected(1))
}

func TestHub_ConcurrentRegisterAndPush(t *testing.T) {
	req := require.New(t)
	hub := NewHub()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(userID uint64) {
			defer wg.Done()
			c := newFakeConn()
			hub.Register(userID%5, c)
			hub.Push(userID%5, []byte(fmt.Sprintf("%d", userID)))
			hub.IsConnected(userID % 5)
			hub.Unregister(userID%5, c)
		}(uint64(i))
	}
	wg.Wait()

	req.Zero(hub.ConnectionCount())
}

func TestHub_CloseAll(t *testing.T) {
	req := require.New(t)
	hub := NewHub()
	c1, c2 := newFakeConn(), newFakeConn()
	hub.Register(1, c1)
	hub.Register(2, c2)

	hub.CloseAll()

	req.True(c1.isClosed())
	req.True(c2.isClosed())
	req.Zero(hub.ConnectionCount())
}

func TestLocalDispatcher_Deliver(t *testing.T) {
	req := require.New(t)
	hub := NewHub()
	d := NewLocalDispatcher(hub)
	c := newFakeConn()
	hub.Register(7, c)

	req.True(d.IsConnected(7))
	req.NoError(d.Deliver(context.Background(), 7, NewEvent(EventUnreadCount, map[string]int64{"total_unread_count": 3})))
	got := c.received()
	req.Len(got, 1)
	req.JSONEq(`{"type":"unread-count-update","data":{"total_unread_count":3}}`, string(got[0]))

	// 不在线：静默成功
	req.False(d.IsConnected(8))
	req.NoError(d.Deliver(context.Background(), 8, NewEvent(EventNewMessage, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req.ErrorIs(d.Deliver(ctx, 7, NewEvent(EventNewMessage, nil)), context.Canceled)
}
