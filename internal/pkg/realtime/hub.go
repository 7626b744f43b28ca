package realtime

import (
	log "log/slog"
	"sync"
	"time"
)

// Hub 在线状态登记表：用户 -> 该用户的全部实时连接
type Hub struct {
	mu    sync.RWMutex
	users map[uint64]map[string]Conn
}

func NewHub() *Hub {
	return &Hub{
		users: make(map[uint64]map[string]Conn),
	}
}

// Register 登记连接，返回该用户当前连接数
func (h *Hub) Register(userID uint64, c Conn) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.users[userID]
	if !ok {
		conns = make(map[string]Conn)
		h.users[userID] = conns
	}
	conns[c.SessionID()] = c
	return len(conns)
}

// Unregister 注销连接，用户不再有连接时清理整个条目
func (h *Hub) Unregister(userID uint64, c Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.removeLocked(userID, c.SessionID())
}

func (h *Hub) removeLocked(userID uint64, sessionID string) bool {
	conns, ok := h.users[userID]
	if !ok {
		return false
	}
	if _, ok = conns[sessionID]; !ok {
		return false
	}
	delete(conns, sessionID)
	if len(conns) == 0 {
		delete(h.users, userID)
	}
	return true
}

func (h *Hub) IsConnected(userID uint64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users[userID]) > 0
}

// ConnectionCount 全部活跃连接数
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	total := 0
	for _, conns := range h.users {
		total += len(conns)
	}
	return total
}

// UserCount 在线用户数
func (h *Hub) UserCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users)
}

// Push 向用户的所有连接投递，返回成功入队的连接数
func (h *Hub) Push(userID uint64, payload []byte) int {
	h.mu.RLock()
	targets := make([]Conn, 0, len(h.users[userID]))
	for _, c := range h.users[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, c := range targets {
		if err := c.Send(payload); err != nil {
			log.Warn("push to session failed", "userID", userID, "session", c.SessionID(), "err", err)
			continue
		}
		delivered++
	}
	return delivered
}

// Sweep 关闭并移除 deadline 之前没有任何活动的连接
func (h *Hub) Sweep(deadline time.Time) int {
	type staleConn struct {
		userID uint64
		conn   Conn
	}

	h.mu.Lock()
	stale := make([]staleConn, 0)
	for userID, conns := range h.users {
		for _, c := range conns {
			if c.LastActive().Before(deadline) {
				stale = append(stale, staleConn{userID: userID, conn: c})
			}
		}
	}
	for _, sc := range stale {
		h.removeLocked(sc.userID, sc.conn.SessionID())
	}
	h.mu.Unlock()

	for _, sc := range stale {
		sc.conn.Close()
	}
	return len(stale)
}

// CloseAll 关闭所有连接，用于停机
func (h *Hub) CloseAll() {
	h.mu.Lock()
	all := make([]Conn, 0)
	for _, conns := range h.users {
		for _, c := range conns {
			all = append(all, c)
		}
	}
	h.users = make(map[uint64]map[string]Conn)
	h.mu.Unlock()

	for _, c := range all {
		c.Close()
	}
}
