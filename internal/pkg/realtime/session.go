package realtime

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	closeWait      = time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxInboundSize = 4096
)

// StaleAfter 超过该时长没有入站帧的会话视为失效
const StaleAfter = pongWait + writeWait

var (
	ErrSessionClosed  = errors.New("session closed")
	ErrSendBufferFull = errors.New("session send buffer full")
)

// Conn Hub 管理的单个实时连接
type Conn interface {
	SessionID() string
	Send(payload []byte) error
	Close()
	LastActive() time.Time
}

// Session 包装一个 websocket 连接，出站消息经缓冲通道由单独的写协程发送
type Session struct {
	id     string
	userID uint64

	ws       *websocket.Conn
	send     chan []byte
	done     chan struct{}
	once     sync.Once
	lastPong atomic.Int64
}

func NewSession(userID uint64, ws *websocket.Conn, buffer int) *Session {
	if buffer <= 0 {
		buffer = 128
	}
	s := &Session{
		id:     uuid.NewString(),
		userID: userID,
		ws:     ws,
		send:   make(chan []byte, buffer),
		done:   make(chan struct{}),
	}
	s.lastPong.Store(time.Now().UnixNano())
	return s
}

func (s *Session) SessionID() string { return s.id }

func (s *Session) UserID() uint64 { return s.userID }

func (s *Session) Done() <-chan struct{} { return s.done }

func (s *Session) LastActive() time.Time {
	return time.Unix(0, s.lastPong.Load())
}

// Send 非阻塞入队，缓冲区满说明客户端过慢，异步断开，调用方不等待
func (s *Session) Send(payload []byte) error {
	select {
	case <-s.done:
		return ErrSessionClosed
	default:
	}
	select {
	case s.send <- payload:
		return nil
	default:
		s.shutdown(true)
		return ErrSendBufferFull
	}
}

// Close 可重复调用
func (s *Session) Close() {
	s.shutdown(false)
}

// shutdown 立即标记关闭；async 时关闭帧与断链放到后台
func (s *Session) shutdown(async bool) {
	s.once.Do(func() {
		close(s.done)
		if async {
			go s.teardown()
			return
		}
		s.teardown()
	})
}

func (s *Session) teardown() {
	_ = s.ws.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(closeWait))
	_ = s.ws.Close()
}

// WritePump 写循环，每个 Session 只能启动一次
func (s *Session) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.Close()
	}()

	for {
		select {
		case <-s.done:
			return
		case msg := <-s.send:
			_ = s.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ReadPump 读循环，阻塞直到连接断开；handle 在读协程中串行执行
func (s *Session) ReadPump(handle func(data []byte)) {
	defer s.Close()

	s.ws.SetReadLimit(maxInboundSize)
	_ = s.ws.SetReadDeadline(time.Now().Add(pongWait))
	s.ws.SetPongHandler(func(string) error {
		s.lastPong.Store(time.Now().UnixNano())
		return s.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := s.ws.ReadMessage()
		if err != nil {
			return
		}
		s.lastPong.Store(time.Now().UnixNano())
		if handle != nil {
			handle(data)
		}
	}
}
