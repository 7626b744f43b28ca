package service

import (
	"Parley/internal/api/dto"
	"Parley/internal/model"
	"Parley/internal/pkg/mongo"
	"Parley/internal/pkg/realtime"
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errDuplicatePeerKey = errors.New("duplicate peer_key")

// memConversationRepo 带 peer_key 唯一约束的内存会话表
type memConversationRepo struct {
	mu     sync.Mutex
	nextID uint64
	rows   map[uint64]*model.Conversation
}

func newMemConversationRepo() *memConversationRepo {
	return &memConversationRepo{rows: make(map[uint64]*model.Conversation)}
}

func (r *memConversationRepo) CreateConversation(_ context.Context, conv *model.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.PeerKey == conv.PeerKey {
			return errDuplicatePeerKey
		}
	}
	r.nextID++
	conv.ID = r.nextID
	now := time.Now()
	conv.CreatedAt, conv.UpdatedAt = now, now
	cp := *conv
	r.rows[conv.ID] = &cp
	return nil
}

func (r *memConversationRepo) GetConversation(_ context.Context, convID uint64) (*model.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[convID]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (r *memConversationRepo) GetConversationByPeerKey(_ context.Context, peerKey string) (*model.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var found *model.Conversation
	for _, row := range r.rows {
		if row.PeerKey == peerKey && (found == nil || row.ID < found.ID) {
			found = row
		}
	}
	if found == nil {
		return nil, nil
	}
	cp := *found
	return &cp, nil
}

func (r *memConversationRepo) TouchConversation(_ context.Context, convID uint64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if row, ok := r.rows[convID]; ok {
		row.UpdatedAt = at
	}
	return nil
}

func (r *memConversationRepo) GetUserConversations(_ context.Context, userID uint64) ([]*model.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]*model.Conversation, 0)
	for _, row := range r.rows {
		if row.HasParticipant(userID) {
			cp := *row
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].UpdatedAt.Equal(res[j].UpdatedAt) {
			return res[i].UpdatedAt.After(res[j].UpdatedAt)
		}
		return res[i].ID > res[j].ID
	})
	return res, nil
}

func (r *memConversationRepo) GetUserConversationIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	convs, _ := r.GetUserConversations(ctx, userID)
	ids := make([]uint64, 0, len(convs))
	for _, c := range convs {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

func (r *memConversationRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

// memMessageRepo 内存消息表，is_read 只会 false -> true
type memMessageRepo struct {
	mu   sync.Mutex
	rows []*mongo.Message
}

func (r *memMessageRepo) EnsureIndexes(context.Context) error { return nil }

func (r *memMessageRepo) SaveMessage(_ context.Context, msg *mongo.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if msg.ID.IsZero() {
		msg.ID = primitive.NewObjectID()
	}
	cp := *msg
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *memMessageRepo) GetByID(_ context.Context, id primitive.ObjectID) (*mongo.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.rows {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMessageRepo) sorted(convID uint64) []*mongo.Message {
	res := make([]*mongo.Message, 0)
	for _, m := range r.rows {
		if m.ConversationID == convID {
			cp := *m
			res = append(res, &cp)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.After(res[j].CreatedAt)
		}
		return res[i].ID.Hex() > res[j].ID.Hex()
	})
	return res
}

func (r *memMessageRepo) GetHistory(_ context.Context, convID uint64, page, pageSize int) ([]*mongo.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.sorted(convID)
	start := page * pageSize
	if start >= len(all) {
		return []*mongo.Message{}, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (r *memMessageRepo) GetLatest(_ context.Context, convID uint64) (*mongo.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.sorted(convID)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *memMessageRepo) MarkAsRead(_ context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.rows {
		if m.ID == id && !m.IsRead {
			m.IsRead = true
			return true, nil
		}
	}
	return false, nil
}

func (r *memMessageRepo) MarkConversationAsRead(_ context.Context, convID uint64, readerID uint64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, m := range r.rows {
		if m.ConversationID == convID && m.SenderID != readerID && !m.IsRead {
			m.IsRead = true
			n++
		}
	}
	return n, nil
}

func (r *memMessageRepo) CountUnread(ctx context.Context, convIDs []uint64, userID uint64) (int64, error) {
	byConv, _ := r.CountUnreadByConversation(ctx, convIDs, userID)
	var total int64
	for _, n := range byConv {
		total += n
	}
	return total, nil
}

func (r *memMessageRepo) CountUnreadByConversation(_ context.Context, convIDs []uint64, userID uint64) (map[uint64]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	in := make(map[uint64]bool, len(convIDs))
	for _, id := range convIDs {
		in[id] = true
	}
	res := make(map[uint64]int64)
	for _, m := range r.rows {
		if in[m.ConversationID] && m.SenderID != userID && !m.IsRead {
			res[m.ConversationID]++
		}
	}
	return res, nil
}

func (r *memMessageRepo) isRead(id string) bool {
	oid, _ := primitive.ObjectIDFromHex(id)
	m, _ := r.GetByID(context.Background(), oid)
	return m != nil && m.IsRead
}

// memIdentity 固定的用户集合
type memIdentity struct {
	mu    sync.Mutex
	users map[uint64]*dto.UserSimpleDTO
}

func newMemIdentity(ids ...uint64) *memIdentity {
	m := &memIdentity{users: make(map[uint64]*dto.UserSimpleDTO)}
	for _, id := range ids {
		m.add(id)
	}
	return m
}

func (m *memIdentity) add(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[id] = &dto.UserSimpleDTO{UserID: id, Nickname: fmt.Sprintf("user%d", id), AvatarURL: "avatar.png"}
}

func (m *memIdentity) remove(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
}

func (m *memIdentity) Exists(_ context.Context, id uint64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.users[id]
	return ok, nil
}

func (m *memIdentity) GetSimpleInfo(_ context.Context, id uint64) (*dto.UserSimpleDTO, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memIdentity) InvalidateSimpleInfo(context.Context, ...uint64) error { return nil }

// recordingDispatcher 记录投递给在线用户的事件
type recordingDispatcher struct {
	mu     sync.Mutex
	online map[uint64]bool
	events map[uint64][]*realtime.Event
	err    error
}

func newRecordingDispatcher(online ...uint64) *recordingDispatcher {
	d := &recordingDispatcher{online: make(map[uint64]bool), events: make(map[uint64][]*realtime.Event)}
	for _, id := range online {
		d.online[id] = true
	}
	return d
}

func (d *recordingDispatcher) IsConnected(userID uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.online[userID]
}

func (d *recordingDispatcher) Deliver(_ context.Context, userID uint64, evt *realtime.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	if !d.online[userID] {
		return nil
	}
	d.events[userID] = append(d.events[userID], evt)
	return nil
}

func (d *recordingDispatcher) eventsOf(userID uint64) []*realtime.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*realtime.Event(nil), d.events[userID]...)
}

func (d *recordingDispatcher) typesOf(userID uint64) []string {
	evts := d.eventsOf(userID)
	types := make([]string, 0, len(evts))
	for _, e := range evts {
		types = append(types, e.Type)
	}
	return types
}
