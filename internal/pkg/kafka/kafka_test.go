package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/require"
)

type fakeInvalidator struct {
	mu  sync.Mutex
	ids []uint64
	err error
}

func (f *fakeInvalidator) InvalidateSimpleInfo(_ context.Context, ids ...uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.ids = append(f.ids, ids...)
	return nil
}

type fakeSession struct {
	ctx       context.Context
	marked    []*sarama.ConsumerMessage
	committed int
}

func (f *fakeSession) Claims() map[string][]int32 { return nil }
func (f *fakeSession) MemberID() string { return "m" }
func (f *fakeSession) GenerationID() int32 { return 1 }
func (f *fakeSession) MarkOffset(string, int32, int64, string) {}
func (f *fakeSession) ResetOffset(string, int32, int64, string) {}
func (f *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) { f.marked = append(f.marked, msg) }
func (f *fakeSession) Commit() { f.committed++ }
func (f *fakeSession) Context() context.Context { return f.ctx }

func canal(value string) *sarama.ConsumerMessage {
	return &sarama.ConsumerMessage{Topic: "canal", Value: []byte(value)}
}

func TestToCanalMessage(t *testing.T) {
	req := require.New(t)

	msg, err := ToCanalMessage(canal(`{"table":"users","type":"UPDATE","data":[{"id":"7"}]}`), "users")
	req.NoError(err)
	req.Equal(UPDATE, msg.Type)
	req.Equal([]uint64{7}, msg.Uint64Column("id"))

	_, err = ToCanalMessage(canal(`{"table":"posts","data":[{"id":"1"}]}`), "users")
	req.ErrorIs(err, ErrSkipMessage)

	_, err = ToCanalMessage(canal(`{"table":"users","data":[]}`), "users")
	req.ErrorIs(err, ErrSkipMessage)

	_, err = ToCanalMessage(canal(`not json`), "users")
	req.ErrorIs(err, ErrSkipMessage)
}

func TestStrToUint64(t *testing.T) {
	req := require.New(t)
	req.Equal(uint64(12), StrToUint64("12"))
	req.Equal(uint64(3), StrToUint64(float64(3)))
	req.Zero(StrToUint64("x"))
	req.Zero(StrToUint64(nil))
	req.Equal("a", StrToString("a"))
	req.Empty(StrToString(nil))
}

func TestUserHandler_InvalidatesOnBanOrDelete(t *testing.T) {
	req := require.New(t)
	cache := &fakeInvalidator{}
	h := NewUserHandler(cache)
	ctx := context.Background()

	// 只改了无关列：不处理
	req.NoError(h.logic(ctx, canal(`{"table":"users","type":"UPDATE","data":[{"id":"1","is_ban":"0"}],"old":[{"updated_at":"x"}]}`)))
	req.Empty(cache.ids)

	req.NoError(h.logic(ctx, canal(`{"table":"users","type":"UPDATE","data":[{"id":"1","is_ban":"1"}],"old":[{"is_ban":"0"}]}`)))
	req.NoError(h.logic(ctx, canal(`{"table":"users","type":"DELETE","data":[{"id":"2"}]}`)))
	req.Equal([]uint64{1, 2}, cache.ids)
}

func TestUserDetailHandler_InvalidatesOnProfileChange(t *testing.T) {
	req := require.New(t)
	cache := &fakeInvalidator{}
	h := NewUserDetailHandler(cache)
	ctx := context.Background()

	req.NoError(h.logic(ctx, canal(`{"table":"user_detail","type":"UPDATE","data":[{"user_id":"5","bio":"b"}],"old":[{"bio":"a"}]}`)))
	req.Empty(cache.ids)

	req.NoError(h.logic(ctx, canal(`{"table":"user_detail","type":"UPDATE","data":[{"user_id":"5","nickname":"n2"},{"user_id":"6","avatar_url":"b.png"}],"old":[{"nickname":"n1"},{"avatar_url":"a.png"}]}`)))
	req.Equal([]uint64{5, 6}, cache.ids)

	cache.err = errors.New("redis down")
	err := h.logic(ctx, canal(`{"table":"user_detail","type":"INSERT","data":[{"user_id":"9"}]}`))
	req.ErrorIs(err, cache.err)
	req.Contains(err.Error(), "[9]")
}

func TestProcessBatch_SkipsUnprocessableAndCommits(t *testing.T) {
	req := require.New(t)
	session := &fakeSession{ctx: context.Background()}
	cache := &fakeInvalidator{}
	h := NewUserHandler(cache)

	msgs := []*sarama.ConsumerMessage{
		canal(`{"table":"other","data":[{"id":"1"}]}`),
		canal(`{"table":"users","type":"DELETE","data":[{"id":"3"}]}`),
	}
	processBatch(session, msgs, h.logic)

	req.Equal([]uint64{3}, cache.ids)
	req.Len(session.marked, 1)
	req.Same(msgs[1], session.marked[0])
	req.Equal(1, session.committed)
}

func TestProcessBatch_StopsRetryingOnCancel(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	session := &fakeSession{ctx: ctx}

	calls := 0
	processBatch(session, []*sarama.ConsumerMessage{canal(`{}`)}, func(context.Context, *sarama.ConsumerMessage) error {
		calls++
		cancel()
		return errors.New("transient")
	})

	req.Equal(1, calls)
	req.Empty(session.marked)
	req.Zero(session.committed)
}
