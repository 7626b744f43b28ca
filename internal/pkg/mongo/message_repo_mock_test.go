package mongo

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// 使用驱动自带的 mock deployment 校验发往服务端的命令，无需真实 MongoDB

func newMockT(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func TestMessageRepoCommands_MarkAsReadGuardsOnUnread(t *testing.T) {
	mt := newMockT(t)

	mt.Run("changed then unchanged", func(mt *mtest.T) {
		req := require.New(mt)
		repo := NewMessageRepo(mt.DB)
		id := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
		)

		changed, err := repo.MarkAsRead(context.Background(), id)
		req.NoError(err)
		req.True(changed)

		evt := mt.GetStartedEvent()
		req.Equal("update", evt.CommandName)
		q := evt.Command.Lookup("updates", "0", "q")
		req.Equal(id, q.Document().Lookup("_id").ObjectID())
		req.False(q.Document().Lookup("is_read").Boolean())
		req.True(evt.Command.Lookup("updates", "0", "u", "$set", "is_read").Boolean())

		changed, err = repo.MarkAsRead(context.Background(), id)
		req.NoError(err)
		req.False(changed)
	})
}

func TestMessageRepoCommands_MarkConversationAsReadSkipsOwnMessages(t *testing.T) {
	mt := newMockT(t)

	mt.Run("bulk update", func(mt *mtest.T) {
		req := require.New(mt)
		repo := NewMessageRepo(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}, bson.E{Key: "nModified", Value: 3}))

		updated, err := repo.MarkConversationAsRead(context.Background(), 7, 20)
		req.NoError(err)
		req.Equal(int64(3), updated)

		evt := mt.GetStartedEvent()
		req.Equal("update", evt.CommandName)
		req.True(evt.Command.Lookup("updates", "0", "multi").Boolean())
		q := evt.Command.Lookup("updates", "0", "q").Document()
		req.Equal(int64(7), q.Lookup("conversation_id").AsInt64())
		req.Equal(int64(20), q.Lookup("sender_id", "$ne").AsInt64())
		req.False(q.Lookup("is_read").Boolean())
	})
}

func TestMessageRepoCommands_CountUnreadByConversationGroups(t *testing.T) {
	mt := newMockT(t)

	mt.Run("aggregate", func(mt *mtest.T) {
		req := require.New(mt)
		repo := NewMessageRepo(mt.DB)
		ns := mt.DB.Name() + ".message"

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: int64(1)}, {Key: "count", Value: int32(2)}},
			bson.D{{Key: "_id", Value: int64(2)}, {Key: "count", Value: int32(4)}},
		))

		stats, err := repo.CountUnreadByConversation(context.Background(), []uint64{1, 2, 3}, 20)
		req.NoError(err)
		req.Equal(map[uint64]int64{1: 2, 2: 4}, stats)

		evt := mt.GetStartedEvent()
		req.Equal("aggregate", evt.CommandName)
		match := evt.Command.Lookup("pipeline", "0", "$match").Document()
		req.Equal(int64(20), match.Lookup("sender_id", "$ne").AsInt64())
		req.False(match.Lookup("is_read").Boolean())
		req.Equal("$conversation_id", evt.Command.Lookup("pipeline", "1", "$group", "_id").StringValue())

		// 空会话集合不发命令
		empty, err := repo.CountUnreadByConversation(context.Background(), nil, 20)
		req.NoError(err)
		req.Empty(empty)
		req.Nil(mt.GetStartedEvent())
	})
}

func TestMessageRepoCommands_GetHistoryPaging(t *testing.T) {
	mt := newMockT(t)

	mt.Run("skip and sort", func(mt *mtest.T) {
		req := require.New(mt)
		repo := NewMessageRepo(mt.DB)
		ns := mt.DB.Name() + ".message"
		id := primitive.NewObjectID()
		at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "conversation_id", Value: int64(4)},
			{Key: "sender_id", Value: int64(10)},
			{Key: "content", Value: "hi"},
			{Key: "is_read", Value: false},
			{Key: "created_at", Value: at},
		}))

		msgs, err := repo.GetHistory(context.Background(), 4, 2, 20)
		req.NoError(err)
		req.Len(msgs, 1)
		req.Equal(id, msgs[0].ID)
		req.Equal(uint64(10), msgs[0].SenderID)

		evt := mt.GetStartedEvent()
		req.Equal("find", evt.CommandName)
		req.Equal(int64(40), evt.Command.Lookup("skip").AsInt64())
		req.Equal(int64(20), evt.Command.Lookup("limit").AsInt64())
		req.Equal(int64(-1), evt.Command.Lookup("sort", "created_at").AsInt64())
		req.Equal(int64(-1), evt.Command.Lookup("sort", "_id").AsInt64())
	})

	mt.Run("overflowing page", func(mt *mtest.T) {
		req := require.New(mt)
		repo := NewMessageRepo(mt.DB)

		msgs, err := repo.GetHistory(context.Background(), 4, math.MaxInt, 20)
		req.NoError(err)
		req.Empty(msgs)
		req.Nil(mt.GetStartedEvent())
	})
}
