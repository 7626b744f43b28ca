package mongo

import (
	"context"
	"errors"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=../../mocks/message_repo_mock.go -package=mocks Parley/internal/pkg/mongo MessageRepo

type MessageRepo interface {
	EnsureIndexes(ctx context.Context) error
	SaveMessage(ctx context.Context, msg *Message) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Message, error)
	GetHistory(ctx context.Context, convID uint64, page, pageSize int) ([]*Message, error)
	GetLatest(ctx context.Context, convID uint64) (*Message, error)
	MarkAsRead(ctx context.Context, id primitive.ObjectID) (bool, error)
	MarkConversationAsRead(ctx context.Context, convID uint64, readerID uint64) (int64, error)
	CountUnread(ctx context.Context, convIDs []uint64, userID uint64) (int64, error)
	CountUnreadByConversation(ctx context.Context, convIDs []uint64, userID uint64) (map[uint64]int64, error)
}

type messageRepoImpl struct {
	col *mongo.Collection
}

func NewMessageRepo(db *mongo.Database) MessageRepo {
	return &messageRepoImpl{
		col: db.Collection("message"),
	}
}

// EnsureIndexes 建立查询所需索引
func (s *messageRepoImpl) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "conversation_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "conversation_id", Value: 1}, {Key: "sender_id", Value: 1}, {Key: "is_read", Value: 1}}},
	})
	return err
}

// SaveMessage 将消息存入 MongoDB，并回填 ID
func (s *messageRepoImpl) SaveMessage(ctx context.Context, msg *Message) error {
	if msg.ID.IsZero() {
		msg.ID = primitive.NewObjectID()
	}
	_, err := s.col.InsertOne(ctx, msg)
	return err
}

// GetByID 精确查询，不存在时返回 nil
func (s *messageRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*Message, error) {
	var msg Message
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&msg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &msg, nil
}

// GetHistory 分页拉取会话消息，page 从 0 开始，最新的在前；越界页返回空
func (s *messageRepoImpl) GetHistory(ctx context.Context, convID uint64, page, pageSize int) ([]*Message, error) {
	if page < 0 || pageSize <= 0 || int64(page) > math.MaxInt64/int64(pageSize) {
		return []*Message{}, nil
	}
	filter := bson.M{"conversation_id": convID}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(page) * int64(pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	messages := make([]*Message, 0, pageSize)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// GetLatest 会话中最新的一条消息，没有消息时返回 nil
func (s *messageRepoImpl) GetLatest(ctx context.Context, convID uint64) (*Message, error) {
	var msg Message
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	err := s.col.FindOne(ctx, bson.M{"conversation_id": convID}, opts).Decode(&msg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &msg, nil
}

// MarkAsRead 单条消息 false -> true，返回本次是否发生了状态变化
func (s *messageRepoImpl) MarkAsRead(ctx context.Context, id primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": id, "is_read": false}
	update := bson.M{"$set": bson.M{"is_read": true}}
	result, err := s.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

// MarkConversationAsRead 一次条件批量更新，把对方发来的未读消息全部置为已读
func (s *messageRepoImpl) MarkConversationAsRead(ctx context.Context, convID uint64, readerID uint64) (int64, error) {
	filter := bson.M{
		"conversation_id": convID,
		"sender_id":       bson.M{"$ne": readerID},
		"is_read":         false,
	}
	update := bson.M{"$set": bson.M{"is_read": true}}
	result, err := s.col.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// CountUnread 指定会话集合内他人发给 userID 的未读总数
func (s *messageRepoImpl) CountUnread(ctx context.Context, convIDs []uint64, userID uint64) (int64, error) {
	if len(convIDs) == 0 {
		return 0, nil
	}
	filter := bson.M{
		"conversation_id": bson.M{"$in": convIDs},
		"sender_id":       bson.M{"$ne": userID},
		"is_read":         false,
	}
	return s.col.CountDocuments(ctx, filter)
}

// CountUnreadByConversation 按会话聚合未读数，没有未读的会话不出现在结果中
func (s *messageRepoImpl) CountUnreadByConversation(ctx context.Context, convIDs []uint64, userID uint64) (map[uint64]int64, error) {
	res := make(map[uint64]int64, len(convIDs))
	if len(convIDs) == 0 {
		return res, nil
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"conversation_id": bson.M{"$in": convIDs},
			"sender_id":       bson.M{"$ne": userID},
			"is_read":         false,
		}}},
		{{Key: "$group", Value: bson.M{"_id": "$conversation_id", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var stats []UnreadStat
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	for _, st := range stats {
		res[st.ConversationID] = st.Count
	}
	return res, nil
}
