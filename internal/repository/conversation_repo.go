package repository

import (
	"Parley/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=../mocks/conversation_repo_mock.go -package=mocks Parley/internal/repository ConversationRepo

type ConversationRepo interface {
	CreateConversation(ctx context.Context, conv *model.Conversation) error
	GetConversation(ctx context.Context, convID uint64) (*model.Conversation, error)
	GetConversationByPeerKey(ctx context.Context, peerKey string) (*model.Conversation, error)
	TouchConversation(ctx context.Context, convID uint64, at time.Time) error
	GetUserConversations(ctx context.Context, userID uint64) ([]*model.Conversation, error)
	GetUserConversationIDs(ctx context.Context, userID uint64) ([]uint64, error)
}

type conversationRepoImpl struct {
	db *gorm.DB
}

func NewConversationRepo(db *gorm.DB) ConversationRepo {
	return &conversationRepoImpl{db: db}
}

// CreateConversation 创建会话，peer_key 唯一索引冲突时返回数据库错误
func (s *conversationRepoImpl) CreateConversation(ctx context.Context, conv *model.Conversation) error {
	return s.db.WithContext(ctx).Create(conv).Error
}

// GetConversation 根据会话 ID 获取会话，不存在时返回 nil
func (s *conversationRepoImpl) GetConversation(ctx context.Context, convID uint64) (*model.Conversation, error) {
	var conv model.Conversation
	err := s.db.WithContext(ctx).First(&conv, convID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conv, nil
}

// GetConversationByPeerKey 根据会话标识获取会话，若出现重复行取最早创建的一条
func (s *conversationRepoImpl) GetConversationByPeerKey(ctx context.Context, peerKey string) (*model.Conversation, error) {
	var conv model.Conversation
	err := s.db.WithContext(ctx).
		Where("peer_key = ?", peerKey).
		Order("id ASC").
		First(&conv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conv, nil
}

// TouchConversation 刷新会话活跃时间
func (s *conversationRepoImpl) TouchConversation(ctx context.Context, convID uint64, at time.Time) error {
	return s.db.WithContext(ctx).Model(&model.Conversation{}).
		Where("id = ?", convID).
		UpdateColumn("updated_at", at).Error
}

// GetUserConversations 用户参与的全部会话，按最近活跃倒序
func (s *conversationRepoImpl) GetUserConversations(ctx context.Context, userID uint64) ([]*model.Conversation, error) {
	convs := make([]*model.Conversation, 0)
	err := s.db.WithContext(ctx).
		Where("participant_one_id = ? OR participant_two_id = ?", userID, userID).
		Order("updated_at DESC, id DESC").
		Find(&convs).Error
	return convs, err
}

// GetUserConversationIDs 用户参与的全部会话 ID
func (s *conversationRepoImpl) GetUserConversationIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := s.db.WithContext(ctx).Model(&model.Conversation{}).
		Where("participant_one_id = ? OR participant_two_id = ?", userID, userID).
		Pluck("id", &ids).Error
	return ids, err
}
