package service

import (
	"Parley/internal/api/dto"
	"Parley/internal/model"
	"Parley/internal/pkg/consts"
	"Parley/internal/pkg/logger"
	"Parley/internal/pkg/mongo"
	"Parley/internal/pkg/realtime"
	"Parley/internal/pkg/util"
	"Parley/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -destination=../mocks/im_service_mock.go -package=mocks Parley/internal/service IMService

// IMService 私信服务接口定义，调用方身份总是显式传入
type IMService interface {
	SendMessage(ctx context.Context, senderID uint64, req *dto.SendMessageReq) (*dto.MessageDTO, error)
	GetOrCreateConversation(ctx context.Context, userA, userB uint64) (*model.Conversation, error)
	GetConversationList(ctx context.Context, userID uint64) ([]*dto.ConversationDTO, error)
	GetChatHistory(ctx context.Context, userID, convID uint64, page, pageSize int) ([]*dto.MessageDTO, error)
	MarkConversationRead(ctx context.Context, userID, convID uint64) (int64, error)
	MarkMessageRead(ctx context.Context, userID uint64, messageID string) error
	GetTotalUnreadCount(ctx context.Context, userID uint64) (*dto.UnreadCountDTO, error)
	Close()
}

// IMOptions 私信服务参数，零值使用默认
type IMOptions struct {
	PushTimeout      time.Duration
	DefaultPageSize  int
	MaxPageSize      int
	MaxContentLength int
}

func (o IMOptions) withDefaults() IMOptions {
	if o.PushTimeout <= 0 {
		o.PushTimeout = 2 * time.Second
	}
	if o.DefaultPageSize <= 0 {
		o.DefaultPageSize = consts.DefaultPageSize
	}
	if o.MaxPageSize <= 0 {
		o.MaxPageSize = consts.MaxPageSize
	}
	if o.MaxContentLength <= 0 {
		o.MaxContentLength = consts.MaxContentLength
	}
	return o
}

type imServiceImpl struct {
	convRepo    repository.ConversationRepo
	messageRepo mongo.MessageRepo
	identity    IdentityService
	dispatcher  realtime.Dispatcher
	opts        IMOptions

	convGroup singleflight.Group
	now       func() time.Time

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewIMService(
	convRepo repository.ConversationRepo,
	messageRepo mongo.MessageRepo,
	identity IdentityService,
	dispatcher realtime.Dispatcher,
	opts IMOptions,
) IMService {
	return &imServiceImpl{
		convRepo:    convRepo,
		messageRepo: messageRepo,
		identity:    identity,
		dispatcher:  dispatcher,
		opts:        opts.withDefaults(),
		now:         time.Now,
	}
}

// SendMessage 发送消息
func (s *imServiceImpl) SendMessage(ctx context.Context, senderID uint64, req *dto.SendMessageReq) (*dto.MessageDTO, error) {
	if req == nil {
		return nil, ErrParamInvalid
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentBlank
	}
	if utf8.RuneCountInString(req.Content) > s.opts.MaxContentLength {
		return nil, ErrContentTooLong
	}
	if senderID == req.ReceiverID {
		return nil, ErrSendToSelf
	}

	if err := s.ensureUser(ctx, senderID); err != nil {
		return nil, err
	}
	ok, err := s.identity.Exists(ctx, req.ReceiverID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTargetUserInvalid
	}

	conv, err := s.GetOrCreateConversation(ctx, senderID, req.ReceiverID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	msg := &mongo.Message{
		ConversationID: conv.ID,
		SenderID:       senderID,
		Content:        req.Content,
		IsRead:         false,
		CreatedAt:      now,
	}
	if err = s.messageRepo.SaveMessage(ctx, msg); err != nil {
		return nil, err
	}
	if err = s.convRepo.TouchConversation(ctx, conv.ID, now); err != nil {
		return nil, err
	}

	res := toMessageDTO(msg)
	s.emit(ctx, req.ReceiverID, func(context.Context) (*realtime.Event, error) {
		return realtime.NewEvent(realtime.EventNewMessage, res), nil
	})
	return res, nil
}

// GetOrCreateConversation 获取或创建两人之间唯一的会话
func (s *imServiceImpl) GetOrCreateConversation(ctx context.Context, userA, userB uint64) (*model.Conversation, error) {
	if userA == 0 || userB == 0 || userA == userB {
		return nil, ErrParamInvalid
	}
	peerKey := model.PeerKey(userA, userB)

	v, err := sharedDo(ctx, &s.convGroup, peerKey, func(ctx context.Context) (interface{}, error) {
		conv, err := s.convRepo.GetConversationByPeerKey(ctx, peerKey)
		if err != nil {
			return nil, err
		}
		if conv != nil {
			return conv, nil
		}

		conv = model.NewConversation(userA, userB)
		if err = s.convRepo.CreateConversation(ctx, conv); err != nil {
			// 其他实例抢先创建，唯一索引拦截后回读
			existing, getErr := s.convRepo.GetConversationByPeerKey(ctx, peerKey)
			if getErr == nil && existing != nil {
				return existing, nil
			}
			return nil, err
		}
		log.InfoContext(ctx, "conversation created", "conversation_id", conv.ID, "peer_key", peerKey)
		return conv, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Conversation), nil
}

// GetConversationList 获取会话列表，按最近活跃倒序
func (s *imServiceImpl) GetConversationList(ctx context.Context, userID uint64) ([]*dto.ConversationDTO, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	convs, err := s.convRepo.GetUserConversations(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(convs) == 0 {
		return []*dto.ConversationDTO{}, nil
	}

	convIDs := make([]uint64, 0, len(convs))
	for _, c := range convs {
		convIDs = append(convIDs, c.ID)
	}
	unread, err := s.messageRepo.CountUnreadByConversation(ctx, convIDs, userID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ConversationDTO, len(convs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, c := range convs {
		g.Go(func() error {
			otherID := c.OtherParticipant(userID)
			other, err := s.identity.GetSimpleInfo(gCtx, otherID)
			if err != nil {
				return err
			}
			if other == nil {
				log.WarnContext(gCtx, "skip conversation with missing participant",
					"conversation_id", c.ID, "participant_id", otherID)
				return nil
			}
			latest, err := s.messageRepo.GetLatest(gCtx, c.ID)
			if err != nil {
				return err
			}
			item := &dto.ConversationDTO{
				ConversationID:     c.ID,
				OtherParticipantID: otherID,
				OtherParticipant:   other,
				UnreadCount:        unread[c.ID],
				UpdatedAt:          c.UpdatedAt,
			}
			if latest != nil {
				item.LatestMessage = toMessageDTO(latest)
			}
			items[i] = item
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	res := make([]*dto.ConversationDTO, 0, len(items))
	for _, item := range items {
		if item != nil {
			res = append(res, item)
		}
	}
	return res, nil
}

// GetChatHistory 获取历史消息，page 从 0 开始，最新的在前
func (s *imServiceImpl) GetChatHistory(ctx context.Context, userID, convID uint64, page, pageSize int) ([]*dto.MessageDTO, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.participantConversation(ctx, userID, convID); err != nil {
		return nil, err
	}

	page, pageSize = util.NormalizePage(page, pageSize, s.opts.DefaultPageSize, s.opts.MaxPageSize)
	msgs, err := s.messageRepo.GetHistory(ctx, convID, page, pageSize)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.MessageDTO, 0, len(msgs))
	for _, m := range msgs {
		res = append(res, toMessageDTO(m))
	}
	return res, nil
}

// MarkConversationRead 把会话中对方发来的未读消息全部置为已读，返回本次更新条数
func (s *imServiceImpl) MarkConversationRead(ctx context.Context, userID, convID uint64) (int64, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return 0, err
	}
	if _, err := s.participantConversation(ctx, userID, convID); err != nil {
		return 0, err
	}

	updated, err := s.messageRepo.MarkConversationAsRead(ctx, convID, userID)
	if err != nil {
		return 0, err
	}
	if updated > 0 {
		s.emit(ctx, userID, s.unreadCountEvent(userID))
	}
	return updated, nil
}

// MarkMessageRead 标记单条消息已读，已读消息重复标记视为成功
func (s *imServiceImpl) MarkMessageRead(ctx context.Context, userID uint64, messageID string) error {
	oid, err := primitive.ObjectIDFromHex(messageID)
	if err != nil {
		return ErrParamInvalid
	}
	if err = s.ensureUser(ctx, userID); err != nil {
		return err
	}

	msg, err := s.messageRepo.GetByID(ctx, oid)
	if err != nil {
		return err
	}
	if msg == nil {
		return ErrMessageNotFound
	}
	if _, err = s.participantConversation(ctx, userID, msg.ConversationID); err != nil {
		return err
	}
	if msg.SenderID == userID {
		return ErrReadOwnMessage
	}

	changed, err := s.messageRepo.MarkAsRead(ctx, oid)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	receipt := &dto.ReadStatusDTO{
		MessageID:      messageID,
		ConversationID: msg.ConversationID,
		IsRead:         true,
	}
	s.emit(ctx, msg.SenderID, func(context.Context) (*realtime.Event, error) {
		return realtime.NewEvent(realtime.EventReadStatus, receipt), nil
	})
	s.emit(ctx, userID, s.unreadCountEvent(userID))
	return nil
}

// GetTotalUnreadCount 用户所有会话的未读总数，实时计算
func (s *imServiceImpl) GetTotalUnreadCount(ctx context.Context, userID uint64) (*dto.UnreadCountDTO, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	total, err := s.countUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.UnreadCountDTO{TotalUnreadCount: total}, nil
}

// Close 停止接收新的推送并等待进行中的推送结束
func (s *imServiceImpl) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *imServiceImpl) countUnread(ctx context.Context, userID uint64) (int64, error) {
	convIDs, err := s.convRepo.GetUserConversationIDs(ctx, userID)
	if err != nil {
		return 0, err
	}
	return s.messageRepo.CountUnread(ctx, convIDs, userID)
}

func (s *imServiceImpl) unreadCountEvent(userID uint64) func(context.Context) (*realtime.Event, error) {
	return func(ctx context.Context) (*realtime.Event, error) {
		total, err := s.countUnread(ctx, userID)
		if err != nil {
			return nil, err
		}
		return realtime.NewEvent(realtime.EventUnreadCount, &dto.UnreadCountDTO{TotalUnreadCount: total}), nil
	}
}

// emit 异步推送，失败只记录日志，不影响调用方结果
func (s *imServiceImpl) emit(parent context.Context, userID uint64, build func(ctx context.Context) (*realtime.Event, error)) {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return
	}
	s.wg.Add(1)
	s.mu.RUnlock()

	traceID := logger.TraceID(parent)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(logger.WithTraceID(context.Background(), traceID), s.opts.PushTimeout)
		defer cancel()

		evt, err := build(ctx)
		if err != nil {
			log.WarnContext(ctx, "IM build event failed", "user_id", userID, "err", err)
			return
		}
		if err = s.dispatcher.Deliver(ctx, userID, evt); err != nil {
			log.WarnContext(ctx, "IM push failed", "user_id", userID, "event", evt.Type, "err", err)
		}
	}()
}

func (s *imServiceImpl) ensureUser(ctx context.Context, userID uint64) error {
	ok, err := s.identity.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}

// participantConversation 会话存在且 userID 是成员
func (s *imServiceImpl) participantConversation(ctx context.Context, userID, convID uint64) (*model.Conversation, error) {
	conv, err := s.convRepo.GetConversation(ctx, convID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, ErrConversationNotFound
	}
	if !conv.HasParticipant(userID) {
		return nil, ErrNotParticipant
	}
	return conv, nil
}

func toMessageDTO(m *mongo.Message) *dto.MessageDTO {
	return &dto.MessageDTO{
		ID:             m.ID.Hex(),
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Content:        m.Content,
		IsRead:         m.IsRead,
		CreatedAt:      m.CreatedAt,
	}
}
