package service

import (
	"Parley/internal/api/dto"
	"Parley/internal/pkg/consts"
	"Parley/internal/pkg/minio"
	"Parley/internal/pkg/redis"
	"Parley/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
	"golang.org/x/sync/singleflight"
)

const (
	simpleInfoTTL          = time.Hour
	uninvalidatedSimpleTTL = 5 * time.Minute
)

//go:generate mockgen -destination=../mocks/identity_service_mock.go -package=mocks Parley/internal/service IdentityService

// IdentityService 身份信息只读视图，带 Redis 缓存
type IdentityService interface {
	Exists(ctx context.Context, userID uint64) (bool, error)
	GetSimpleInfo(ctx context.Context, userID uint64) (*dto.UserSimpleDTO, error)
	InvalidateSimpleInfo(ctx context.Context, userIDs ...uint64) error
}

// IdentityOptions Invalidated 表示资料变更会通过消息队列主动清理缓存
type IdentityOptions struct {
	Invalidated bool
}

type identityServiceImpl struct {
	userRepo repository.UserRepo
	group    singleflight.Group
	opts     IdentityOptions
}

func NewIdentityService(userRepo repository.UserRepo, opts IdentityOptions) IdentityService {
	return &identityServiceImpl{userRepo: userRepo, opts: opts}
}

func (s *identityServiceImpl) cacheTTL() time.Duration {
	if s.opts.Invalidated {
		return simpleInfoTTL
	}
	return uninvalidatedSimpleTTL
}

func simpleInfoKey(userID uint64) string {
	return consts.UserSimpleInfoKey + strconv.FormatUint(userID, 10)
}

// Exists 缓存有主动失效时命中即存在，否则总是查库
func (s *identityServiceImpl) Exists(ctx context.Context, userID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	if s.opts.Invalidated {
		if info := s.getCached(ctx, userID); info != nil {
			return true, nil
		}
	}
	return s.userRepo.ExistsById(ctx, userID)
}

// GetSimpleInfo 用户不存在时返回 nil
func (s *identityServiceImpl) GetSimpleInfo(ctx context.Context, userID uint64) (*dto.UserSimpleDTO, error) {
	if userID == 0 {
		return nil, nil
	}
	if info := s.getCached(ctx, userID); info != nil {
		return info, nil
	}

	v, err := sharedDo(ctx, &s.group, strconv.FormatUint(userID, 10), func(ctx context.Context) (interface{}, error) {
		return s.load(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	info, _ := v.(*dto.UserSimpleDTO)
	return info, nil
}

// InvalidateSimpleInfo 资料变更后清理缓存
func (s *identityServiceImpl) InvalidateSimpleInfo(ctx context.Context, userIDs ...uint64) error {
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, simpleInfoKey(id))
	}
	return redis.DeleteKey(ctx, keys...)
}

func (s *identityServiceImpl) getCached(ctx context.Context, userID uint64) *dto.UserSimpleDTO {
	value, err := redis.GetValue(ctx, simpleInfoKey(userID))
	if err != nil {
		log.WarnContext(ctx, "read user simple info cache failed", "user_id", userID, "err", err)
		return nil
	}
	if value == "" {
		return nil
	}
	info := &dto.UserSimpleDTO{}
	if err = json.Unmarshal([]byte(value), info); err != nil {
		return nil
	}
	return info
}

func (s *identityServiceImpl) load(ctx context.Context, userID uint64) (*dto.UserSimpleDTO, error) {
	exists, err := s.userRepo.ExistsById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	info := &dto.UserSimpleDTO{UserID: userID}
	detail, err := s.userRepo.GetUserSimpleInfoById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if detail != nil {
		if err = copier.Copy(info, detail); err != nil {
			return nil, err
		}
	}
	if info.AvatarURL == "" {
		info.AvatarURL = consts.DefaultAvatarURL
	}
	info.AvatarURL = minio.GetPublicURL(info.AvatarURL)

	jsonStr, err := json.Marshal(info)
	if err != nil {
		return nil, err
	}
	if err = redis.SetWithExpiration(ctx, simpleInfoKey(userID), string(jsonStr), s.cacheTTL()); err != nil {
		log.WarnContext(ctx, "write user simple info cache failed", "user_id", userID, "err", err)
	}
	return info, nil
}
