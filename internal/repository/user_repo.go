package repository

import (
	"Parley/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=../mocks/user_repo_mock.go -package=mocks Parley/internal/repository UserRepo

// UserRepo 身份数据只读访问
type UserRepo interface {
	ExistsById(ctx context.Context, id uint64) (bool, error)
	GetUserSimpleInfoById(ctx context.Context, id uint64) (*model.UserDetail, error)
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) ExistsById(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND is_delete = ?", id, false).
		Count(&count).Error
	return count > 0, err
}

func (s *UserRepoImpl) GetUserSimpleInfoById(ctx context.Context, id uint64) (*model.UserDetail, error) {
	user := &model.UserDetail{}
	result := s.db.WithContext(ctx).
		Select("user_id", "nickname", "avatar_url").
		Where("user_id = ?", id).
		First(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return user, nil
}
