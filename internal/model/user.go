package model

import (
	"time"
)

// User 身份服务维护的用户表，本服务只读
type User struct {
	ID        uint64 `gorm:"primaryKey"`
	IsBan     bool   `gorm:"type:tinyint(1);default:0"`
	IsDelete  bool   `gorm:"type:tinyint(1);default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	UserDetail UserDetail `gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
