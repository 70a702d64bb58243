package gormstore

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	Id           uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
