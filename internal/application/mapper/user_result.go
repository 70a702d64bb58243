package mapper

import (
	"quickhire/internal/application/common"
	"quickhire/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		Id:        user.Id,
		CreatedAt: user.CreatedAt,
		Email:     user.Email,
	}
}
