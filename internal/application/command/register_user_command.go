package command

import "quickhire/internal/application/common"

type RegisterUserCommand struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type RegisterUserCommandResult struct {
	Result      *common.UserResult `json:"result"`
	RedirectUrl string             `json:"redirectUrl"`
}
