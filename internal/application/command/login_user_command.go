package command

import "quickhire/internal/application/common"

type LoginUserCommand struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginUserCommandResult struct {
	SessionToken string             `json:"-"`
	RedirectUrl  string             `json:"redirectUrl"`
	User         *common.UserResult `json:"user"`
}
