package query

import "quickhire/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult `json:"result"`
}
