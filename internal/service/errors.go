package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid         = errors.New("参数错误")
	ErrContentBlank         = errors.New("消息内容不能为空")
	ErrContentTooLong       = errors.New("消息内容过长")
	ErrSendToSelf           = errors.New("不能给自己发送消息")
	ErrReadOwnMessage       = errors.New("不能标记自己发送的消息")
	ErrUserNotFound         = errors.New("用户不存在")
	ErrTargetUserInvalid    = errors.New("目标用户无效")
	ErrConversationNotFound = errors.New("会话不存在")
	ErrMessageNotFound      = errors.New("消息不存在")
	ErrNotParticipant       = errors.New("不是该会话的参与者")
	UnauthorizedError       = errors.New("权限不足")
	UnExpectedError         = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrContentBlank:         BadRequest,
	ErrContentTooLong:       BadRequest,
	ErrSendToSelf:           BadRequest,
	ErrReadOwnMessage:       BadRequest,
	ErrUserNotFound:         NotFound,
	ErrTargetUserInvalid:    NotFound,
	ErrConversationNotFound: NotFound,
	ErrMessageNotFound:      NotFound,
	ErrNotParticipant:       Forbidden,
	UnauthorizedError:       Unauthorized,
	UnExpectedError:         InternalServerError,
}

// CodeOf 业务错误码，未登记的错误视为系统异常
func CodeOf(err error) (int, bool) {
	for target, code := range ErrorMap {
		if errors.Is(err, target) {
			return code, true
		}
	}
	return InternalServerError, false
}
