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

	// OnboardingRequired 业务码末位为子码，HTTP 状态取前三位。
	// 客户端依赖该码跳转引导流程，不要改动。
	OnboardingRequired = 4031
)

var (
	ErrParamInvalid         = errors.New("参数错误")
	ErrUserNotFound         = errors.New("用户不存在")
	ErrOnboardingRequired   = errors.New("请先完成引导设置")
	ErrSegmentRequired      = errors.New("缺少经验分层")
	ErrSubscriptionRequired = errors.New("需要有效订阅")
	ErrQuotaExceeded        = errors.New("本月内推配额已用完")
	ErrOutreachNotFound     = errors.New("内推请求不存在")
	ErrInvalidStatus        = errors.New("未知的状态值")
	ErrInvalidTransition    = errors.New("状态流转不被允许")
	ErrCompanyNotFound      = errors.New("公司不存在")
	ErrJobNotFound          = errors.New("职位不存在")
	ErrPostNotFound         = errors.New("动态不存在")
	ErrAlertNotFound        = errors.New("提醒不存在")
	ErrFileNotSupported     = errors.New("不支持的文件类型")
	UnauthorizedError       = errors.New("权限不足")
	UnExpectedError         = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrUserNotFound:         NotFound,
	ErrOnboardingRequired:   OnboardingRequired,
	ErrSegmentRequired:      BadRequest,
	ErrSubscriptionRequired: Forbidden,
	ErrQuotaExceeded:        Forbidden,
	ErrOutreachNotFound:     NotFound,
	ErrInvalidStatus:        BadRequest,
	ErrInvalidTransition:    Forbidden,
	ErrCompanyNotFound:      NotFound,
	ErrJobNotFound:          NotFound,
	ErrPostNotFound:         NotFound,
	ErrAlertNotFound:        NotFound,
	ErrFileNotSupported:     BadRequest,
	UnauthorizedError:       Unauthorized,
	UnExpectedError:         InternalServerError,
}
