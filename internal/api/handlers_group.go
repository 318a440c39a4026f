package api

import "Joblink/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler          *handler.UserHandler
	CompanyHandler       *handler.CompanyHandler
	JobHandler           *handler.JobHandler
	OutreachHandler      *handler.OutreachHandler
	OutreachAdminHandler *handler.OutreachAdminHandler
	AlertHandler         *handler.AlertHandler
	SocialPostHandler    *handler.SocialPostHandler
	DeviceHandler        *handler.DeviceHandler
	MediaHandler         *handler.MediaHandler
}
