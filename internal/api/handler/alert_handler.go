package handler

import (
	"Joblink/internal/pkg/consts"
	"Joblink/internal/pkg/response"
	"Joblink/internal/pkg/util"
	"Joblink/internal/service"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	alertSvc service.AlertService
}

func NewAlertHandler(alertSvc service.AlertService) *AlertHandler {
	return &AlertHandler{alertSvc: alertSvc}
}

func (s *AlertHandler) GetAlerts(c *gin.Context) {
	userID := c.GetUint64("user_id")
	page, limit := util.NormalizePagination(
		c.DefaultQuery("page", ""),
		c.DefaultQuery("limit", ""),
		consts.FeedDefaultLimit,
		consts.MaxPageLimit,
	)

	alerts, err := s.alertSvc.GetAlerts(c.Request.Context(), userID, limit, (page-1)*limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, alerts)
}

func (s *AlertHandler) GetUnreadCount(c *gin.Context) {
	userID := c.GetUint64("user_id")

	count, err := s.alertSvc.GetUnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int64{"count": count})
}

func (s *AlertHandler) MarkRead(c *gin.Context) {
	userID := c.GetUint64("user_id")
	alertID := c.Param("alert_id")
	if alertID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.alertSvc.MarkAsRead(c.Request.Context(), userID, alertID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AlertHandler) MarkAllRead(c *gin.Context) {
	userID := c.GetUint64("user_id")

	if err := s.alertSvc.MarkAllAsRead(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
