package handler

import (
	"Joblink/internal/api/dto"
	"Joblink/internal/pkg/response"
	"Joblink/internal/service"

	"github.com/gin-gonic/gin"
)

type DeviceHandler struct {
	deviceSvc service.DeviceService
}

func NewDeviceHandler(deviceSvc service.DeviceService) *DeviceHandler {
	return &DeviceHandler{deviceSvc: deviceSvc}
}

func (s *DeviceHandler) RegisterToken(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.DeviceTokenDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.deviceSvc.RegisterToken(c.Request.Context(), userID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *DeviceHandler) UnregisterToken(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.deviceSvc.UnregisterToken(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
