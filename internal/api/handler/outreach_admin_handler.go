package handler

import (
	"Joblink/internal/api/dto"
	"Joblink/internal/pkg/response"
	"Joblink/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type OutreachAdminHandler struct {
	outreachSvc service.OutreachService
}

func NewOutreachAdminHandler(outreachSvc service.OutreachService) *OutreachAdminHandler {
	return &OutreachAdminHandler{outreachSvc: outreachSvc}
}

// GetPending 待审核队列，按提交时间先到先审
func (s *OutreachAdminHandler) GetPending(c *gin.Context) {
	requests, err := s.outreachSvc.GetPendingRequests(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, requests)
}

// UpdateStatus 状态流转，终态不可再变更
func (s *OutreachAdminHandler) UpdateStatus(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("request_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.OutreachStatusDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	updated, err := s.outreachSvc.TransitionRequest(c.Request.Context(), requestID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, updated)
}
