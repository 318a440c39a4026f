package handler

import (
	"Joblink/internal/api/dto"
	"Joblink/internal/pkg/response"
	"Joblink/internal/pkg/util"
	"Joblink/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type OutreachHandler struct {
	outreachSvc service.OutreachService
}

func NewOutreachHandler(outreachSvc service.OutreachService) *OutreachHandler {
	return &OutreachHandler{outreachSvc: outreachSvc}
}

// Submit 提交内推请求，成功返回 201
func (s *OutreachHandler) Submit(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.CreateOutreachDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	created, err := s.outreachSvc.SubmitRequest(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

func (s *OutreachHandler) GetMine(c *gin.Context) {
	userID := c.GetUint64("user_id")

	requests, err := s.outreachSvc.GetMyRequests(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, requests)
}

// GetById 单条查询，他人的请求一律按不存在处理
func (s *OutreachHandler) GetById(c *gin.Context) {
	userID := c.GetUint64("user_id")
	requestID, err := strconv.ParseUint(c.Param("request_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	request, err := s.outreachSvc.GetMyRequestById(c.Request.Context(), userID, requestID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, request)
}

func (s *OutreachHandler) GetQuota(c *gin.Context) {
	userID := c.GetUint64("user_id")

	remaining, err := s.outreachSvc.GetRemainingQuota(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int{"remaining": remaining})
}
