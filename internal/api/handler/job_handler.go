package handler

import (
	"Joblink/internal/api/dto"
	"Joblink/internal/pkg/consts"
	"Joblink/internal/pkg/response"
	"Joblink/internal/pkg/util"
	"Joblink/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobSvc service.JobService
}

func NewJobHandler(jobSvc service.JobService) *JobHandler {
	return &JobHandler{jobSvc: jobSvc}
}

// GetFollowedFeed 关注公司职位流，默认每页 10 条
func (s *JobHandler) GetFollowedFeed(c *gin.Context) {
	userID := c.GetUint64("user_id")
	page, limit := util.NormalizePagination(
		c.DefaultQuery("page", ""),
		c.DefaultQuery("limit", ""),
		consts.FeedDefaultLimit,
		consts.MaxPageLimit,
	)

	feed, err := s.jobSvc.GetFollowedFeed(c.Request.Context(), userID, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, feed)
}

// GetAllJobs 全量职位列表，默认每页 20 条，与关注流相互独立
func (s *JobHandler) GetAllJobs(c *gin.Context) {
	userID := c.GetUint64("user_id")
	page, limit := util.NormalizePagination(
		c.DefaultQuery("page", ""),
		c.DefaultQuery("limit", ""),
		consts.JobListDefaultLimit,
		consts.MaxPageLimit,
	)

	var companyID *uint64
	if companyIDStr := c.Query("company_id"); companyIDStr != "" {
		id, err := strconv.ParseUint(companyIDStr, 10, 64)
		if err != nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		companyID = &id
	}

	jobs, err := s.jobSvc.GetAllJobs(c.Request.Context(), userID, c.Query("segment"), companyID, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, jobs)
}

func (s *JobHandler) GetJob(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.Param("job_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	job, err := s.jobSvc.GetJobById(c.Request.Context(), jobID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, job)
}

func (s *JobHandler) SearchJobs(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, limit := util.NormalizePagination(
		c.DefaultQuery("page", ""),
		c.DefaultQuery("limit", ""),
		consts.JobListDefaultLimit,
		consts.MaxPageLimit,
	)

	jobs, err := s.jobSvc.SearchJobs(c.Request.Context(), keyword, c.Query("segment"), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, jobs)
}

func (s *JobHandler) GetSuggestions(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		response.Success(c, []string{})
		return
	}

	suggestions, err := s.jobSvc.GetSuggestions(c.Request.Context(), keyword)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, suggestions)
}

// BulkUpsertJobs 管理端批量写入职位
func (s *JobHandler) BulkUpsertJobs(c *gin.Context) {
	var req dto.BulkJobsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.jobSvc.BulkUpsertJobs(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
