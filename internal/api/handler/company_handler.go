package handler

import (
	"Joblink/internal/api/dto"
	"Joblink/internal/pkg/response"
	"Joblink/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companySvc service.CompanyService
}

func NewCompanyHandler(companySvc service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companySvc: companySvc}
}

func (s *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := s.companySvc.ListCompanies(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, companies)
}

func (s *CompanyHandler) GetCompany(c *gin.Context) {
	companyID, err := strconv.ParseUint(c.Param("company_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	company, err := s.companySvc.GetCompanyById(c.Request.Context(), companyID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, company)
}

func (s *CompanyHandler) GetFollowerCount(c *gin.Context) {
	companyID, err := strconv.ParseUint(c.Param("company_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	count, err := s.companySvc.GetFollowerCount(c.Request.Context(), companyID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int64{"count": count})
}

func (s *CompanyHandler) Follow(c *gin.Context) {
	userID := c.GetUint64("user_id")
	companyID, err := strconv.ParseUint(c.Param("company_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.companySvc.FollowCompany(c.Request.Context(), userID, companyID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CompanyHandler) Unfollow(c *gin.Context) {
	userID := c.GetUint64("user_id")
	companyID, err := strconv.ParseUint(c.Param("company_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.companySvc.UnfollowCompany(c.Request.Context(), userID, companyID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CompanyHandler) GetFollowedCompanies(c *gin.Context) {
	userID := c.GetUint64("user_id")

	companies, err := s.companySvc.GetFollowedCompanies(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, companies)
}

// BulkUpsertCompanies 管理端批量写入公司
func (s *CompanyHandler) BulkUpsertCompanies(c *gin.Context) {
	var req dto.BulkCompaniesDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.companySvc.BulkUpsertCompanies(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
