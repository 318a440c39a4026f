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

type SocialPostHandler struct {
	socialPostSvc service.SocialPostService
}

func NewSocialPostHandler(socialPostSvc service.SocialPostService) *SocialPostHandler {
	return &SocialPostHandler{socialPostSvc: socialPostSvc}
}

func (s *SocialPostHandler) GetPosts(c *gin.Context) {
	page, limit := util.NormalizePagination(
		c.DefaultQuery("page", ""),
		c.DefaultQuery("limit", ""),
		consts.FeedDefaultLimit,
		consts.MaxPageLimit,
	)

	posts, err := s.socialPostSvc.GetPosts(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *SocialPostHandler) GetPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	post, err := s.socialPostSvc.GetPostById(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// CreatePost 管理端发布运营动态
func (s *SocialPostHandler) CreatePost(c *gin.Context) {
	var req dto.SocialPostBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.socialPostSvc.CreatePost(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, post)
}

func (s *SocialPostHandler) UpdatePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.SocialPostBaseDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err = s.socialPostSvc.UpdatePost(c.Request.Context(), postID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *SocialPostHandler) DeletePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.socialPostSvc.DeletePost(c.Request.Context(), postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
