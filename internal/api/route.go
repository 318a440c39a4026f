package api

import (
	"Joblink/internal/api/middleware"
	"Joblink/internal/pkg/logger"
	"Joblink/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, userService service.UserService) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	auth := middleware.AuthMiddleware(userService)
	adminKey := middleware.AdminKeyMiddleware()

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		userGroup.Use(auth)
		{
			userGroup.POST("/logout", group.UserHandler.Logout)
			userGroup.GET("/info", group.UserHandler.GetUserInfo)
			userGroup.PUT("/info", group.UserHandler.UpdateUserInfo)
			userGroup.POST("/cancel", group.UserHandler.CancelUser)
		}

		companyGroup := apiGroup.Group("/companies")
		{
			companyGroup.GET("", group.CompanyHandler.ListCompanies)
			companyGroup.GET("/:company_id", group.CompanyHandler.GetCompany)
			companyGroup.GET("/:company_id/followers/count", group.CompanyHandler.GetFollowerCount)

			authGroup := companyGroup.Group("")
			authGroup.Use(auth)
			{
				authGroup.GET("/followed", group.CompanyHandler.GetFollowedCompanies)
				authGroup.POST("/:company_id/follow", group.CompanyHandler.Follow)
				authGroup.DELETE("/:company_id/follow", group.CompanyHandler.Unfollow)
			}
		}

		jobGroup := apiGroup.Group("/jobs")
		jobGroup.Use(auth)
		{
			jobGroup.GET("/followed", group.JobHandler.GetFollowedFeed)
			jobGroup.GET("", group.JobHandler.GetAllJobs)
			jobGroup.GET("/search", group.JobHandler.SearchJobs)
			jobGroup.GET("/suggestions", group.JobHandler.GetSuggestions)
			jobGroup.GET("/:job_id", group.JobHandler.GetJob)
		}

		outreachGroup := apiGroup.Group("/outreach")
		{
			// 用户侧内推路由整组要求有效订阅
			authGroup := outreachGroup.Group("")
			authGroup.Use(auth, middleware.RequireSubscription())
			{
				authGroup.POST("", group.OutreachHandler.Submit)
				authGroup.GET("/me", group.OutreachHandler.GetMine)
				authGroup.GET("/quota", group.OutreachHandler.GetQuota)
				authGroup.GET("/:request_id", group.OutreachHandler.GetById)
			}

			// 管理端走静态密钥，与用户 JWT 是不同的信任域
			adminGroup := outreachGroup.Group("/admin")
			adminGroup.Use(adminKey)
			{
				adminGroup.GET("/pending", group.OutreachAdminHandler.GetPending)
				adminGroup.PATCH("/:request_id/status", group.OutreachAdminHandler.UpdateStatus)
			}
		}

		alertGroup := apiGroup.Group("/alerts")
		alertGroup.Use(auth)
		{
			alertGroup.GET("/list", group.AlertHandler.GetAlerts)
			alertGroup.GET("/unread", group.AlertHandler.GetUnreadCount)
			alertGroup.POST("/read/:alert_id", group.AlertHandler.MarkRead)
			alertGroup.POST("/read/all", group.AlertHandler.MarkAllRead)
		}

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("", group.SocialPostHandler.GetPosts)
			postGroup.GET("/:post_id", group.SocialPostHandler.GetPost)
		}

		deviceGroup := apiGroup.Group("/devices")
		deviceGroup.Use(auth)
		{
			deviceGroup.POST("/token", group.DeviceHandler.RegisterToken)
			deviceGroup.DELETE("/token/:token", group.DeviceHandler.UnregisterToken)
		}

		mediaGroup := apiGroup.Group("/media")
		mediaGroup.Use(auth)
		{
			mediaGroup.POST("/resume", group.MediaHandler.UploadResume)
		}

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(adminKey)
		{
			adminGroup.POST("/companies/bulk", group.CompanyHandler.BulkUpsertCompanies)
			adminGroup.POST("/jobs/bulk", group.JobHandler.BulkUpsertJobs)
			adminGroup.POST("/posts", group.SocialPostHandler.CreatePost)
			adminGroup.PUT("/posts/:post_id", group.SocialPostHandler.UpdatePost)
			adminGroup.DELETE("/posts/:post_id", group.SocialPostHandler.DeletePost)
		}
	}

	return r
}
