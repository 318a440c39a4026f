package api

import (
	"Joblink/internal/api/config"
	"Joblink/internal/api/dto"
	"Joblink/internal/api/handler"
	"Joblink/internal/model"
	"Joblink/internal/pkg/redis"
	"Joblink/internal/pkg/security"
	"Joblink/internal/repository"
	"Joblink/internal/service"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.Cfg = &config.Config{
		Auth:  config.AuthConfig{JWTSecret: "test-secret", Issuer: "joblink-auth"},
		Admin: config.AdminConfig{APIKey: "test-admin-key"},
	}

	mr := miniredis.RunT(t)
	redis.Rdb = goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&model.User{},
		&model.Company{},
		&model.CompanyFollow{},
		&model.Job{},
		&model.OutreachRequest{},
		&model.SocialPost{},
		&model.DeviceToken{},
	)
	if err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	userRepo := repository.NewUserRepo(db)
	companyRepo := repository.NewCompanyRepo(db)
	companyFollowRepo := repository.NewCompanyFollowRepo(db)
	jobRepo := repository.NewJobRepo(db)
	outreachRepo := repository.NewOutreachRepo(db)
	socialPostRepo := repository.NewSocialPostRepo(db)
	deviceTokenRepo := repository.NewDeviceTokenRepo(db)

	userService := service.NewUserService(userRepo)
	companyService := service.NewCompanyService(companyRepo, companyFollowRepo)
	jobService := service.NewJobService(jobRepo, userRepo, companyService, nil)
	outreachService := service.NewOutreachService(outreachRepo)
	alertService := service.NewAlertService(nil, companyRepo, companyFollowRepo, deviceTokenRepo, nil)
	socialPostService := service.NewSocialPostService(socialPostRepo)
	deviceService := service.NewDeviceService(deviceTokenRepo)

	handlers := &HandlersGroup{
		UserHandler:          handler.NewUserHandler(userService),
		CompanyHandler:       handler.NewCompanyHandler(companyService),
		JobHandler:           handler.NewJobHandler(jobService),
		OutreachHandler:      handler.NewOutreachHandler(outreachService),
		OutreachAdminHandler: handler.NewOutreachAdminHandler(outreachService),
		AlertHandler:         handler.NewAlertHandler(alertService),
		SocialPostHandler:    handler.NewSocialPostHandler(socialPostService),
		DeviceHandler:        handler.NewDeviceHandler(deviceService),
		MediaHandler:         handler.NewMediaHandler(),
	}

	return SetupRouter(handlers, userService)
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOutreachRoutesRequireSubscription(t *testing.T) {
	r := newTestRouter(t)

	freeToken, err := security.GenerateToken("ext-free", "free@example.com", false)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	paidToken, err := security.GenerateToken("ext-paid", "paid@example.com", true)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/outreach"},
		{http.MethodGet, "/api/outreach/me"},
		{http.MethodGet, "/api/outreach/quota"},
		{http.MethodGet, "/api/outreach/1"},
	}

	// 无订阅的用户对所有内推路由都吃闭门羹，读路由也不例外
	for _, rt := range routes {
		w := doRequest(t, r, rt.method, rt.path, freeToken)
		if w.Code != http.StatusForbidden {
			t.Errorf("%s %s without subscription: status %d, want %d",
				rt.method, rt.path, w.Code, http.StatusForbidden)
		}
	}

	// 有订阅的用户可以读自己的配额
	w := doRequest(t, r, http.MethodGet, "/api/outreach/quota", paidToken)
	if w.Code != http.StatusOK {
		t.Fatalf("quota with subscription: status %d, want %d", w.Code, http.StatusOK)
	}
	var resp dto.Response
	if err = json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Code != 200 {
		t.Fatalf("quota with subscription: business code %d, want 200", resp.Code)
	}

	// 未携带 Token 直接 401
	w = doRequest(t, r, http.MethodGet, "/api/outreach/me", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
