package wire

import (
	"Joblink/internal/api"
	"Joblink/internal/api/config"
	"Joblink/internal/api/handler"
	"Joblink/internal/job"
	"Joblink/internal/pkg/cron"
	"Joblink/internal/pkg/es"
	"Joblink/internal/pkg/kafka"
	mongodb "Joblink/internal/pkg/mongo"
	"Joblink/internal/pkg/push"
	"Joblink/internal/repository"
	"Joblink/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	companyRepo := repository.NewCompanyRepo(db)
	companyFollowRepo := repository.NewCompanyFollowRepo(db)
	jobRepo := repository.NewJobRepo(db)
	outreachRepo := repository.NewOutreachRepo(db)
	socialPostRepo := repository.NewSocialPostRepo(db)
	deviceTokenRepo := repository.NewDeviceTokenRepo(db)
	alertRepo := mongodb.NewAlertRepo(mongoDB)
	jobESRepo := es.NewJobRepo(es.Client)

	pushClient := push.NewClient()

	userService := service.NewUserService(userRepo)
	companyService := service.NewCompanyService(companyRepo, companyFollowRepo)
	jobService := service.NewJobService(jobRepo, userRepo, companyService, jobESRepo)
	outreachService := service.NewOutreachService(outreachRepo)
	alertService := service.NewAlertService(alertRepo, companyRepo, companyFollowRepo, deviceTokenRepo, pushClient)
	socialPostService := service.NewSocialPostService(socialPostRepo)
	deviceService := service.NewDeviceService(deviceTokenRepo)

	handlers := &api.HandlersGroup{
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

	router := api.SetupRouter(handlers, userService)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, companyRepo, jobESRepo, alertService)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(
		job.NewFollowerCountJob(companyFollowRepo),
		job.NewResumeCleanupJob(),
	)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
