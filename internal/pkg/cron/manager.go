package cron

import (
	"Joblink/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine           *cron.Cron
	followerCountJob *job.FollowerCountJob
	resumeCleanupJob *job.ResumeCleanupJob
}

func NewCronManager(followerCountJob *job.FollowerCountJob, resumeCleanupJob *job.ResumeCleanupJob) *Manager {
	return &Manager{
		engine:           cron.New(cron.WithSeconds()),
		followerCountJob: followerCountJob,
		resumeCleanupJob: resumeCleanupJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@every 10m", s.followerCountJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@daily", s.resumeCleanupJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
