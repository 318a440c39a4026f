package kafka

import (
	"Joblink/internal/api/config"
	"Joblink/internal/pkg/es"
	"Joblink/internal/repository"
	"Joblink/internal/service"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	jobsConsumer sarama.ConsumerGroup
	jobsHandler  sarama.ConsumerGroupHandler

	companyFollowsConsumer sarama.ConsumerGroup
	companyFollowsHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(
	cfg *config.Config,
	companyRepo repository.CompanyRepo,
	jobESRepo es.JobRepo,
	alertSvc service.AlertService,
) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	jobsConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaJobConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	jobsHandler := NewJobsHandler(companyRepo, jobESRepo, alertSvc)

	companyFollowsConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaCompanyFollowConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	companyFollowsHandler := NewCompanyFollowsHandler()

	return &ConsumerManager{
		jobsConsumer:           jobsConsumer,
		jobsHandler:            jobsHandler,
		companyFollowsConsumer: companyFollowsConsumer,
		companyFollowsHandler:  companyFollowsHandler,
	}, nil
}

// Start 启动所有消费者，阻塞直到 ctx 结束
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaJobConsumer.Topic
		log.Info("Jobs consumer started", "topic", topic)
		for {
			if err := m.jobsConsumer.Consume(ctx, []string{topic}, m.jobsHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	go func() {
		topic := cfg.KafkaCompanyFollowConsumer.Topic
		log.Info("Company Follows consumer started", "topic", topic)
		for {
			if err := m.companyFollowsConsumer.Consume(ctx, []string{topic}, m.companyFollowsHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.jobsConsumer.Close(); err != nil {
		log.Error("Failed to close jobs consumer", "err", err)
	}
	if err := m.companyFollowsConsumer.Close(); err != nil {
		log.Error("Failed to close company follows consumer", "err", err)
	}

	return nil
}
