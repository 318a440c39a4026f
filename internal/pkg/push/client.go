package push

import (
	"Joblink/internal/api/config"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// Notification 推送网关的单条消息体
type Notification struct {
	Tokens []string       `json:"tokens"`
	Title  string         `json:"title"`
	Body   string         `json:"body"`
	Data   map[string]any `json:"data,omitempty"`
}

type Client interface {
	Send(ctx context.Context, notification *Notification) error
}

type clientImpl struct {
	httpClient *resty.Client
}

// NewClient 构建推送网关客户端
func NewClient() Client {
	cfg := config.Cfg.Push

	client := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(10*time.Second).
		SetHeader("Authorization", "Bearer "+cfg.APIKey).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	return &clientImpl{httpClient: client}
}

// Send 下发一条推送，网关按 token 自行分平台路由
func (s *clientImpl) Send(ctx context.Context, notification *Notification) error {
	if len(notification.Tokens) == 0 {
		return nil
	}

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetBody(notification).
		Post("/v1/push")
	if err != nil {
		return err
	}

	if resp.IsError() {
		log.ErrorContext(ctx, "push gateway rejected notification", "status", resp.StatusCode(), "body", resp.String())
		return errors.New(fmt.Sprintf("push gateway returned status %d", resp.StatusCode()))
	}

	return nil
}
