package service

import (
	"Joblink/internal/api/config"
	"Joblink/internal/api/dto"
	"Joblink/internal/model"
	"Joblink/internal/repository"
	"context"
	"errors"
	"testing"
	"time"
)

func newOutreachService(t *testing.T, now func() time.Time) (*OutreachServiceImpl, repository.OutreachRepo) {
	t.Helper()

	db := newTestDB(t)
	newTestRedis(t)
	config.Cfg = &config.Config{}

	repo := repository.NewOutreachRepo(db)
	return &OutreachServiceImpl{outreachRepo: repo, now: now}, repo
}

func submitDTO() *dto.CreateOutreachDTO {
	return &dto.CreateOutreachDTO{
		Email:       "dev@example.com",
		CompanyName: "Acme",
		Reason:      "referral please",
	}
}

func TestSubmitRequestQuota(t *testing.T) {
	clock := time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newOutreachService(t, func() time.Time { return clock })
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.SubmitRequest(ctx, 1, submitDTO()); err != nil {
			t.Fatalf("submit %d: unexpected error %v", i+1, err)
		}
	}

	_, err := svc.SubmitRequest(ctx, 1, submitDTO())
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("4th submit: got %v, want ErrQuotaExceeded", err)
	}

	// 其他用户的配额互不影响
	if _, err = svc.SubmitRequest(ctx, 2, submitDTO()); err != nil {
		t.Fatalf("other user submit: unexpected error %v", err)
	}
}

func TestSubmitRequestQuotaResetsNextMonth(t *testing.T) {
	clock := time.Date(2025, time.June, 30, 23, 0, 0, 0, time.UTC)
	svc, _ := newOutreachService(t, func() time.Time { return clock })
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.SubmitRequest(ctx, 1, submitDTO()); err != nil {
			t.Fatalf("submit %d: unexpected error %v", i+1, err)
		}
	}
	if _, err := svc.SubmitRequest(ctx, 1, submitDTO()); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded at quota, got %v", err)
	}

	// 跨过月界，配额重新计算
	clock = time.Date(2025, time.July, 1, 0, 0, 1, 0, time.UTC)
	if _, err := svc.SubmitRequest(ctx, 1, submitDTO()); err != nil {
		t.Fatalf("submit in new month: unexpected error %v", err)
	}
}

func TestGetRemainingQuota(t *testing.T) {
	clock := time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newOutreachService(t, func() time.Time { return clock })
	ctx := context.Background()

	remaining, err := svc.GetRemainingQuota(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if remaining != 3 {
		t.Fatalf("fresh user remaining = %d, want 3", remaining)
	}

	for i := 0; i < 2; i++ {
		if _, err = svc.SubmitRequest(ctx, 1, submitDTO()); err != nil {
			t.Fatalf("submit: unexpected error %v", err)
		}
	}

	remaining, err = svc.GetRemainingQuota(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if remaining != 1 {
		t.Fatalf("remaining after 2 submits = %d, want 1", remaining)
	}
}

func strPtr(s string) *string { return &s }

func TestGetMyRequestByIdOwnership(t *testing.T) {
	clock := time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newOutreachService(t, func() time.Time { return clock })
	ctx := context.Background()

	jobID := uint64(77)
	d := submitDTO()
	d.JobID = &jobID
	d.ResumeLink = strPtr("https://files.example.com/resumes/abc.pdf")
	d.Message = strPtr("please forward to the platform team")

	created, err := svc.SubmitRequest(ctx, 1, d)
	if err != nil {
		t.Fatalf("submit: unexpected error %v", err)
	}

	got, err := svc.GetMyRequestById(ctx, 1, created.ID)
	if err != nil {
		t.Fatalf("owner read: unexpected error %v", err)
	}

	// 提交的内容逐字段回读
	if got.ID != created.ID {
		t.Fatalf("owner read returned id %d, want %d", got.ID, created.ID)
	}
	if got.Email != d.Email {
		t.Errorf("Email = %q, want %q", got.Email, d.Email)
	}
	if got.CompanyName != d.CompanyName {
		t.Errorf("CompanyName = %q, want %q", got.CompanyName, d.CompanyName)
	}
	if got.Reason != d.Reason {
		t.Errorf("Reason = %q, want %q", got.Reason, d.Reason)
	}
	if got.JobID == nil || *got.JobID != jobID {
		t.Errorf("JobID = %v, want %d", got.JobID, jobID)
	}
	if got.ResumeLink == nil || *got.ResumeLink != *d.ResumeLink {
		t.Errorf("ResumeLink = %v, want %v", got.ResumeLink, *d.ResumeLink)
	}
	if got.Message == nil || *got.Message != *d.Message {
		t.Errorf("Message = %v, want %v", got.Message, *d.Message)
	}
	if got.Status != model.OutreachPending {
		t.Errorf("Status = %s, want PENDING", got.Status)
	}
	if got.ReviewedAt != nil || got.SentAt != nil {
		t.Errorf("fresh request carries review timestamps: %+v", got)
	}

	// 他人的请求与不存在的请求不可区分
	if _, err = svc.GetMyRequestById(ctx, 2, created.ID); !errors.Is(err, ErrOutreachNotFound) {
		t.Fatalf("foreign read: got %v, want ErrOutreachNotFound", err)
	}
	if _, err = svc.GetMyRequestById(ctx, 1, created.ID+999); !errors.Is(err, ErrOutreachNotFound) {
		t.Fatalf("missing read: got %v, want ErrOutreachNotFound", err)
	}
}

func TestTransitionRequest(t *testing.T) {
	clock := time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)
	svc, repo := newOutreachService(t, func() time.Time { return clock })
	ctx := context.Background()

	created, err := svc.SubmitRequest(ctx, 1, submitDTO())
	if err != nil {
		t.Fatalf("submit: unexpected error %v", err)
	}

	if _, err = svc.TransitionRequest(ctx, created.ID, "DONE"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("unknown status: got %v, want ErrInvalidStatus", err)
	}
	if _, err = svc.TransitionRequest(ctx, created.ID+999, "APPROVED"); !errors.Is(err, ErrOutreachNotFound) {
		t.Fatalf("missing request: got %v, want ErrOutreachNotFound", err)
	}
	if _, err = svc.TransitionRequest(ctx, created.ID, "SENT"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("PENDING->SENT: got %v, want ErrInvalidTransition", err)
	}

	approved, err := svc.TransitionRequest(ctx, created.ID, "APPROVED")
	if err != nil {
		t.Fatalf("PENDING->APPROVED: unexpected error %v", err)
	}
	if approved.Status != model.OutreachApproved {
		t.Fatalf("status = %s, want APPROVED", approved.Status)
	}
	if approved.ReviewedAt == nil || !approved.ReviewedAt.Equal(clock) {
		t.Fatalf("ReviewedAt = %v, want %v", approved.ReviewedAt, clock)
	}

	clock = clock.Add(2 * time.Hour)
	sent, err := svc.TransitionRequest(ctx, created.ID, "SENT")
	if err != nil {
		t.Fatalf("APPROVED->SENT: unexpected error %v", err)
	}
	if sent.Status != model.OutreachSent {
		t.Fatalf("status = %s, want SENT", sent.Status)
	}
	if sent.SentAt == nil || !sent.SentAt.Equal(clock) {
		t.Fatalf("SentAt = %v, want %v", sent.SentAt, clock)
	}
	// 发送同样重盖审核时间
	if sent.ReviewedAt == nil || !sent.ReviewedAt.Equal(clock) {
		t.Fatalf("ReviewedAt = %v, want %v on send", sent.ReviewedAt, clock)
	}

	// 终态无出边
	if _, err = svc.TransitionRequest(ctx, created.ID, "APPROVED"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("SENT->APPROVED: got %v, want ErrInvalidTransition", err)
	}

	persisted, err := repo.GetById(ctx, created.ID)
	if err != nil {
		t.Fatalf("reload: unexpected error %v", err)
	}
	if persisted.Status != model.OutreachSent {
		t.Fatalf("persisted status = %s, want SENT", persisted.Status)
	}
	if persisted.ReviewedAt == nil || !persisted.ReviewedAt.Equal(clock) {
		t.Fatalf("persisted ReviewedAt = %v, want %v", persisted.ReviewedAt, clock)
	}
}

func TestTransitionRequestRejectedIsTerminal(t *testing.T) {
	clock := time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newOutreachService(t, func() time.Time { return clock })
	ctx := context.Background()

	created, err := svc.SubmitRequest(ctx, 1, submitDTO())
	if err != nil {
		t.Fatalf("submit: unexpected error %v", err)
	}

	if _, err = svc.TransitionRequest(ctx, created.ID, "REJECTED"); err != nil {
		t.Fatalf("PENDING->REJECTED: unexpected error %v", err)
	}
	if _, err = svc.TransitionRequest(ctx, created.ID, "APPROVED"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("REJECTED->APPROVED: got %v, want ErrInvalidTransition", err)
	}
	if _, err = svc.TransitionRequest(ctx, created.ID, "SENT"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("REJECTED->SENT: got %v, want ErrInvalidTransition", err)
	}
}
