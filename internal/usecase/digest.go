package usecase

import (
	"context"
	"encoding/json"
	"os"

	"flyright-service/internal/domain/entity"
	"flyright-service/internal/domain/repository"
	"flyright-service/pkg/logger"
	"flyright-service/pkg/metrics"
	"flyright-service/templates"
)

// DealDigestOrchestrator turns a scan's deals into member emails.
type DealDigestOrchestrator struct {
	memberRepo repository.MemberRepository
	mailer     repository.MailerRepository
	detector   *DealDetector
	fallback   string // file receiving deals when there are no recipients
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewDealDigestOrchestrator creates a new digest orchestrator
func NewDealDigestOrchestrator(
	memberRepo repository.MemberRepository,
	mailer repository.MailerRepository,
	detector *DealDetector,
	m *metrics.Metrics,
	log logger.Logger,
) *DealDigestOrchestrator {
	return &DealDigestOrchestrator{
		memberRepo: memberRepo,
		mailer:     mailer,
		detector:   detector,
		fallback:   "latest-deals.json",
		metrics:    m,
		logger:     log,
	}
}

// SendDeals ranks the deals and emails the digest to every member. Per-
// member delivery failures are logged and do not stop the batch.
func (o *DealDigestOrchestrator) SendDeals(ctx context.Context, deals []*entity.Deal) error {
	if len(deals) == 0 {
		o.logger.Info("No deals to send")
		return nil
	}

	o.detector.RankDeals(deals)
	subject, html := templates.BuildDealDigest(deals)

	members, err := o.memberRepo.ListMembers(ctx)
	if err != nil {
		return err
	}

	if len(members) == 0 {
		o.logger.Info("No members to email, saving deals to file", "file", o.fallback)
		return o.saveDeals(deals)
	}

	sent := 0
	for _, member := range members {
		if err := o.mailer.SendHTML(ctx, member.Email, subject, html); err != nil {
			o.logger.Error("Failed to email member", "email", member.Email, "error", err)
			if o.metrics != nil {
				o.metrics.ErrorsCount.WithLabelValues("digest_send").Inc()
			}
			continue
		}
		sent++
		if o.metrics != nil {
			o.metrics.DigestsSent.Inc()
		}
	}

	o.logger.Info("Deal digest sent", "sent", sent, "members", len(members))
	return nil
}

func (o *DealDigestOrchestrator) saveDeals(deals []*entity.Deal) error {
	data, err := json.MarshalIndent(deals, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(o.fallback, data, 0o644)
}
