package inquiry

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cloudsitefy/inquiry-service/internal/observability/metrics"
	"github.com/cloudsitefy/inquiry-service/pkg/logging"
)

// Notifier dispatches the two submission emails. Implementations live in the
// notify package; the pipeline only needs these two calls.
type Notifier interface {
	NotifyAdmin(ctx context.Context, inq *Inquiry) error
	NotifyCustomer(ctx context.Context, inq *Inquiry) error
}

// Pipeline orchestrates a submission: validate, persist, then fire both
// notification emails concurrently. The store write is the durable record;
// email failures are logged and never surfaced to the submitter.
type Pipeline struct {
	store    Store
	notifier Notifier
	logger   *logging.Logger
	metrics  *metrics.InquiryMetrics
}

// NewPipeline creates a submission pipeline. notifier may be nil when email
// is disabled; metrics may be nil.
func NewPipeline(store Store, notifier Notifier, logger *logging.Logger, m *metrics.InquiryMetrics) *Pipeline {
	if store == nil {
		panic("inquiry: store cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Pipeline{
		store:    store,
		notifier: notifier,
		logger:   logger,
		metrics:  m,
	}
}

// Submit runs the full pipeline for one raw submission and returns the
// persisted inquiry. Validation and store errors abort before any email is
// attempted; a single attempt is made per email, no retries.
func (p *Pipeline) Submit(ctx context.Context, req SubmissionRequest) (*Inquiry, error) {
	sub, err := Validate(req)
	if err != nil {
		if verr, ok := AsValidationError(err); ok {
			p.metrics.ObserveSubmission("rejected")
			p.logger.Info("submission rejected", "code", string(verr.Code), "field", verr.Field)
		}
		return nil, err
	}

	inq, err := p.store.Create(ctx, sub)
	if err != nil {
		p.metrics.ObserveSubmission("store_error")
		p.logger.Error("submission persist failed", "error", err)
		return nil, err
	}

	p.notify(ctx, inq)

	p.metrics.ObserveSubmission("accepted")
	p.logger.Info("submission accepted", "id", inq.ID, "service", inq.Service)
	return inq, nil
}

// notify fires the admin and customer emails concurrently and waits for both
// to settle. Neither failure cancels the other; both are best-effort.
func (p *Pipeline) notify(ctx context.Context, inq *Inquiry) {
	if p.notifier == nil {
		p.logger.Debug("notifier not configured, skipping submission emails", "id", inq.ID)
		return
	}

	var g errgroup.Group
	g.Go(func() error {
		if err := p.notifier.NotifyAdmin(ctx, inq); err != nil {
			p.metrics.ObserveEmail("admin", "error")
			p.logger.Error("admin notification failed", "error", err, "id", inq.ID)
			return nil
		}
		p.metrics.ObserveEmail("admin", "sent")
		return nil
	})
	g.Go(func() error {
		if err := p.notifier.NotifyCustomer(ctx, inq); err != nil {
			p.metrics.ObserveEmail("customer", "error")
			p.logger.Error("customer acknowledgment failed", "error", err, "id", inq.ID)
			return nil
		}
		p.metrics.ObserveEmail("customer", "sent")
		return nil
	})
	_ = g.Wait()
}
