package inquiry

import (
	"context"
	"fmt"

	"github.com/cloudsitefy/inquiry-service/pkg/logging"
)

// Lifecycle owns the inquiry workflow state. Every transition goes through
// the Store's update path; nothing is held in memory between requests.
//
// Status transitions are admin-directed: any status can move to any other.
type Lifecycle struct {
	store  Store
	logger *logging.Logger
}

// NewLifecycle creates a lifecycle manager over the given store.
func NewLifecycle(store Store, logger *logging.Logger) *Lifecycle {
	if store == nil {
		panic("inquiry: store cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Lifecycle{store: store, logger: logger}
}

// Update applies a partial workflow update. Unknown status values are
// rejected before the store is touched.
func (l *Lifecycle) Update(ctx context.Context, id string, req UpdateRequest) error {
	if req.Empty() {
		return fmt.Errorf("inquiry: update carries no fields")
	}
	if req.Status != nil && !ValidStatus(*req.Status) {
		return fmt.Errorf("inquiry: invalid status %q", *req.Status)
	}
	return l.store.Update(ctx, id, req)
}

// MarkRead records that an admin has opened the inquiry. Read never
// auto-resets to false.
func (l *Lifecycle) MarkRead(ctx context.Context, id string) error {
	read := true
	return l.store.Update(ctx, id, UpdateRequest{Read: &read})
}

// MarkReplied records a successfully dispatched reply email: responded flips
// true and status moves to in-progress. Replying to a completed or archived
// inquiry re-opens it; the admin can re-complete afterwards.
func (l *Lifecycle) MarkReplied(ctx context.Context, id string) error {
	responded := true
	status := StatusInProgress
	if err := l.store.Update(ctx, id, UpdateRequest{Responded: &responded, Status: &status}); err != nil {
		return err
	}
	l.logger.Info("inquiry marked replied", "id", id)
	return nil
}
