package inquiry

import "context"

// ListFilter narrows and paginates List results.
type ListFilter struct {
	// Status of "" or "all" returns every inquiry.
	Status string
	Limit  int
	Offset int
}

const (
	// DefaultLimit caps List results when the caller does not ask for a limit.
	DefaultLimit = 50
	// MaxLimit is the hard ceiling on a single page.
	MaxLimit = 100
)

// Normalize applies the default and maximum page bounds.
func (f ListFilter) Normalize() ListFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// Store is the inquiry collection contract. Implementations assign ids and
// server timestamps on Create and order List results by creation time
// descending.
//
// Delete is conditional on existence: deleting an id twice reports
// ErrNotFound the second time.
type Store interface {
	Create(ctx context.Context, sub Submission) (*Inquiry, error)
	Get(ctx context.Context, id string) (*Inquiry, error)
	List(ctx context.Context, filter ListFilter) ([]*Inquiry, error)
	Update(ctx context.Context, id string, req UpdateRequest) error
	Delete(ctx context.Context, id string) error
}
