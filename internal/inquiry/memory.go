package inquiry

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store for local development and tests. It
// mirrors the DynamoDB semantics: createdAt-descending List, ErrNotFound on
// missing ids, second delete reports ErrNotFound.
type MemoryStore struct {
	mu        sync.RWMutex
	inquiries map[string]*Inquiry
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{inquiries: make(map[string]*Inquiry)}
}

// Create inserts a new inquiry with server-assigned id and defaults.
func (s *MemoryStore) Create(ctx context.Context, sub Submission) (*Inquiry, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	inq := &Inquiry{
		ID:        uuid.NewString(),
		Name:      sub.Name,
		Email:     sub.Email,
		Phone:     sub.Phone,
		Company:   sub.Company,
		Service:   sub.Service,
		Message:   sub.Message,
		Timestamp: sub.Timestamp,
		UserAgent: sub.UserAgent,
		IP:        sub.IP,
		Status:    StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.inquiries[inq.ID] = inq
	s.mu.Unlock()

	clone := *inq
	return &clone, nil
}

// Get fetches an inquiry by id.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inq, ok := s.inquiries[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *inq
	return &clone, nil
}

// List returns inquiries ordered by creation time descending.
func (s *MemoryStore) List(ctx context.Context, filter ListFilter) ([]*Inquiry, error) {
	filter = filter.Normalize()

	s.mu.RLock()
	all := make([]*Inquiry, 0, len(s.inquiries))
	for _, inq := range s.inquiries {
		if filter.Status != "" && filter.Status != "all" && string(inq.Status) != filter.Status {
			continue
		}
		clone := *inq
		all = append(all, &clone)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt == all[j].CreatedAt {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt > all[j].CreatedAt
	})

	return paginate(all, filter), nil
}

// Update merges workflow fields and stamps updatedAt.
func (s *MemoryStore) Update(ctx context.Context, id string, req UpdateRequest) error {
	if req.Status != nil && !ValidStatus(*req.Status) {
		return fmt.Errorf("inquiry: invalid status %q", *req.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inq, ok := s.inquiries[id]
	if !ok {
		return ErrNotFound
	}

	if req.Status != nil {
		inq.Status = *req.Status
	}
	if req.Read != nil {
		inq.Read = *req.Read
	}
	if req.Responded != nil {
		inq.Responded = *req.Responded
	}
	if req.Notes != nil {
		inq.Notes = *req.Notes
	}
	inq.UpdatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	return nil
}

// Delete removes an inquiry; missing ids report ErrNotFound.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.inquiries[id]; !ok {
		return ErrNotFound
	}
	delete(s.inquiries, id)
	return nil
}
