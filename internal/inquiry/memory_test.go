package inquiry

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryCreateAssignsDefaults(t *testing.T) {
	store := NewMemoryStore()

	inq, err := store.Create(context.Background(), testSubmission())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if inq.ID == "" {
		t.Fatal("expected assigned id")
	}
	if inq.Status != StatusNew || inq.Read || inq.Responded {
		t.Errorf("expected workflow defaults, got %+v", inq)
	}

	got, err := store.Get(context.Background(), inq.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Name != "Jane" || got.Email != "jane@x.com" {
		t.Errorf("unexpected stored record: %+v", got)
	}
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	inq, _ := store.Create(context.Background(), testSubmission())

	got, _ := store.Get(context.Background(), inq.ID)
	got.Name = "mutated"

	again, _ := store.Get(context.Background(), inq.ID)
	if again.Name != "Jane" {
		t.Error("callers must not be able to mutate stored records")
	}
}

func TestMemoryListStatusFilter(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	a, _ := store.Create(ctx, testSubmission())
	b, _ := store.Create(ctx, testSubmission())

	status := StatusCompleted
	if err := store.Update(ctx, a.ID, UpdateRequest{Status: &status}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	done, err := store.List(ctx, ListFilter{Status: "completed"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(done) != 1 || done[0].ID != a.ID {
		t.Fatalf("expected only the completed inquiry, got %d", len(done))
	}

	fresh, _ := store.List(ctx, ListFilter{Status: "new"})
	if len(fresh) != 1 || fresh[0].ID != b.ID {
		t.Fatalf("expected only the remaining new inquiry, got %d", len(fresh))
	}

	all, _ := store.List(ctx, ListFilter{})
	if len(all) != 2 {
		t.Fatalf("expected both inquiries without a filter, got %d", len(all))
	}
}

func TestMemoryListPagination(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := store.Create(ctx, testSubmission()); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	page, err := store.List(ctx, ListFilter{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected page of 2, got %d", len(page))
	}

	tail, _ := store.List(ctx, ListFilter{Limit: 2, Offset: 4})
	if len(tail) != 1 {
		t.Fatalf("expected final partial page of 1, got %d", len(tail))
	}

	past, _ := store.List(ctx, ListFilter{Limit: 2, Offset: 10})
	if len(past) != 0 {
		t.Fatalf("expected empty page past the end, got %d", len(past))
	}
}

func TestMemoryUpdatePartial(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	inq, _ := store.Create(ctx, testSubmission())

	read := true
	notes := "called back"
	if err := store.Update(ctx, inq.ID, UpdateRequest{Read: &read, Notes: &notes}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	got, _ := store.Get(ctx, inq.ID)
	if !got.Read || got.Notes != "called back" {
		t.Errorf("expected provided fields updated, got %+v", got)
	}
	if got.Status != StatusNew || got.Responded {
		t.Errorf("untouched fields must survive a partial update, got %+v", got)
	}
	if got.UpdatedAt == inq.UpdatedAt {
		t.Error("expected updatedAt to advance")
	}
}

func TestMemoryUpdateUnknownID(t *testing.T) {
	store := NewMemoryStore()

	read := true
	err := store.Update(context.Background(), "missing", UpdateRequest{Read: &read})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryDeleteTwice(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	inq, _ := store.Create(ctx, testSubmission())

	if err := store.Delete(ctx, inq.ID); err != nil {
		t.Fatalf("first delete returned error: %v", err)
	}
	if err := store.Delete(ctx, inq.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if _, err := store.Get(ctx, inq.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected deleted inquiry to be gone, got %v", err)
	}
}
