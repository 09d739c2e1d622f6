package admin

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/portfolio-content-api/internal/validation"
	"github.com/rs/zerolog"
)

// fakeStore backs controller tests with an in-memory record set. Save
// rejects an empty name with a validation error, so tests can drive both
// failure classifications.
type fakeStore struct {
	records   map[string]*testRecord
	nextID    int
	saveErr   error
	deleteErr error
	listErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]*testRecord)}
}

func (s *fakeStore) List(ctx context.Context) ([]testRecord, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	items := make([]testRecord, 0, len(s.records))
	for _, r := range s.records {
		items = append(items, *r)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *fakeStore) Get(ctx context.Context, id string) (*testRecord, error) {
	return s.records[id], nil
}

func (s *fakeStore) Save(ctx context.Context, id string, form *testForm) (*testRecord, error) {
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	if form.Name == "" {
		return nil, &validation.Error{Field: "name", Message: "Name is required"}
	}
	if id == "" {
		s.nextID++
		id = fmt.Sprintf("r%d", s.nextID)
	}
	record := &testRecord{ID: id, Name: form.Name}
	s.records[id] = record
	return record, nil
}

func (s *fakeStore) Delete(ctx context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.records, id)
	return nil
}

func newTestController(store *fakeStore) *Controller[testRecord, testForm] {
	return NewController[testRecord, testForm](store, zerolog.Nop(), "test")
}

func TestController_CreateFlow(t *testing.T) {
	store := newFakeStore()
	ctrl := newTestController(store)
	ctx := context.Background()

	result, err := ctrl.Handle(ctx, Event[testRecord, testForm]{Type: EventNew})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.State.Mode != ModeEditing {
		t.Fatalf("expected Editing after new, got %s", result.State.Mode)
	}

	result, err = ctrl.Handle(ctx, Event[testRecord, testForm]{Type: EventSubmit, Form: &testForm{Name: "first"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.State.Mode != ModeListing {
		t.Errorf("a settled submit returns to Listing, got %s", result.State.Mode)
	}
	if result.Kind != ErrorNone || result.Err != nil {
		t.Errorf("expected a clean result, got kind=%q err=%v", result.Kind, result.Err)
	}
	if len(result.Items) != 1 || result.Items[0].Name != "first" {
		t.Errorf("expected the refreshed list to show the new record, got %+v", result.Items)
	}
}

func TestController_SubmitValidationFailureKeepsFormOpen(t *testing.T) {
	store := newFakeStore()
	ctrl := newTestController(store)
	ctx := context.Background()

	if _, err := ctrl.Handle(ctx, Event[testRecord, testForm]{Type: EventNew}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := ctrl.Handle(ctx, Event[testRecord, testForm]{Type: EventSubmit, Form: &testForm{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.State.Mode != ModeEditing {
		t.Errorf("a rejected submit keeps the form open, got %s", result.State.Mode)
	}
	if result.State.Error != "Name is required" {
		t.Errorf("expected the failing rule's message, got %q", result.State.Error)
	}
	if result.Kind != ErrorValidation {
		t.Errorf("expected validation classification, got %q", result.Kind)
	}
	if len(store.records) != 0 {
		t.Error("a rejected submit must not persist anything")
	}

	// correcting and resubmitting succeeds from the same state
	result, err = ctrl.Handle(ctx, Event[testRecord, testForm]{Type: EventSubmit, Form: &testForm{Name: "fixed"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.State.Mode != ModeListing || result.State.Error != "" {
		t.Errorf("resubmit must settle cleanly, got %+v", result.State)
	}
}

func TestController_SubmitStoreFailure(t *testing.T) {
	store := newFakeStore()
	ctrl := newTestController(store)
	ctx := context.Background()

	if _, err := ctrl.Handle(ctx, Event[testRecord, testForm]{Type: EventNew}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store.saveErr = errors.New("connection refused")
	result, err := ctrl.Handle(ctx, Event[testRecord, testForm]{Type: EventSubmit, Form: &testForm{Name: "x"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Kind != ErrorStore {
		t.Errorf("expected store classification, got %q", result.Kind)
	}
	if result.State.Mode != ModeEditing {
		t.Errorf("a failed mutation keeps the form open, got %s", result.State.Mode)
	}
}

func TestController_EditLoadsDraft(t *testing.T) {
	store := newFakeStore()
	store.records["r1"] = &testRecord{ID: "r1", Name: "existing"}
	ctrl := newTestController(store)
	ctx := context.Background()

	result, err := ctrl.Handle(ctx, Event[testRecord, testForm]{Type: EventEdit, ID: "r1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.State.Mode != ModeEditing || result.State.EditingID != "r1" {
		t.Fatalf("expected Editing r1, got %+v", result.State)
	}
	if result.State.Draft == nil || result.State.Draft.Name != "existing" {
		t.Errorf("expected the loaded record as draft, got %+v", result.State.Draft)
	}
}

func TestController_EditMissingRecordFallsBack(t *testing.T) {
	store := newFakeStore()
	store.records["r1"] = &testRecord{ID: "r1", Name: "survivor"}
	ctrl := newTestController(store)
	ctx := context.Background()

	result, err := ctrl.Handle(ctx, Event[testRecord, testForm]{Type: EventEdit, ID: "vanished"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.State.Mode != ModeListing {
		t.Errorf("a vanished record must fall back to Listing, got %s", result.State.Mode)
	}
	if result.State.Error == "" {
		t.Error("the fallback must carry an error message")
	}
	if len(result.Items) != 1 {
		t.Errorf("the fallback must refetch the list, got %d items", len(result.Items))
	}
}

func TestController_DeleteRequiresConfirmation(t *testing.T) {
	store := newFakeStore()
	store.records["r1"] = &testRecord{ID: "r1", Name: "keep me"}
	ctrl := newTestController(store)
	ctx := context.Background()

	_, err := ctrl.Handle(ctx, Event[testRecord, testForm]{Type: EventDelete, ID: "r1"})
	if !errors.Is(err, ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired, got %v", err)
	}
	if len(store.records) != 1 {
		t.Error("an unconfirmed delete must not touch the store")
	}

	result, err := ctrl.Handle(ctx, Event[testRecord, testForm]{Type: EventDelete, ID: "r1", Confirmed: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.records) != 0 {
		t.Error("a confirmed delete must remove the record")
	}
	if len(result.Items) != 0 {
		t.Errorf("the refreshed list must not show the deleted record, got %+v", result.Items)
	}
	if result.State.Mode != ModeListing {
		t.Errorf("expected Listing after delete, got %s", result.State.Mode)
	}
}

func TestController_RefreshFailureKeepsStaleList(t *testing.T) {
	store := newFakeStore()
	store.records["r1"] = &testRecord{ID: "r1", Name: "cached"}
	ctrl := newTestController(store)
	ctx := context.Background()

	if _, err := ctrl.Handle(ctx, Event[testRecord, testForm]{Type: EventList}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store.listErr = errors.New("timeout")
	result, err := ctrl.Handle(ctx, Event[testRecord, testForm]{Type: EventList})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Kind != ErrorStore {
		t.Errorf("expected store classification, got %q", result.Kind)
	}
	if len(result.Items) != 1 {
		t.Errorf("a failed refetch must keep the stale list, got %d items", len(result.Items))
	}
	if result.State.Error == "" {
		t.Error("the refetch failure must surface on the state")
	}
}
