package changelog

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Change
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Change{}}
}

func (r *testRepo) Create(ctx context.Context, c Change) error {
	if c.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) ListByPatient(ctx context.Context, patientID string) ([]Change, error) {
	out := make([]Change, 0)
	for _, c := range r.byID {
		if c.PatientID == patientID {
			out = append(out, c)
		}
	}
	return out, nil
}

func TestService_Record(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	c, err := svc.Record(context.Background(), "p-1", ChangePatientCreated, " Patient created. ")
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if c.ID == "" {
		t.Fatalf("expected assigned ID")
	}
	if c.OccurredAt != now {
		t.Fatalf("expected OccurredAt = now")
	}
	if c.Message != "Patient created." {
		t.Fatalf("Message = %q, want trimmed", c.Message)
	}

	items, err := svc.ListByPatient(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("ListByPatient error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 change, got %d", len(items))
	}
}

func TestService_Record_RejectsBlankInput(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Record(context.Background(), "  ", ChangePatientCreated, "x"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank patient id, got %v", err)
	}
	if _, err := svc.Record(context.Background(), "p-1", "", "x"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty type, got %v", err)
	}
}
