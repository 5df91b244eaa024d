package patients

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Patient
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Patient{}}
}

func (r *testRepo) Create(ctx context.Context, p Patient) error {
	if p.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[p.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Patient) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Patient, error) {
	p, ok := r.byID[id]
	if !ok {
		return Patient{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context) ([]Patient, error) {
	out := make([]Patient, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// -------------------------
// Tests
// -------------------------

func validCreateForm() PatientForm {
	return PatientForm{
		FirstName:  "Jane",
		MiddleName: "Q",
		LastName:   "Doe",
		BirthDate:  "Wed Mar 04 1990",
		Sex:        "Female",
		Height:     "170",
		Weight:     "60",
		RiskIndex:  "2",
		Phone:      "555-0100",
		Email:      "jane@example.com",
		StartDate:  "Tue Jan 05 2021",
	}
}

func TestService_Create_AssignsIDAndTimestamps(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	p, err := svc.Create(context.Background(), validCreateForm())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("expected assigned ID")
	}
	if p.CreatedAt != now || p.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
	if _, ok := repo.byID[p.ID]; !ok {
		t.Fatalf("expected patient persisted")
	}
}

func TestService_Create_MissingFieldWritesNothing(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	form := validCreateForm()
	form.MiddleName = "  "

	_, err := svc.Create(context.Background(), form)
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected no writes on reconciliation failure")
	}
}

func TestService_Update_PreservesCreatedAt(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now1 := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	now2 := now1.Add(30 * time.Minute)

	svc.now = func() time.Time { return now1 }
	created, err := svc.Create(context.Background(), validCreateForm())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	svc.now = func() time.Time { return now2 }
	defaults := validCreateForm()
	updated, err := svc.Update(context.Background(), created.ID, PatientForm{Weight: "61"}, defaults)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if updated.ID != created.ID {
		t.Fatalf("expected same ID, got %s vs %s", updated.ID, created.ID)
	}
	if updated.CreatedAt != now1 {
		t.Fatalf("expected CreatedAt preserved")
	}
	if updated.UpdatedAt != now2 {
		t.Fatalf("expected UpdatedAt to change")
	}
	if updated.Weight != "61" {
		t.Fatalf("Weight = %q, want 61", updated.Weight)
	}
	if updated.FirstName != "Jane" {
		t.Fatalf("FirstName = %q, want default Jane", updated.FirstName)
	}
}

func TestService_Update_UnknownPatient(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), "nope", validCreateForm(), validCreateForm())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Update_ReconcileFailureWritesNothing(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), validCreateForm())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	before := repo.byID[created.ID]

	defaults := validCreateForm()
	defaults.BirthDate = "1990-03-04" // forma inválida para el fallback
	_, err = svc.Update(context.Background(), created.ID, PatientForm{}, defaults)
	if !errors.Is(err, ErrMalformedDate) {
		t.Fatalf("expected ErrMalformedDate, got %v", err)
	}

	if repo.byID[created.ID] != before {
		t.Fatalf("expected record untouched after failed reconciliation")
	}
}

func TestService_Delete(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), validCreateForm())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
