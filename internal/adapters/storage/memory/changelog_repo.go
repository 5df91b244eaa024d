package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"patient-care-manager/internal/domain/changelog"
)

type changelogRepo struct {
	mu   sync.RWMutex
	byID map[string]changelog.Change
}

func NewChangelogRepo() changelog.Repository {
	return &changelogRepo{
		byID: make(map[string]changelog.Change),
	}
}

func (r *changelogRepo) Create(ctx context.Context, c changelog.Change) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		return errors.New("change id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("change already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *changelogRepo) ListByPatient(ctx context.Context, patientID string) ([]changelog.Change, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]changelog.Change, 0)
	for _, c := range r.byID {
		if c.PatientID == patientID {
			out = append(out, c)
		}
	}

	// más reciente primero, igual que el adapter de Postgres
	sort.Slice(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})

	return out, nil
}
