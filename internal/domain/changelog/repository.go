package changelog

import "context"

type Repository interface {
	Create(ctx context.Context, c Change) error
	ListByPatient(ctx context.Context, patientID string) ([]Change, error)
}
