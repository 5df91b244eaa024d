package changelog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Record registra un cambio sobre un paciente. El registro es best-effort
// para los handlers: si falla no debe voltear la operación principal.
func (s *Service) Record(ctx context.Context, patientID string, t ChangeType, message string) (Change, error) {
	if strings.TrimSpace(patientID) == "" {
		return Change{}, ErrInvalidInput
	}
	if t == "" {
		return Change{}, ErrInvalidInput
	}

	c := Change{
		ID:         uuid.NewString(),
		PatientID:  patientID,
		Type:       t,
		Message:    strings.TrimSpace(message),
		OccurredAt: s.now(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Change{}, err
	}
	return c, nil
}

// ListByPatient devuelve el historial del paciente, más reciente primero.
func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]Change, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByPatient(ctx, patientID)
}
