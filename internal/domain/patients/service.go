package patients

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

// Mensajes de estado que el caller muestra tras cada operación.
// Antes viajaban por flash/session; ahora son resultado explícito.
const (
	MsgCreated = "Patient created."
	MsgUpdated = "Patient updated."
	MsgRemoved = "Patient removed."
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

// Create resuelve los campos del alta (ResolveCreate) y persiste el paciente.
func (s *Service) Create(ctx context.Context, form PatientForm) (Patient, error) {
	p, err := ResolveCreate(form)
	if err != nil {
		return Patient{}, err
	}

	now := s.now()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.repo.Create(ctx, p); err != nil {
		return Patient{}, err
	}
	return p, nil
}

// Update reconcilia el formulario contra los defaults (ResolveUpdate) y
// persiste el resultado. El id no se toca: es la clave del UPDATE.
func (s *Service) Update(ctx context.Context, id string, form, defaults PatientForm) (Patient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Patient{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Patient{}, err
	}

	p, err := ResolveUpdate(id, form, defaults)
	if err != nil {
		return Patient{}, err
	}
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Patient{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Patient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Patient{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Patient, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
