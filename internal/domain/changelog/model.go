package changelog

import "time"

type ChangeType string

const (
	ChangePatientCreated ChangeType = "PATIENT_CREATED"
	ChangePatientUpdated ChangeType = "PATIENT_UPDATED"
	ChangePatientRemoved ChangeType = "PATIENT_REMOVED"
)

// Change es una entrada del historial de cambios de un paciente. Reemplaza a
// los mensajes flash de sesión: el mensaje de estado queda registrado y la UI
// lo lee de acá (o del payload de la respuesta) en vez de estado global.
type Change struct {
	ID        string
	PatientID string

	Type    ChangeType
	Message string

	OccurredAt time.Time
}
