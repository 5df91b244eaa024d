package patients

import "time"

// Sex define el sexo registrado del paciente.
// @Enum Male, Female, Other
type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
	SexOther  Sex = "Other"
)

// SexPlaceholder es el valor que manda el selector cuando no se eligió opción.
const SexPlaceholder = "-"

// Patient representa el registro persistido de un paciente.
//
// Las medidas (Height/Weight/RiskIndex) viajan como texto del formulario y
// son opacas para este servicio: no se parsean ni se validan unidades.
// Las fechas se guardan como texto porque conviven dos formas: la canónica
// YYYY-MM-DD y la forma de tokens del date-picker (ver reconcile.go).
type Patient struct {
	ID string

	FirstName  string
	MiddleName string
	LastName   string

	BirthDate string
	Sex       Sex

	Height    string
	Weight    string
	RiskIndex string

	Notes string

	Phone string
	Email string

	StartDate string
	// EndDate nil = paciente todavía en tratamiento, sin fecha de alta.
	EndDate *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InTreatment indica si el paciente sigue en tratamiento (sin fecha de alta).
func (p Patient) InTreatment() bool {
	return p.EndDate == nil
}
