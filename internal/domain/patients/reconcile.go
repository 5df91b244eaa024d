package patients

import (
	"errors"
	"strings"
)

// ErrMissingField: falta un campo de texto obligatorio (nombres). En el alta
// tiene que venir en el formulario; en la edición tiene que existir en el
// formulario o en los defaults.
var ErrMissingField = errors.New("missing required field")

// PatientForm es el conjunto crudo de campos tal como llega del formulario.
// Todo viene como texto sin confianza. En la edición se recibe además un
// segundo PatientForm con los valores default* (los valores guardados,
// round-trip por campos ocultos del form).
type PatientForm struct {
	FirstName   string
	MiddleName  string
	LastName    string
	BirthDate   string
	Sex         string
	Height      string
	Weight      string
	RiskIndex   string
	Description string
	Phone       string
	Email       string
	StartDate   string
	EndDate     string
	InTreatment bool
}

// dateField es el valor resuelto de una fecha: ausente, forma canónica
// YYYY-MM-DD, o los tokens del picker tal como los mandó el usuario.
type dateField struct {
	absent    bool
	canonical string
	tokens    []string
}

func absentDate() dateField { return dateField{absent: true} }

func tokenDate(raw string) dateField {
	return dateField{tokens: strings.Fields(raw)}
}

// value devuelve el texto a persistir y si la fecha está presente. Una
// fecha sin tokens ni forma canónica cuenta como ausente: nunca se persiste
// la cadena vacía como fecha. Los tokens se reensamblan con un espacio; la
// asimetría con la forma canónica es observable a propósito (ver
// ResolveCreate/ResolveUpdate).
func (d dateField) value() (string, bool) {
	if d.absent {
		return "", false
	}
	if d.canonical != "" {
		return d.canonical, true
	}
	if len(d.tokens) == 0 {
		return "", false
	}
	return strings.Join(d.tokens, " "), true
}

// resolveDate decide la fecha final en la edición: si el usuario escribió una
// fecha nueva queda en forma de tokens, sin canonicalizar; si el campo vino
// vacío, el default pasa por NormalizeDate. ErrUnknownMonth no corta el flujo
// (el valor con ERROR se persiste igual que siempre); ErrMalformedDate sí.
func resolveDate(submitted, def string) (dateField, error) {
	if strings.TrimSpace(submitted) != "" {
		return tokenDate(submitted), nil
	}

	v, err := NormalizeDate(def)
	if err != nil && !errors.Is(err, ErrUnknownMonth) {
		return dateField{}, err
	}
	if v == "" {
		return absentDate(), nil
	}
	return dateField{canonical: v}, nil
}

// fallbackTrimmed: valor enviado recortado, o el default recortado si quedó vacío.
func fallbackTrimmed(submitted, def string) string {
	if v := strings.TrimSpace(submitted); v != "" {
		return v
	}
	return strings.TrimSpace(def)
}

// fallbackRaw: para campos que no se recortan (medidas, teléfono). El único
// test de "vacío" es la cadena vacía: "0" es un valor real y se respeta.
func fallbackRaw(submitted, def string) string {
	if submitted != "" {
		return submitted
	}
	return def
}

// ResolveCreate arma el registro final para el alta de un paciente.
//
// Recorta nombres y email; los tres nombres son obligatorios. Las fechas
// quedan en la forma de tokens del picker, sin pasar por NormalizeDate: la
// asimetría con la edición es deliberada y los datos ya guardados dependen
// de ella. EndDate queda ausente si el paciente está en tratamiento o si no
// se envió fecha de alta. El resto de los campos pasa tal cual (Description
// sin recortar en el alta).
func ResolveCreate(f PatientForm) (Patient, error) {
	firstName := strings.TrimSpace(f.FirstName)
	middleName := strings.TrimSpace(f.MiddleName)
	lastName := strings.TrimSpace(f.LastName)
	if firstName == "" || middleName == "" || lastName == "" {
		return Patient{}, ErrMissingField
	}

	sex := f.Sex
	if sex == SexPlaceholder {
		sex = string(SexOther)
	}

	birth, _ := tokenDate(f.BirthDate).value()
	start, _ := tokenDate(f.StartDate).value()

	end := absentDate()
	if !f.InTreatment && strings.TrimSpace(f.EndDate) != "" {
		end = tokenDate(f.EndDate)
	}

	p := Patient{
		FirstName:  firstName,
		MiddleName: middleName,
		LastName:   lastName,
		BirthDate:  birth,
		Sex:        Sex(sex),
		Height:     f.Height,
		Weight:     f.Weight,
		RiskIndex:  f.RiskIndex,
		Notes:      f.Description,
		Phone:      f.Phone,
		Email:      strings.TrimSpace(f.Email),
		StartDate:  start,
	}
	if v, ok := end.value(); ok {
		p.EndDate = &v
	}
	return p, nil
}

// ResolveUpdate arma el registro final para la edición de un paciente,
// campo por campo contra los defaults (los valores guardados).
//
//   - Texto (nombres, descripción, email): enviado recortado, o default
//     recortado si vino vacío.
//   - Sexo: el default si vino vacío o con el placeholder "-".
//   - Medidas y teléfono: enviado, o default tal cual si vino vacío.
//   - Fechas: ver resolveDate. Después de resolver, "en tratamiento" manda:
//     pisa cualquier fecha de alta calculada.
//
// El conjunto final se computa completo antes de tocar la persistencia; si
// algo falla acá no se escribe nada.
func ResolveUpdate(id string, f, defaults PatientForm) (Patient, error) {
	firstName := fallbackTrimmed(f.FirstName, defaults.FirstName)
	middleName := fallbackTrimmed(f.MiddleName, defaults.MiddleName)
	lastName := fallbackTrimmed(f.LastName, defaults.LastName)
	if firstName == "" || middleName == "" || lastName == "" {
		return Patient{}, ErrMissingField
	}

	sex := f.Sex
	if sex == "" || sex == SexPlaceholder {
		sex = defaults.Sex
	}

	birth, err := resolveDate(f.BirthDate, defaults.BirthDate)
	if err != nil {
		return Patient{}, err
	}
	start, err := resolveDate(f.StartDate, defaults.StartDate)
	if err != nil {
		return Patient{}, err
	}
	end, err := resolveDate(f.EndDate, defaults.EndDate)
	if err != nil {
		return Patient{}, err
	}

	if f.InTreatment {
		end = absentDate()
	}

	p := Patient{
		ID:         id,
		FirstName:  firstName,
		MiddleName: middleName,
		LastName:   lastName,
		Sex:        Sex(sex),
		Height:     fallbackRaw(f.Height, defaults.Height),
		Weight:     fallbackRaw(f.Weight, defaults.Weight),
		RiskIndex:  fallbackRaw(f.RiskIndex, defaults.RiskIndex),
		Notes:      fallbackTrimmed(f.Description, defaults.Description),
		Phone:      fallbackRaw(f.Phone, defaults.Phone),
		Email:      fallbackTrimmed(f.Email, defaults.Email),
	}

	p.BirthDate, _ = birth.value()
	p.StartDate, _ = start.value()
	if v, ok := end.value(); ok {
		p.EndDate = &v
	}
	return p, nil
}
