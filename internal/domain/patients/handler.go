package patients

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"patient-care-manager/internal/domain/changelog"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, changes *changelog.Service) {
	r.Route("/patients", func(pr chi.Router) {
		pr.Get("/", listPatientsHandler(svc))
		pr.Post("/", createPatientHandler(svc, changes))

		pr.Get("/{patientID}", getPatientHandler(svc))
		pr.Post("/{patientID}", updatePatientHandler(svc, changes))
		pr.Delete("/{patientID}", deletePatientHandler(svc, changes))
	})
}

// patientResponse representa un paciente devuelto por la API.
type patientResponse struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	BirthDate  string `json:"birth_date"`
	Sex        Sex    `json:"sex"`
	Height     string `json:"height"`
	Weight     string `json:"weight"`
	RiskIndex  string `json:"risk_index"`
	Notes      string `json:"notes"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	StartDate  string `json:"start_date"`
	// end_date null = paciente en tratamiento
	EndDate     *string   `json:"end_date"`
	InTreatment bool      `json:"in_treatment"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// statusResponse es la respuesta de las operaciones de escritura: el registro
// final más el mensaje de estado que antes viajaba por flash de sesión.
type statusResponse struct {
	Message string          `json:"message"`
	Patient patientResponse `json:"patient"`
}

// parsePatientForm lee los campos del formulario por su nombre fijo.
func parsePatientForm(r *http.Request) PatientForm {
	return PatientForm{
		FirstName:   r.PostFormValue("firstName"),
		MiddleName:  r.PostFormValue("middleName"),
		LastName:    r.PostFormValue("lastName"),
		BirthDate:   r.PostFormValue("birthDate"),
		Sex:         r.PostFormValue("sex"),
		Height:      r.PostFormValue("height"),
		Weight:      r.PostFormValue("weight"),
		RiskIndex:   r.PostFormValue("riskIndex"),
		Description: r.PostFormValue("description"),
		Phone:       r.PostFormValue("phone"),
		Email:       r.PostFormValue("email"),
		StartDate:   r.PostFormValue("startDate"),
		EndDate:     r.PostFormValue("endDate"),
		InTreatment: parseCheckbox(r.PostFormValue("inTreatment")),
	}
}

// parseDefaultsForm lee el juego paralelo default* que el form de edición
// round-tripea en campos ocultos (los valores guardados del registro).
func parseDefaultsForm(r *http.Request) PatientForm {
	return PatientForm{
		FirstName:   r.PostFormValue("defaultFirstName"),
		MiddleName:  r.PostFormValue("defaultMiddleName"),
		LastName:    r.PostFormValue("defaultLastName"),
		BirthDate:   r.PostFormValue("defaultBirthDate"),
		Sex:         r.PostFormValue("defaultSex"),
		Height:      r.PostFormValue("defaultHeight"),
		Weight:      r.PostFormValue("defaultWeight"),
		RiskIndex:   r.PostFormValue("defaultRiskIndex"),
		Description: r.PostFormValue("defaultDescription"),
		Phone:       r.PostFormValue("defaultPhone"),
		Email:       r.PostFormValue("defaultEmail"),
		StartDate:   r.PostFormValue("defaultStartDate"),
		EndDate:     r.PostFormValue("defaultEndDate"),
	}
}

// Los checkboxes HTML mandan "on" (o el value del input) cuando están
// marcados; la ausencia del campo es false.
func parseCheckbox(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "off", "no":
		return false
	default:
		return true
	}
}

// createPatientHandler godoc
// @Summary Alta de paciente
// @Description Crea un paciente a partir del formulario (form-encoded). Nombres y email se recortan; sex "-" pasa a "Other"; con inTreatment marcado no hay fecha de alta.
// @Tags patients
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 201 {object} statusResponse
// @Failure 400 {string} string "missing required field"
// @Router /patients [post]
func createPatientHandler(svc *Service, changes *changelog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), parsePatientForm(r))
		if err != nil {
			writeDomainError(w, err)
			return
		}

		// best-effort: el alta ya quedó persistida
		_, _ = changes.Record(r.Context(), p.ID, changelog.ChangePatientCreated, MsgCreated)

		writeJSON(w, http.StatusCreated, statusResponse{
			Message: MsgCreated,
			Patient: toPatientResponse(p),
		})
	}
}

// listPatientsHandler godoc
// @Summary Listar pacientes
// @Tags patients
// @Produce json
// @Success 200 {array} patientResponse
// @Router /patients [get]
func listPatientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]patientResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPatientResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "patientID"))
		if err != nil {
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toPatientResponse(p))
	}
}

// updatePatientHandler godoc
// @Summary Edición de paciente
// @Description Reconcilia el formulario contra los campos default* (valores guardados): los campos vacíos no pisan datos existentes. inTreatment marcado fuerza end_date a null.
// @Tags patients
// @Accept x-www-form-urlencoded
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Success 200 {object} statusResponse
// @Failure 400 {string} string "missing required field / malformed date"
// @Failure 404 {string} string "patient not found"
// @Router /patients/{patientID} [post]
func updatePatientHandler(svc *Service, changes *changelog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		patientID := chi.URLParam(r, "patientID")
		p, err := svc.Update(r.Context(), patientID, parsePatientForm(r), parseDefaultsForm(r))
		if err != nil {
			writeDomainError(w, err)
			return
		}

		_, _ = changes.Record(r.Context(), p.ID, changelog.ChangePatientUpdated, MsgUpdated)

		writeJSON(w, http.StatusOK, statusResponse{
			Message: MsgUpdated,
			Patient: toPatientResponse(p),
		})
	}
}

func deletePatientHandler(svc *Service, changes *changelog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patientID := chi.URLParam(r, "patientID")

		if err := svc.Delete(r.Context(), patientID); err != nil {
			writeDomainError(w, err)
			return
		}

		_, _ = changes.Record(r.Context(), patientID, changelog.ChangePatientRemoved, MsgRemoved)

		writeJSON(w, http.StatusOK, map[string]string{"message": MsgRemoved})
	}
}

// writeDomainError mapea los errores del dominio a códigos HTTP.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrMissingField),
		errors.Is(err, ErrMalformedDate),
		errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "patient not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toPatientResponse(p Patient) patientResponse {
	return patientResponse{
		ID:          p.ID,
		FirstName:   p.FirstName,
		MiddleName:  p.MiddleName,
		LastName:    p.LastName,
		BirthDate:   p.BirthDate,
		Sex:         p.Sex,
		Height:      p.Height,
		Weight:      p.Weight,
		RiskIndex:   p.RiskIndex,
		Notes:       p.Notes,
		Phone:       p.Phone,
		Email:       p.Email,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		InTreatment: p.InTreatment(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// (patients/changelog) para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
