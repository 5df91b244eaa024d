package changelog

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// No exigimos que el paciente exista: el historial de un paciente
	// eliminado (incluida su entrada PATIENT_REMOVED) sigue consultable.
	r.Get("/patients/{patientID}/history", listHistoryHandler(svc))
}

// changeResponse representa una entrada del historial devuelta por la API.
type changeResponse struct {
	ID         string     `json:"id"`
	PatientID  string     `json:"patient_id"`
	Type       ChangeType `json:"type"`
	Message    string     `json:"message"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// listHistoryHandler godoc
// @Summary Historial de cambios del paciente
// @Description Lista las entradas de cambio (alta, edición, baja) del paciente, más reciente primero.
// @Tags history
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Success 200 {array} changeResponse
// @Router /patients/{patientID}/history [get]
func listHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patientID := chi.URLParam(r, "patientID")

		items, err := svc.ListByPatient(r.Context(), patientID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]changeResponse, 0, len(items))
		for _, c := range items {
			out = append(out, changeResponse{
				ID:         c.ID,
				PatientID:  c.PatientID,
				Type:       c.Type,
				Message:    c.Message,
				OccurredAt: c.OccurredAt,
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// (patients/changelog) para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
