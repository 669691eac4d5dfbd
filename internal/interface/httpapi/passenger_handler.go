package httpapi

import (
	"encoding/json"
	"net/http"

	"airdata-service/internal/domain/entity"
	"airdata-service/internal/usecase"
	"airdata-service/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

// PassengerHandler serves passenger endpoints backed by the federation
// service.
type PassengerHandler struct {
	federation *usecase.FederationService
	log        logger.Logger
}

// NewPassengerHandler creates a new passenger handler
func NewPassengerHandler(federation *usecase.FederationService, log logger.Logger) *PassengerHandler {
	return &PassengerHandler{
		federation: federation,
		log:        log,
	}
}

// Create handles POST /api/passengers
func (h *PassengerHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload entity.PassengerCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Code: "BAD_REQUEST", Error: "invalid request body"})
		return
	}

	passenger, err := h.federation.CreatePassenger(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, passenger)
}

// List handles GET /api/passengers
func (h *PassengerHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := extractLimitOffset(r)
	if err != nil {
		writeError(w, err)
		return
	}

	passengers, err := h.federation.ListPassengers(r.Context(), limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, passengers)
}

// Get handles GET /api/passengers/:id
func (h *PassengerHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	passenger, err := h.federation.GetPassengerWithTickets(r.Context(), ps.ByName("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, passenger)
}

// Update handles PUT /api/passengers/:id
func (h *PassengerHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var payload entity.PassengerUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Code: "BAD_REQUEST", Error: "invalid request body"})
		return
	}

	passenger, err := h.federation.UpdatePassenger(r.Context(), ps.ByName("id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, passenger)
}

// Delete handles DELETE /api/passengers/:id
func (h *PassengerHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.federation.DeletePassenger(r.Context(), ps.ByName("id")); err != nil {
		writeError(w, err)
		return
	}
	writeNoContent(w)
}

// TotalSpent handles GET /api/passengers/:id/total_spent
func (h *PassengerHandler) TotalSpent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	total, err := h.federation.TotalSpent(r.Context(), ps.ByName("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, total)
}

// TravelHistory handles GET /api/passengers/:id/travel_history
func (h *PassengerHandler) TravelHistory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	history, err := h.federation.TravelHistory(r.Context(), ps.ByName("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

// ByCountry handles GET /api/stats/passengers/country
func (h *PassengerHandler) ByCountry(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	stats, err := h.federation.PassengersByCountry(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
