package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"airdata-service/internal/domain/entity"
	"airdata-service/internal/usecase"
	"airdata-service/pkg/apperrors"
	"airdata-service/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

// AircraftHandler serves aircraft endpoints.
type AircraftHandler struct {
	aircraft *usecase.AircraftService
	log      logger.Logger
}

// NewAircraftHandler creates a new aircraft handler
func NewAircraftHandler(aircraft *usecase.AircraftService, log logger.Logger) *AircraftHandler {
	return &AircraftHandler{
		aircraft: aircraft,
		log:      log,
	}
}

// Create handles POST /api/aircrafts
func (h *AircraftHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload entity.AircraftCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Code: "BAD_REQUEST", Error: "invalid request body"})
		return
	}

	aircraft, err := h.aircraft.CreateAircraft(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, aircraft)
}

// List handles GET /api/aircrafts
func (h *AircraftHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := extractLimitOffset(r)
	if err != nil {
		writeError(w, err)
		return
	}

	query := r.URL.Query()
	minCapacity := 0
	if s := query.Get("min_capacity"); s != "" {
		minCapacity, err = strconv.Atoi(s)
		if err != nil {
			writeError(w, apperrors.Validation("invalid min_capacity parameter: "+s))
			return
		}
	}

	filter := entity.AircraftFilter{
		Status:      query.Get("status"),
		MinCapacity: minCapacity,
		Limit:       limit,
		Offset:      offset,
	}

	aircrafts, err := h.aircraft.ListAircraft(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, aircrafts)
}

// Get handles GET /api/aircrafts/:reg
func (h *AircraftHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	aircraft, err := h.aircraft.GetAircraft(r.Context(), ps.ByName("reg"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, aircraft)
}

// Update handles PUT /api/aircrafts/:reg
func (h *AircraftHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var payload entity.AircraftUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Code: "BAD_REQUEST", Error: "invalid request body"})
		return
	}

	aircraft, err := h.aircraft.UpdateAircraft(r.Context(), ps.ByName("reg"), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, aircraft)
}

// Delete handles DELETE /api/aircrafts/:reg
func (h *AircraftHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.aircraft.DeleteAircraft(r.Context(), ps.ByName("reg")); err != nil {
		writeError(w, err)
		return
	}
	writeNoContent(w)
}

// ByManufacturer handles GET /api/stats/aircrafts/manufacturer
func (h *AircraftHandler) ByManufacturer(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	stats, err := h.aircraft.ManufacturerStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
