package httpapi

import (
	"net/http"

	"airdata-service/internal/usecase"
	"airdata-service/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

// AirportHandler serves airport reference data. Airports are loaded by the
// seeder; the API exposes them read-only.
type AirportHandler struct {
	federation *usecase.FederationService
	log        logger.Logger
}

// NewAirportHandler creates a new airport handler
func NewAirportHandler(federation *usecase.FederationService, log logger.Logger) *AirportHandler {
	return &AirportHandler{
		federation: federation,
		log:        log,
	}
}

// List handles GET /api/airports
func (h *AirportHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := extractLimitOffset(r)
	if err != nil {
		writeError(w, err)
		return
	}

	airports, err := h.federation.ListAirports(r.Context(), limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, airports)
}

// Get handles GET /api/airports/:code
func (h *AirportHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	airport, err := h.federation.GetAirport(r.Context(), ps.ByName("code"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, airport)
}
