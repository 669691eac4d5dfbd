package httpapi

import (
	"encoding/json"
	"net/http"

	"airdata-service/internal/domain/entity"
	"airdata-service/internal/usecase"
	"airdata-service/pkg/logger"
	"airdata-service/pkg/metrics"

	"github.com/julienschmidt/httprouter"
)

// TicketHandler serves ticket endpoints backed by the federation service.
type TicketHandler struct {
	federation *usecase.FederationService
	metrics    *metrics.Metrics
	log        logger.Logger
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(federation *usecase.FederationService, m *metrics.Metrics, log logger.Logger) *TicketHandler {
	return &TicketHandler{
		federation: federation,
		metrics:    m,
		log:        log,
	}
}

// Create handles POST /api/tickets
func (h *TicketHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload entity.TicketCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Code: "BAD_REQUEST", Error: "invalid request body"})
		return
	}

	ticket, err := h.federation.CreateTicket(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	h.metrics.TicketsCreated.Inc()
	writeJSON(w, http.StatusCreated, ticket)
}

// List handles GET /api/tickets
func (h *TicketHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := extractLimitOffset(r)
	if err != nil {
		writeError(w, err)
		return
	}

	query := r.URL.Query()
	filter := entity.TicketFilter{
		PassengerID: query.Get("passenger_id"),
		FlightID:    query.Get("flight_id"),
		Limit:       limit,
		Offset:      offset,
	}

	tickets, err := h.federation.ListTickets(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tickets)
}

// Get handles GET /api/tickets/:id
func (h *TicketHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ticket, err := h.federation.GetTicketWithDetails(r.Context(), ps.ByName("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

// Update handles PUT /api/tickets/:id
func (h *TicketHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var payload entity.TicketUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Code: "BAD_REQUEST", Error: "invalid request body"})
		return
	}

	ticket, err := h.federation.UpdateTicket(r.Context(), ps.ByName("id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

// Delete handles DELETE /api/tickets/:id
func (h *TicketHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.federation.DeleteTicket(r.Context(), ps.ByName("id")); err != nil {
		writeError(w, err)
		return
	}
	writeNoContent(w)
}

// ClassStats handles GET /api/stats/tickets/class
func (h *TicketHandler) ClassStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	stats, err := h.federation.TicketClassStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
