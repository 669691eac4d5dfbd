package httpapi

import (
	"net/http"

	"airdata-service/internal/usecase"
	"airdata-service/pkg/logger"
	"airdata-service/pkg/metrics"

	"github.com/julienschmidt/httprouter"
)

// RouteHandler serves route search endpoints.
type RouteHandler struct {
	routes  *usecase.RouteService
	metrics *metrics.Metrics
	log     logger.Logger
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(routes *usecase.RouteService, m *metrics.Metrics, log logger.Logger) *RouteHandler {
	return &RouteHandler{
		routes:  routes,
		metrics: m,
		log:     log,
	}
}

// Find handles GET /api/routes/:from/:to
func (h *RouteHandler) Find(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.metrics.RouteSearches.Inc()

	result, err := h.routes.FindRoutes(r.Context(), ps.ByName("from"), ps.ByName("to"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
