package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"airdata-service/internal/usecase"
	"airdata-service/pkg/apperrors"
	"airdata-service/pkg/logger"
	"airdata-service/pkg/metrics"

	"github.com/julienschmidt/httprouter"
)

// NewRouter builds the HTTP surface. Stats endpoints live under /api/stats
// because httprouter does not mix static and parameter segments at the same
// path position.
func NewRouter(
	federation *usecase.FederationService,
	aircraft *usecase.AircraftService,
	routes *usecase.RouteService,
	m *metrics.Metrics,
	log logger.Logger,
) http.Handler {
	router := httprouter.New()

	passengerHandler := NewPassengerHandler(federation, log)
	ticketHandler := NewTicketHandler(federation, m, log)
	aircraftHandler := NewAircraftHandler(aircraft, log)
	airportHandler := NewAirportHandler(federation, log)
	routeHandler := NewRouteHandler(routes, m, log)

	handle := func(method, path string, h httprouter.Handle) {
		router.Handle(method, path, instrument(m, method, path, h))
	}

	handle(http.MethodPost, "/api/passengers", passengerHandler.Create)
	handle(http.MethodGet, "/api/passengers", passengerHandler.List)
	handle(http.MethodGet, "/api/passengers/:id", passengerHandler.Get)
	handle(http.MethodPut, "/api/passengers/:id", passengerHandler.Update)
	handle(http.MethodDelete, "/api/passengers/:id", passengerHandler.Delete)
	handle(http.MethodGet, "/api/passengers/:id/total_spent", passengerHandler.TotalSpent)
	handle(http.MethodGet, "/api/passengers/:id/travel_history", passengerHandler.TravelHistory)

	handle(http.MethodPost, "/api/tickets", ticketHandler.Create)
	handle(http.MethodGet, "/api/tickets", ticketHandler.List)
	handle(http.MethodGet, "/api/tickets/:id", ticketHandler.Get)
	handle(http.MethodPut, "/api/tickets/:id", ticketHandler.Update)
	handle(http.MethodDelete, "/api/tickets/:id", ticketHandler.Delete)

	handle(http.MethodPost, "/api/aircrafts", aircraftHandler.Create)
	handle(http.MethodGet, "/api/aircrafts", aircraftHandler.List)
	handle(http.MethodGet, "/api/aircrafts/:reg", aircraftHandler.Get)
	handle(http.MethodPut, "/api/aircrafts/:reg", aircraftHandler.Update)
	handle(http.MethodDelete, "/api/aircrafts/:reg", aircraftHandler.Delete)

	handle(http.MethodGet, "/api/airports", airportHandler.List)
	handle(http.MethodGet, "/api/airports/:code", airportHandler.Get)

	handle(http.MethodGet, "/api/routes/:from/:to", routeHandler.Find)

	handle(http.MethodGet, "/api/stats/passengers/country", passengerHandler.ByCountry)
	handle(http.MethodGet, "/api/stats/tickets/class", ticketHandler.ClassStats)
	handle(http.MethodGet, "/api/stats/aircrafts/manufacturer", aircraftHandler.ByManufacturer)

	router.HandlerFunc(http.MethodGet, "/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	return router
}

func instrument(m *metrics.Metrics, method, route string, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		start := time.Now()
		next(w, r, ps)
		m.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

func extractLimitOffset(r *http.Request) (int, int, error) {
	query := r.URL.Query()

	limit := 0
	if s := query.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperrors.Validation("invalid limit parameter: " + s)
		}
		limit = v
	}

	offset := 0
	if s := query.Get("offset"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperrors.Validation("invalid offset parameter: " + s)
		}
		offset = v
	}

	return limit, offset, nil
}
