package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"airdata-service/internal/domain/entity"
	"airdata-service/internal/usecase"
	"airdata-service/pkg/apperrors"
	"airdata-service/pkg/logger"
	"airdata-service/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Registered once; promauto panics on duplicate collector registration.
var testMetrics = metrics.NewMetrics("airdata_httpapi_test")

type stubPassengers struct {
	getByIDFunc func(ctx context.Context, passengerID string) (*entity.Passenger, error)
}

func (s *stubPassengers) Insert(ctx context.Context, passenger *entity.Passenger) error { return nil }
func (s *stubPassengers) GetByID(ctx context.Context, passengerID string) (*entity.Passenger, error) {
	if s.getByIDFunc != nil {
		return s.getByIDFunc(ctx, passengerID)
	}
	return &entity.Passenger{PassengerID: passengerID}, nil
}
func (s *stubPassengers) Find(ctx context.Context, limit, offset int) ([]entity.Passenger, error) {
	return []entity.Passenger{}, nil
}
func (s *stubPassengers) Update(ctx context.Context, passengerID string, update entity.PassengerUpdate) (int64, error) {
	return 1, nil
}
func (s *stubPassengers) Delete(ctx context.Context, passengerID string) (int64, error) {
	return 1, nil
}
func (s *stubPassengers) CountByNationality(ctx context.Context) ([]entity.CountryStats, error) {
	return []entity.CountryStats{}, nil
}

type stubTickets struct {
	getByIDFunc func(ctx context.Context, ticketID string) (*entity.Ticket, error)
}

func (s *stubTickets) Insert(ctx context.Context, ticket *entity.Ticket) error { return nil }
func (s *stubTickets) GetByID(ctx context.Context, ticketID string) (*entity.Ticket, error) {
	if s.getByIDFunc != nil {
		return s.getByIDFunc(ctx, ticketID)
	}
	return &entity.Ticket{TicketID: ticketID}, nil
}
func (s *stubTickets) Find(ctx context.Context, filter entity.TicketFilter) ([]entity.Ticket, error) {
	return []entity.Ticket{}, nil
}
func (s *stubTickets) FindByPassenger(ctx context.Context, passengerID string) ([]entity.Ticket, error) {
	return []entity.Ticket{}, nil
}
func (s *stubTickets) Update(ctx context.Context, ticketID string, update entity.TicketUpdate) (int64, error) {
	return 1, nil
}
func (s *stubTickets) Delete(ctx context.Context, ticketID string) (int64, error) { return 1, nil }
func (s *stubTickets) DeleteByPassenger(ctx context.Context, passengerID string) (int64, error) {
	return 0, nil
}
func (s *stubTickets) SumPricesByPassenger(ctx context.Context, passengerID string) (float64, error) {
	return 0, nil
}
func (s *stubTickets) ClassStats(ctx context.Context) ([]entity.TicketClassStats, error) {
	return []entity.TicketClassStats{}, nil
}

type stubAirports struct{}

func (s *stubAirports) Insert(ctx context.Context, airport *entity.Airport) error { return nil }
func (s *stubAirports) GetByCode(ctx context.Context, code string) (*entity.Airport, error) {
	return &entity.Airport{Code: code}, nil
}
func (s *stubAirports) Find(ctx context.Context, limit, offset int) ([]entity.Airport, error) {
	return []entity.Airport{}, nil
}

type stubBaggage struct{}

func (s *stubBaggage) Insert(ctx context.Context, baggage *entity.Baggage) error { return nil }
func (s *stubBaggage) FindByTicket(ctx context.Context, ticketID string) ([]entity.Baggage, error) {
	return []entity.Baggage{}, nil
}
func (s *stubBaggage) DeleteByTicket(ctx context.Context, ticketID string) (int64, error) {
	return 0, nil
}

type stubGraph struct {
	directRoutesFunc func(ctx context.Context, fromCode, toCode string) ([]entity.Route, error)
}

func (s *stubGraph) DirectRoutes(ctx context.Context, fromCode, toCode string) ([]entity.Route, error) {
	if s.directRoutesFunc != nil {
		return s.directRoutesFunc(ctx, fromCode, toCode)
	}
	return []entity.Route{}, nil
}
func (s *stubGraph) OneStopCandidates(ctx context.Context, fromCode, toCode string) ([]entity.Route, error) {
	return []entity.Route{}, nil
}
func (s *stubGraph) FlightEndpoints(ctx context.Context, flightID string) (*entity.FlightEndpoints, error) {
	return &entity.FlightEndpoints{}, nil
}
func (s *stubGraph) TravelHistory(ctx context.Context, passengerID string) ([]entity.TravelLeg, error) {
	return []entity.TravelLeg{}, nil
}
func (s *stubGraph) UpsertAirport(ctx context.Context, airport entity.Airport) error { return nil }
func (s *stubGraph) UpsertFlight(ctx context.Context, flight entity.FlightNode) error {
	return nil
}
func (s *stubGraph) BookFlight(ctx context.Context, passengerID string, ticket entity.Ticket) error {
	return nil
}

type stubAircraft struct{}

func (s *stubAircraft) Insert(ctx context.Context, aircraft *entity.Aircraft) error { return nil }
func (s *stubAircraft) GetByRegNumber(ctx context.Context, regNumber string) (*entity.Aircraft, error) {
	return &entity.Aircraft{RegNumber: regNumber}, nil
}
func (s *stubAircraft) Find(ctx context.Context, filter entity.AircraftFilter) ([]entity.Aircraft, error) {
	return []entity.Aircraft{}, nil
}
func (s *stubAircraft) Update(ctx context.Context, regNumber string, update entity.AircraftUpdate) (int64, error) {
	return 1, nil
}
func (s *stubAircraft) Delete(ctx context.Context, regNumber string) (int64, error) { return 1, nil }
func (s *stubAircraft) ManufacturerStats(ctx context.Context) ([]entity.ManufacturerStats, error) {
	return []entity.ManufacturerStats{}, nil
}

type stubPublisher struct{}

func (s *stubPublisher) Publish(ctx context.Context, event entity.Event) error { return nil }
func (s *stubPublisher) Close() error                                          { return nil }

func newTestRouter(passengers *stubPassengers, tickets *stubTickets, graph *stubGraph) http.Handler {
	log := logger.NewNop()
	federation := usecase.NewFederationService(passengers, &stubAirports{}, tickets, &stubBaggage{}, graph, &stubPublisher{}, log, time.Second)
	aircraft := usecase.NewAircraftService(&stubAircraft{}, log, time.Second)
	routes := usecase.NewRouteService(graph, log)
	return NewRouter(federation, aircraft, routes, testMetrics, log)
}

func TestRouter_GetTicketEnriched(t *testing.T) {
	passengers := &stubPassengers{
		getByIDFunc: func(ctx context.Context, passengerID string) (*entity.Passenger, error) {
			return &entity.Passenger{PassengerID: passengerID, FullName: "Ada Lovelace"}, nil
		},
	}
	router := newTestRouter(passengers, &stubTickets{}, &stubGraph{})

	req := httptest.NewRequest(http.MethodGet, "/api/tickets/tkt_aaa111", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body entity.TicketWithDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "tkt_aaa111", body.TicketID)
	assert.Equal(t, "Ada Lovelace", body.PassengerName)
	assert.Equal(t, "? → ?", body.FlightRoute)
}

func TestRouter_GetPassengerNotFound(t *testing.T) {
	passengers := &stubPassengers{
		getByIDFunc: func(ctx context.Context, passengerID string) (*entity.Passenger, error) {
			return nil, apperrors.NotFound("passenger", passengerID)
		},
	}
	router := newTestRouter(passengers, &stubTickets{}, &stubGraph{})

	req := httptest.NewRequest(http.MethodGet, "/api/passengers/pas_missing0", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_RouteSearch(t *testing.T) {
	flightID := "SU1001"
	graph := &stubGraph{
		directRoutesFunc: func(ctx context.Context, fromCode, toCode string) ([]entity.Route, error) {
			return []entity.Route{
				{Flights: []entity.RouteFlight{{FlightID: &flightID}}},
			}, nil
		},
	}
	router := newTestRouter(&stubPassengers{}, &stubTickets{}, graph)

	req := httptest.NewRequest(http.MethodGet, "/api/routes/SVO/JFK", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body entity.RouteSearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "SVO", body.From)
	require.Len(t, body.Routes, 1)
	assert.Equal(t, entity.RouteTypeDirect, body.Routes[0].Type)
}

func TestRouter_CreateTicketBadBody(t *testing.T) {
	router := newTestRouter(&stubPassengers{}, &stubTickets{}, &stubGraph{})

	req := httptest.NewRequest(http.MethodPost, "/api/tickets", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_InvalidLimitParam(t *testing.T) {
	router := newTestRouter(&stubPassengers{}, &stubTickets{}, &stubGraph{})

	req := httptest.NewRequest(http.MethodGet, "/api/tickets?limit=abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(&stubPassengers{}, &stubTickets{}, &stubGraph{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
