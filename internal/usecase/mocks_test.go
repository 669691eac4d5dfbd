package usecase

import (
	"context"

	"airdata-service/internal/domain/entity"
)

// Mock repositories for testing

type mockPassengerRepo struct {
	insertFunc             func(ctx context.Context, passenger *entity.Passenger) error
	getByIDFunc            func(ctx context.Context, passengerID string) (*entity.Passenger, error)
	findFunc               func(ctx context.Context, limit, offset int) ([]entity.Passenger, error)
	updateFunc             func(ctx context.Context, passengerID string, update entity.PassengerUpdate) (int64, error)
	deleteFunc             func(ctx context.Context, passengerID string) (int64, error)
	countByNationalityFunc func(ctx context.Context) ([]entity.CountryStats, error)
}

func (m *mockPassengerRepo) Insert(ctx context.Context, passenger *entity.Passenger) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, passenger)
	}
	return nil
}

func (m *mockPassengerRepo) GetByID(ctx context.Context, passengerID string) (*entity.Passenger, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, passengerID)
	}
	return &entity.Passenger{PassengerID: passengerID}, nil
}

func (m *mockPassengerRepo) Find(ctx context.Context, limit, offset int) ([]entity.Passenger, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, limit, offset)
	}
	return []entity.Passenger{}, nil
}

func (m *mockPassengerRepo) Update(ctx context.Context, passengerID string, update entity.PassengerUpdate) (int64, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, passengerID, update)
	}
	return 1, nil
}

func (m *mockPassengerRepo) Delete(ctx context.Context, passengerID string) (int64, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, passengerID)
	}
	return 1, nil
}

func (m *mockPassengerRepo) CountByNationality(ctx context.Context) ([]entity.CountryStats, error) {
	if m.countByNationalityFunc != nil {
		return m.countByNationalityFunc(ctx)
	}
	return []entity.CountryStats{}, nil
}

type mockAirportRepo struct {
	insertFunc    func(ctx context.Context, airport *entity.Airport) error
	getByCodeFunc func(ctx context.Context, code string) (*entity.Airport, error)
	findFunc      func(ctx context.Context, limit, offset int) ([]entity.Airport, error)
}

func (m *mockAirportRepo) Insert(ctx context.Context, airport *entity.Airport) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, airport)
	}
	return nil
}

func (m *mockAirportRepo) GetByCode(ctx context.Context, code string) (*entity.Airport, error) {
	if m.getByCodeFunc != nil {
		return m.getByCodeFunc(ctx, code)
	}
	return &entity.Airport{Code: code}, nil
}

func (m *mockAirportRepo) Find(ctx context.Context, limit, offset int) ([]entity.Airport, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, limit, offset)
	}
	return []entity.Airport{}, nil
}

type mockTicketRepo struct {
	insertFunc               func(ctx context.Context, ticket *entity.Ticket) error
	getByIDFunc              func(ctx context.Context, ticketID string) (*entity.Ticket, error)
	findFunc                 func(ctx context.Context, filter entity.TicketFilter) ([]entity.Ticket, error)
	findByPassengerFunc      func(ctx context.Context, passengerID string) ([]entity.Ticket, error)
	updateFunc               func(ctx context.Context, ticketID string, update entity.TicketUpdate) (int64, error)
	deleteFunc               func(ctx context.Context, ticketID string) (int64, error)
	deleteByPassengerFunc    func(ctx context.Context, passengerID string) (int64, error)
	sumPricesByPassengerFunc func(ctx context.Context, passengerID string) (float64, error)
	classStatsFunc           func(ctx context.Context) ([]entity.TicketClassStats, error)
}

func (m *mockTicketRepo) Insert(ctx context.Context, ticket *entity.Ticket) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, ticket)
	}
	return nil
}

func (m *mockTicketRepo) GetByID(ctx context.Context, ticketID string) (*entity.Ticket, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, ticketID)
	}
	return &entity.Ticket{TicketID: ticketID}, nil
}

func (m *mockTicketRepo) Find(ctx context.Context, filter entity.TicketFilter) ([]entity.Ticket, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, filter)
	}
	return []entity.Ticket{}, nil
}

func (m *mockTicketRepo) FindByPassenger(ctx context.Context, passengerID string) ([]entity.Ticket, error) {
	if m.findByPassengerFunc != nil {
		return m.findByPassengerFunc(ctx, passengerID)
	}
	return []entity.Ticket{}, nil
}

func (m *mockTicketRepo) Update(ctx context.Context, ticketID string, update entity.TicketUpdate) (int64, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, ticketID, update)
	}
	return 1, nil
}

func (m *mockTicketRepo) Delete(ctx context.Context, ticketID string) (int64, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, ticketID)
	}
	return 1, nil
}

func (m *mockTicketRepo) DeleteByPassenger(ctx context.Context, passengerID string) (int64, error) {
	if m.deleteByPassengerFunc != nil {
		return m.deleteByPassengerFunc(ctx, passengerID)
	}
	return 0, nil
}

func (m *mockTicketRepo) SumPricesByPassenger(ctx context.Context, passengerID string) (float64, error) {
	if m.sumPricesByPassengerFunc != nil {
		return m.sumPricesByPassengerFunc(ctx, passengerID)
	}
	return 0, nil
}

func (m *mockTicketRepo) ClassStats(ctx context.Context) ([]entity.TicketClassStats, error) {
	if m.classStatsFunc != nil {
		return m.classStatsFunc(ctx)
	}
	return []entity.TicketClassStats{}, nil
}

type mockBaggageRepo struct {
	insertFunc         func(ctx context.Context, baggage *entity.Baggage) error
	findByTicketFunc   func(ctx context.Context, ticketID string) ([]entity.Baggage, error)
	deleteByTicketFunc func(ctx context.Context, ticketID string) (int64, error)
}

func (m *mockBaggageRepo) Insert(ctx context.Context, baggage *entity.Baggage) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, baggage)
	}
	return nil
}

func (m *mockBaggageRepo) FindByTicket(ctx context.Context, ticketID string) ([]entity.Baggage, error) {
	if m.findByTicketFunc != nil {
		return m.findByTicketFunc(ctx, ticketID)
	}
	return []entity.Baggage{}, nil
}

func (m *mockBaggageRepo) DeleteByTicket(ctx context.Context, ticketID string) (int64, error) {
	if m.deleteByTicketFunc != nil {
		return m.deleteByTicketFunc(ctx, ticketID)
	}
	return 0, nil
}

type mockGraphRepo struct {
	directRoutesFunc      func(ctx context.Context, fromCode, toCode string) ([]entity.Route, error)
	oneStopCandidatesFunc func(ctx context.Context, fromCode, toCode string) ([]entity.Route, error)
	flightEndpointsFunc   func(ctx context.Context, flightID string) (*entity.FlightEndpoints, error)
	travelHistoryFunc     func(ctx context.Context, passengerID string) ([]entity.TravelLeg, error)
	upsertAirportFunc     func(ctx context.Context, airport entity.Airport) error
	upsertFlightFunc      func(ctx context.Context, flight entity.FlightNode) error
	bookFlightFunc        func(ctx context.Context, passengerID string, ticket entity.Ticket) error
}

func (m *mockGraphRepo) DirectRoutes(ctx context.Context, fromCode, toCode string) ([]entity.Route, error) {
	if m.directRoutesFunc != nil {
		return m.directRoutesFunc(ctx, fromCode, toCode)
	}
	return []entity.Route{}, nil
}

func (m *mockGraphRepo) OneStopCandidates(ctx context.Context, fromCode, toCode string) ([]entity.Route, error) {
	if m.oneStopCandidatesFunc != nil {
		return m.oneStopCandidatesFunc(ctx, fromCode, toCode)
	}
	return []entity.Route{}, nil
}

func (m *mockGraphRepo) FlightEndpoints(ctx context.Context, flightID string) (*entity.FlightEndpoints, error) {
	if m.flightEndpointsFunc != nil {
		return m.flightEndpointsFunc(ctx, flightID)
	}
	return &entity.FlightEndpoints{}, nil
}

func (m *mockGraphRepo) TravelHistory(ctx context.Context, passengerID string) ([]entity.TravelLeg, error) {
	if m.travelHistoryFunc != nil {
		return m.travelHistoryFunc(ctx, passengerID)
	}
	return []entity.TravelLeg{}, nil
}

func (m *mockGraphRepo) UpsertAirport(ctx context.Context, airport entity.Airport) error {
	if m.upsertAirportFunc != nil {
		return m.upsertAirportFunc(ctx, airport)
	}
	return nil
}

func (m *mockGraphRepo) UpsertFlight(ctx context.Context, flight entity.FlightNode) error {
	if m.upsertFlightFunc != nil {
		return m.upsertFlightFunc(ctx, flight)
	}
	return nil
}

func (m *mockGraphRepo) BookFlight(ctx context.Context, passengerID string, ticket entity.Ticket) error {
	if m.bookFlightFunc != nil {
		return m.bookFlightFunc(ctx, passengerID, ticket)
	}
	return nil
}

type mockPublisher struct {
	publishFunc func(ctx context.Context, event entity.Event) error
	published   []entity.Event
}

func (m *mockPublisher) Publish(ctx context.Context, event entity.Event) error {
	m.published = append(m.published, event)
	if m.publishFunc != nil {
		return m.publishFunc(ctx, event)
	}
	return nil
}

func (m *mockPublisher) Close() error {
	return nil
}

type mockAircraftRepo struct {
	insertFunc            func(ctx context.Context, aircraft *entity.Aircraft) error
	getByRegNumberFunc    func(ctx context.Context, regNumber string) (*entity.Aircraft, error)
	findFunc              func(ctx context.Context, filter entity.AircraftFilter) ([]entity.Aircraft, error)
	updateFunc            func(ctx context.Context, regNumber string, update entity.AircraftUpdate) (int64, error)
	deleteFunc            func(ctx context.Context, regNumber string) (int64, error)
	manufacturerStatsFunc func(ctx context.Context) ([]entity.ManufacturerStats, error)
}

func (m *mockAircraftRepo) Insert(ctx context.Context, aircraft *entity.Aircraft) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, aircraft)
	}
	return nil
}

func (m *mockAircraftRepo) GetByRegNumber(ctx context.Context, regNumber string) (*entity.Aircraft, error) {
	if m.getByRegNumberFunc != nil {
		return m.getByRegNumberFunc(ctx, regNumber)
	}
	return &entity.Aircraft{RegNumber: regNumber}, nil
}

func (m *mockAircraftRepo) Find(ctx context.Context, filter entity.AircraftFilter) ([]entity.Aircraft, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, filter)
	}
	return []entity.Aircraft{}, nil
}

func (m *mockAircraftRepo) Update(ctx context.Context, regNumber string, update entity.AircraftUpdate) (int64, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, regNumber, update)
	}
	return 1, nil
}

func (m *mockAircraftRepo) Delete(ctx context.Context, regNumber string) (int64, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, regNumber)
	}
	return 1, nil
}

func (m *mockAircraftRepo) ManufacturerStats(ctx context.Context) ([]entity.ManufacturerStats, error) {
	if m.manufacturerStatsFunc != nil {
		return m.manufacturerStatsFunc(ctx)
	}
	return []entity.ManufacturerStats{}, nil
}
