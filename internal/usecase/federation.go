package usecase

import (
	"context"
	"sync"
	"time"

	"airdata-service/internal/domain/entity"
	"airdata-service/internal/domain/repository"
	"airdata-service/pkg/apperrors"
	"airdata-service/pkg/logger"
	"airdata-service/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// travelTimeLayout is the fixed pattern for travel-history timestamps.
const travelTimeLayout = "2006-01-02 15:04:05"

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// FederationService composes calls across the document, ledger and graph
// stores. Each composite operation checks existence against the store that
// owns identity before touching a dependent store; cross-store writes are
// best-effort with compensations, never atomic.
type FederationService struct {
	passengers   repository.PassengerRepository
	airports     repository.AirportRepository
	tickets      repository.TicketRepository
	baggage      repository.BaggageRepository
	graph        repository.FlightGraphRepository
	events       repository.EventPublisher
	validate     *validator.Validate
	log          logger.Logger
	storeTimeout time.Duration
}

// NewFederationService creates a new federation service
func NewFederationService(
	passengers repository.PassengerRepository,
	airports repository.AirportRepository,
	tickets repository.TicketRepository,
	baggage repository.BaggageRepository,
	graph repository.FlightGraphRepository,
	events repository.EventPublisher,
	log logger.Logger,
	storeTimeout time.Duration,
) *FederationService {
	return &FederationService{
		passengers:   passengers,
		airports:     airports,
		tickets:      tickets,
		baggage:      baggage,
		graph:        graph,
		events:       events,
		validate:     validator.New(),
		log:          log,
		storeTimeout: storeTimeout,
	}
}

// storeCtx bounds one adapter call.
func (s *FederationService) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}

func (s *FederationService) publish(ctx context.Context, eventType, key string, data map[string]any) {
	evt := entity.Event{
		Type:       eventType,
		Key:        key,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
	if err := s.events.Publish(ctx, evt); err != nil {
		s.log.Warn("event publish failed", "type", eventType, "key", key, "error", err)
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// GetPassengerWithTickets merges the document-store profile with the ledger
// ticket set. The two fetches have no data dependency and run concurrently.
// A missing profile is NotFound; a ledger failure after a successful profile
// fetch surfaces as PartialResult, never as a silently empty ticket list.
func (s *FederationService) GetPassengerWithTickets(ctx context.Context, passengerID string) (*entity.PassengerWithTickets, error) {
	var (
		profile    *entity.Passenger
		tickets    []entity.Ticket
		profileErr error
		ticketsErr error
	)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		cctx, cancel := s.storeCtx(ctx)
		defer cancel()
		profile, profileErr = s.passengers.GetByID(cctx, passengerID)
	}()

	go func() {
		defer wg.Done()
		cctx, cancel := s.storeCtx(ctx)
		defer cancel()
		tickets, ticketsErr = s.tickets.FindByPassenger(cctx, passengerID)
	}()

	wg.Wait()

	if profileErr != nil {
		return nil, profileErr
	}
	if ticketsErr != nil {
		s.log.Error("ticket lookup failed after profile fetch",
			"passenger_id", passengerID,
			"error", ticketsErr,
		)
		return nil, apperrors.Partial("passenger profile loaded but ticket lookup failed", ticketsErr)
	}

	return &entity.PassengerWithTickets{
		Passenger: *profile,
		Tickets:   tickets,
	}, nil
}

// GetTicketWithDetails fetches the ledger ticket and enriches it with the
// passenger name and the flight route. The ticket itself is authoritative;
// each enrichment degrades independently instead of failing the call.
func (s *FederationService) GetTicketWithDetails(ctx context.Context, ticketID string) (*entity.TicketWithDetails, error) {
	cctx, cancel := s.storeCtx(ctx)
	ticket, err := s.tickets.GetByID(cctx, ticketID)
	cancel()
	if err != nil {
		return nil, err
	}

	passengerName := "Unknown"
	pctx, cancel := s.storeCtx(ctx)
	passenger, err := s.passengers.GetByID(pctx, ticket.PassengerID)
	cancel()
	if err == nil {
		passengerName = passenger.FullName
	} else if !apperrors.IsNotFound(err) {
		s.log.Warn("passenger lookup degraded",
			"ticket_id", ticketID,
			"passenger_id", ticket.PassengerID,
			"error", err,
		)
	}

	departure, arrival := "?", "?"
	gctx, cancel := s.storeCtx(ctx)
	endpoints, err := s.graph.FlightEndpoints(gctx, ticket.FlightID)
	cancel()
	if err != nil {
		s.log.Warn("flight route lookup degraded",
			"ticket_id", ticketID,
			"flight_id", ticket.FlightID,
			"error", err,
		)
	} else {
		if endpoints.Departure != nil {
			departure = *endpoints.Departure
		}
		if endpoints.Arrival != nil {
			arrival = *endpoints.Arrival
		}
	}

	return &entity.TicketWithDetails{
		Ticket:        *ticket,
		PassengerName: passengerName,
		FlightRoute:   departure + " → " + arrival,
	}, nil
}

// CreateTicket validates passenger existence against the document store
// before writing the ledger row, so a bad passenger id never produces an
// orphaned ticket. Flight existence is not checked against the graph.
// A retried create produces a fresh ticket id, not a duplicate-safe write.
func (s *FederationService) CreateTicket(ctx context.Context, payload entity.TicketCreate) (*entity.Ticket, error) {
	if err := s.validate.Struct(payload); err != nil {
		return nil, apperrors.ValidationErr("invalid ticket payload", err)
	}

	cctx, cancel := s.storeCtx(ctx)
	_, err := s.passengers.GetByID(cctx, payload.PassengerID)
	cancel()
	if err != nil {
		return nil, err
	}

	ticket := &entity.Ticket{
		TicketID:    utils.NewTicketID(),
		PassengerID: payload.PassengerID,
		FlightID:    payload.FlightID,
		Seat:        payload.Seat,
		ClassPlace:  payload.ClassPlace,
		Price:       payload.Price,
		BookingDate: time.Now().UTC(),
	}

	lctx, cancel := s.storeCtx(ctx)
	err = s.tickets.Insert(lctx, ticket)
	cancel()
	if err != nil {
		return nil, err
	}

	s.publish(ctx, entity.EventTicketCreated, ticket.TicketID, map[string]any{
		"passenger_id": ticket.PassengerID,
		"flight_id":    ticket.FlightID,
	})
	s.log.Info("ticket created",
		"ticket_id", ticket.TicketID,
		"passenger_id", ticket.PassengerID,
		"flight_id", ticket.FlightID,
	)
	return ticket, nil
}

// ListTickets lists ledger tickets, optionally filtered by passenger and/or
// flight id.
func (s *FederationService) ListTickets(ctx context.Context, filter entity.TicketFilter) ([]entity.Ticket, error) {
	filter.Limit = normalizeLimit(filter.Limit)
	filter.Offset = normalizeOffset(filter.Offset)

	cctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.tickets.Find(cctx, filter)
}

// UpdateTicket applies a partial update to a ledger ticket.
func (s *FederationService) UpdateTicket(ctx context.Context, ticketID string, payload entity.TicketUpdate) (*entity.Ticket, error) {
	if payload.IsEmpty() {
		return nil, apperrors.Validation("no data to update")
	}
	if err := s.validate.Struct(payload); err != nil {
		return nil, apperrors.ValidationErr("invalid ticket update", err)
	}

	cctx, cancel := s.storeCtx(ctx)
	count, err := s.tickets.Update(cctx, ticketID, payload)
	cancel()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperrors.NotFound("ticket", ticketID)
	}

	gctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.tickets.GetByID(gctx, ticketID)
}

// DeleteTicket removes a ledger ticket after cascading to its baggage rows.
// The baggage step is best-effort and logged on failure; the ticket row
// delete is fatal and surfaced.
func (s *FederationService) DeleteTicket(ctx context.Context, ticketID string) error {
	cctx, cancel := s.storeCtx(ctx)
	_, err := s.tickets.GetByID(cctx, ticketID)
	cancel()
	if err != nil {
		return err
	}

	bctx, cancel := s.storeCtx(ctx)
	_, err = s.baggage.DeleteByTicket(bctx, ticketID)
	cancel()
	if err != nil {
		s.log.Warn("failed to delete related baggage",
			"ticket_id", ticketID,
			"error", err,
		)
	}

	dctx, cancel := s.storeCtx(ctx)
	count, err := s.tickets.Delete(dctx, ticketID)
	cancel()
	if err != nil {
		return err
	}
	if count == 0 {
		return apperrors.NotFound("ticket", ticketID)
	}

	s.publish(ctx, entity.EventTicketDeleted, ticketID, nil)
	s.log.Info("ticket deleted", "ticket_id", ticketID)
	return nil
}

// TicketClassStats groups ledger tickets by class of service.
func (s *FederationService) TicketClassStats(ctx context.Context) ([]entity.TicketClassStats, error) {
	cctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.tickets.ClassStats(cctx)
}

// CreatePassenger stores a new passenger profile in the document store.
func (s *FederationService) CreatePassenger(ctx context.Context, payload entity.PassengerCreate) (*entity.PassengerWithTickets, error) {
	if err := s.validate.Struct(payload); err != nil {
		return nil, apperrors.ValidationErr("invalid passenger payload", err)
	}

	passenger := &entity.Passenger{
		PassengerID: utils.NewPassengerID(),
		FullName:    payload.FullName,
		Passport:    payload.Passport,
		Nationality: payload.Nationality,
		Contact:     payload.Contact,
		CreatedAt:   time.Now().UTC(),
	}

	cctx, cancel := s.storeCtx(ctx)
	err := s.passengers.Insert(cctx, passenger)
	cancel()
	if err != nil {
		return nil, err
	}

	s.log.Info("passenger created", "passenger_id", passenger.PassengerID)
	return &entity.PassengerWithTickets{
		Passenger: *passenger,
		Tickets:   []entity.Ticket{},
	}, nil
}

// ListPassengers lists passenger profiles with pagination.
func (s *FederationService) ListPassengers(ctx context.Context, limit, offset int) ([]entity.Passenger, error) {
	cctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.passengers.Find(cctx, normalizeLimit(limit), normalizeOffset(offset))
}

// UpdatePassenger applies a partial update to a passenger profile.
func (s *FederationService) UpdatePassenger(ctx context.Context, passengerID string, payload entity.PassengerUpdate) (*entity.Passenger, error) {
	if payload.IsEmpty() {
		return nil, apperrors.Validation("no data to update")
	}
	if err := s.validate.Struct(payload); err != nil {
		return nil, apperrors.ValidationErr("invalid passenger update", err)
	}

	cctx, cancel := s.storeCtx(ctx)
	count, err := s.passengers.Update(cctx, passengerID, payload)
	cancel()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperrors.NotFound("passenger", passengerID)
	}

	gctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.passengers.GetByID(gctx, passengerID)
}

// DeletePassenger removes the profile from the document store, then cleans
// up the passenger's ledger tickets. Profile deletion is authoritative;
// ledger cleanup is eventual and a failure there is logged, not rolled back.
func (s *FederationService) DeletePassenger(ctx context.Context, passengerID string) error {
	cctx, cancel := s.storeCtx(ctx)
	count, err := s.passengers.Delete(cctx, passengerID)
	cancel()
	if err != nil {
		return err
	}
	if count == 0 {
		return apperrors.NotFound("passenger", passengerID)
	}

	lctx, cancel := s.storeCtx(ctx)
	_, err = s.tickets.DeleteByPassenger(lctx, passengerID)
	cancel()
	if err != nil {
		s.log.Warn("ledger ticket cleanup failed, profile deletion stands",
			"passenger_id", passengerID,
			"error", err,
		)
	}

	s.publish(ctx, entity.EventPassengerDeleted, passengerID, nil)
	s.log.Info("passenger deleted", "passenger_id", passengerID)
	return nil
}

// GetAirport finds an airport profile by IATA code.
func (s *FederationService) GetAirport(ctx context.Context, code string) (*entity.Airport, error) {
	cctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.airports.GetByCode(cctx, code)
}

// ListAirports lists airport profiles with pagination.
func (s *FederationService) ListAirports(ctx context.Context, limit, offset int) ([]entity.Airport, error) {
	cctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.airports.Find(cctx, normalizeLimit(limit), normalizeOffset(offset))
}

// PassengersByCountry returns grouped passenger counts by nationality.
func (s *FederationService) PassengersByCountry(ctx context.Context) ([]entity.CountryStats, error) {
	cctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.passengers.CountByNationality(cctx)
}

// TotalSpent sums the passenger's ledger ticket prices, rounded to two
// decimals half away from zero. The passenger must exist in the document
// store; a sum over zero tickets is zero.
func (s *FederationService) TotalSpent(ctx context.Context, passengerID string) (*entity.TotalSpent, error) {
	cctx, cancel := s.storeCtx(ctx)
	_, err := s.passengers.GetByID(cctx, passengerID)
	cancel()
	if err != nil {
		return nil, err
	}

	lctx, cancel := s.storeCtx(ctx)
	sum, err := s.tickets.SumPricesByPassenger(lctx, passengerID)
	cancel()
	if err != nil {
		return nil, err
	}

	return &entity.TotalSpent{
		PassengerID: passengerID,
		TotalSpent:  utils.RoundMoney(sum),
		Currency:    "USD",
	}, nil
}

// TravelHistory traverses the passenger's BOOKED_FLIGHT edges, most recent
// departure first. Flights without resolvable airports or timestamps keep
// null fields.
func (s *FederationService) TravelHistory(ctx context.Context, passengerID string) (*entity.TravelHistory, error) {
	cctx, cancel := s.storeCtx(ctx)
	legs, err := s.graph.TravelHistory(cctx, passengerID)
	cancel()
	if err != nil {
		return nil, err
	}

	records := make([]entity.TravelRecord, 0, len(legs))
	for _, leg := range legs {
		records = append(records, entity.TravelRecord{
			FlightID:         leg.FlightID,
			DepartureTime:    formatTravelTime(leg.DepartureTime),
			ArrivalTime:      formatTravelTime(leg.ArrivalTime),
			DepartureAirport: leg.DepartureAirport,
			ArrivalAirport:   leg.ArrivalAirport,
		})
	}

	return &entity.TravelHistory{
		PassengerID: passengerID,
		History:     records,
	}, nil
}

func formatTravelTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(travelTimeLayout)
	return &formatted
}
