package repository

import (
	"context"

	"airdata-service/internal/domain/entity"
)

// FlightGraphRepository is the graph-store adapter over Airport, Flight and
// Passenger nodes and the DEPARTS_FROM / ARRIVES_AT / BOOKED_FLIGHT
// relationships. Any driver failure surfaces as a store-unavailable error.
type FlightGraphRepository interface {
	// DirectRoutes returns every flight departing fromCode and arriving at
	// toCode, shaped but untyped (the caller assigns the route kind).
	DirectRoutes(ctx context.Context, fromCode, toCode string) ([]entity.Route, error)

	// OneStopCandidates returns every flight pair connected through an
	// intermediate airport, without temporal filtering.
	OneStopCandidates(ctx context.Context, fromCode, toCode string) ([]entity.Route, error)

	// FlightEndpoints returns the departure/arrival airport codes for one
	// flight; both sides nil when the graph has no record of it.
	FlightEndpoints(ctx context.Context, flightID string) (*entity.FlightEndpoints, error)

	// TravelHistory returns raw BOOKED_FLIGHT rows for a passenger, ordered
	// by departure time descending.
	TravelHistory(ctx context.Context, passengerID string) ([]entity.TravelLeg, error)

	UpsertAirport(ctx context.Context, airport entity.Airport) error
	UpsertFlight(ctx context.Context, flight entity.FlightNode) error

	// BookFlight merges the Passenger node and its BOOKED_FLIGHT edge to the
	// flight, carrying the ticket attributes on the relationship.
	BookFlight(ctx context.Context, passengerID string, ticket entity.Ticket) error
}
