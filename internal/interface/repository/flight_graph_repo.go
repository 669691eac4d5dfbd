package repository

import (
	"context"
	"time"

	"airdata-service/internal/domain/entity"
	"airdata-service/internal/domain/repository"
	"airdata-service/pkg/apperrors"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
)

// Neo4jFlightGraphRepository implements FlightGraphRepository
type Neo4jFlightGraphRepository struct {
	driver neo4j.DriverWithContext
}

// NewNeo4jFlightGraphRepository creates a new flight graph repository
func NewNeo4jFlightGraphRepository(driver neo4j.DriverWithContext) repository.FlightGraphRepository {
	return &Neo4jFlightGraphRepository{
		driver: driver,
	}
}

const directRoutesQuery = `
MATCH (a1:Airport {code: $from_code})<-[:DEPARTS_FROM]-(f:Flight)-[:ARRIVES_AT]->(a2:Airport {code: $to_code})
RETURN properties(f) AS flight,
       properties(a1) AS departure_airport,
       properties(a2) AS arrival_airport`

const oneStopCandidatesQuery = `
MATCH (a1:Airport {code: $from_code})<-[:DEPARTS_FROM]-(f1:Flight)-[:ARRIVES_AT]->(via:Airport)
MATCH (via)<-[:DEPARTS_FROM]-(f2:Flight)-[:ARRIVES_AT]->(a2:Airport {code: $to_code})
RETURN properties(f1) AS first_flight,
       properties(f2) AS second_flight,
       properties(a1) AS departure_airport,
       properties(a2) AS arrival_airport,
       properties(via) AS transfer_airport`

const flightEndpointsQuery = `
MATCH (f:Flight {flight_id: $flight_id})-[:DEPARTS_FROM]->(dep:Airport)
MATCH (f)-[:ARRIVES_AT]->(arr:Airport)
RETURN dep.code AS departure, arr.code AS arrival`

const travelHistoryQuery = `
MATCH (p:Passenger {passenger_id: $passenger_id})-[:BOOKED_FLIGHT]->(f:Flight)
OPTIONAL MATCH (f)-[:DEPARTS_FROM]->(dep:Airport)
OPTIONAL MATCH (f)-[:ARRIVES_AT]->(arr:Airport)
RETURN f.flight_id AS flight_id,
       f.departure_time AS departure_time,
       f.arrival_time AS arrival_time,
       dep.code AS departure_airport,
       arr.code AS arrival_airport
ORDER BY f.departure_time DESC`

const upsertAirportQuery = `
MERGE (a:Airport {code: $code})
SET a.name = $name,
    a.city = $city,
    a.country = $country,
    a.runways = $runways`

const upsertFlightQuery = `
MERGE (f:Flight {flight_id: $flight_id})
SET f.airline_code = $airline_code,
    f.airline_name = $airline_name,
    f.status = $status,
    f.departure_gate = $departure_gate,
    f.departure_time = datetime($departure_time),
    f.arrival_time = datetime($arrival_time)
WITH f
MATCH (dep:Airport {code: $departure_airport})
MATCH (arr:Airport {code: $arrival_airport})
MERGE (f)-[:DEPARTS_FROM]->(dep)
MERGE (f)-[:ARRIVES_AT]->(arr)`

const bookFlightQuery = `
MERGE (p:Passenger {passenger_id: $passenger_id})
MERGE (f:Flight {flight_id: $flight_id})
MERGE (p)-[r:BOOKED_FLIGHT]->(f)
SET r += {
    ticket_id: $ticket_id,
    seat: $seat,
    class_place: $class_place,
    price: $price,
    booking_date: datetime($booking_date)
}`

func (r *Neo4jFlightGraphRepository) run(ctx context.Context, query string, params map[string]any) ([]*db.Record, error) {
	result, err := neo4j.ExecuteQuery(ctx, r.driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return nil, apperrors.Unavailable("graph store", err)
	}
	return result.Records, nil
}

// DirectRoutes returns every flight connecting the two airports directly
func (r *Neo4jFlightGraphRepository) DirectRoutes(ctx context.Context, fromCode, toCode string) ([]entity.Route, error) {
	records, err := r.run(ctx, directRoutesQuery, map[string]any{
		"from_code": fromCode,
		"to_code":   toCode,
	})
	if err != nil {
		return nil, err
	}

	routes := make([]entity.Route, 0, len(records))
	for _, record := range records {
		routes = append(routes, entity.Route{
			Flights:          []entity.RouteFlight{toRouteFlight(propMap(record, "flight"))},
			DepartureAirport: toRouteAirport(propMap(record, "departure_airport")),
			ArrivalAirport:   toRouteAirport(propMap(record, "arrival_airport")),
			TransferAirports: []entity.RouteAirport{},
		})
	}
	return routes, nil
}

// OneStopCandidates returns flight pairs through an intermediate airport,
// without temporal filtering
func (r *Neo4jFlightGraphRepository) OneStopCandidates(ctx context.Context, fromCode, toCode string) ([]entity.Route, error) {
	records, err := r.run(ctx, oneStopCandidatesQuery, map[string]any{
		"from_code": fromCode,
		"to_code":   toCode,
	})
	if err != nil {
		return nil, err
	}

	routes := make([]entity.Route, 0, len(records))
	for _, record := range records {
		routes = append(routes, entity.Route{
			Flights: []entity.RouteFlight{
				toRouteFlight(propMap(record, "first_flight")),
				toRouteFlight(propMap(record, "second_flight")),
			},
			DepartureAirport: toRouteAirport(propMap(record, "departure_airport")),
			ArrivalAirport:   toRouteAirport(propMap(record, "arrival_airport")),
			TransferAirports: []entity.RouteAirport{toRouteAirport(propMap(record, "transfer_airport"))},
		})
	}
	return routes, nil
}

// FlightEndpoints returns the departure/arrival airport codes for one flight
func (r *Neo4jFlightGraphRepository) FlightEndpoints(ctx context.Context, flightID string) (*entity.FlightEndpoints, error) {
	records, err := r.run(ctx, flightEndpointsQuery, map[string]any{
		"flight_id": flightID,
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &entity.FlightEndpoints{}, nil
	}

	record := records[0]
	return &entity.FlightEndpoints{
		Departure: recordString(record, "departure"),
		Arrival:   recordString(record, "arrival"),
	}, nil
}

// TravelHistory returns raw BOOKED_FLIGHT rows for one passenger
func (r *Neo4jFlightGraphRepository) TravelHistory(ctx context.Context, passengerID string) ([]entity.TravelLeg, error) {
	records, err := r.run(ctx, travelHistoryQuery, map[string]any{
		"passenger_id": passengerID,
	})
	if err != nil {
		return nil, err
	}

	legs := make([]entity.TravelLeg, 0, len(records))
	for _, record := range records {
		flightID := ""
		if s := recordString(record, "flight_id"); s != nil {
			flightID = *s
		}
		legs = append(legs, entity.TravelLeg{
			FlightID:         flightID,
			DepartureTime:    recordTime(record, "departure_time"),
			ArrivalTime:      recordTime(record, "arrival_time"),
			DepartureAirport: recordString(record, "departure_airport"),
			ArrivalAirport:   recordString(record, "arrival_airport"),
		})
	}
	return legs, nil
}

// UpsertAirport merges an airport node
func (r *Neo4jFlightGraphRepository) UpsertAirport(ctx context.Context, airport entity.Airport) error {
	_, err := r.run(ctx, upsertAirportQuery, map[string]any{
		"code":    airport.Code,
		"name":    airport.Name,
		"city":    airport.City,
		"country": airport.Country,
		"runways": airport.Runways,
	})
	return err
}

// UpsertFlight merges a flight node and its airport edges
func (r *Neo4jFlightGraphRepository) UpsertFlight(ctx context.Context, flight entity.FlightNode) error {
	_, err := r.run(ctx, upsertFlightQuery, map[string]any{
		"flight_id":         flight.FlightID,
		"airline_code":      flight.AirlineCode,
		"airline_name":      flight.AirlineName,
		"status":            flight.Status,
		"departure_gate":    flight.DepartureGate,
		"departure_time":    flight.DepartureTime.UTC().Format(time.RFC3339),
		"arrival_time":      flight.ArrivalTime.UTC().Format(time.RFC3339),
		"departure_airport": flight.DepartureAirport,
		"arrival_airport":   flight.ArrivalAirport,
	})
	return err
}

// BookFlight merges the passenger node and its BOOKED_FLIGHT edge
func (r *Neo4jFlightGraphRepository) BookFlight(ctx context.Context, passengerID string, ticket entity.Ticket) error {
	_, err := r.run(ctx, bookFlightQuery, map[string]any{
		"passenger_id": passengerID,
		"flight_id":    ticket.FlightID,
		"ticket_id":    ticket.TicketID,
		"seat":         ticket.Seat,
		"class_place":  ticket.ClassPlace,
		"price":        ticket.Price,
		"booking_date": ticket.BookingDate.UTC().Format(time.RFC3339),
	})
	return err
}

// propMap extracts an aliased property map from a record.
func propMap(record *db.Record, key string) map[string]any {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return nil
	}
	m, _ := value.(map[string]any)
	return m
}

func recordString(record *db.Record, key string) *string {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return nil
	}
	return &s
}

func recordTime(record *db.Record, key string) *time.Time {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return nil
	}
	t, ok := value.(time.Time)
	if !ok {
		return nil
	}
	return &t
}

func optString(m map[string]any, key string) *string {
	if m == nil {
		return nil
	}
	value, ok := m[key]
	if !ok || value == nil {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return nil
	}
	return &s
}

func optTime(m map[string]any, key string) *time.Time {
	if m == nil {
		return nil
	}
	value, ok := m[key]
	if !ok || value == nil {
		return nil
	}
	t, ok := value.(time.Time)
	if !ok {
		return nil
	}
	return &t
}

func toRouteFlight(props map[string]any) entity.RouteFlight {
	return entity.RouteFlight{
		FlightID:      optString(props, "flight_id"),
		AirlineCode:   optString(props, "airline_code"),
		AirlineName:   optString(props, "airline_name"),
		Status:        optString(props, "status"),
		DepartureGate: optString(props, "departure_gate"),
		DepartureTime: optTime(props, "departure_time"),
		ArrivalTime:   optTime(props, "arrival_time"),
	}
}

func toRouteAirport(props map[string]any) entity.RouteAirport {
	return entity.RouteAirport{
		Code:    optString(props, "code"),
		Name:    optString(props, "name"),
		City:    optString(props, "city"),
		Country: optString(props, "country"),
	}
}
