package entity

import "time"

// Route kinds.
const (
	RouteTypeDirect  = "direct"
	RouteTypeOneStop = "one_stop"
)

// RouteFlight is the graph projection of a flight as it appears in a route
// result. Every field the graph is missing is surfaced as null rather than
// omitted, so consumers can rely on a stable shape. Timestamps serialize as
// ISO-8601.
type RouteFlight struct {
	FlightID      *string    `json:"flight_id"`
	AirlineCode   *string    `json:"airline_code"`
	AirlineName   *string    `json:"airline_name"`
	Status        *string    `json:"status"`
	DepartureGate *string    `json:"departure_gate"`
	DepartureTime *time.Time `json:"departure_time"`
	ArrivalTime   *time.Time `json:"arrival_time"`
}

// RouteAirport is the graph projection of an airport in a route result.
type RouteAirport struct {
	Code    *string `json:"code"`
	Name    *string `json:"name"`
	City    *string `json:"city"`
	Country *string `json:"country"`
}

// Route is one itinerary: a single flight for a direct connection, or two
// flights in departure order through one transfer airport.
type Route struct {
	Type             string         `json:"type"`
	Flights          []RouteFlight  `json:"flights"`
	DepartureAirport RouteAirport   `json:"departure_airport"`
	ArrivalAirport   RouteAirport   `json:"arrival_airport"`
	TransferAirports []RouteAirport `json:"transfer_airports"`
}

// RouteSearchResult is the full answer for one origin/destination pair, in
// discovery order: direct connections first, then one-stop.
type RouteSearchResult struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Routes []Route `json:"routes"`
}

// FlightEndpoints is the departure/arrival airport-code pair for one flight.
// A side the graph has no record of is nil.
type FlightEndpoints struct {
	Departure *string
	Arrival   *string
}

// TravelLeg is one raw BOOKED_FLIGHT traversal row. Airports and timestamps
// the graph cannot resolve stay nil.
type TravelLeg struct {
	FlightID         string
	DepartureTime    *time.Time
	ArrivalTime      *time.Time
	DepartureAirport *string
	ArrivalAirport   *string
}

// TravelRecord is a shaped travel-history row with fixed-pattern timestamps.
type TravelRecord struct {
	FlightID         string  `json:"flight_id"`
	DepartureTime    *string `json:"departure_time"`
	ArrivalTime      *string `json:"arrival_time"`
	DepartureAirport *string `json:"departure_airport"`
	ArrivalAirport   *string `json:"arrival_airport"`
}

// TravelHistory is a passenger's flight history, most recent departure first.
type TravelHistory struct {
	PassengerID string         `json:"passenger_id"`
	History     []TravelRecord `json:"travel_history"`
}

// FlightNode is the graph-store representation of a flight used for upserts:
// the node properties plus the DEPARTS_FROM and ARRIVES_AT edges.
type FlightNode struct {
	FlightID         string
	AirlineCode      string
	AirlineName      string
	Status           string
	DepartureGate    string
	DepartureAirport string
	ArrivalAirport   string
	DepartureTime    time.Time
	ArrivalTime      time.Time
}
