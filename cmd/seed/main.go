package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"airdata-service/internal/domain/entity"
	"airdata-service/internal/infrastructure/config"
	"airdata-service/internal/infrastructure/persistence"
	storeRepo "airdata-service/internal/interface/repository"
	"airdata-service/pkg/logger"
	"airdata-service/pkg/utils"
)

var (
	airportCodes = []string{"SVO", "JFK", "LAX", "LED", "IST", "DXB", "HND", "LHR", "CDG", "FRA"}

	aircraftModels = []string{
		"Boeing 737-800", "Airbus A320", "Boeing 787", "Airbus A350",
		"Embraer E190", "Boeing 777", "Airbus A380", "Bombardier CRJ900",
	}

	airlines = []struct {
		Code string
		Name string
	}{
		{"SU", "Aeroflot"},
		{"BA", "British Airways"},
		{"LH", "Lufthansa"},
		{"EK", "Emirates"},
		{"TK", "Turkish Airlines"},
	}

	classes   = []string{"economy", "business", "first"}
	statuses  = []string{"scheduled", "boarding", "departed", "arrived"}
	countries = []string{"RU", "US", "GB", "DE", "TR", "AE", "JP", "FR"}
)

// seed populates all three stores with coherent random data: airport and
// aircraft/passenger profiles in the document store, ticket and baggage rows
// in the ledger, flight connectivity and bookings in the graph.
func main() {
	log := logger.NewLogger()

	numAircraft := flag.Int("aircraft", 20, "number of aircraft profiles")
	numPassengers := flag.Int("passengers", 200, "number of passenger profiles")
	numFlights := flag.Int("flights", 50, "number of flights")
	ticketsPerFlight := flag.Int("tickets-per-flight", 10, "tickets booked per flight")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	ctx := context.Background()

	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	defer mongoClient.Disconnect(ctx)

	gormDB, err := persistence.NewPostgresDB(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}
	if err := storeRepo.AutoMigrateLedger(gormDB); err != nil {
		log.Fatal("Failed to migrate ledger tables", "error", err)
	}

	neo4jDriver, err := persistence.NewNeo4jDriver(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword)
	if err != nil {
		log.Fatal("Failed to connect to Neo4j", "error", err)
	}
	defer neo4jDriver.Close(ctx)

	airportRepo := storeRepo.NewMongoAirportRepository(db)
	aircraftRepo := storeRepo.NewMongoAircraftRepository(db)
	passengerRepo := storeRepo.NewMongoPassengerRepository(db)
	ticketRepo := storeRepo.NewGormTicketRepository(gormDB)
	baggageRepo := storeRepo.NewGormBaggageRepository(gormDB)
	graphRepo := storeRepo.NewNeo4jFlightGraphRepository(neo4jDriver)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Airports go into both the document store and the graph.
	for _, code := range airportCodes {
		airport := entity.Airport{
			Code:    code,
			Name:    code + " International Airport",
			City:    "City " + code,
			Country: countries[rng.Intn(len(countries))],
			Runways: 2 + rng.Intn(4),
		}
		if err := airportRepo.Insert(ctx, &airport); err != nil {
			log.Warn("airport insert skipped", "code", code, "error", err)
		}
		if err := graphRepo.UpsertAirport(ctx, airport); err != nil {
			log.Fatal("airport graph upsert failed", "code", code, "error", err)
		}
	}
	log.Info("airports seeded", "count", len(airportCodes))

	aircraftRegs := make([]string, 0, *numAircraft)
	for i := 0; i < *numAircraft; i++ {
		model := aircraftModels[rng.Intn(len(aircraftModels))]
		manufacturer := "Airbus"
		if model[0] == 'B' {
			manufacturer = "Boeing"
		}
		aircraft := entity.Aircraft{
			RegNumber:       utils.NewRegNumber(),
			Model:           model,
			Manufacturer:    manufacturer,
			Capacity:        100 + rng.Intn(300),
			LastMaintenance: time.Now().UTC().AddDate(0, 0, -rng.Intn(365)),
			Status:          entity.AircraftStatusActive,
		}
		if err := aircraftRepo.Insert(ctx, &aircraft); err != nil {
			log.Fatal("aircraft insert failed", "error", err)
		}
		aircraftRegs = append(aircraftRegs, aircraft.RegNumber)
	}
	log.Info("aircraft seeded", "count", len(aircraftRegs))

	passengerIDs := make([]string, 0, *numPassengers)
	for i := 0; i < *numPassengers; i++ {
		passenger := entity.Passenger{
			PassengerID: utils.NewPassengerID(),
			FullName:    fmt.Sprintf("Passenger %04d", i),
			Passport:    fmt.Sprintf("%09d", rng.Intn(1_000_000_000)),
			Nationality: countries[rng.Intn(len(countries))],
			Contact: entity.Contact{
				Email: fmt.Sprintf("passenger%04d@example.com", i),
				Phone: fmt.Sprintf("+1-555-%07d", rng.Intn(10_000_000)),
			},
			CreatedAt: time.Now().UTC(),
		}
		if err := passengerRepo.Insert(ctx, &passenger); err != nil {
			log.Fatal("passenger insert failed", "error", err)
		}
		passengerIDs = append(passengerIDs, passenger.PassengerID)
	}
	log.Info("passengers seeded", "count", len(passengerIDs))

	ticketCount := 0
	for i := 0; i < *numFlights; i++ {
		from := airportCodes[rng.Intn(len(airportCodes))]
		to := airportCodes[rng.Intn(len(airportCodes))]
		for to == from {
			to = airportCodes[rng.Intn(len(airportCodes))]
		}

		airline := airlines[rng.Intn(len(airlines))]
		departure := time.Now().UTC().Add(time.Duration(rng.Intn(14*24)) * time.Hour)
		flight := entity.FlightNode{
			FlightID:         fmt.Sprintf("%s%04d", airline.Code, 1000+i),
			AirlineCode:      airline.Code,
			AirlineName:      airline.Name,
			Status:           statuses[rng.Intn(len(statuses))],
			DepartureGate:    fmt.Sprintf("%c%d", 'A'+rng.Intn(5), 1+rng.Intn(30)),
			DepartureAirport: from,
			ArrivalAirport:   to,
			DepartureTime:    departure,
			ArrivalTime:      departure.Add(time.Duration(2+rng.Intn(10)) * time.Hour),
		}
		if err := graphRepo.UpsertFlight(ctx, flight); err != nil {
			log.Fatal("flight graph upsert failed", "flight_id", flight.FlightID, "error", err)
		}

		for j := 0; j < *ticketsPerFlight; j++ {
			ticket := entity.Ticket{
				TicketID:    utils.NewTicketID(),
				PassengerID: passengerIDs[rng.Intn(len(passengerIDs))],
				FlightID:    flight.FlightID,
				Seat:        fmt.Sprintf("%d%c", 1+rng.Intn(40), 'A'+rng.Intn(6)),
				ClassPlace:  classes[rng.Intn(len(classes))],
				Price:       50 + rng.Float64()*1500,
				BookingDate: time.Now().UTC().AddDate(0, 0, -rng.Intn(60)),
			}
			if err := ticketRepo.Insert(ctx, &ticket); err != nil {
				log.Fatal("ticket insert failed", "error", err)
			}
			if err := graphRepo.BookFlight(ctx, ticket.PassengerID, ticket); err != nil {
				log.Fatal("booking graph upsert failed", "ticket_id", ticket.TicketID, "error", err)
			}
			ticketCount++

			// Roughly half the tickets get checked baggage.
			if rng.Intn(2) == 0 {
				baggage := entity.Baggage{
					BaggageID:   utils.NewBaggageID(),
					TicketID:    ticket.TicketID,
					Weight:      5 + rng.Float64()*25,
					Status:      "checked_in",
					LastUpdated: time.Now().UTC(),
				}
				if err := baggageRepo.Insert(ctx, &baggage); err != nil {
					log.Fatal("baggage insert failed", "error", err)
				}
			}
		}
	}
	log.Info("flights and tickets seeded", "flights", *numFlights, "tickets", ticketCount)
}
