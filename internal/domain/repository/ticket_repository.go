package repository

import (
	"context"

	"airdata-service/internal/domain/entity"
)

// TicketRepository is the ledger-store adapter for ticket rows. Reads on a
// single connection observe prior writes; no cross-row transactions are
// assumed.
type TicketRepository interface {
	Insert(ctx context.Context, ticket *entity.Ticket) error
	GetByID(ctx context.Context, ticketID string) (*entity.Ticket, error)
	Find(ctx context.Context, filter entity.TicketFilter) ([]entity.Ticket, error)
	FindByPassenger(ctx context.Context, passengerID string) ([]entity.Ticket, error)
	Update(ctx context.Context, ticketID string, update entity.TicketUpdate) (int64, error)
	Delete(ctx context.Context, ticketID string) (int64, error)
	DeleteByPassenger(ctx context.Context, passengerID string) (int64, error)
	SumPricesByPassenger(ctx context.Context, passengerID string) (float64, error)
	ClassStats(ctx context.Context) ([]entity.TicketClassStats, error)
}

// BaggageRepository is the ledger-store adapter for baggage rows.
type BaggageRepository interface {
	Insert(ctx context.Context, baggage *entity.Baggage) error
	FindByTicket(ctx context.Context, ticketID string) ([]entity.Baggage, error)
	DeleteByTicket(ctx context.Context, ticketID string) (int64, error)
}
