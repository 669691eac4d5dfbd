package repository

import (
	"context"
	"errors"
	"time"

	"airdata-service/internal/domain/entity"
	"airdata-service/internal/domain/repository"
	"airdata-service/pkg/apperrors"

	"gorm.io/gorm"
)

// GormTicketRepository implements the TicketRepository interface
type GormTicketRepository struct {
	db *gorm.DB
}

// NewGormTicketRepository creates a new GORM ticket repository
func NewGormTicketRepository(db *gorm.DB) repository.TicketRepository {
	return &GormTicketRepository{
		db: db,
	}
}

// Tickets GORM model for database mapping
type Tickets struct {
	TicketID    string    `gorm:"column:ticket_id;primaryKey"`
	PassengerID string    `gorm:"column:passenger_id;index"`
	FlightID    string    `gorm:"column:flight_id;index"`
	Seat        string    `gorm:"column:seat"`
	ClassPlace  string    `gorm:"column:class_place"`
	Price       float64   `gorm:"column:price;type:numeric(10,2)"`
	BookingDate time.Time `gorm:"column:booking_date"`
}

// TableName overrides the default table name
func (Tickets) TableName() string {
	return "tickets"
}

// AutoMigrateLedger creates the ledger tables when they do not exist
func AutoMigrateLedger(db *gorm.DB) error {
	return db.AutoMigrate(&Tickets{}, &BaggageRows{})
}

func toTicketEntity(row Tickets) entity.Ticket {
	return entity.Ticket{
		TicketID:    row.TicketID,
		PassengerID: row.PassengerID,
		FlightID:    row.FlightID,
		Seat:        row.Seat,
		ClassPlace:  row.ClassPlace,
		Price:       row.Price,
		BookingDate: row.BookingDate,
	}
}

// Insert appends a ticket row to the ledger
func (r *GormTicketRepository) Insert(ctx context.Context, ticket *entity.Ticket) error {
	row := Tickets{
		TicketID:    ticket.TicketID,
		PassengerID: ticket.PassengerID,
		FlightID:    ticket.FlightID,
		Seat:        ticket.Seat,
		ClassPlace:  ticket.ClassPlace,
		Price:       ticket.Price,
		BookingDate: ticket.BookingDate,
	}
	if result := r.db.WithContext(ctx).Create(&row); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("ticket with the same id already exists")
		}
		return apperrors.Unavailable("ledger store", result.Error)
	}
	return nil
}

// GetByID finds a ticket by ticket id
func (r *GormTicketRepository) GetByID(ctx context.Context, ticketID string) (*entity.Ticket, error) {
	var row Tickets
	result := r.db.WithContext(ctx).Where("ticket_id = ?", ticketID).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("ticket", ticketID)
		}
		return nil, apperrors.Unavailable("ledger store", result.Error)
	}

	ticket := toTicketEntity(row)
	return &ticket, nil
}

// Find lists tickets filtered by passenger and/or flight
func (r *GormTicketRepository) Find(ctx context.Context, filter entity.TicketFilter) ([]entity.Ticket, error) {
	query := r.db.WithContext(ctx).Model(&Tickets{})
	if filter.PassengerID != "" {
		query = query.Where("passenger_id = ?", filter.PassengerID)
	}
	if filter.FlightID != "" {
		query = query.Where("flight_id = ?", filter.FlightID)
	}

	var rows []Tickets
	result := query.Order("booking_date DESC").Limit(filter.Limit).Offset(filter.Offset).Find(&rows)
	if result.Error != nil {
		return nil, apperrors.Unavailable("ledger store", result.Error)
	}

	tickets := make([]entity.Ticket, 0, len(rows))
	for _, row := range rows {
		tickets = append(tickets, toTicketEntity(row))
	}
	return tickets, nil
}

// FindByPassenger lists all tickets belonging to one passenger
func (r *GormTicketRepository) FindByPassenger(ctx context.Context, passengerID string) ([]entity.Ticket, error) {
	var rows []Tickets
	result := r.db.WithContext(ctx).Where("passenger_id = ?", passengerID).Find(&rows)
	if result.Error != nil {
		return nil, apperrors.Unavailable("ledger store", result.Error)
	}

	tickets := make([]entity.Ticket, 0, len(rows))
	for _, row := range rows {
		tickets = append(tickets, toTicketEntity(row))
	}
	return tickets, nil
}

// Update applies a partial update and returns the affected row count
func (r *GormTicketRepository) Update(ctx context.Context, ticketID string, update entity.TicketUpdate) (int64, error) {
	fields := map[string]interface{}{}
	if update.Seat != nil {
		fields["seat"] = *update.Seat
	}
	if update.ClassPlace != nil {
		fields["class_place"] = *update.ClassPlace
	}
	if update.Price != nil {
		fields["price"] = *update.Price
	}

	result := r.db.WithContext(ctx).Model(&Tickets{}).Where("ticket_id = ?", ticketID).Updates(fields)
	if result.Error != nil {
		return 0, apperrors.Unavailable("ledger store", result.Error)
	}
	return result.RowsAffected, nil
}

// Delete removes a ticket row and returns the affected row count
func (r *GormTicketRepository) Delete(ctx context.Context, ticketID string) (int64, error) {
	result := r.db.WithContext(ctx).Where("ticket_id = ?", ticketID).Delete(&Tickets{})
	if result.Error != nil {
		return 0, apperrors.Unavailable("ledger store", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteByPassenger removes all ticket rows for one passenger
func (r *GormTicketRepository) DeleteByPassenger(ctx context.Context, passengerID string) (int64, error) {
	result := r.db.WithContext(ctx).Where("passenger_id = ?", passengerID).Delete(&Tickets{})
	if result.Error != nil {
		return 0, apperrors.Unavailable("ledger store", result.Error)
	}
	return result.RowsAffected, nil
}

// SumPricesByPassenger sums ticket prices for one passenger; zero rows sum to zero
func (r *GormTicketRepository) SumPricesByPassenger(ctx context.Context, passengerID string) (float64, error) {
	var total float64
	result := r.db.WithContext(ctx).Model(&Tickets{}).
		Where("passenger_id = ?", passengerID).
		Select("COALESCE(SUM(price), 0)").
		Scan(&total)
	if result.Error != nil {
		return 0, apperrors.Unavailable("ledger store", result.Error)
	}
	return total, nil
}

// ClassStats groups tickets by class of service with revenue totals
func (r *GormTicketRepository) ClassStats(ctx context.Context) ([]entity.TicketClassStats, error) {
	var stats []entity.TicketClassStats
	result := r.db.WithContext(ctx).Model(&Tickets{}).
		Select("class_place, COUNT(*) AS count, COALESCE(SUM(price), 0) AS total_revenue").
		Group("class_place").
		Order("count DESC").
		Scan(&stats)
	if result.Error != nil {
		return nil, apperrors.Unavailable("ledger store", result.Error)
	}
	return stats, nil
}
