package repository

import (
	"context"
	"time"

	"airdata-service/internal/domain/entity"
	"airdata-service/internal/domain/repository"
	"airdata-service/pkg/apperrors"

	"gorm.io/gorm"
)

// GormBaggageRepository implements the BaggageRepository interface
type GormBaggageRepository struct {
	db *gorm.DB
}

// NewGormBaggageRepository creates a new GORM baggage repository
func NewGormBaggageRepository(db *gorm.DB) repository.BaggageRepository {
	return &GormBaggageRepository{
		db: db,
	}
}

// BaggageRows GORM model for database mapping
type BaggageRows struct {
	BaggageID   string    `gorm:"column:baggage_id;primaryKey"`
	TicketID    string    `gorm:"column:ticket_id;index"`
	Weight      float64   `gorm:"column:weight"`
	Status      string    `gorm:"column:status"`
	LastUpdated time.Time `gorm:"column:last_updated"`
}

// TableName overrides the default table name
func (BaggageRows) TableName() string {
	return "baggage"
}

// Insert appends a baggage row to the ledger
func (r *GormBaggageRepository) Insert(ctx context.Context, baggage *entity.Baggage) error {
	row := BaggageRows{
		BaggageID:   baggage.BaggageID,
		TicketID:    baggage.TicketID,
		Weight:      baggage.Weight,
		Status:      baggage.Status,
		LastUpdated: baggage.LastUpdated,
	}
	if result := r.db.WithContext(ctx).Create(&row); result.Error != nil {
		return apperrors.Unavailable("ledger store", result.Error)
	}
	return nil
}

// FindByTicket lists baggage belonging to one ticket
func (r *GormBaggageRepository) FindByTicket(ctx context.Context, ticketID string) ([]entity.Baggage, error) {
	var rows []BaggageRows
	result := r.db.WithContext(ctx).Where("ticket_id = ?", ticketID).Find(&rows)
	if result.Error != nil {
		return nil, apperrors.Unavailable("ledger store", result.Error)
	}

	baggage := make([]entity.Baggage, 0, len(rows))
	for _, row := range rows {
		baggage = append(baggage, entity.Baggage{
			BaggageID:   row.BaggageID,
			TicketID:    row.TicketID,
			Weight:      row.Weight,
			Status:      row.Status,
			LastUpdated: row.LastUpdated,
		})
	}
	return baggage, nil
}

// DeleteByTicket removes all baggage rows owned by one ticket
func (r *GormBaggageRepository) DeleteByTicket(ctx context.Context, ticketID string) (int64, error) {
	result := r.db.WithContext(ctx).Where("ticket_id = ?", ticketID).Delete(&BaggageRows{})
	if result.Error != nil {
		return 0, apperrors.Unavailable("ledger store", result.Error)
	}
	return result.RowsAffected, nil
}
