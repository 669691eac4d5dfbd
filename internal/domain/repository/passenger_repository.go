package repository

import (
	"context"

	"airdata-service/internal/domain/entity"
)

// PassengerRepository is the document-store adapter for passenger profiles.
// It is the authoritative store for passenger identity.
type PassengerRepository interface {
	Insert(ctx context.Context, passenger *entity.Passenger) error
	GetByID(ctx context.Context, passengerID string) (*entity.Passenger, error)
	Find(ctx context.Context, limit, offset int) ([]entity.Passenger, error)
	Update(ctx context.Context, passengerID string, update entity.PassengerUpdate) (int64, error)
	Delete(ctx context.Context, passengerID string) (int64, error)
	CountByNationality(ctx context.Context) ([]entity.CountryStats, error)
}
