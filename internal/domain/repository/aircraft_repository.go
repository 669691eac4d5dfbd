package repository

import (
	"context"

	"airdata-service/internal/domain/entity"
)

// AircraftRepository is the document-store adapter for aircraft profiles.
type AircraftRepository interface {
	Insert(ctx context.Context, aircraft *entity.Aircraft) error
	GetByRegNumber(ctx context.Context, regNumber string) (*entity.Aircraft, error)
	Find(ctx context.Context, filter entity.AircraftFilter) ([]entity.Aircraft, error)
	Update(ctx context.Context, regNumber string, update entity.AircraftUpdate) (int64, error)
	Delete(ctx context.Context, regNumber string) (int64, error)
	ManufacturerStats(ctx context.Context) ([]entity.ManufacturerStats, error)
}
