package repository

import (
	"context"

	"airdata-service/internal/domain/entity"
)

// AirportRepository is the document-store adapter for airport profiles.
type AirportRepository interface {
	Insert(ctx context.Context, airport *entity.Airport) error
	GetByCode(ctx context.Context, code string) (*entity.Airport, error)
	Find(ctx context.Context, limit, offset int) ([]entity.Airport, error)
}
