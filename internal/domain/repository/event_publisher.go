package repository

import (
	"context"

	"airdata-service/internal/domain/entity"
)

// EventPublisher emits lifecycle events. Implementations must be safe for
// concurrent use.
type EventPublisher interface {
	Publish(ctx context.Context, event entity.Event) error
	Close() error
}
