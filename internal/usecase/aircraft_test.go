package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"airdata-service/internal/domain/entity"
	"airdata-service/pkg/apperrors"
	"airdata-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAircraftService(repo *mockAircraftRepo) *AircraftService {
	return NewAircraftService(repo, logger.NewNop(), time.Second)
}

func TestCreateAircraft_GeneratesRegistration(t *testing.T) {
	var inserted *entity.Aircraft
	repo := &mockAircraftRepo{
		insertFunc: func(ctx context.Context, aircraft *entity.Aircraft) error {
			inserted = aircraft
			return nil
		},
	}

	svc := newAircraftService(repo)

	aircraft, err := svc.CreateAircraft(context.Background(), entity.AircraftCreate{
		Model:        "Boeing 737-800",
		Manufacturer: "Boeing",
		Capacity:     189,
		Status:       entity.AircraftStatusActive,
	})
	require.NoError(t, err)
	require.NotNil(t, inserted)
	assert.True(t, strings.HasPrefix(aircraft.RegNumber, "REG-"))
	assert.False(t, aircraft.LastMaintenance.IsZero())
}

func TestCreateAircraft_RejectsUnknownStatus(t *testing.T) {
	svc := newAircraftService(&mockAircraftRepo{})

	_, err := svc.CreateAircraft(context.Background(), entity.AircraftCreate{
		Model:        "Boeing 737-800",
		Manufacturer: "Boeing",
		Capacity:     189,
		Status:       "retired",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestUpdateAircraft_MaintenanceStampsTimestamp(t *testing.T) {
	var captured entity.AircraftUpdate
	repo := &mockAircraftRepo{
		updateFunc: func(ctx context.Context, regNumber string, update entity.AircraftUpdate) (int64, error) {
			captured = update
			return 1, nil
		},
	}

	svc := newAircraftService(repo)

	status := entity.AircraftStatusMaintenance
	stale := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	before := time.Now().UTC()
	_, err := svc.UpdateAircraft(context.Background(), "REG-abc123", entity.AircraftUpdate{
		Status:          &status,
		LastMaintenance: &stale,
	})
	require.NoError(t, err)
	require.NotNil(t, captured.LastMaintenance)
	assert.False(t, captured.LastMaintenance.Before(before), "caller-supplied maintenance time must be overridden")
}

func TestUpdateAircraft_NonMaintenanceKeepsTimestampUntouched(t *testing.T) {
	var captured entity.AircraftUpdate
	repo := &mockAircraftRepo{
		updateFunc: func(ctx context.Context, regNumber string, update entity.AircraftUpdate) (int64, error) {
			captured = update
			return 1, nil
		},
	}

	svc := newAircraftService(repo)

	status := entity.AircraftStatusActive
	_, err := svc.UpdateAircraft(context.Background(), "REG-abc123", entity.AircraftUpdate{Status: &status})
	require.NoError(t, err)
	assert.Nil(t, captured.LastMaintenance)
}

func TestUpdateAircraft_EmptyPayload(t *testing.T) {
	svc := newAircraftService(&mockAircraftRepo{})

	_, err := svc.UpdateAircraft(context.Background(), "REG-abc123", entity.AircraftUpdate{})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestUpdateAircraft_ZeroRowsIsNotFound(t *testing.T) {
	repo := &mockAircraftRepo{
		updateFunc: func(ctx context.Context, regNumber string, update entity.AircraftUpdate) (int64, error) {
			return 0, nil
		},
	}

	svc := newAircraftService(repo)

	capacity := 200
	_, err := svc.UpdateAircraft(context.Background(), "REG-missing", entity.AircraftUpdate{Capacity: &capacity})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestDeleteAircraft_ZeroRowsIsNotFound(t *testing.T) {
	repo := &mockAircraftRepo{
		deleteFunc: func(ctx context.Context, regNumber string) (int64, error) {
			return 0, nil
		},
	}

	svc := newAircraftService(repo)

	err := svc.DeleteAircraft(context.Background(), "REG-missing")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestListAircraft_PassesFilterThrough(t *testing.T) {
	var captured entity.AircraftFilter
	repo := &mockAircraftRepo{
		findFunc: func(ctx context.Context, filter entity.AircraftFilter) ([]entity.Aircraft, error) {
			captured = filter
			return []entity.Aircraft{}, nil
		},
	}

	svc := newAircraftService(repo)

	_, err := svc.ListAircraft(context.Background(), entity.AircraftFilter{
		Status:      entity.AircraftStatusActive,
		MinCapacity: 150,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AircraftStatusActive, captured.Status)
	assert.Equal(t, 150, captured.MinCapacity)
	assert.Equal(t, defaultListLimit, captured.Limit)
}
