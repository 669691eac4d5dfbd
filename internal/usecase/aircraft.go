package usecase

import (
	"context"
	"time"

	"airdata-service/internal/domain/entity"
	"airdata-service/internal/domain/repository"
	"airdata-service/pkg/apperrors"
	"airdata-service/pkg/logger"
	"airdata-service/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// AircraftService manages aircraft profiles in the document store.
type AircraftService struct {
	aircraft     repository.AircraftRepository
	validate     *validator.Validate
	log          logger.Logger
	storeTimeout time.Duration
}

// NewAircraftService creates a new aircraft service
func NewAircraftService(aircraft repository.AircraftRepository, log logger.Logger, storeTimeout time.Duration) *AircraftService {
	return &AircraftService{
		aircraft:     aircraft,
		validate:     validator.New(),
		log:          log,
		storeTimeout: storeTimeout,
	}
}

func (s *AircraftService) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}

// CreateAircraft stores a new aircraft profile with a generated registration.
func (s *AircraftService) CreateAircraft(ctx context.Context, payload entity.AircraftCreate) (*entity.Aircraft, error) {
	if err := s.validate.Struct(payload); err != nil {
		return nil, apperrors.ValidationErr("invalid aircraft payload", err)
	}

	aircraft := &entity.Aircraft{
		RegNumber:       utils.NewRegNumber(),
		Model:           payload.Model,
		Manufacturer:    payload.Manufacturer,
		Capacity:        payload.Capacity,
		Status:          payload.Status,
		LastMaintenance: time.Now().UTC(),
	}

	cctx, cancel := s.storeCtx(ctx)
	err := s.aircraft.Insert(cctx, aircraft)
	cancel()
	if err != nil {
		return nil, err
	}

	s.log.Info("aircraft created", "reg_number", aircraft.RegNumber)
	return aircraft, nil
}

// GetAircraft finds an aircraft by registration number.
func (s *AircraftService) GetAircraft(ctx context.Context, regNumber string) (*entity.Aircraft, error) {
	cctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.aircraft.GetByRegNumber(cctx, regNumber)
}

// ListAircraft lists aircraft matching the filter.
func (s *AircraftService) ListAircraft(ctx context.Context, filter entity.AircraftFilter) ([]entity.Aircraft, error) {
	filter.Limit = normalizeLimit(filter.Limit)
	filter.Offset = normalizeOffset(filter.Offset)

	cctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.aircraft.Find(cctx, filter)
}

// UpdateAircraft applies a partial update. A transition to "maintenance"
// stamps last_maintenance with the current time, overriding any
// caller-supplied value for that field.
func (s *AircraftService) UpdateAircraft(ctx context.Context, regNumber string, payload entity.AircraftUpdate) (*entity.Aircraft, error) {
	if payload.IsEmpty() {
		return nil, apperrors.Validation("no data to update")
	}
	if err := s.validate.Struct(payload); err != nil {
		return nil, apperrors.ValidationErr("invalid aircraft update", err)
	}

	if payload.Status != nil && *payload.Status == entity.AircraftStatusMaintenance {
		now := time.Now().UTC()
		payload.LastMaintenance = &now
	}

	cctx, cancel := s.storeCtx(ctx)
	count, err := s.aircraft.Update(cctx, regNumber, payload)
	cancel()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperrors.NotFound("aircraft", regNumber)
	}

	gctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.aircraft.GetByRegNumber(gctx, regNumber)
}

// DeleteAircraft removes an aircraft profile.
func (s *AircraftService) DeleteAircraft(ctx context.Context, regNumber string) error {
	cctx, cancel := s.storeCtx(ctx)
	count, err := s.aircraft.Delete(cctx, regNumber)
	cancel()
	if err != nil {
		return err
	}
	if count == 0 {
		return apperrors.NotFound("aircraft", regNumber)
	}

	s.log.Info("aircraft deleted", "reg_number", regNumber)
	return nil
}

// ManufacturerStats groups aircraft by manufacturer.
func (s *AircraftService) ManufacturerStats(ctx context.Context) ([]entity.ManufacturerStats, error) {
	cctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.aircraft.ManufacturerStats(cctx)
}
