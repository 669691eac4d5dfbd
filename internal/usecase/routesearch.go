package usecase

import (
	"context"

	"airdata-service/internal/domain/entity"
	"airdata-service/internal/domain/repository"
	"airdata-service/pkg/apperrors"
	"airdata-service/pkg/logger"
)

// RouteService answers connection queries over the flight graph: direct
// flights and one-stop pairs through an intermediate airport. It is
// stateless; results come back in discovery order with no ranking.
type RouteService struct {
	graph repository.FlightGraphRepository
	log   logger.Logger
}

// NewRouteService creates a new route search service
func NewRouteService(graph repository.FlightGraphRepository, log logger.Logger) *RouteService {
	return &RouteService{
		graph: graph,
		log:   log,
	}
}

// FindRoutes returns all known connections between two airports. Identical
// endpoints yield an empty set. A graph-store failure fails the whole call;
// partial connectivity results would be worse than no answer.
func (s *RouteService) FindRoutes(ctx context.Context, fromCode, toCode string) (*entity.RouteSearchResult, error) {
	if fromCode == "" || toCode == "" {
		return nil, apperrors.Validation("both airport codes are required")
	}

	result := &entity.RouteSearchResult{
		From:   fromCode,
		To:     toCode,
		Routes: []entity.Route{},
	}

	if fromCode == toCode {
		return result, nil
	}

	direct, err := s.graph.DirectRoutes(ctx, fromCode, toCode)
	if err != nil {
		return nil, err
	}
	for _, route := range direct {
		route.Type = entity.RouteTypeDirect
		result.Routes = append(result.Routes, route)
	}

	candidates, err := s.graph.OneStopCandidates(ctx, fromCode, toCode)
	if err != nil {
		return nil, err
	}
	for _, route := range candidates {
		if !feasibleConnection(route) {
			continue
		}
		route.Type = entity.RouteTypeOneStop
		result.Routes = append(result.Routes, route)
	}

	s.log.Debug("route search completed",
		"from", fromCode,
		"to", toCode,
		"routes", len(result.Routes),
	)
	return result, nil
}

// feasibleConnection reports whether the first leg lands strictly before the
// second leg departs. A missing timestamp on either side makes the pair
// infeasible.
func feasibleConnection(route entity.Route) bool {
	if len(route.Flights) != 2 {
		return false
	}
	first, second := route.Flights[0], route.Flights[1]
	if first.ArrivalTime == nil || second.DepartureTime == nil {
		return false
	}
	return first.ArrivalTime.Before(*second.DepartureTime)
}
