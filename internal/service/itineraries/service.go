package itineraries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
	itineraryRepo "github.com/LeesureYatchs/Leisure-Yatchs/internal/infra/storage/itinerary"
)

// Service manages the cruise itineraries shown on yacht pages
type Service struct {
	itineraryRepo ItineraryRepository
	logger        Logger
}

// NewService creates a new itineraries service
func NewService(itineraryRepo ItineraryRepository, logger Logger) *Service {
	return &Service{
		itineraryRepo: itineraryRepo,
		logger:        logger,
	}
}

// Create publishes a new itinerary
func (s *Service) Create(ctx context.Context, req *SaveItineraryRequest) (*ItineraryResponse, error) {
	itinerary, err := toDomainItinerary(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.itineraryRepo.Create(ctx, itinerary)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: itinerary id=%d created (%s)", created.ID, created.DurationLabel)
	return fromDomainItinerary(created), nil
}

// List fetches every itinerary ordered by duration label
func (s *Service) List(ctx context.Context) (*ItineraryListResponse, error) {
	itineraries, err := s.itineraryRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d itineraries", len(itineraries))
	return fromDomainItineraryList(itineraries), nil
}

// Update rewrites an itinerary's label and route
func (s *Service) Update(ctx context.Context, id int64, req *SaveItineraryRequest) (*ItineraryResponse, error) {
	itinerary, err := toDomainItinerary(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for itinerary id=%d: %v", id, err)
		return nil, err
	}
	itinerary.ID = id

	if err := s.itineraryRepo.Update(ctx, itinerary); err != nil {
		if errors.Is(err, itineraryRepo.ErrItineraryNotFound) {
			s.logger.Warn("Update: itinerary id=%d not found", id)
			return nil, ErrItineraryNotFound
		}
		s.logger.Error("Update: repository error for itinerary id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: itinerary id=%d updated (%s)", id, itinerary.DurationLabel)
	return fromDomainItinerary(itinerary), nil
}

// Delete removes an itinerary
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.itineraryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, itineraryRepo.ErrItineraryNotFound) {
			s.logger.Warn("Delete: itinerary id=%d not found", id)
			return ErrItineraryNotFound
		}
		s.logger.Error("Delete: repository error for itinerary id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: itinerary id=%d removed", id)
	return nil
}

func toDomainItinerary(req *SaveItineraryRequest) (*domain.Itinerary, error) {
	if strings.TrimSpace(req.DurationLabel) == "" {
		return nil, fmt.Errorf("%w: durationLabel is required", ErrInvalidInput)
	}

	locations := make([]string, 0, len(req.Locations))
	for _, loc := range req.Locations {
		if trimmed := strings.TrimSpace(loc); trimmed != "" {
			locations = append(locations, trimmed)
		}
	}
	if len(locations) == 0 {
		return nil, fmt.Errorf("%w: at least one location is required", ErrInvalidInput)
	}

	return &domain.Itinerary{
		DurationLabel:    strings.TrimSpace(req.DurationLabel),
		RouteDescription: domain.JoinRoute(locations),
	}, nil
}
