package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
	yachtRepo "github.com/LeesureYatchs/Leisure-Yatchs/internal/infra/storage/yacht"
)

// Service drives the yacht catalogue
type Service struct {
	yachtRepo YachtRepository
	logger    Logger
}

// NewService creates a new catalogue service
func NewService(yachtRepo YachtRepository, logger Logger) *Service {
	return &Service{yachtRepo: yachtRepo, logger: logger}
}

// List fetches yachts. Public listings see active yachts only.
func (s *Service) List(ctx context.Context, req *ListYachtsRequest) (*YachtListResponse, error) {
	filter := domain.YachtsFilter{Category: req.Category}
	if !req.IncludeInactive {
		active := domain.YachtActive
		filter.Status = &active
	}

	yachts, err := s.yachtRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d yachts", len(yachts))
	return fromDomainYachtList(yachts), nil
}

// Get fetches one yacht. countView bumps the view counter, a failure
// there only gets logged.
func (s *Service) Get(ctx context.Context, id int64, countView bool) (*YachtResponse, error) {
	yacht, err := s.yachtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, yachtRepo.ErrYachtNotFound) {
			s.logger.Warn("Get: yacht id=%d not found", id)
			return nil, ErrYachtNotFound
		}
		s.logger.Error("Get: repository error for yacht id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	if countView {
		if err := s.yachtRepo.IncrementViews(ctx, id); err != nil {
			s.logger.Warn("Get: failed to count view for yacht id=%d: %v", id, err)
		} else {
			yacht.ViewsCount++
		}
	}

	return fromDomainYacht(yacht), nil
}

// Create adds a yacht to the fleet
func (s *Service) Create(ctx context.Context, req *SaveYachtRequest) (*YachtResponse, error) {
	yacht, err := toDomainYacht(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.yachtRepo.Create(ctx, yacht)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: yacht id=%d created", created.ID)
	return fromDomainYacht(created), nil
}

// Update rewrites a yacht's listing, including its status
func (s *Service) Update(ctx context.Context, id int64, req *SaveYachtRequest) (*YachtResponse, error) {
	yacht, err := toDomainYacht(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for yacht id=%d: %v", id, err)
		return nil, err
	}
	yacht.ID = id

	if err := s.yachtRepo.Update(ctx, yacht); err != nil {
		if errors.Is(err, yachtRepo.ErrYachtNotFound) {
			s.logger.Warn("Update: yacht id=%d not found", id)
			return nil, ErrYachtNotFound
		}
		s.logger.Error("Update: repository error for yacht id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.yachtRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to re-read yacht id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: yacht id=%d updated", id)
	return fromDomainYacht(updated), nil
}

// Count returns the fleet size for the dashboard
func (s *Service) Count(ctx context.Context) (int, error) {
	count, err := s.yachtRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Count: repository error: %v", err)
		return 0, fmt.Errorf("%w: Count - repository error: %v", ErrInternal, err)
	}
	return count, nil
}

func toDomainYacht(req *SaveYachtRequest) (*domain.Yacht, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	if req.HourlyPrice < 0 {
		return nil, fmt.Errorf("%w: hourlyPrice must not be negative", ErrInvalidInput)
	}
	if req.MinimumHours < domain.MinDurationHours || req.MinimumHours > domain.MaxDurationHours {
		return nil, fmt.Errorf("%w: minimumHours must be %d to %d",
			ErrInvalidInput, domain.MinDurationHours, domain.MaxDurationHours)
	}

	status := domain.YachtStatus(req.Status)
	if status == "" {
		status = domain.YachtActive
	}
	if status != domain.YachtActive && status != domain.YachtInactive {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	return &domain.Yacht{
		Name:         strings.TrimSpace(req.Name),
		Feet:         req.Feet,
		Capacity:     req.Capacity,
		Cabins:       req.Cabins,
		Bedrooms:     req.Bedrooms,
		Restrooms:    req.Restrooms,
		HourlyPrice:  req.HourlyPrice,
		MinimumHours: req.MinimumHours,
		Description:  req.Description,
		Amenities:    req.Amenities,
		Images:       req.Images,
		Category:     req.Category,
		Status:       status,
	}, nil
}
