package offers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
	offerRepo "github.com/LeesureYatchs/Leisure-Yatchs/internal/infra/storage/offer"
	yachtRepo "github.com/LeesureYatchs/Leisure-Yatchs/internal/infra/storage/yacht"
)

// Service drives promotional offers
type Service struct {
	offerRepo    OfferRepository
	yachtRepo    YachtRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a new offers service
func NewService(offerRepo OfferRepository, yachtRepo YachtRepository, logger Logger) *Service {
	return &Service{
		offerRepo:    offerRepo,
		yachtRepo:    yachtRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create publishes a new offer for a yacht
func (s *Service) Create(ctx context.Context, req *CreateOfferRequest) (*OfferResponse, error) {
	offer, err := toDomainOffer(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	if _, err := s.yachtRepo.GetByID(ctx, req.YachtID); err != nil {
		if errors.Is(err, yachtRepo.ErrYachtNotFound) {
			s.logger.Warn("Create: yacht id=%d not found", req.YachtID)
			return nil, ErrYachtNotFound
		}
		s.logger.Error("Create: failed to get yacht id=%d: %v", req.YachtID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	created, err := s.offerRepo.Create(ctx, offer)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: offer id=%d created for yacht id=%d", created.ID, created.YachtID)
	return fromDomainOffer(created), nil
}

// List fetches offers. Public listings only see active offers that have
// not expired yet.
func (s *Service) List(ctx context.Context, req *ListOffersRequest) (*OfferListResponse, error) {
	filter := domain.OffersFilter{YachtID: req.YachtID}
	if req.PublicOnly {
		active := domain.OfferActive
		today := truncateToDay(s.timeProvider.Now())
		filter.Status = &active
		filter.LiveAfter = &today
	}

	offers, err := s.offerRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d offers", len(offers))
	return fromDomainOfferList(offers), nil
}

// UpdateStatus flips an offer between active and inactive
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) error {
	target := domain.OfferStatus(status)
	if target != domain.OfferActive && target != domain.OfferInactive {
		s.logger.Warn("UpdateStatus: invalid status=%s for offer id=%d", status, id)
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	if err := s.offerRepo.UpdateStatus(ctx, id, target); err != nil {
		if errors.Is(err, offerRepo.ErrOfferNotFound) {
			s.logger.Warn("UpdateStatus: offer id=%d not found", id)
			return ErrOfferNotFound
		}
		s.logger.Error("UpdateStatus: repository error for offer id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: offer id=%d is now %s", id, target)
	return nil
}

// CountActive returns the number of live offers for the dashboard
func (s *Service) CountActive(ctx context.Context) (int, error) {
	count, err := s.offerRepo.CountActive(ctx)
	if err != nil {
		s.logger.Error("CountActive: repository error: %v", err)
		return 0, fmt.Errorf("%w: CountActive - repository error: %v", ErrInternal, err)
	}
	return count, nil
}

func toDomainOffer(req *CreateOfferRequest) (*domain.Offer, error) {
	if req.YachtID <= 0 {
		return nil, fmt.Errorf("%w: yachtId must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	discountType := domain.DiscountType(req.DiscountType)
	if discountType != domain.DiscountPercentage && discountType != domain.DiscountFixed {
		return nil, fmt.Errorf("%w: unknown discount type %q", ErrInvalidInput, req.DiscountType)
	}
	if req.DiscountValue <= 0 {
		return nil, fmt.Errorf("%w: discountValue must be positive", ErrInvalidInput)
	}
	if discountType == domain.DiscountPercentage && req.DiscountValue > 100 {
		return nil, fmt.Errorf("%w: percentage discount cannot exceed 100", ErrInvalidInput)
	}

	startDate, err := time.Parse(domain.DateFormat, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: startDate must be YYYY-MM-DD", ErrInvalidInput)
	}
	endDate, err := time.Parse(domain.DateFormat, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: endDate must be YYYY-MM-DD", ErrInvalidInput)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	return &domain.Offer{
		YachtID:       req.YachtID,
		Title:         strings.TrimSpace(req.Title),
		DiscountType:  discountType,
		DiscountValue: req.DiscountValue,
		StartDate:     startDate,
		EndDate:       endDate,
		Status:        domain.OfferActive,
	}, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
