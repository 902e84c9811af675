package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
	reviewRepo "github.com/LeesureYatchs/Leisure-Yatchs/internal/infra/storage/review"
	yachtRepo "github.com/LeesureYatchs/Leisure-Yatchs/internal/infra/storage/yacht"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/ptr"
)

// Service drives customer reviews and their moderation
type Service struct {
	reviewRepo ReviewRepository
	yachtRepo  YachtRepository
	logger     Logger
}

// NewService creates a new reviews service
func NewService(reviewRepo ReviewRepository, yachtRepo YachtRepository, logger Logger) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		yachtRepo:  yachtRepo,
		logger:     logger,
	}
}

// Submit accepts a review from the public form. Every review lands
// pending and waits for moderation.
func (s *Service) Submit(ctx context.Context, req *SubmitReviewRequest) (*ReviewResponse, error) {
	if err := validateSubmit(req); err != nil {
		s.logger.Warn("Submit: validation failed: %v", err)
		return nil, err
	}

	if _, err := s.yachtRepo.GetByID(ctx, req.YachtID); err != nil {
		if errors.Is(err, yachtRepo.ErrYachtNotFound) {
			s.logger.Warn("Submit: yacht id=%d not found", req.YachtID)
			return nil, ErrYachtNotFound
		}
		s.logger.Error("Submit: failed to get yacht id=%d: %v", req.YachtID, err)
		return nil, fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	review := &domain.Review{
		YachtID:      req.YachtID,
		CustomerName: strings.TrimSpace(req.CustomerName),
		Rating:       req.Rating,
		Comment:      strings.TrimSpace(req.Comment),
		Status:       domain.ReviewPending,
	}

	created, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		s.logger.Error("Submit: repository error: %v", err)
		return nil, fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Submit: review id=%d created for yacht id=%d", created.ID, created.YachtID)
	return fromDomainReview(created), nil
}

// ListForYacht fetches the approved reviews shown on a yacht's page,
// with the average rating.
func (s *Service) ListForYacht(ctx context.Context, yachtID int64) (*ReviewListResponse, error) {
	approved := domain.ReviewApproved
	reviews, err := s.reviewRepo.List(ctx, domain.ReviewsFilter{
		YachtID: ptr.Ptr(yachtID),
		Status:  &approved,
	})
	if err != nil {
		s.logger.Error("ListForYacht: repository error for yacht id=%d: %v", yachtID, err)
		return nil, fmt.Errorf("%w: ListForYacht - repository error: %v", ErrInternal, err)
	}

	resp := fromDomainReviewList(reviews)

	if len(reviews) > 0 {
		avg, err := s.reviewRepo.AverageRatingForYacht(ctx, yachtID)
		if err != nil {
			s.logger.Warn("ListForYacht: failed to compute average for yacht id=%d: %v", yachtID, err)
		} else {
			resp.AverageRating = &avg
		}
	}

	return resp, nil
}

// ListForModeration fetches reviews for the admin panel, optionally by
// moderation state.
func (s *Service) ListForModeration(ctx context.Context, status *string) (*ReviewListResponse, error) {
	filter := domain.ReviewsFilter{}
	if status != nil {
		target := domain.ReviewStatus(*status)
		if target != domain.ReviewPending && target != domain.ReviewApproved && target != domain.ReviewRejected {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *status)
		}
		filter.Status = &target
	}

	reviews, err := s.reviewRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListForModeration: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListForModeration - repository error: %v", ErrInternal, err)
	}

	return fromDomainReviewList(reviews), nil
}

// Moderate approves or rejects a pending review
func (s *Service) Moderate(ctx context.Context, id int64, status string) error {
	target := domain.ReviewStatus(status)
	if target != domain.ReviewApproved && target != domain.ReviewRejected {
		s.logger.Warn("Moderate: invalid status=%s for review id=%d", status, id)
		return fmt.Errorf("%w: status must be approved or rejected", ErrInvalidInput)
	}

	if err := s.reviewRepo.UpdateStatus(ctx, id, target); err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			s.logger.Warn("Moderate: review id=%d not found", id)
			return ErrReviewNotFound
		}
		s.logger.Error("Moderate: repository error for review id=%d: %v", id, err)
		return fmt.Errorf("%w: Moderate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Moderate: review id=%d is now %s", id, target)
	return nil
}

func validateSubmit(req *SubmitReviewRequest) error {
	if req.YachtID <= 0 {
		return fmt.Errorf("%w: yachtId must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.CustomerName)
	if len(name) < domain.MinCustomerNameLength || len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: name must be %d to %d characters",
			ErrInvalidInput, domain.MinCustomerNameLength, domain.MaxCustomerNameLength)
	}

	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return fmt.Errorf("%w: rating must be %d to %d", ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}

	if strings.TrimSpace(req.Comment) == "" {
		return fmt.Errorf("%w: comment is required", ErrInvalidInput)
	}
	if len(req.Comment) > domain.MaxMessageLength {
		return fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}

	return nil
}
