package enquiries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
	enquiryRepo "github.com/LeesureYatchs/Leisure-Yatchs/internal/infra/storage/enquiry"
)

// Service drives contact-form enquiries
type Service struct {
	enquiryRepo EnquiryRepository
	logger      Logger
}

// NewService creates a new enquiries service
func NewService(enquiryRepo EnquiryRepository, logger Logger) *Service {
	return &Service{enquiryRepo: enquiryRepo, logger: logger}
}

// Create accepts an enquiry from the contact form
func (s *Service) Create(ctx context.Context, req *CreateEnquiryRequest) (*EnquiryResponse, error) {
	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	enquiry := &domain.Enquiry{
		Name:    strings.TrimSpace(req.Name),
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
		Status:  domain.EnquiryPending,
	}

	created, err := s.enquiryRepo.Create(ctx, enquiry)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: enquiry id=%d created", created.ID)
	return fromDomainEnquiry(created), nil
}

// List fetches enquiries for the admin panel, optionally by status
func (s *Service) List(ctx context.Context, status *string) (*EnquiryListResponse, error) {
	var domainStatus *domain.EnquiryStatus
	if status != nil {
		target := domain.EnquiryStatus(*status)
		if !domain.ValidEnquiryStatus(target) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *status)
		}
		domainStatus = &target
	}

	enquiries, err := s.enquiryRepo.List(ctx, domainStatus)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return fromDomainEnquiryList(enquiries), nil
}

// UpdateStatus moves an enquiry through triage
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) error {
	target := domain.EnquiryStatus(status)
	if !domain.ValidEnquiryStatus(target) {
		s.logger.Warn("UpdateStatus: invalid status=%s for enquiry id=%d", status, id)
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	if err := s.enquiryRepo.UpdateStatus(ctx, id, target); err != nil {
		if errors.Is(err, enquiryRepo.ErrEnquiryNotFound) {
			s.logger.Warn("UpdateStatus: enquiry id=%d not found", id)
			return ErrEnquiryNotFound
		}
		s.logger.Error("UpdateStatus: repository error for enquiry id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: enquiry id=%d is now %s", id, target)
	return nil
}

// CountPending returns the number of open enquiries for the dashboard
func (s *Service) CountPending(ctx context.Context) (int, error) {
	count, err := s.enquiryRepo.CountPending(ctx)
	if err != nil {
		s.logger.Error("CountPending: repository error: %v", err)
		return 0, fmt.Errorf("%w: CountPending - repository error: %v", ErrInternal, err)
	}
	return count, nil
}

func validateCreate(req *CreateEnquiryRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if len(req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}
	return nil
}
