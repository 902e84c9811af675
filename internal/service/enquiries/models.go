package enquiries

import (
	"time"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
)

// CreateEnquiryRequest carries the public contact form payload
type CreateEnquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// EnquiryResponse is the enquiry DTO
type EnquiryResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Status  string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EnquiryListResponse wraps a list of enquiries
type EnquiryListResponse struct {
	Enquiries []EnquiryResponse `json:"enquiries"`
}

func fromDomainEnquiry(e *domain.Enquiry) *EnquiryResponse {
	if e == nil {
		return nil
	}
	return &EnquiryResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Phone:     e.Phone,
		Subject:   e.Subject,
		Message:   e.Message,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func fromDomainEnquiryList(enquiries []*domain.Enquiry) *EnquiryListResponse {
	resp := &EnquiryListResponse{Enquiries: make([]EnquiryResponse, 0, len(enquiries))}
	for _, e := range enquiries {
		if dto := fromDomainEnquiry(e); dto != nil {
			resp.Enquiries = append(resp.Enquiries, *dto)
		}
	}
	return resp
}
