package create_enquiry

import "github.com/LeesureYatchs/Leisure-Yatchs/internal/service/enquiries"

// CreateEnquiryRequest HTTP request model
type CreateEnquiryRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,min=7,max=20"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,max=1000"`
}

// ToServiceRequest converts the HTTP request into the service request
func (r *CreateEnquiryRequest) ToServiceRequest() *enquiries.CreateEnquiryRequest {
	return &enquiries.CreateEnquiryRequest{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
	}
}
