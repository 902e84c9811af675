package submit_review

import "github.com/LeesureYatchs/Leisure-Yatchs/internal/service/reviews"

// SubmitReviewRequest HTTP request model
type SubmitReviewRequest struct {
	CustomerName string `json:"customerName" validate:"required,min=3,max=50"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	Comment      string `json:"comment" validate:"required,max=1000"`
}

// ToServiceRequest converts the HTTP request into the service request
func (r *SubmitReviewRequest) ToServiceRequest(yachtID int64) *reviews.SubmitReviewRequest {
	return &reviews.SubmitReviewRequest{
		YachtID:      yachtID,
		CustomerName: r.CustomerName,
		Rating:       r.Rating,
		Comment:      r.Comment,
	}
}
