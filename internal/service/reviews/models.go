package reviews

import (
	"time"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
)

// SubmitReviewRequest carries the public review form payload
type SubmitReviewRequest struct {
	YachtID      int64  `json:"-"`
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

// ReviewResponse is the review DTO
type ReviewResponse struct {
	ID           int64  `json:"id"`
	YachtID      int64  `json:"yachtId"`
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	Status       string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReviewListResponse wraps a list of reviews. AverageRating is only
// filled for the public per-yacht listing.
type ReviewListResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating *float64         `json:"averageRating,omitempty"`
}

func fromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}
	return &ReviewResponse{
		ID:           r.ID,
		YachtID:      r.YachtID,
		CustomerName: r.CustomerName,
		Rating:       r.Rating,
		Comment:      r.Comment,
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func fromDomainReviewList(reviews []*domain.Review) *ReviewListResponse {
	resp := &ReviewListResponse{Reviews: make([]ReviewResponse, 0, len(reviews))}
	for _, r := range reviews {
		if dto := fromDomainReview(r); dto != nil {
			resp.Reviews = append(resp.Reviews, *dto)
		}
	}
	return resp
}
