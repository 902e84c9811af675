package domain

import "time"

// ReviewStatus represents the moderation state of a customer review
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// Review represents a customer review of a yacht. Reviews land pending
// and are only shown publicly once approved.
type Review struct {
	ID           int64
	YachtID      int64
	CustomerName string
	Rating       int // 1..5 stars
	Comment      string
	Status       ReviewStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsVisible returns true if the review may appear on the public site.
func (r *Review) IsVisible() bool {
	return r.Status == ReviewApproved
}

// ReviewsFilter narrows review listings
type ReviewsFilter struct {
	YachtID *int64        // filter by yacht (optional)
	Status  *ReviewStatus // filter by moderation state (optional)
}
