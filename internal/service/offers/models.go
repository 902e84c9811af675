package offers

import (
	"time"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
)

// CreateOfferRequest carries the admin create payload
type CreateOfferRequest struct {
	YachtID       int64   `json:"yachtId"`
	Title         string  `json:"title"`
	DiscountType  string  `json:"discountType"` // percentage or fixed
	DiscountValue float64 `json:"discountValue"`
	StartDate     string  `json:"startDate"` // "2026-06-01"
	EndDate       string  `json:"endDate"`   // "2026-06-30"
}

// ListOffersRequest filters the offer listing
type ListOffersRequest struct {
	YachtID    *int64 // filter by yacht (optional)
	PublicOnly bool   // public listings see active, unexpired offers only
}

// OfferResponse is the offer DTO
type OfferResponse struct {
	ID            int64   `json:"id"`
	YachtID       int64   `json:"yachtId"`
	Title         string  `json:"title"`
	DiscountType  string  `json:"discountType"`
	DiscountValue float64 `json:"discountValue"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	Status        string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OfferListResponse wraps a list of offers
type OfferListResponse struct {
	Offers []OfferResponse `json:"offers"`
}

func fromDomainOffer(o *domain.Offer) *OfferResponse {
	if o == nil {
		return nil
	}
	return &OfferResponse{
		ID:            o.ID,
		YachtID:       o.YachtID,
		Title:         o.Title,
		DiscountType:  string(o.DiscountType),
		DiscountValue: o.DiscountValue,
		StartDate:     o.StartDate.Format(domain.DateFormat),
		EndDate:       o.EndDate.Format(domain.DateFormat),
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func fromDomainOfferList(offers []*domain.Offer) *OfferListResponse {
	resp := &OfferListResponse{Offers: make([]OfferResponse, 0, len(offers))}
	for _, o := range offers {
		if dto := fromDomainOffer(o); dto != nil {
			resp.Offers = append(resp.Offers, *dto)
		}
	}
	return resp
}
