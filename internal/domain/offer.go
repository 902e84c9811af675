package domain

import "time"

// DiscountType defines how an offer's discount value is interpreted
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed" // flat amount off the hourly price
)

// OfferStatus represents the publication status of an offer
type OfferStatus string

const (
	OfferActive   OfferStatus = "active"
	OfferInactive OfferStatus = "inactive"
)

// Offer represents a time-bounded discount on a yacht's hourly price.
type Offer struct {
	ID            int64
	YachtID       int64
	Title         string
	DiscountType  DiscountType
	DiscountValue float64
	StartDate     time.Time
	EndDate       time.Time
	Status        OfferStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLiveOn returns true if the offer applies on the given calendar date.
func (o *Offer) IsLiveOn(date time.Time) bool {
	if o.Status != OfferActive {
		return false
	}
	day := truncateToDay(date)
	return !day.Before(truncateToDay(o.StartDate)) && !day.After(truncateToDay(o.EndDate))
}

// Apply returns the hourly price after the discount. Fixed discounts
// never push the price below zero.
func (o *Offer) Apply(hourlyPrice float64) float64 {
	switch o.DiscountType {
	case DiscountPercentage:
		discounted := hourlyPrice * (1 - o.DiscountValue/100)
		if discounted < 0 {
			return 0
		}
		return discounted
	case DiscountFixed:
		discounted := hourlyPrice - o.DiscountValue
		if discounted < 0 {
			return 0
		}
		return discounted
	default:
		return hourlyPrice
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// OffersFilter narrows offer listings
type OffersFilter struct {
	YachtID   *int64       // filter by yacht (optional)
	Status    *OfferStatus // filter by status (optional)
	LiveAfter *time.Time   // only offers with end_date on or after this day (optional)
}
