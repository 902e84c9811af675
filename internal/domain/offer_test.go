package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOffer_IsLiveOn(t *testing.T) {
	offer := &Offer{
		Status:    OfferActive,
		StartDate: day(2026, 9, 1),
		EndDate:   day(2026, 9, 30),
	}

	assert.True(t, offer.IsLiveOn(day(2026, 9, 1)))
	assert.True(t, offer.IsLiveOn(day(2026, 9, 15)))
	assert.True(t, offer.IsLiveOn(day(2026, 9, 30)))
	assert.False(t, offer.IsLiveOn(day(2026, 8, 31)))
	assert.False(t, offer.IsLiveOn(day(2026, 10, 1)))

	// A mid-day timestamp still counts as within the last day.
	assert.True(t, offer.IsLiveOn(time.Date(2026, 9, 30, 18, 30, 0, 0, time.UTC)))

	offer.Status = OfferInactive
	assert.False(t, offer.IsLiveOn(day(2026, 9, 15)))
}

func TestOffer_Apply(t *testing.T) {
	percentage := &Offer{DiscountType: DiscountPercentage, DiscountValue: 20}
	assert.InDelta(t, 800.0, percentage.Apply(1000), 0.001)

	fixed := &Offer{DiscountType: DiscountFixed, DiscountValue: 150}
	assert.InDelta(t, 850.0, fixed.Apply(1000), 0.001)

	// fixed discount never goes below zero
	bigFixed := &Offer{DiscountType: DiscountFixed, DiscountValue: 2000}
	assert.Zero(t, bigFixed.Apply(1000))

	unknown := &Offer{DiscountType: "mystery", DiscountValue: 50}
	assert.InDelta(t, 1000.0, unknown.Apply(1000), 0.001)
}
