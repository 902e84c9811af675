package offers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
	offerRepo "github.com/LeesureYatchs/Leisure-Yatchs/internal/infra/storage/offer"
	yachtRepo "github.com/LeesureYatchs/Leisure-Yatchs/internal/infra/storage/yacht"
)

type fakeOfferRepo struct {
	created    *domain.Offer
	list       []*domain.Offer
	lastFilter domain.OffersFilter
	statusID   int64
	status     domain.OfferStatus
	updateErr  error
	active     int
}

func (f *fakeOfferRepo) Create(_ context.Context, offer *domain.Offer) (*domain.Offer, error) {
	f.created = offer
	out := *offer
	out.ID = 7
	return &out, nil
}

func (f *fakeOfferRepo) List(_ context.Context, filter domain.OffersFilter) ([]*domain.Offer, error) {
	f.lastFilter = filter
	return f.list, nil
}

func (f *fakeOfferRepo) UpdateStatus(_ context.Context, id int64, status domain.OfferStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.statusID = id
	f.status = status
	return nil
}

func (f *fakeOfferRepo) CountActive(_ context.Context) (int, error) {
	return f.active, nil
}

type fakeYachtRepo struct {
	missing bool
}

func (f *fakeYachtRepo) GetByID(_ context.Context, id int64) (*domain.Yacht, error) {
	if f.missing {
		return nil, yachtRepo.ErrYachtNotFound
	}
	return &domain.Yacht{ID: id, Name: "Serenity"}, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validCreateRequest() *CreateOfferRequest {
	return &CreateOfferRequest{
		YachtID:       1,
		Title:         "Summer special",
		DiscountType:  "percentage",
		DiscountValue: 20,
		StartDate:     "2026-06-01",
		EndDate:       "2026-06-30",
	}
}

func TestService_Create(t *testing.T) {
	t.Run("CreatesActiveOffer", func(t *testing.T) {
		repo := &fakeOfferRepo{}
		svc := NewService(repo, &fakeYachtRepo{}, nopLogger{})

		resp, err := svc.Create(context.Background(), validCreateRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "active", resp.Status)
		require.NotNil(t, repo.created)
		assert.Equal(t, domain.OfferActive, repo.created.Status)
	})

	t.Run("RejectsUnknownYacht", func(t *testing.T) {
		svc := NewService(&fakeOfferRepo{}, &fakeYachtRepo{missing: true}, nopLogger{})

		_, err := svc.Create(context.Background(), validCreateRequest())

		assert.ErrorIs(t, err, ErrYachtNotFound)
	})

	t.Run("Validation", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(req *CreateOfferRequest)
		}{
			{"EmptyTitle", func(r *CreateOfferRequest) { r.Title = "  " }},
			{"UnknownDiscountType", func(r *CreateOfferRequest) { r.DiscountType = "bogus" }},
			{"NegativeValue", func(r *CreateOfferRequest) { r.DiscountValue = -5 }},
			{"PercentageOverHundred", func(r *CreateOfferRequest) { r.DiscountValue = 120 }},
			{"BadStartDate", func(r *CreateOfferRequest) { r.StartDate = "June 1st" }},
			{"EndBeforeStart", func(r *CreateOfferRequest) { r.EndDate = "2026-05-01" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := NewService(&fakeOfferRepo{}, &fakeYachtRepo{}, nopLogger{})
				req := validCreateRequest()
				tt.mutate(req)

				_, err := svc.Create(context.Background(), req)

				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}

func TestService_List(t *testing.T) {
	t.Run("PublicListingFiltersToLiveOffers", func(t *testing.T) {
		repo := &fakeOfferRepo{}
		svc := NewService(repo, &fakeYachtRepo{}, nopLogger{})
		svc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 6, 15, 13, 45, 0, 0, time.UTC)}

		_, err := svc.List(context.Background(), &ListOffersRequest{PublicOnly: true})

		require.NoError(t, err)
		require.NotNil(t, repo.lastFilter.Status)
		assert.Equal(t, domain.OfferActive, *repo.lastFilter.Status)
		require.NotNil(t, repo.lastFilter.LiveAfter)
		assert.Equal(t, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), *repo.lastFilter.LiveAfter)
	})

	t.Run("AdminListingSeesEverything", func(t *testing.T) {
		repo := &fakeOfferRepo{list: []*domain.Offer{{ID: 1}, {ID: 2}}}
		svc := NewService(repo, &fakeYachtRepo{}, nopLogger{})

		resp, err := svc.List(context.Background(), &ListOffersRequest{})

		require.NoError(t, err)
		assert.Nil(t, repo.lastFilter.Status)
		assert.Nil(t, repo.lastFilter.LiveAfter)
		assert.Len(t, resp.Offers, 2)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("DeactivatesOffer", func(t *testing.T) {
		repo := &fakeOfferRepo{}
		svc := NewService(repo, &fakeYachtRepo{}, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 3, "inactive")

		require.NoError(t, err)
		assert.Equal(t, int64(3), repo.statusID)
		assert.Equal(t, domain.OfferInactive, repo.status)
	})

	t.Run("RejectsUnknownStatus", func(t *testing.T) {
		svc := NewService(&fakeOfferRepo{}, &fakeYachtRepo{}, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 3, "paused")

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("MapsMissingOffer", func(t *testing.T) {
		repo := &fakeOfferRepo{updateErr: offerRepo.ErrOfferNotFound}
		svc := NewService(repo, &fakeYachtRepo{}, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 99, "inactive")

		assert.ErrorIs(t, err, ErrOfferNotFound)
	})
}

func TestService_CountActive(t *testing.T) {
	repo := &fakeOfferRepo{active: 4}
	svc := NewService(repo, &fakeYachtRepo{}, nopLogger{})

	count, err := svc.CountActive(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
