package itineraries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
	itineraryRepo "github.com/LeesureYatchs/Leisure-Yatchs/internal/infra/storage/itinerary"
)

type fakeItineraryRepo struct {
	created   *domain.Itinerary
	updated   *domain.Itinerary
	list      []*domain.Itinerary
	updateErr error
	deleteErr error
	deletedID int64
}

func (f *fakeItineraryRepo) Create(_ context.Context, itinerary *domain.Itinerary) (*domain.Itinerary, error) {
	f.created = itinerary
	out := *itinerary
	out.ID = 5
	return &out, nil
}

func (f *fakeItineraryRepo) List(_ context.Context) ([]*domain.Itinerary, error) {
	return f.list, nil
}

func (f *fakeItineraryRepo) Update(_ context.Context, itinerary *domain.Itinerary) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = itinerary
	return nil
}

func (f *fakeItineraryRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Create(t *testing.T) {
	t.Run("JoinsLocationsIntoRoute", func(t *testing.T) {
		repo := &fakeItineraryRepo{}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Create(context.Background(), &SaveItineraryRequest{
			DurationLabel: "2 Hours",
			Locations:     []string{"Dubai Harbor", " JBR ", "Atlantis"},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
		assert.Equal(t, []string{"Dubai Harbor", "JBR", "Atlantis"}, resp.Locations)
		require.NotNil(t, repo.created)
		assert.Equal(t, "Dubai Harbor → JBR → Atlantis", repo.created.RouteDescription)
	})

	t.Run("RejectsEmptyLabel", func(t *testing.T) {
		svc := NewService(&fakeItineraryRepo{}, nopLogger{})

		_, err := svc.Create(context.Background(), &SaveItineraryRequest{
			DurationLabel: "  ",
			Locations:     []string{"Dubai Harbor"},
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("RejectsRouteWithoutLocations", func(t *testing.T) {
		svc := NewService(&fakeItineraryRepo{}, nopLogger{})

		_, err := svc.Create(context.Background(), &SaveItineraryRequest{
			DurationLabel: "3 Hours",
			Locations:     []string{"", "   "},
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_List(t *testing.T) {
	repo := &fakeItineraryRepo{list: []*domain.Itinerary{
		{ID: 1, DurationLabel: "2 Hours", RouteDescription: "Dubai Harbor → JBR"},
		{ID: 2, DurationLabel: "4 Hours", RouteDescription: "Dubai Harbor → Burj Al Arab → Atlantis"},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Itineraries, 2)
	assert.Equal(t, []string{"Dubai Harbor", "JBR"}, resp.Itineraries[0].Locations)
	assert.Equal(t, []string{"Dubai Harbor", "Burj Al Arab", "Atlantis"}, resp.Itineraries[1].Locations)
}

func TestService_Update(t *testing.T) {
	t.Run("RewritesRoute", func(t *testing.T) {
		repo := &fakeItineraryRepo{}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Update(context.Background(), 3, &SaveItineraryRequest{
			DurationLabel: "Full Day",
			Locations:     []string{"Dubai Marina Canal", "Blue Water Island"},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.ID)
		require.NotNil(t, repo.updated)
		assert.Equal(t, int64(3), repo.updated.ID)
		assert.Equal(t, "Dubai Marina Canal → Blue Water Island", repo.updated.RouteDescription)
	})

	t.Run("MapsMissingItinerary", func(t *testing.T) {
		repo := &fakeItineraryRepo{updateErr: itineraryRepo.ErrItineraryNotFound}
		svc := NewService(repo, nopLogger{})

		_, err := svc.Update(context.Background(), 42, &SaveItineraryRequest{
			DurationLabel: "Full Day",
			Locations:     []string{"Dubai Harbor"},
		})

		assert.ErrorIs(t, err, ErrItineraryNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("RemovesItinerary", func(t *testing.T) {
		repo := &fakeItineraryRepo{}
		svc := NewService(repo, nopLogger{})

		err := svc.Delete(context.Background(), 9)

		require.NoError(t, err)
		assert.Equal(t, int64(9), repo.deletedID)
	})

	t.Run("MapsMissingItinerary", func(t *testing.T) {
		repo := &fakeItineraryRepo{deleteErr: itineraryRepo.ErrItineraryNotFound}
		svc := NewService(repo, nopLogger{})

		err := svc.Delete(context.Background(), 9)

		assert.ErrorIs(t, err, ErrItineraryNotFound)
	})
}
