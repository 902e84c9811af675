package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
	bookingRepo "github.com/LeesureYatchs/Leisure-Yatchs/internal/infra/storage/booking"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/integrations/mailer"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/bookings/models"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/ptr"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/types"
)

type fakeBookingRepo struct {
	booking  *domain.Booking
	getErr   error
	list     []*domain.Booking
	counts   []*domain.BookingStatusCount
	statusID int64
	status   domain.BookingStatus
	updated  *domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.list, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.statusID = id
	f.status = status
	return nil
}

func (f *fakeBookingRepo) UpdateDetails(_ context.Context, booking *domain.Booking) error {
	f.updated = booking
	return nil
}

func (f *fakeBookingRepo) StatusCounts(_ context.Context) ([]*domain.BookingStatusCount, error) {
	return f.counts, nil
}

type fakeYachtRepo struct {
	yacht *domain.Yacht
}

func (f *fakeYachtRepo) GetByID(_ context.Context, _ int64) (*domain.Yacht, error) {
	if f.yacht == nil {
		return nil, errors.New("no yacht")
	}
	return f.yacht, nil
}

type fakeMailer struct {
	confirmed []mailer.BookingEmail
	err       error
}

func (f *fakeMailer) SendBookingConfirmed(email mailer.BookingEmail) error {
	f.confirmed = append(f.confirmed, email)
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func pendingBooking(t *testing.T) *domain.Booking {
	return &domain.Booking{
		ID:            9,
		Reference:     "LY-ABCD1234",
		YachtID:       2,
		CustomerName:  "Amelia Hart",
		CustomerEmail: "amelia@example.com",
		CustomerPhone: "+971501234567",
		BookingDate:   time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     mustTime(t, "10:00"),
		EndTime:       mustTime(t, "14:00"),
		DurationHours: 4,
		Guests:        8,
		EventType:     "Birthday Celebration",
		TotalAmount:   4000,
		Status:        domain.StatusPending,
	}
}

type fixture struct {
	svc    *Service
	repo   *fakeBookingRepo
	yachts *fakeYachtRepo
	mail   *fakeMailer
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		repo:   &fakeBookingRepo{booking: pendingBooking(t)},
		yachts: &fakeYachtRepo{yacht: &domain.Yacht{ID: 2, Name: "Serenity 88"}},
		mail:   &fakeMailer{},
	}
	f.svc = NewService(f.repo, f.yachts, f.mail, nopLogger{})
	return f
}

func TestGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFixture(t)

		resp, err := f.svc.GetByID(context.Background(), 9)

		require.NoError(t, err)
		assert.Equal(t, "LY-ABCD1234", resp.Reference)
		assert.Equal(t, "2026-06-15", resp.BookingDate)
		assert.Equal(t, "10:00", resp.StartTime)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.getErr = bookingRepo.ErrBookingNotFound

		_, err := f.svc.GetByID(context.Background(), 9)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestUpdateStatus_ConfirmSendsMail(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.UpdateStatus(context.Background(), 9, &models.UpdateStatusRequest{Status: "confirmed"})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, f.repo.status)

	require.Len(t, f.mail.confirmed, 1)
	assert.Equal(t, "Serenity 88", f.mail.confirmed[0].YachtName)
	assert.Equal(t, "LY-ABCD1234", f.mail.confirmed[0].Reference)
}

func TestUpdateStatus_MailFailureKeepsStatusChange(t *testing.T) {
	f := newFixture(t)
	f.mail.err = errors.New("smtp unreachable")

	resp, err := f.svc.UpdateStatus(context.Background(), 9, &models.UpdateStatusRequest{Status: "confirmed"})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		current domain.BookingStatus
		target  string
		wantErr error
	}{
		{name: "pending to cancelled", current: domain.StatusPending, target: "cancelled"},
		{name: "confirmed to completed", current: domain.StatusConfirmed, target: "completed"},
		{name: "pending to completed", current: domain.StatusPending, target: "completed", wantErr: ErrInvalidTransition},
		{name: "cancelled to confirmed", current: domain.StatusCancelled, target: "confirmed", wantErr: ErrInvalidTransition},
		{name: "same status", current: domain.StatusPending, target: "pending", wantErr: ErrInvalidTransition},
		{name: "unknown status", current: domain.StatusPending, target: "archived", wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.booking.Status = tt.current

			_, err := f.svc.UpdateStatus(context.Background(), 9, &models.UpdateStatusRequest{Status: tt.target})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUpdateDetails_RecomputesEndTime(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.UpdateDetails(context.Background(), 9, &models.UpdateBookingRequest{
		StartTime:     ptr.Ptr("16:00"),
		DurationHours: ptr.Ptr(6),
	})

	require.NoError(t, err)
	assert.Equal(t, "16:00", resp.StartTime)
	assert.Equal(t, "22:00", resp.EndTime)
	require.NotNil(t, f.repo.updated)
	assert.Equal(t, 6, f.repo.updated.DurationHours)
}

func TestUpdateDetails_CompletedNotEditable(t *testing.T) {
	f := newFixture(t)
	f.repo.booking.Status = domain.StatusCompleted

	_, err := f.svc.UpdateDetails(context.Background(), 9, &models.UpdateBookingRequest{
		Guests: ptr.Ptr(10),
	})

	assert.ErrorIs(t, err, ErrNotEditable)
	assert.Nil(t, f.repo.updated)
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	f.repo.counts = []*domain.BookingStatusCount{
		{Status: domain.StatusPending, Count: 3, Amount: 9000},
		{Status: domain.StatusConfirmed, Count: 2, Amount: 8000},
		{Status: domain.StatusCompleted, Count: 5, Amount: 20000},
		{Status: domain.StatusCancelled, Count: 1, Amount: 1500},
	}

	resp, err := f.svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 11, resp.TotalBookings)
	assert.Equal(t, 3, resp.PendingCount)
	// Pending and cancelled totals do not count as revenue
	assert.Equal(t, float64(28000), resp.Revenue)
	assert.Len(t, resp.ByStatus, 4)
}
