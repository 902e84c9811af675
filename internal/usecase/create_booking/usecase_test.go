package create_booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
	yachtRepo "github.com/LeesureYatchs/Leisure-Yatchs/internal/infra/storage/yacht"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/integrations/mailer"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/types"
)

type fakeBookingRepo struct {
	existing  []*domain.Booking
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	booking.ID = 101
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetByYachtAndDate(_ context.Context, _ int64, _ time.Time, _ []domain.BookingStatus) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeYachtRepo struct {
	yacht *domain.Yacht
	err   error
}

func (f *fakeYachtRepo) GetByID(_ context.Context, _ int64) (*domain.Yacht, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.yacht, nil
}

type fakeOfferRepo struct {
	offers []*domain.Offer
	err    error
}

func (f *fakeOfferRepo) GetLiveForYacht(_ context.Context, _ int64, _ time.Time) ([]*domain.Offer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.offers, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMailer struct {
	sent []mailer.BookingEmail
	err  error
}

func (f *fakeMailer) SendBookingRequested(email mailer.BookingEmail) error {
	f.sent = append(f.sent, email)
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func testDate() time.Time {
	return time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func testYacht() *domain.Yacht {
	return &domain.Yacht{
		ID:           1,
		Name:         "Serenity 88",
		Capacity:     20,
		HourlyPrice:  1000,
		MinimumHours: 2,
		Status:       domain.YachtActive,
	}
}

func validRequest(t *testing.T) *Request {
	return &Request{
		YachtID:       1,
		CustomerName:  "Amelia Hart",
		CustomerEmail: "amelia@example.com",
		CustomerPhone: "+971501234567",
		Date:          testDate(),
		StartTime:     mustTime(t, "10:00"),
		DurationHours: 4,
		Guests:        8,
		EventType:     "Birthday Celebration",
	}
}

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	yachts   *fakeYachtRepo
	offers   *fakeOfferRepo
	mail     *fakeMailer
}

func newFixture() *fixture {
	f := &fixture{
		bookings: &fakeBookingRepo{},
		yachts:   &fakeYachtRepo{yacht: testYacht()},
		offers:   &fakeOfferRepo{},
		mail:     &fakeMailer{},
	}
	f.uc = NewUseCase(f.bookings, f.yachts, f.offers, passthroughTxManager{}, f.mail, nopLogger{})
	f.uc.timeProvider = &fixedTimeProvider{now: testNow}
	return f
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "14:00", resp.EndTime.String())
	assert.Equal(t, float64(4000), resp.TotalAmount)

	assert.True(t, strings.HasPrefix(resp.Reference, "LY-"), "reference %q", resp.Reference)
	assert.Len(t, resp.Reference, 11)

	require.Len(t, f.mail.sent, 1)
	assert.Equal(t, resp.Reference, f.mail.sent[0].Reference)
	assert.Equal(t, "Serenity 88", f.mail.sent[0].YachtName)
}

func TestExecute_MessageIsOptional(t *testing.T) {
	t.Run("WithoutMessage", func(t *testing.T) {
		f := newFixture()
		req := validRequest(t)
		req.Message = nil

		_, err := f.uc.Execute(context.Background(), req)

		// The stored row keeps the message NULL; the column is nullable
		require.NoError(t, err)
		require.NotNil(t, f.bookings.created)
		assert.Nil(t, f.bookings.created.Message)
	})

	t.Run("WithMessage", func(t *testing.T) {
		f := newFixture()
		req := validRequest(t)
		note := "Please prepare a birthday cake"
		req.Message = &note

		_, err := f.uc.Execute(context.Background(), req)

		require.NoError(t, err)
		require.NotNil(t, f.bookings.created.Message)
		assert.Equal(t, note, *f.bookings.created.Message)
	})
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{
			name:    "short name",
			mutate:  func(r *Request) { r.CustomerName = "Al" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "digits in name",
			mutate:  func(r *Request) { r.CustomerName = "Amelia 2nd" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad email",
			mutate:  func(r *Request) { r.CustomerEmail = "not-an-email" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "phone too short",
			mutate:  func(r *Request) { r.CustomerPhone = "12345" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero guests",
			mutate:  func(r *Request) { r.Guests = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "duration over a day",
			mutate:  func(r *Request) { r.DurationHours = 25 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown event type",
			mutate:  func(r *Request) { r.EventType = "Space Launch" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "past date",
			mutate:  func(r *Request) { r.Date = time.Date(2026, 5, 30, 0, 0, 0, 0, time.UTC) },
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest(t)
			tt.mutate(req)

			resp, err := f.uc.Execute(context.Background(), req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, f.bookings.created, "no booking may be written on invalid input")
		})
	}
}

func TestExecute_YachtChecks(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture()
		f.yachts.err = yachtRepo.ErrYachtNotFound

		_, err := f.uc.Execute(context.Background(), validRequest(t))
		assert.ErrorIs(t, err, ErrYachtNotFound)
	})

	t.Run("inactive", func(t *testing.T) {
		f := newFixture()
		f.yachts.yacht.Status = domain.YachtInactive

		_, err := f.uc.Execute(context.Background(), validRequest(t))
		assert.ErrorIs(t, err, ErrYachtNotBookable)
	})

	t.Run("too many guests", func(t *testing.T) {
		f := newFixture()
		req := validRequest(t)
		req.Guests = 21

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrTooManyGuests)
	})

	t.Run("below minimum hours", func(t *testing.T) {
		f := newFixture()
		f.yachts.yacht.MinimumHours = 6
		req := validRequest(t)
		req.DurationHours = 4

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrBelowMinimumHours)
	})
}

func TestExecute_OverlapRejected(t *testing.T) {
	f := newFixture()
	f.bookings.existing = []*domain.Booking{
		{
			ID:        5,
			YachtID:   1,
			StartTime: mustTime(t, "12:00"),
			EndTime:   mustTime(t, "16:00"),
			Status:    domain.StatusConfirmed,
		},
	}

	resp, err := f.uc.Execute(context.Background(), validRequest(t))

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrTimeSlotTaken)
	assert.Nil(t, f.bookings.created)
	assert.Empty(t, f.mail.sent)
}

func TestExecute_BackToBackAllowed(t *testing.T) {
	f := newFixture()
	f.bookings.existing = []*domain.Booking{
		{
			ID:        5,
			YachtID:   1,
			StartTime: mustTime(t, "06:00"),
			EndTime:   mustTime(t, "10:00"),
			Status:    domain.StatusConfirmed,
		},
	}

	resp, err := f.uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_OfferDiscountApplied(t *testing.T) {
	f := newFixture()
	f.offers.offers = []*domain.Offer{
		{
			ID:            3,
			YachtID:       1,
			DiscountType:  domain.DiscountPercentage,
			DiscountValue: 25,
			Status:        domain.OfferActive,
		},
	}

	resp, err := f.uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	// 1000/h with 25% off over 4 hours
	assert.Equal(t, float64(3000), resp.TotalAmount)
}

func TestExecute_OfferLookupFailureFallsBackToBasePrice(t *testing.T) {
	f := newFixture()
	f.offers.err = errors.New("connection refused")

	resp, err := f.uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Equal(t, float64(4000), resp.TotalAmount)
}

func TestExecute_MailFailureDoesNotFailBooking(t *testing.T) {
	f := newFixture()
	f.mail.err = errors.New("smtp unreachable")

	resp, err := f.uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Len(t, f.mail.sent, 1)
}
