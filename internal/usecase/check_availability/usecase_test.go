package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error

	gotYachtID  int64
	gotStatuses []domain.BookingStatus
	calls       int
}

func (f *fakeBookingRepo) GetByYachtAndDate(_ context.Context, yachtID int64, _ time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	f.calls++
	f.gotYachtID = yachtID
	f.gotStatuses = statuses
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
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

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func booking(t *testing.T, id int64, start, end string, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		ID:        id,
		YachtID:   1,
		StartTime: mustTime(t, start),
		EndTime:   mustTime(t, end),
		Status:    status,
	}
}

func newUseCase(repo *fakeBookingRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func testDate() time.Time {
	return time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "non-positive yacht id",
			req:     &Request{YachtID: 0, Date: testDate(), StartTime: mustTime(t, "10:00"), DurationHours: 2},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "non-positive duration",
			req:     &Request{YachtID: 1, Date: testDate(), StartTime: mustTime(t, "10:00"), DurationHours: 0},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero date",
			req:     &Request{YachtID: 1, StartTime: mustTime(t, "10:00"), DurationHours: 2},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty start time",
			req:     &Request{YachtID: 1, Date: testDate(), DurationHours: 2},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "date in the past",
			req:     &Request{YachtID: 1, Date: time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC), StartTime: mustTime(t, "10:00"), DurationHours: 2},
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{}
			uc := newUseCase(repo, testNow)

			resp, err := uc.Execute(context.Background(), tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, repo.calls, "repository must not be hit on invalid input")
		})
	}
}

func TestExecute_FreeDay(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newUseCase(repo, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		YachtID:       7,
		Date:          testDate(),
		StartTime:     mustTime(t, "10:00"),
		DurationHours: 4,
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Nil(t, resp.Conflict)
	assert.Nil(t, resp.SuggestedStart)
	assert.Equal(t, "14:00", resp.EndTime.String())
	assert.Empty(t, resp.BookedSlots)

	assert.Equal(t, int64(7), repo.gotYachtID)
	assert.Equal(t, domain.OccupyingStatuses, repo.gotStatuses)
}

func TestExecute_BackToBackIsNotConflict(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking(t, 1, "08:00", "10:00", domain.StatusConfirmed),
		booking(t, 2, "14:00", "16:00", domain.StatusPending),
	}}
	uc := newUseCase(repo, testNow)

	// Starts exactly when one booking ends and ends exactly when the next starts
	resp, err := uc.Execute(context.Background(), &Request{
		YachtID:       1,
		Date:          testDate(),
		StartTime:     mustTime(t, "10:00"),
		DurationHours: 4,
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Nil(t, resp.Conflict)
	assert.Len(t, resp.BookedSlots, 2)
}

func TestExecute_ConflictReportsEarliestOverlap(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking(t, 1, "09:00", "11:00", domain.StatusConfirmed),
		booking(t, 2, "12:00", "15:00", domain.StatusPending),
	}}
	uc := newUseCase(repo, testNow)

	// Requested 10:00-14:00 overlaps both; the earliest one wins
	resp, err := uc.Execute(context.Background(), &Request{
		YachtID:       1,
		Date:          testDate(),
		StartTime:     mustTime(t, "10:00"),
		DurationHours: 4,
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	require.NotNil(t, resp.Conflict)
	assert.Equal(t, "09:00", resp.Conflict.StartTime.String())
	assert.Equal(t, "11:00", resp.Conflict.EndTime.String())
	assert.Equal(t, string(domain.StatusConfirmed), resp.Conflict.Status)

	// Suggested start is the conflict's end plus the turnaround hour
	require.NotNil(t, resp.SuggestedStart)
	assert.Equal(t, "12:00", resp.SuggestedStart.String())
}

func TestExecute_ContainedWindowConflicts(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking(t, 1, "08:00", "20:00", domain.StatusConfirmed),
	}}
	uc := newUseCase(repo, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		YachtID:       1,
		Date:          testDate(),
		StartTime:     mustTime(t, "10:00"),
		DurationHours: 2,
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	require.NotNil(t, resp.Conflict)
	assert.Equal(t, "08:00", resp.Conflict.StartTime.String())
}

func TestExecute_SuggestedStartWrapsMidnight(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking(t, 1, "20:00", "23:30", domain.StatusConfirmed),
	}}
	uc := newUseCase(repo, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		YachtID:       1,
		Date:          testDate(),
		StartTime:     mustTime(t, "21:00"),
		DurationHours: 2,
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	require.NotNil(t, resp.SuggestedStart)
	assert.Equal(t, "00:30", resp.SuggestedStart.String())
}

func TestExecute_EndTimeWrapsMidnight(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newUseCase(repo, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		YachtID:       1,
		Date:          testDate(),
		StartTime:     mustTime(t, "23:00"),
		DurationHours: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, "02:00", resp.EndTime.String())
}

func TestExecute_RetrievalFailure(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := newUseCase(repo, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		YachtID:       1,
		Date:          testDate(),
		StartTime:     mustTime(t, "10:00"),
		DurationHours: 2,
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrBookingsRetrieval)
}

func TestExecute_IsIdempotent(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking(t, 1, "09:00", "11:00", domain.StatusPending),
	}}
	uc := newUseCase(repo, testNow)

	req := &Request{
		YachtID:       1,
		Date:          testDate(),
		StartTime:     mustTime(t, "10:00"),
		DurationHours: 2,
	}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, repo.calls)
}

func TestExecute_NonOccupyingBookingIsIgnored(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking(t, 1, "10:00", "12:00", domain.StatusCancelled),
	}}
	uc := newUseCase(repo, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		YachtID:       1,
		Date:          testDate(),
		StartTime:     mustTime(t, "10:00"),
		DurationHours: 2,
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Nil(t, resp.Conflict)
}

func TestExecute_WrappedEndTimeComparesWithinSameDay(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking(t, 1, "22:00", "23:30", domain.StatusConfirmed),
	}}
	uc := newUseCase(repo, testNow)

	// A window wrapping past midnight carries an early-morning end time,
	// which orders before every evening start in the clock-string
	// comparison. 23:00 with 3 hours therefore does not register against
	// the 22:00-23:30 charter.
	resp, err := uc.Execute(context.Background(), &Request{
		YachtID:       1,
		Date:          testDate(),
		StartTime:     mustTime(t, "23:00"),
		DurationHours: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, "02:00", resp.EndTime.String())
	assert.True(t, resp.Available)
	assert.Nil(t, resp.Conflict)
}
