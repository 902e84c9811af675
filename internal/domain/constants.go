package domain

// Business validation constants
const (
	MinCustomerNameLength = 3
	MaxCustomerNameLength = 50
	MinPhoneLength        = 7
	MaxPhoneLength        = 15
	MaxMessageLength      = 1000

	MinDurationHours = 1
	MaxDurationHours = 24

	MinRating = 1
	MaxRating = 5
)

// TurnaroundBufferMinutes is the fixed gap left after a conflicting
// booking's end time when suggesting an alternative start, so the crew
// can clean and prepare the yacht.
const TurnaroundBufferMinutes = 60

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses are the booking statuses that block a yacht's time
// window when checking availability.
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses are the statuses hidden from admin listings unless
// explicitly requested.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
}

// EventTypes lists the charter occasions a customer can pick on the
// booking form.
var EventTypes = []string{
	"Corporate Event",
	"F1 Grand Prix",
	"New Year's Eve",
	"Fishing Trip",
	"Watersports Activities",
	"Marriage Proposal",
	"Birthday Celebration",
	"Anniversary Cruise",
	"Romantic Dinner",
	"General Event",
}

// IsValidEventType reports whether s is a known event type.
func IsValidEventType(s string) bool {
	for _, t := range EventTypes {
		if t == s {
			return true
		}
	}
	return false
}
