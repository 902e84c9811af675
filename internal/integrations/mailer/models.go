package mailer

// BookingEmail carries the booking details rendered into notification messages
type BookingEmail struct {
	Reference     string
	YachtName     string
	CustomerName  string
	CustomerEmail string
	Date          string // YYYY-MM-DD
	StartTime     string // HH:MM
	EndTime       string // HH:MM
	Guests        int
	EventType     string
	TotalAmount   float64
}
