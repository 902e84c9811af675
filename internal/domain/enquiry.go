package domain

import "time"

// EnquiryStatus represents the triage state of a contact-form enquiry
type EnquiryStatus string

const (
	EnquiryPending   EnquiryStatus = "pending"
	EnquiryResponded EnquiryStatus = "responded"
	EnquiryClosed    EnquiryStatus = "closed"
)

// Enquiry represents a message submitted through the contact form.
type Enquiry struct {
	ID      int64
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
	Status  EnquiryStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen returns true if the enquiry still needs attention.
func (e *Enquiry) IsOpen() bool {
	return e.Status == EnquiryPending
}

// ValidEnquiryStatus reports whether s is a known enquiry status.
func ValidEnquiryStatus(s EnquiryStatus) bool {
	switch s {
	case EnquiryPending, EnquiryResponded, EnquiryClosed:
		return true
	default:
		return false
	}
}
