package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// Client sends transactional mail over SMTP
type Client struct {
	dialer    *gomail.Dialer
	from      string
	adminAddr string
	log       Logger
}

// NewClient creates a mail client for the given SMTP server.
// adminAddr receives internal copies of booking notifications.
func NewClient(host string, port int, username, password, from, adminAddr string, log Logger) *Client {
	return &Client{
		dialer:    gomail.NewDialer(host, port, username, password),
		from:      from,
		adminAddr: adminAddr,
		log:       log,
	}
}

// SendBookingRequested notifies the admin of a new booking request and
// sends the customer an acknowledgement with their reference.
func (c *Client) SendBookingRequested(email BookingEmail) error {
	adminSubject := fmt.Sprintf("New booking request %s - %s", email.Reference, email.YachtName)
	adminBody := fmt.Sprintf(
		"<h2>New booking request</h2>"+
			"<p>Reference: <b>%s</b></p>"+
			"<p>Yacht: %s</p>"+
			"<p>Customer: %s (%s)</p>"+
			"<p>Date: %s, %s to %s</p>"+
			"<p>Guests: %d, event: %s</p>"+
			"<p>Total: AED %.2f</p>",
		email.Reference, email.YachtName, email.CustomerName, email.CustomerEmail,
		email.Date, email.StartTime, email.EndTime,
		email.Guests, email.EventType, email.TotalAmount,
	)
	if err := c.send(c.adminAddr, adminSubject, adminBody); err != nil {
		return err
	}

	customerSubject := fmt.Sprintf("We received your booking request %s", email.Reference)
	customerBody := fmt.Sprintf(
		"<h2>Thank you, %s!</h2>"+
			"<p>We received your request for <b>%s</b> on %s from %s to %s.</p>"+
			"<p>Your reference is <b>%s</b>. Our team will confirm shortly.</p>",
		email.CustomerName, email.YachtName, email.Date, email.StartTime, email.EndTime,
		email.Reference,
	)
	return c.send(email.CustomerEmail, customerSubject, customerBody)
}

// SendBookingConfirmed tells the customer their booking is locked in.
func (c *Client) SendBookingConfirmed(email BookingEmail) error {
	subject := fmt.Sprintf("Booking %s confirmed - %s", email.Reference, email.YachtName)
	body := fmt.Sprintf(
		"<h2>Your booking is confirmed!</h2>"+
			"<p>%s on %s, %s to %s.</p>"+
			"<p>Reference: <b>%s</b>. Total: AED %.2f.</p>"+
			"<p>See you on board, %s!</p>",
		email.YachtName, email.Date, email.StartTime, email.EndTime,
		email.Reference, email.TotalAmount, email.CustomerName,
	)
	return c.send(email.CustomerEmail, subject, body)
}

func (c *Client) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := c.dialer.DialAndSend(m); err != nil {
		c.log.Error("Failed to send mail to %s: %v", to, err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	c.log.Info("Sent mail to %s: %s", to, subject)
	return nil
}
