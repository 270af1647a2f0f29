// api/email/contact.go

// Package email sends transactional mail through Resend.
package email

import (
	"fmt"
	"os"
	"strings"

	"github.com/resend/resend-go/v2"

	"flygoldfinch/api/data"
	"flygoldfinch/api/models"
)

// Mailer sends the contact form confirmation email. A nil Mailer is a valid
// no-op, so an unset API key disables email without disabling the form.
type Mailer struct {
	client *resend.Client
	from   string
}

// NewMailerFromEnv builds a Mailer from RESEND_API_KEY and CONTACT_FROM_EMAIL.
// Returns nil when no API key is configured.
func NewMailerFromEnv() *Mailer {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil
	}
	from := os.Getenv("CONTACT_FROM_EMAIL")
	if from == "" {
		from = "Fly Goldfinch <hello@flygoldfinch.com>"
	}
	return &Mailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// SendContactConfirmation emails the enquirer a thank-you note with the
// itineraries matching their requested destination.
func (m *Mailer) SendContactConfirmation(contact *models.Contact) error {
	if m == nil {
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{contact.Email},
		Subject: "Your Fly Goldfinch Travel Enquiry",
		Html:    contactConfirmationHTML(contact),
	}
	if _, err := m.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send contact confirmation email: %w", err)
	}
	return nil
}

func contactConfirmationHTML(contact *models.Contact) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: sans-serif; color: #333">`)
	fmt.Fprintf(&b, "<h1>Hello %s!</h1>", contact.FirstName)
	fmt.Fprintf(&b, "<p>Thank you for reaching out to Fly Goldfinch. We're excited to help you plan your trip to %s.</p>", contact.Destination)

	matches := data.ItinerariesByDestination(contact.Destination)
	if len(matches) > 0 {
		b.WriteString("<h2>Relevant Itineraries for You</h2>")
		for _, itinerary := range matches {
			b.WriteString(`<div style="border: 1px solid #eee; padding: 15px; border-radius: 8px; margin-bottom: 20px">`)
			fmt.Fprintf(&b, `<h3 style="margin: 0 0 10px 0; color: #D4AF37">%s</h3>`, itinerary.Title)
			fmt.Fprintf(&b, "<p><strong>Duration:</strong> %d Days, %d Nights</p>", itinerary.Duration.Days, itinerary.Duration.Nights)
			fmt.Fprintf(&b, "<p><strong>Starting from:</strong> &#8377;%d</p>", itinerary.Price)
			fmt.Fprintf(&b, `<a href="https://flygoldfinch.com/itineraries/%s" style="background-color: #002147; color: white; padding: 8px 16px; text-decoration: none; border-radius: 4px">View Details</a>`, itinerary.Slug)
			b.WriteString("</div>")
		}
	} else {
		b.WriteString("<p>We'll be in touch soon with some customized options for you!</p>")
	}

	b.WriteString(`<p style="margin-top: 30px">Best regards,<br />The Fly Goldfinch Team</p>`)
	b.WriteString("</div>")
	return b.String()
}
