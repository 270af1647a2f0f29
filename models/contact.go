// api/models/contact.go
package models

import "time"

// Contact is one submitted enquiry from the contact form.
type Contact struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Adults      string    `json:"adults"`
	Children    string    `json:"children"`
	Destination string    `json:"destination"`
	TravelDate  string    `json:"travelDate"`
	Budget      string    `json:"budget"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}
