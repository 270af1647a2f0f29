// api/store/contact_store.go
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"flygoldfinch/api/models"
)

type ContactStore struct {
	db *sql.DB
}

// NewContactStore creates a new ContactStore instance.
func NewContactStore(db *sql.DB) *ContactStore {
	return &ContactStore{db: db}
}

// CreateContact inserts a new contact enquiry into the database.
func (s *ContactStore) CreateContact(ctx context.Context, contact *models.Contact) error {
	query := `
		INSERT INTO contacts (
			first_name, last_name, email, phone, adults, children,
			destination, travel_date, budget, message
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at;
	`
	err := s.db.QueryRowContext(ctx, query,
		contact.FirstName,
		contact.LastName,
		contact.Email,
		contact.Phone,
		contact.Adults,
		contact.Children,
		contact.Destination,
		contact.TravelDate,
		contact.Budget,
		contact.Message,
	).Scan(&contact.ID, &contact.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	log.Printf("Contact created in DB: ID=%d, Email=%s", contact.ID, contact.Email)
	return nil
}
