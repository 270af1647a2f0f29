// api/handlers/contact_handlers.go
package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"flygoldfinch/api/models"
)

// ContactStore persists contact form submissions.
type ContactStore interface {
	CreateContact(ctx context.Context, contact *models.Contact) error
}

// ContactMailer sends the post-submission confirmation email.
type ContactMailer interface {
	SendContactConfirmation(contact *models.Contact) error
}

type ContactHandlers struct {
	Contacts ContactStore
	Mailer   ContactMailer
}

func NewContactHandlers(contacts ContactStore, mailer ContactMailer) *ContactHandlers {
	return &ContactHandlers{
		Contacts: contacts,
		Mailer:   mailer,
	}
}

type contactRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	Adults      string `json:"adults"`
	Children    string `json:"children"`
	Destination string `json:"destination"`
	TravelDate  string `json:"travelDate"`
	Budget      string `json:"budget"`
	Message     string `json:"message"`
}

// SubmitContact stores a contact enquiry, then dispatches the confirmation
// email in the background. Email delivery is best-effort: a send failure is
// logged and never fails the submission.
func (h *ContactHandlers) SubmitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Error binding contact form JSON: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	contact := models.Contact{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Adults:      req.Adults,
		Children:    req.Children,
		Destination: req.Destination,
		TravelDate:  req.TravelDate,
		Budget:      req.Budget,
		Message:     req.Message,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	if err := h.Contacts.CreateContact(ctx, &contact); err != nil {
		log.Printf("Error submitting contact form: %v", err)
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "Failed to submit form"})
		return
	}

	if h.Mailer != nil {
		go func(contact models.Contact) {
			if err := h.Mailer.SendContactConfirmation(&contact); err != nil {
				log.Printf("Error sending contact confirmation email: %v", err)
			}
		}(contact)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
