package entities

import "time"

// Inquiry is a lead-capture request about a specific care home.
// Inquiries are append-only; they are never mutated or deleted.
type Inquiry struct {
	ID         int       `json:"id"`
	CareHomeID int       `json:"careHomeId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
