package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SubscriberActive       = "active"
	SubscriberPending      = "pending"
	SubscriberUnsubscribed = "unsubscribed"
)

type Subscriber struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewsletterStats is the admin dashboard projection: one count per
// lifecycle status plus the overall total.
type NewsletterStats struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Pending      int `json:"pending"`
	Unsubscribed int `json:"unsubscribed"`
}
