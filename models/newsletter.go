package models

import "time"

type NewsletterSubscriber struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}
