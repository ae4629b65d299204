package models

import "time"

// ContactMessage stores a message submitted through the public contact form.
// Messages are immutable after creation; the timestamp is assigned server-side.
type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Message   string    `json:"message" gorm:"type:text"`
	Timestamp time.Time `json:"timestamp"`
}
