package models

// Admin is the single privileged account gating protected endpoints.
// PasswordHash holds a bcrypt hash and is never serialized.
type Admin struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
}
