package entities

import "time"

// PasswordResetOTP holds a bcrypt hash of the one-time code, never the code
// itself. Rows are consumed on successful reset.
type PasswordResetOTP struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"index" json:"email"`
	OTPHash   string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
