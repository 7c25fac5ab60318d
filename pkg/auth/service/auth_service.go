package service

import (
	"errors"

	"collegefaq/entities"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrMissingFields      = errors.New("name, email and password are required")
)

type AuthService interface {
	Signup(name, email, password string) error
	Login(email, password string) (string, *entities.User, error)

	// RequestPasswordReset never reveals whether the email has an account.
	RequestPasswordReset(email string) error
	ResetPassword(email, otp, newPassword string) error
}
