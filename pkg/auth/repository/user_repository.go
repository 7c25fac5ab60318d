package repository

import "collegefaq/entities"

type UserRepository interface {
	CreateUser(u *entities.User) error
	FindByEmail(email string) (*entities.User, error)
	UpdatePassword(userID uint, hash string) error

	CreateOTP(o *entities.PasswordResetOTP) error
	LatestOTP(email string) (*entities.PasswordResetOTP, error)
	DeleteOTPs(email string) error
}
