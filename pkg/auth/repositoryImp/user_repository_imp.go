package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"collegefaq/entities"
	"collegefaq/pkg/auth/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &repo{db: db} }

func (r *repo) CreateUser(u *entities.User) error { return r.db.Create(u).Error }

// FindByEmail returns (nil, nil) when no user exists for email.
func (r *repo) FindByEmail(email string) (*entities.User, error) {
	var u entities.User
	err := r.db.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repo) UpdatePassword(userID uint, hash string) error {
	return r.db.Model(&entities.User{}).Where("id = ?", userID).
		Update("password_hash", hash).Error
}

func (r *repo) CreateOTP(o *entities.PasswordResetOTP) error { return r.db.Create(o).Error }

// LatestOTP returns (nil, nil) when no OTP is pending for email.
func (r *repo) LatestOTP(email string) (*entities.PasswordResetOTP, error) {
	var o entities.PasswordResetOTP
	err := r.db.Where("email = ?", email).Order("created_at desc, id desc").First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repo) DeleteOTPs(email string) error {
	return r.db.Where("email = ?", email).Delete(&entities.PasswordResetOTP{}).Error
}
