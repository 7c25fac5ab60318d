package serviceImp

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"collegefaq/entities"
	"collegefaq/pkg/auth/repository"
	"collegefaq/pkg/auth/service"
	"collegefaq/pkg/auth/token"
	"collegefaq/pkg/mail"
)

const otpTTL = 10 * time.Minute

type Svc struct {
	repo   repository.UserRepository
	tokens *token.Manager
	mailer mail.Mailer
}

func New(repo repository.UserRepository, tokens *token.Manager, mailer mail.Mailer) *Svc {
	return &Svc{repo: repo, tokens: tokens, mailer: mailer}
}

func (s *Svc) Signup(name, email, password string) error {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return service.ErrMissingFields
	}
	existing, err := s.repo.FindByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return service.ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.CreateUser(&entities.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
}

func (s *Svc) Login(email, password string) (string, *entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.repo.FindByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", nil, service.ErrInvalidCredentials
	}
	tok, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", nil, err
	}
	return tok, u, nil
}

func (s *Svc) RequestPasswordReset(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.repo.FindByEmail(email)
	if err != nil {
		return err
	}
	if u == nil {
		// same outward behavior as the happy path
		return nil
	}

	otp, err := sixDigits()
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(otp), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.CreateOTP(&entities.PasswordResetOTP{
		Email:     email,
		OTPHash:   string(hash),
		ExpiresAt: time.Now().Add(otpTTL),
	}); err != nil {
		return err
	}

	body := fmt.Sprintf("Your password reset code is %s. It expires in %d minutes.",
		otp, int(otpTTL.Minutes()))
	if err := s.mailer.Send(email, "Password reset code", body); err != nil {
		// the OTP row exists; a delivery hiccup should not 500 the request
		log.Printf("[auth] OTP mail to %s failed: %v", email, err)
	}
	return nil
}

func (s *Svc) ResetPassword(email, otp, newPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || otp == "" || newPassword == "" {
		return service.ErrInvalidOTP
	}
	u, err := s.repo.FindByEmail(email)
	if err != nil {
		return err
	}
	rec, err := s.repo.LatestOTP(email)
	if err != nil {
		return err
	}
	if u == nil || rec == nil || time.Now().After(rec.ExpiresAt) ||
		bcrypt.CompareHashAndPassword([]byte(rec.OTPHash), []byte(otp)) != nil {
		return service.ErrInvalidOTP
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(u.ID, string(hash)); err != nil {
		return err
	}
	return s.repo.DeleteOTPs(email)
}

func sixDigits() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
