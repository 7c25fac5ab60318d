package controllerImp

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"collegefaq/pkg/auth/controller"
	"collegefaq/pkg/auth/service"
)

type authCtrl struct{ s service.AuthService }

func New(s service.AuthService) controller.AuthController { return &authCtrl{s: s} }

type signupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *authCtrl) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	err := h.s.Signup(req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email already registered"})
	case errors.Is(err, service.ErrMissingFields):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case err != nil:
		log.Printf("[auth] signup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "signup failed"})
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Signup successful"})
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	tok, user, err := h.s.Login(req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
	case err != nil:
		log.Printf("[auth] login failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "login failed"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"token": tok,
		"user": map[string]any{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

func (h *authCtrl) ForgotPassword(c echo.Context) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := h.s.RequestPasswordReset(req.Email); err != nil {
		log.Printf("[auth] password reset request failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "reset request failed"})
	}
	// identical response whether or not the account exists
	return c.JSON(http.StatusOK, map[string]string{"message": "If the email is registered, a reset code has been sent"})
}

func (h *authCtrl) ResetPassword(c echo.Context) error {
	var req struct {
		Email       string `json:"email"`
		OTP         string `json:"otp"`
		NewPassword string `json:"new_password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	err := h.s.ResetPassword(req.Email, req.OTP, req.NewPassword)
	switch {
	case errors.Is(err, service.ErrInvalidOTP):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid or expired OTP"})
	case err != nil:
		log.Printf("[auth] password reset failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "reset failed"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Password updated"})
}
