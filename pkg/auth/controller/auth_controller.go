package controller

import "github.com/labstack/echo/v4"

type AuthController interface {
	Signup(c echo.Context) error
	Login(c echo.Context) error
	ForgotPassword(c echo.Context) error
	ResetPassword(c echo.Context) error
}
