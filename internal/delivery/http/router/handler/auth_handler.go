// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"libris/internal/delivery/http/response"
	"libris/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for credential and verification handlers.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	otpUC  usecase.OTPUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase, otpUC usecase.OTPUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		otpUC:  otpUC,
		logger: logger,
	}
}

// Register handles the member registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	// A body of literal JSON null binds without error and leaves input nil.
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.authUC.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	// The stored record and its password digest stay out of the response.
	return response.Success(c, http.StatusCreated, nil, output.Message)
}

// Login handles the login request for both members and admins.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	identity, err := h.authUC.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, identity, "Login successful")
}

// SendOTP handles the verification-code issuance request.
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var input *usecase.IssueCodeInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid OTP request")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.otpUC.IssueCode(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	// The code itself travels only in the email.
	return response.Success(c, http.StatusOK, nil, "OTP sent successfully!")
}

// VerifyOTP handles the verification-code check request.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var input *usecase.VerifyCodeInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid OTP verification input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.otpUC.VerifyCode(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "OTP verified successfully!")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
