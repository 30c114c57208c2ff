package inbound

import (
	"fmt"

	"github.com/Codewith-Raja/securevault/internal/identity/usecase"
	"github.com/Codewith-Raja/securevault/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for signup, login, and account workflows.
type HTTPEndpoint struct {
	uc uc
}

// RequestOTP verifies the address and emails a signup passcode.
func (h *HTTPEndpoint) RequestOTP(r *router.Request) (any, error) {
	var req RequestOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.RequestOTP(r.Context(), usecase.RequestOTPInput{Email: req.Email}); err != nil {
		return nil, err
	}

	return MessageResponse{Message: "OTP sent successfully!"}, nil
}

// Signup redeems the passcode and creates the account.
func (h *HTTPEndpoint) Signup(r *router.Request) (any, error) {
	var req SignupRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Signup(r.Context(), usecase.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		OTP:      string(req.OTP),
	}); err != nil {
		return nil, err
	}

	return MessageResponse{Message: "Signup successful!"}, nil
}

// Login authenticates and returns a token, or a two-factor signal without one.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	if resp.TwoFactorRequired {
		return LoginResponse{TwoFactor: true}, nil
	}

	return LoginResponse{Message: "Login successful!", Token: resp.Token}, nil
}

// Verify2FA completes a two-factor login and returns the session token.
func (h *HTTPEndpoint) Verify2FA(r *router.Request) (any, error) {
	var req Verify2FARequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Verify2FA(r.Context(), usecase.Verify2FAInput{
		Email: req.Email,
		OTP:   string(req.OTP),
	})
	if err != nil {
		return nil, err
	}

	return Verify2FAResponse{Message: "2FA verified", Token: resp.Token}, nil
}

// UserInfo returns the authenticated account without its password hash.
func (h *HTTPEndpoint) UserInfo(r *router.Request) (any, error) {
	resp, err := h.uc.UserInfo(r.Context())
	if err != nil {
		return nil, err
	}

	return UserInfoResponse{
		ID:               resp.ID,
		Email:            resp.Email,
		RecoveryEmail:    resp.RecoveryEmail,
		TwoFactorEnabled: resp.TwoFactorEnabled,
		CreatedAt:        resp.CreatedAt,
		UpdatedAt:        resp.UpdatedAt,
	}, nil
}

// SaveRecoveryEmail stores a fallback address on the account.
func (h *HTTPEndpoint) SaveRecoveryEmail(r *router.Request) (any, error) {
	var req SaveRecoveryEmailRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.SaveRecoveryEmail(r.Context(), usecase.SaveRecoveryEmailInput{
		RecoveryEmail: req.RecoveryEmail,
	}); err != nil {
		return nil, err
	}

	return MessageResponse{Message: "Recovery email saved."}, nil
}

// Enable2FA switches on the email second factor.
func (h *HTTPEndpoint) Enable2FA(r *router.Request) (any, error) {
	if err := h.uc.Enable2FA(r.Context()); err != nil {
		return nil, err
	}

	return MessageResponse{Message: "Two-factor authentication enabled."}, nil
}

// TwoFAStatus reports whether the second factor is on.
func (h *HTTPEndpoint) TwoFAStatus(r *router.Request) (any, error) {
	resp, err := h.uc.TwoFAStatus(r.Context())
	if err != nil {
		return nil, err
	}

	return TwoFAStatusResponse{TwoFactorEnabled: resp.TwoFactorEnabled}, nil
}

// Toggle2FA sets the second factor on or off.
func (h *HTTPEndpoint) Toggle2FA(r *router.Request) (any, error) {
	var req Toggle2FARequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Toggle2FA(r.Context(), usecase.Toggle2FAInput{Enabled: req.Enabled})
	if err != nil {
		return nil, err
	}

	state := "disabled"
	if resp.Enabled {
		state = "enabled"
	}

	return MessageResponse{Message: fmt.Sprintf("Two-factor authentication %s", state)}, nil
}

// DeleteAccount removes the account and everything it owns.
func (h *HTTPEndpoint) DeleteAccount(r *router.Request) (any, error) {
	if err := h.uc.DeleteAccount(r.Context()); err != nil {
		return nil, err
	}

	return MessageResponse{Message: "Account and data deleted."}, nil
}
