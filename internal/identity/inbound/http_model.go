package inbound

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/Codewith-Raja/securevault/internal/pkg/goerror"
)

// OTPCode accepts a passcode sent either as a JSON string or a JSON number.
// Both decode to the same canonical digit string, so "123456" and 123456
// redeem identically.
type OTPCode string

func (c *OTPCode) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch t := v.(type) {
	case nil:
		*c = ""
	case string:
		*c = OTPCode(t)
	case float64:
		*c = OTPCode(strconv.FormatInt(int64(t), 10))
	default:
		return goerror.NewInvalidFormat("otp must be a string or number")
	}

	return nil
}

type RequestOTPRequest struct {
	Email string `json:"email"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SignupRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	OTP      OTPCode `json:"otp"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message   string `json:"message,omitempty"`
	Token     string `json:"token,omitempty"`
	TwoFactor bool   `json:"twoFactor,omitempty"`
}

type Verify2FARequest struct {
	Email string  `json:"email"`
	OTP   OTPCode `json:"otp"`
}

type Verify2FAResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type UserInfoResponse struct {
	ID               int64     `json:"id,string"`
	Email            string    `json:"email"`
	RecoveryEmail    string    `json:"recoveryEmail,omitempty"`
	TwoFactorEnabled bool      `json:"twoFactorEnabled"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type SaveRecoveryEmailRequest struct {
	RecoveryEmail string `json:"recoveryEmail"`
}

type TwoFAStatusResponse struct {
	TwoFactorEnabled bool `json:"twoFactorEnabled"`
}

type Toggle2FARequest struct {
	Enabled bool `json:"enabled"`
}
