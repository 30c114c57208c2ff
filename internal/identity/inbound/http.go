package inbound

import (
	"context"

	"github.com/Codewith-Raja/securevault/internal/identity/usecase"
	"github.com/Codewith-Raja/securevault/internal/pkg/router"
)

type uc interface {
	RequestOTP(ctx context.Context, in usecase.RequestOTPInput) error
	Signup(ctx context.Context, in usecase.SignupInput) error
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	Verify2FA(ctx context.Context, in usecase.Verify2FAInput) (*usecase.Verify2FAOutput, error)

	UserInfo(ctx context.Context) (*usecase.UserInfoOutput, error)
	SaveRecoveryEmail(ctx context.Context, in usecase.SaveRecoveryEmailInput) error
	Enable2FA(ctx context.Context) error
	TwoFAStatus(ctx context.Context) (*usecase.TwoFAStatusOutput, error)
	Toggle2FA(ctx context.Context, in usecase.Toggle2FAInput) (*usecase.Toggle2FAOutput, error)
	DeleteAccount(ctx context.Context) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Signup & Login
	r.POST("/request-otp", end.RequestOTP)
	r.POST("/signup", end.Signup)
	r.POST("/login", end.Login)
	r.POST("/verify-2fa", end.Verify2FA)

	// Account (need authenticated)
	r.GET("/user-info", end.UserInfo)
	r.POST("/account/recovery", end.SaveRecoveryEmail)
	r.POST("/account/enable-2fa", end.Enable2FA)
	r.DELETE("/account/delete", end.DeleteAccount)
	r.GET("/user/2fa-status", end.TwoFAStatus)
	r.POST("/user/toggle-2fa", end.Toggle2FA)
}
