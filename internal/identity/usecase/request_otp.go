package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Codewith-Raja/securevault/internal/pkg/goerror"
	"github.com/Codewith-Raja/securevault/internal/pkg/otp"
)

type RequestOTPInput struct {
	Email string `validate:"omitempty,email"`
}

// RequestOTP starts signup: it gates on deliverability, rejects already
// registered emails, then issues and mails a fresh signup code.
func (s *Usecase) RequestOTP(ctx context.Context, in RequestOTPInput) error {
	ctx, span := s.startSpan(ctx, "RequestOTP")
	defer span.End()

	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" {
		return goerror.NewBusiness("Email is required.", goerror.CodeInvalidInput)
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewBusiness("Invalid or non-existent email.", goerror.CodeInvalidInput)
	}

	if !s.verifier.Verify(ctx, in.Email) {
		slog.WarnContext(ctx, "email rejected by deliverability check", "email", in.Email)
		return goerror.NewBusiness("Invalid or non-existent email.", goerror.CodeInvalidInput)
	}

	_, err := s.repoDB.GetAccountByEmail(ctx, in.Email)
	if err == nil {
		return goerror.NewBusiness("Email already registered.", goerror.CodeConflict)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	code, err := s.registry.Issue(ctx, otp.PurposeSignup, in.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue signup passcode", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	return s.sendCode(ctx, in.Email,
		"Your OTP for Signup",
		fmt.Sprintf("Your OTP code is %s. It is valid for 5 minutes.", code),
	)
}
