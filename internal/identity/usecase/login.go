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

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	TwoFactorRequired bool
	Token             string
}

// Login checks the password and either mints a session token directly or,
// when the account has two-factor enabled, mails a login code and signals the
// second factor with no token.
//
// Missing accounts and wrong passwords produce an identical error so the
// endpoint cannot be used to enumerate registered emails.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" || in.Password == "" {
		return nil, goerror.NewBusiness("Email and password required.", goerror.CodeInvalidInput)
	}

	acc, err := s.repoDB.GetAccountByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "account not found", "email", in.Email)
		return nil, goerror.NewBusiness("Invalid email or password.", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !s.bcrypt.Verify(acc.Password, in.Password) {
		slog.WarnContext(ctx, "account password does not match", "user_id", acc.ID)
		return nil, goerror.NewBusiness("Invalid email or password.", goerror.CodeUnauthorized)
	}

	if acc.TwoFactorEnabled {
		code, err := s.registry.Issue(ctx, otp.PurposeLogin, acc.Email)
		if err != nil {
			slog.ErrorContext(ctx, "failed to issue login passcode", "user_id", acc.ID, "error", err)
			return nil, goerror.NewServer(err)
		}

		if err := s.sendCode(ctx, acc.Email,
			"Your 2FA Code",
			fmt.Sprintf("Your 2FA login code is %s. It is valid for 5 minutes.", code),
		); err != nil {
			return nil, err
		}

		return &LoginOutput{TwoFactorRequired: true}, nil
	}

	token, err := s.jwt.Generate(acc.ID, acc.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate session token", "user_id", acc.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &LoginOutput{Token: token}, nil
}
