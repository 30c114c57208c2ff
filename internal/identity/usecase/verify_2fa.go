package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Codewith-Raja/securevault/internal/pkg/goerror"
	"github.com/Codewith-Raja/securevault/internal/pkg/otp"
)

type Verify2FAInput struct {
	Email string
	OTP   string
}

type Verify2FAOutput struct {
	Token string
}

// Verify2FA redeems the login code and mints the session token. This is the
// only way a two-factor account obtains a token.
func (s *Usecase) Verify2FA(ctx context.Context, in Verify2FAInput) (*Verify2FAOutput, error) {
	ctx, span := s.startSpan(ctx, "Verify2FA")
	defer span.End()

	in.Email = strings.TrimSpace(in.Email)
	in.OTP = strings.TrimSpace(in.OTP)

	ok, err := s.registry.Redeem(ctx, otp.PurposeLogin, in.Email, in.OTP)
	if err != nil {
		slog.ErrorContext(ctx, "failed to redeem login passcode", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}
	if !ok {
		return nil, goerror.NewBusiness("Invalid or expired 2FA code.", goerror.CodeInvalidInput)
	}

	acc, err := s.repoDB.GetAccountByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("User not found.", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	token, err := s.jwt.Generate(acc.ID, acc.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate session token", "user_id", acc.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &Verify2FAOutput{Token: token}, nil
}
