package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Codewith-Raja/securevault/internal/identity/entity"
	"github.com/Codewith-Raja/securevault/internal/pkg/goerror"
	"github.com/Codewith-Raja/securevault/internal/pkg/otp"
)

type SignupInput struct {
	Email    string `validate:"omitempty,email"`
	Password string `validate:"omitempty,password"`
	OTP      string
}

// Signup redeems the signup code and creates the account.
//
// The code is consumed at match time: a failure after a successful redeem
// (e.g. a lost duplicate-insert race) does not restore it, the user must
// request a fresh one.
func (s *Usecase) Signup(ctx context.Context, in SignupInput) error {
	ctx, span := s.startSpan(ctx, "Signup")
	defer span.End()

	in.Email = strings.TrimSpace(in.Email)
	in.OTP = strings.TrimSpace(in.OTP)
	if in.Email == "" || in.Password == "" || in.OTP == "" {
		return goerror.NewBusiness("Email, password, and OTP are required.", goerror.CodeInvalidInput)
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	ok, err := s.registry.Redeem(ctx, otp.PurposeSignup, in.Email, in.OTP)
	if err != nil {
		slog.ErrorContext(ctx, "failed to redeem signup passcode", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}
	if !ok {
		return goerror.NewBusiness("Invalid OTP. Please try again.", goerror.CodeInvalidInput)
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.CreateAccount(ctx, entity.Account{
		ID:       s.uid.Generate(),
		Email:    in.Email,
		Password: string(hashedPassword),
	}); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return goerror.NewBusiness("Email already registered.", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create account", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
