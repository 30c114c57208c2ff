package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Codewith-Raja/securevault/internal/pkg/goerror"
)

type SaveRecoveryEmailInput struct {
	RecoveryEmail string `validate:"omitempty,email"`
}

func (s *Usecase) SaveRecoveryEmail(ctx context.Context, in SaveRecoveryEmailInput) error {
	ctx, span := s.startSpan(ctx, "SaveRecoveryEmail")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	in.RecoveryEmail = strings.TrimSpace(in.RecoveryEmail)
	if in.RecoveryEmail == "" {
		return goerror.NewBusiness("Recovery email required", goerror.CodeInvalidInput)
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.UpdateRecoveryEmail(ctx, clm.UserID, in.RecoveryEmail); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("User not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo update recovery email", "user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
