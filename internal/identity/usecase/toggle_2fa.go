package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Codewith-Raja/securevault/internal/pkg/goerror"
)

type Toggle2FAInput struct {
	Enabled bool
}

type Toggle2FAOutput struct {
	Enabled bool
}

func (s *Usecase) Toggle2FA(ctx context.Context, in Toggle2FAInput) (*Toggle2FAOutput, error) {
	ctx, span := s.startSpan(ctx, "Toggle2FA")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.repoDB.UpdateTwoFactor(ctx, clm.UserID, in.Enabled); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("User not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo toggle two-factor", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &Toggle2FAOutput{Enabled: in.Enabled}, nil
}
