package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Codewith-Raja/securevault/internal/pkg/goerror"
)

func (s *Usecase) Enable2FA(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "Enable2FA")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	if err := s.repoDB.UpdateTwoFactor(ctx, clm.UserID, true); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("User not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo enable two-factor", "user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
