package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Codewith-Raja/securevault/internal/pkg/goerror"
)

type TwoFAStatusOutput struct {
	TwoFactorEnabled bool
}

func (s *Usecase) TwoFAStatus(ctx context.Context) (*TwoFAStatusOutput, error) {
	ctx, span := s.startSpan(ctx, "TwoFAStatus")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	acc, err := s.repoDB.GetAccountByID(ctx, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by id", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &TwoFAStatusOutput{TwoFactorEnabled: acc.TwoFactorEnabled}, nil
}
