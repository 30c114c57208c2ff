package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Codewith-Raja/securevault/internal/pkg/goerror"
)

type UserInfoOutput struct {
	ID               int64
	Email            string
	RecoveryEmail    string
	TwoFactorEnabled bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// UserInfo returns the authenticated account without its password hash.
func (s *Usecase) UserInfo(ctx context.Context) (*UserInfoOutput, error) {
	ctx, span := s.startSpan(ctx, "UserInfo")
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

	return &UserInfoOutput{
		ID:               acc.ID,
		Email:            acc.Email,
		RecoveryEmail:    acc.RecoveryEmail,
		TwoFactorEnabled: acc.TwoFactorEnabled,
		CreatedAt:        acc.CreatedAt,
		UpdatedAt:        acc.UpdatedAt,
	}, nil
}
