package usecase

import (
	"context"
	"log/slog"

	"github.com/Codewith-Raja/securevault/internal/pkg/goerror"
)

// DeleteAccount removes the authenticated account together with all of its
// credential records.
func (s *Usecase) DeleteAccount(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "DeleteAccount")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	if err := s.repoDB.DeleteAccountCascade(ctx, clm.UserID); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete account", "user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
