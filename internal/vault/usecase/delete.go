package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Codewith-Raja/securevault/internal/pkg/goerror"
)

type DeleteInput struct {
	ID int64
}

// Delete removes one credential record. The authenticated caller must own the
// record; a row that does not exist and a row owned by someone else are both
// reported as not found.
func (s *Usecase) Delete(ctx context.Context, in DeleteInput) error {
	ctx, span := s.startSpan(ctx, "Delete")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	if err := s.repoDB.DeleteCredentialOwned(ctx, in.ID, clm.UserID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Password not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo delete credential", "id", in.ID, "user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
