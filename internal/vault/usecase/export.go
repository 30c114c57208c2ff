package usecase

import (
	"context"
	"log/slog"

	"github.com/Codewith-Raja/securevault/internal/pkg/goerror"
	"github.com/Codewith-Raja/securevault/internal/vault/entity"
)

type ExportOutput struct {
	Credentials []entity.Credential
}

// Export returns all credential records of the authenticated caller.
func (s *Usecase) Export(ctx context.Context) (*ExportOutput, error) {
	ctx, span := s.startSpan(ctx, "Export")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	creds, err := s.repoDB.ListCredentialsByUser(ctx, clm.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list credentials", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ExportOutput{Credentials: creds}, nil
}
