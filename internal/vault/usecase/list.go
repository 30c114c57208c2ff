package usecase

import (
	"context"
	"log/slog"

	"github.com/Codewith-Raja/securevault/internal/pkg/goerror"
	"github.com/Codewith-Raja/securevault/internal/vault/entity"
)

type ListInput struct {
	UserID int64
}

type ListOutput struct {
	Credentials []entity.Credential
}

// List returns every credential record owned by the user, possibly empty.
func (s *Usecase) List(ctx context.Context, in ListInput) (*ListOutput, error) {
	ctx, span := s.startSpan(ctx, "List")
	defer span.End()

	if in.UserID == 0 {
		return nil, goerror.NewBusiness("User ID is required", goerror.CodeInvalidInput)
	}

	creds, err := s.repoDB.ListCredentialsByUser(ctx, in.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list credentials", "user_id", in.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ListOutput{Credentials: creds}, nil
}
