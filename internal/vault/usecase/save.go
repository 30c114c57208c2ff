package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Codewith-Raja/securevault/internal/pkg/goerror"
	"github.com/Codewith-Raja/securevault/internal/vault/entity"
)

type SaveInput struct {
	UserID   int64
	Website  string
	Username string
	Password string
}

func (s *Usecase) Save(ctx context.Context, in SaveInput) error {
	ctx, span := s.startSpan(ctx, "Save")
	defer span.End()

	in.Website = strings.TrimSpace(in.Website)
	in.Username = strings.TrimSpace(in.Username)
	if in.UserID == 0 || in.Website == "" || in.Username == "" || in.Password == "" {
		return goerror.NewBusiness("All fields are required", goerror.CodeInvalidInput)
	}

	if err := s.repoDB.CreateCredential(ctx, entity.Credential{
		ID:       s.uid.Generate(),
		UserID:   in.UserID,
		Website:  in.Website,
		Username: in.Username,
		Password: in.Password,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo create credential", "user_id", in.UserID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
