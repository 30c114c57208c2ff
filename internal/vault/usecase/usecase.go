package usecase

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/Codewith-Raja/securevault/internal/pkg/goerror"
	"github.com/Codewith-Raja/securevault/internal/pkg/instrument"
	"github.com/Codewith-Raja/securevault/internal/pkg/jwt"
	"github.com/Codewith-Raja/securevault/internal/pkg/uid"
	"github.com/Codewith-Raja/securevault/internal/vault/entity"
)

type repoDB interface {
	CreateCredential(ctx context.Context, cred entity.Credential) error
	ListCredentialsByUser(ctx context.Context, userID int64) ([]entity.Credential, error)
	DeleteCredentialOwned(ctx context.Context, id, userID int64) error
}

type Usecase struct {
	repoDB repoDB
	uid    uid.NumberID
	ins    instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	UID        uid.NumberID
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB: dep.RepoDB,
		uid:    dep.UID,
		ins:    dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("vault.usecase").Start(ctx, name)
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	return clm, nil
}
