package usecase

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/Codewith-Raja/securevault/internal/identity/entity"
	"github.com/Codewith-Raja/securevault/internal/pkg/goerror"
	"github.com/Codewith-Raja/securevault/internal/pkg/hash"
	"github.com/Codewith-Raja/securevault/internal/pkg/instrument"
	"github.com/Codewith-Raja/securevault/internal/pkg/jwt"
	"github.com/Codewith-Raja/securevault/internal/pkg/mail"
	"github.com/Codewith-Raja/securevault/internal/pkg/otp"
	"github.com/Codewith-Raja/securevault/internal/pkg/uid"
	"github.com/Codewith-Raja/securevault/internal/pkg/validator"
)

type repoDB interface {
	GetAccountByEmail(ctx context.Context, email string) (*entity.Account, error)
	GetAccountByID(ctx context.Context, id int64) (*entity.Account, error)

	CreateAccount(ctx context.Context, acc entity.Account) error

	UpdateRecoveryEmail(ctx context.Context, id int64, recoveryEmail string) error
	UpdateTwoFactor(ctx context.Context, id int64, enabled bool) error

	DeleteAccountCascade(ctx context.Context, id int64) error
}

// EmailVerifier gates signup-OTP issuance on address deliverability.
type EmailVerifier interface {
	Verify(ctx context.Context, email string) bool
}

type Usecase struct {
	repoDB    repoDB
	verifier  EmailVerifier
	registry  otp.Registry
	mailer    mail.Mail
	validator validator.Validator
	bcrypt    hash.Hash
	uid       uid.NumberID
	jwt       jwt.JWT
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Verifier   EmailVerifier
	Registry   otp.Registry
	Mailer     mail.Mail
	Validator  validator.Validator
	Bcrypt     hash.Hash
	UID        uid.NumberID
	JWT        jwt.JWT
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		verifier:  dep.Verifier,
		registry:  dep.Registry,
		mailer:    dep.Mailer,
		validator: dep.Validator,
		bcrypt:    dep.Bcrypt,
		uid:       dep.UID,
		jwt:       dep.JWT,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	return clm, nil
}

func (s *Usecase) sendCode(ctx context.Context, email, subject, body string) error {
	if err := s.mailer.Send(ctx, mail.Message{
		To:       []string{email},
		Subject:  subject,
		TextBody: body,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send passcode email", "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
