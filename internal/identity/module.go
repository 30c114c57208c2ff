package identity

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Codewith-Raja/securevault/internal/identity/inbound"
	"github.com/Codewith-Raja/securevault/internal/identity/outbound/db"
	"github.com/Codewith-Raja/securevault/internal/identity/usecase"
	"github.com/Codewith-Raja/securevault/internal/pkg/hash"
	"github.com/Codewith-Raja/securevault/internal/pkg/instrument"
	"github.com/Codewith-Raja/securevault/internal/pkg/jwt"
	"github.com/Codewith-Raja/securevault/internal/pkg/mail"
	"github.com/Codewith-Raja/securevault/internal/pkg/otp"
	"github.com/Codewith-Raja/securevault/internal/pkg/router"
	"github.com/Codewith-Raja/securevault/internal/pkg/uid"
	"github.com/Codewith-Raja/securevault/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Registry   otp.Registry               `validate:"required"`
	Mailer     mail.Mail                  `validate:"required"`
	Verifier   usecase.EmailVerifier      `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAccount := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbAccount,
		Verifier:   dep.Verifier,
		Registry:   dep.Registry,
		Mailer:     dep.Mailer,
		Validator:  dep.Validator,
		Bcrypt:     dep.Bcrypt,
		UID:        dep.UID,
		JWT:        dep.JWT,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
