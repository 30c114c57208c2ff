package app

import (
	"log/slog"
	"os"

	"github.com/Codewith-Raja/securevault/internal/identity"
	"github.com/Codewith-Raja/securevault/internal/vault"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.identity.enabled") {
		if err := identity.New(identity.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Registry:   a.registry,
			Mailer:     a.mail,
			Verifier:   a.verifier,
			Instrument: a.ins,
			UID:        a.uid,
			Bcrypt:     a.bcrypt,
			Validator:  a.validator,
			JWT:        a.jwt,
		}); err != nil {
			slog.Error("failed to init module identity", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.vault.enabled") {
		if err := vault.New(vault.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Instrument: a.ins,
			UID:        a.uid,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module vault", "error", err)
			os.Exit(1)
		}
	}
}
