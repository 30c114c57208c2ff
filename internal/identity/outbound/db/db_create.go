package db

import (
	"context"

	"github.com/Codewith-Raja/securevault/internal/identity/entity"
)

func (s *DB) CreateAccount(ctx context.Context, acc entity.Account) (err error) {
	ctx, span := s.startSpan(ctx, "CreateAccount")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO accounts (id, email, password, recovery_email, two_factor_enabled)
		VALUES ($1, $2, $3, $4, $5)`,
		acc.ID, acc.Email, acc.Password, acc.RecoveryEmail, acc.TwoFactorEnabled,
	)

	err = s.mapError(err)
	return err
}
