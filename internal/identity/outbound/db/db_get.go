package db

import (
	"context"

	"github.com/Codewith-Raja/securevault/internal/identity/entity"
)

const accountColumns = `id, email, password, recovery_email, two_factor_enabled, created_at, updated_at`

func (s *DB) GetAccountByEmail(ctx context.Context, email string) (_ *entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountByEmail")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email)

	var acc entity.Account
	if err = s.mapError(row.Scan(
		&acc.ID,
		&acc.Email,
		&acc.Password,
		&acc.RecoveryEmail,
		&acc.TwoFactorEnabled,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)); err != nil {
		return nil, err
	}

	return &acc, nil
}

func (s *DB) GetAccountByID(ctx context.Context, id int64) (_ *entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountByID")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)

	var acc entity.Account
	if err = s.mapError(row.Scan(
		&acc.ID,
		&acc.Email,
		&acc.Password,
		&acc.RecoveryEmail,
		&acc.TwoFactorEnabled,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)); err != nil {
		return nil, err
	}

	return &acc, nil
}
