package db

import (
	"context"

	"github.com/Codewith-Raja/securevault/internal/pkg/goerror"
)

func (s *DB) UpdateRecoveryEmail(ctx context.Context, id int64, recoveryEmail string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateRecoveryEmail")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE accounts SET recovery_email = $2, updated_at = now() WHERE id = $1`,
		id, recoveryEmail,
	)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}

func (s *DB) UpdateTwoFactor(ctx context.Context, id int64, enabled bool) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateTwoFactor")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE accounts SET two_factor_enabled = $2, updated_at = now() WHERE id = $1`,
		id, enabled,
	)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}
