package db

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
)

// DeleteAccountCascade removes the account and all of its credential records
// in one transaction. Credentials go first so a failure can never leave
// orphaned rows behind a deleted account.
func (s *DB) DeleteAccountCascade(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteAccountCascade")
	defer func() { s.endSpan(span, err) }()

	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rollback", "error", rErr)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM credentials WHERE user_id = $1`, id); err != nil {
		err = s.mapError(err)
		return err
	}

	if _, err = tx.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id); err != nil {
		err = s.mapError(err)
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		err = s.mapError(err)
		return err
	}

	return nil
}
