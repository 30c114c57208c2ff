package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Codewith-Raja/securevault/internal/pkg/goerror"
	"github.com/Codewith-Raja/securevault/internal/pkg/instrument"
	"github.com/Codewith-Raja/securevault/internal/vault/entity"
)

type DB struct {
	conn *pgxpool.Pool
	ins  instrument.Instrumentation
}

func NewDB(conn *pgxpool.Pool, ins instrument.Instrumentation) *DB {
	return &DB{
		conn: conn,
		ins:  ins,
	}
}

func (s *DB) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return goerror.ErrNotFound
	}

	return err
}

func (s *DB) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("vault.outbound.db").Start(ctx, name)
}

func (s *DB) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *DB) CreateCredential(ctx context.Context, cred entity.Credential) (err error) {
	ctx, span := s.startSpan(ctx, "CreateCredential")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO credentials (id, user_id, website, username, password)
		VALUES ($1, $2, $3, $4, $5)`,
		cred.ID, cred.UserID, cred.Website, cred.Username, cred.Password,
	)

	err = s.mapError(err)
	return err
}

func (s *DB) ListCredentialsByUser(ctx context.Context, userID int64) (_ []entity.Credential, err error) {
	ctx, span := s.startSpan(ctx, "ListCredentialsByUser")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, `
		SELECT id, user_id, website, username, password, created_at, updated_at
		FROM credentials WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}
	defer rows.Close()

	creds := make([]entity.Credential, 0)
	for rows.Next() {
		var cred entity.Credential
		if err = rows.Scan(
			&cred.ID,
			&cred.UserID,
			&cred.Website,
			&cred.Username,
			&cred.Password,
			&cred.CreatedAt,
			&cred.UpdatedAt,
		); err != nil {
			return nil, err
		}
		creds = append(creds, cred)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return creds, nil
}

// DeleteCredentialOwned deletes the row only when it belongs to userID, so a
// caller cannot remove another account's record by guessing ids.
func (s *DB) DeleteCredentialOwned(ctx context.Context, id, userID int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteCredentialOwned")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `DELETE FROM credentials WHERE id = $1 AND user_id = $2`, id, userID)
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
