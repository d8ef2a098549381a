package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mini-crm/internal/database"

	"github.com/jackc/pgx/v5/pgconn"
)

// Коды ошибок PostgreSQL
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidTextRepr     = "22P02"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool     { return pgErrorCode(err) == pgUniqueViolation }
func isForeignKeyViolation(err error) bool { return pgErrorCode(err) == pgForeignKeyViolation }

// isInvalidText срабатывает, когда в uuid-колонку передана строка не в формате uuid.
func isInvalidText(err error) bool { return pgErrorCode(err) == pgInvalidTextRepr }

// inTx выполняет fn в транзакции и откатывает ее при ошибке.
func inTx(ctx context.Context, db *sql.DB, queries *database.Queries, fn func(q *database.Queries) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(queries.WithTx(tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
