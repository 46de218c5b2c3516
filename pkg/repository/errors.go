package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgDuplicateKeyCode = "23505"

// ErrUnavailable indicates the storage backend could not be reached or gave
// up mid-operation: connection failures, server shutdown, timeouts. Domain
// operations surface it unchanged so callers can distinguish infrastructure
// faults from domain outcomes.
var ErrUnavailable = errors.New("storage unavailable")

// MapError translates database errors to domain errors.
// It maps sql.ErrNoRows to notFoundErr, PostgreSQL unique violation (23505)
// to duplicateErr, and connection-level failures to ErrUnavailable. Other
// errors are returned unchanged.
func MapError(err error, notFoundErr, duplicateErr error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFoundErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgDuplicateKeyCode {
			return duplicateErr
		}
		if isConnectionClass(pgErr.Code) {
			return fmt.Errorf("%w: %s", ErrUnavailable, pgErr.Code)
		}
	}

	if isUnreachable(err) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return err
}

// isConnectionClass reports whether a PostgreSQL error code belongs to the
// connection exception (08) or operator intervention shutdown (57P) classes.
func isConnectionClass(code string) bool {
	return strings.HasPrefix(code, "08") || strings.HasPrefix(code, "57P")
}

func isUnreachable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
