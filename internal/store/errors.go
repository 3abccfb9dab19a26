package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrConnection is returned when the database cannot be reached.
	ErrConnection = errors.New("database unavailable")

	// ErrNotFound is returned when no row matches the identifier.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a unique value is already taken.
	ErrConflict = errors.New("duplicate key value")

	// ErrInvalidInput is returned for requests the store cannot act on.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized is returned when credentials do not check out.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnknownUser and ErrWrongPassword refine ErrUnauthorized.
	ErrUnknownUser   = fmt.Errorf("%w: user not found", ErrUnauthorized)
	ErrWrongPassword = fmt.Errorf("%w: incorrect password", ErrUnauthorized)
)

const errDBClosed = "sql: database is closed"

// classify maps gorm and driver errors onto the store's sentinel errors.
// Anything it does not recognise is returned unchanged.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), isSQLiteUniqueViolation(err):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case IsConnectionError(err):
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return err
}

// isSQLiteUniqueViolation covers the sqlite dialect, which gorm cannot
// translate into gorm.ErrDuplicatedKey.
func isSQLiteUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

// IsConnectionError reports whether err means the database was unreachable.
func IsConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	// database/sql does not export its closed-pool error.
	if err.Error() == errDBClosed {
		return true
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
