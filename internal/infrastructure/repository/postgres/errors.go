package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	stderrors "errors"
	"io"
	"net"
	"strings"
	"syscall"

	crerr "github.com/cockroachdb/errors"
	"github.com/lib/pq"
)

var (
	errDBTransient = crerr.New("database transient failure")
	errDBTimeout   = crerr.New("database query timed out")
)

// IsTransient reports whether a query error is worth retrying.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	return crerr.Is(err, errDBTransient)
}

// IsTimeout reports whether a query was cut off by its deadline.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	return crerr.Is(err, errDBTimeout)
}

// classify marks err so callers can tell connection trouble from bad SQL.
// queryCtx is the per-attempt context the statement ran under.
func classify(queryCtx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(queryCtx.Err(), context.DeadlineExceeded) {
		return crerr.Mark(err, errDBTimeout)
	}
	if isConnectionFailure(err) {
		return crerr.Mark(err, errDBTransient)
	}
	return err
}

func isConnectionFailure(err error) bool {
	if stderrors.Is(err, driver.ErrBadConn) ||
		stderrors.Is(err, sql.ErrConnDone) ||
		stderrors.Is(err, io.ErrUnexpectedEOF) ||
		stderrors.Is(err, syscall.ECONNRESET) ||
		stderrors.Is(err, syscall.ECONNREFUSED) {
		return true
	}

	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return isTransientSQLState(string(pqErr.Code))
	}

	var netErr net.Error
	return stderrors.As(err, &netErr)
}

// isTransientSQLState covers connection exceptions (class 08) and the
// server going away under us.
func isTransientSQLState(code string) bool {
	if strings.HasPrefix(code, "08") {
		return true
	}
	switch code {
	case "57P01", "57P02", "57P03":
		return true
	default:
		return false
	}
}
