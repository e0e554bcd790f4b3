package postgres

import (
	"context"
	"database/sql"
)

type recordedQuery struct {
	query string
	args  []any
}

// fakeQuerier records statements and fills dest through fill.
type fakeQuerier struct {
	calls []recordedQuery
	fill  func(dest any)
	errs  []error
}

func (f *fakeQuerier) SelectContext(_ context.Context, dest any, query string, args ...any) error {
	return f.record(dest, query, args)
}

func (f *fakeQuerier) GetContext(_ context.Context, dest any, query string, args ...any) error {
	return f.record(dest, query, args)
}

func (f *fakeQuerier) ExecContext(_ context.Context, query string, args ...any) (sql.Result, error) {
	if err := f.record(nil, query, args); err != nil {
		return nil, err
	}
	return driverResult(1), nil
}

func (f *fakeQuerier) record(dest any, query string, args []any) error {
	f.calls = append(f.calls, recordedQuery{query: query, args: args})
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return err
		}
	}
	if f.fill != nil && dest != nil {
		f.fill(dest)
	}
	return nil
}

func (f *fakeQuerier) last() recordedQuery {
	if len(f.calls) == 0 {
		return recordedQuery{}
	}
	return f.calls[len(f.calls)-1]
}

type driverResult int64

func (r driverResult) LastInsertId() (int64, error) { return 0, nil }
func (r driverResult) RowsAffected() (int64, error) { return int64(r), nil }

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
