package dependency

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/superstore-analytics/kpi-engine/internal/entity"
)

type (
	// EntityStore exposes read-only snapshots of the four logical
	// collections. The KPI engine takes it as an explicit parameter so it
	// can run against an in-memory fixture in tests.
	EntityStore interface {
		// Orders returns orders whose order date lies inside rng,
		// inclusive on both ends. An unbounded range returns all orders.
		Orders(ctx context.Context, rng entity.DateRange) ([]entity.Order, error)
		Customers(ctx context.Context) ([]entity.Customer, error)
		Products(ctx context.Context) ([]entity.Product, error)
		Locations(ctx context.Context) ([]entity.Location, error)

		Ping(ctx context.Context) error
		Close()
	}

	// DB represents database interface.
	DB interface {
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
		PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)
