package kpi

import (
	"context"

	"github.com/superstore-analytics/kpi-engine/internal/dependency"
	"github.com/superstore-analytics/kpi-engine/internal/entity"
)

// Engine interprets catalog descriptors against an injected entity store.
// It is stateless: every Run is an independent read, safe to call
// concurrently.
type Engine struct {
	store dependency.EntityStore
}

func NewEngine(store dependency.EntityStore) *Engine {
	return &Engine{store: store}
}

// Run computes the KPI identified by id over the optional [start, end]
// interval and returns the full ranking, metric descending. Truncating to a
// top N is the caller's concern. An empty result is a valid outcome, not an
// error.
func (e *Engine) Run(ctx context.Context, id, start, end string) ([]entity.KPIResult, error) {
	desc, err := Lookup(id)
	if err != nil {
		return nil, err
	}

	rng, err := ParseRange(start, end)
	if err != nil {
		return nil, err
	}

	orders, err := e.store.Orders(ctx, rng)
	if err != nil {
		return nil, &StoreUnavailableError{KPI: id, Err: err}
	}

	// Only the dimension tables the descriptor joins on are fetched.
	var (
		customers []entity.Customer
		products  []entity.Product
		locations []entity.Location
	)
	if desc.Joins.Customer {
		customers, err = e.store.Customers(ctx)
		if err != nil {
			return nil, &StoreUnavailableError{KPI: id, Err: err}
		}
	}
	if desc.Joins.Product {
		products, err = e.store.Products(ctx)
		if err != nil {
			return nil, &StoreUnavailableError{KPI: id, Err: err}
		}
	}
	if desc.Joins.Location {
		locations, err = e.store.Locations(ctx)
		if err != nil {
			return nil, &StoreUnavailableError{KPI: id, Err: err}
		}
	}

	rows := resolve(desc.Joins, orders, customers, products, locations)
	return aggregate(rows, desc.Dimension, desc.Reducer, desc.Field), nil
}
