package store

import (
	"context"
	"fmt"

	"github.com/superstore-analytics/kpi-engine/internal/entity"
)

// Orders returns the order snapshot, with the date interval pushed down into
// SQL when both bounds are set. The interval is closed on both ends.
func (ms *MYSQLStore) Orders(ctx context.Context, rng entity.DateRange) ([]entity.Order, error) {
	query := `
	SELECT order_id, customer_id, product_id, postal_code, order_date, sales, profit, quantity, discount
	FROM orders`
	params := map[string]any{}
	if !rng.Unbounded() {
		query += `
	WHERE order_date >= :from AND order_date <= :to`
		params["from"] = *rng.From
		params["to"] = *rng.To
	}

	orders, err := QueryListNamed[entity.Order](ctx, ms.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	return orders, nil
}

func (ms *MYSQLStore) Customers(ctx context.Context) ([]entity.Customer, error) {
	query := `
	SELECT customer_id, customer_name
	FROM customers`

	customers, err := QueryListNamed[entity.Customer](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("get customers: %w", err)
	}
	return customers, nil
}

func (ms *MYSQLStore) Products(ctx context.Context) ([]entity.Product, error) {
	query := `
	SELECT product_id, product_name, category, sub_category
	FROM products`

	products, err := QueryListNamed[entity.Product](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	return products, nil
}

func (ms *MYSQLStore) Locations(ctx context.Context) ([]entity.Location, error) {
	query := `
	SELECT postal_code, region
	FROM locations`

	locations, err := QueryListNamed[entity.Location](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("get locations: %w", err)
	}
	return locations, nil
}
