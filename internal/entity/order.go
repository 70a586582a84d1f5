package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents one row of the orders table. Sales and Profit are money
// amounts (profit may be negative), Discount is a fraction in [0,1].
type Order struct {
	OrderID    string          `db:"order_id"`
	CustomerID string          `db:"customer_id"`
	ProductID  string          `db:"product_id"`
	PostalCode string          `db:"postal_code"`
	OrderDate  time.Time       `db:"order_date"`
	Sales      decimal.Decimal `db:"sales"`
	Profit     decimal.Decimal `db:"profit"`
	Quantity   int             `db:"quantity"`
	Discount   decimal.Decimal `db:"discount"`
}
