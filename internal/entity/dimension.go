package entity

// Customer represents the customers table, keyed by customer_id.
type Customer struct {
	CustomerID   string `db:"customer_id"`
	CustomerName string `db:"customer_name"`
}

// Product represents the products table, keyed by product_id.
type Product struct {
	ProductID   string `db:"product_id"`
	ProductName string `db:"product_name"`
	Category    string `db:"category"`
	SubCategory string `db:"sub_category"`
}

// Location represents the locations table, keyed by postal_code.
type Location struct {
	PostalCode string `db:"postal_code"`
	Region     string `db:"region"`
}
