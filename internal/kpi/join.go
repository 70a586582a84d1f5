package kpi

import "github.com/superstore-analytics/kpi-engine/internal/entity"

// JoinSet names the dimension entities a KPI needs joined onto orders.
type JoinSet struct {
	Customer bool
	Product  bool
	Location bool
}

// Row is an order denormalized with its matched dimension attributes for the
// duration of one aggregation.
type Row struct {
	Order entity.Order

	CustomerName string
	ProductName  string
	Category     string
	SubCategory  string
	Region       string
}

// resolve inner-joins orders against every entity in joins and flattens the
// matches into denormalized rows. An order whose foreign key has no match in
// any requested entity is dropped entirely; that invariant is load-bearing,
// orphaned orders must vanish from joined KPIs while still counting in
// join-free global ones. Output order is unspecified here; the aggregation
// sort establishes it downstream.
func resolve(
	joins JoinSet,
	orders []entity.Order,
	customers []entity.Customer,
	products []entity.Product,
	locations []entity.Location,
) []Row {
	var (
		byCustomer map[string][]entity.Customer
		byProduct  map[string][]entity.Product
		byLocation map[string][]entity.Location
	)
	if joins.Customer {
		byCustomer = make(map[string][]entity.Customer, len(customers))
		for _, c := range customers {
			byCustomer[c.CustomerID] = append(byCustomer[c.CustomerID], c)
		}
	}
	if joins.Product {
		byProduct = make(map[string][]entity.Product, len(products))
		for _, p := range products {
			byProduct[p.ProductID] = append(byProduct[p.ProductID], p)
		}
	}
	if joins.Location {
		byLocation = make(map[string][]entity.Location, len(locations))
		for _, l := range locations {
			byLocation[l.PostalCode] = append(byLocation[l.PostalCode], l)
		}
	}

	rows := make([]Row, 0, len(orders))
	for _, o := range orders {
		matchedCustomers := []entity.Customer{{}}
		if joins.Customer {
			matchedCustomers = byCustomer[o.CustomerID]
			if len(matchedCustomers) == 0 {
				continue
			}
		}
		matchedProducts := []entity.Product{{}}
		if joins.Product {
			matchedProducts = byProduct[o.ProductID]
			if len(matchedProducts) == 0 {
				continue
			}
		}
		matchedLocations := []entity.Location{{}}
		if joins.Location {
			matchedLocations = byLocation[o.PostalCode]
			if len(matchedLocations) == 0 {
				continue
			}
		}

		// Unique keys make multiple matches a data defect, but when they
		// happen each match contributes one row, same as an unwind.
		for _, c := range matchedCustomers {
			for _, p := range matchedProducts {
				for _, l := range matchedLocations {
					rows = append(rows, Row{
						Order:        o,
						CustomerName: c.CustomerName,
						ProductName:  p.ProductName,
						Category:     p.Category,
						SubCategory:  p.SubCategory,
						Region:       l.Region,
					})
				}
			}
		}
	}
	return rows
}
