package kpi

import "sort"

// Descriptor composes one KPI from a join set, a grouping dimension, a
// reducer and the reduced order field. The catalog below is the single
// source of truth both the engine and the HTTP surface agree on: adding a
// KPI means adding one entry here, not new control flow.
type Descriptor struct {
	ID        string
	Joins     JoinSet
	Dimension Dimension
	Reducer   Reducer
	Field     Field
}

var catalog = map[string]Descriptor{
	// Per-customer KPIs.
	"ventes-par-client": {
		Joins:     JoinSet{Customer: true},
		Dimension: DimensionCustomerName,
		Reducer:   ReducerSum,
		Field:     FieldSales,
	},
	"commandes-par-client": {
		Joins:     JoinSet{Customer: true},
		Dimension: DimensionCustomerName,
		Reducer:   ReducerCount,
	},
	"panier-moyen-par-client": {
		Joins:     JoinSet{Customer: true},
		Dimension: DimensionCustomerName,
		Reducer:   ReducerAverage,
		Field:     FieldSales,
	},
	"clients-par-profit": {
		Joins:     JoinSet{Customer: true},
		Dimension: DimensionCustomerName,
		Reducer:   ReducerSum,
		Field:     FieldProfit,
	},
	"quantite-par-client": {
		Joins:     JoinSet{Customer: true},
		Dimension: DimensionCustomerName,
		Reducer:   ReducerSum,
		Field:     FieldQuantity,
	},

	// Per-order-dimension KPIs.
	"produits-par-quantite": {
		Joins:     JoinSet{Product: true},
		Dimension: DimensionProductName,
		Reducer:   ReducerSum,
		Field:     FieldQuantity,
	},
	"profit-par-region": {
		Joins:     JoinSet{Location: true},
		Dimension: DimensionRegion,
		Reducer:   ReducerSum,
		Field:     FieldProfit,
	},
	"categories-plus-rentables": {
		Joins:     JoinSet{Product: true},
		Dimension: DimensionCategory,
		Reducer:   ReducerSum,
		Field:     FieldProfit,
	},
	"sous-categories-par-ventes": {
		Joins:     JoinSet{Product: true},
		Dimension: DimensionSubCategory,
		Reducer:   ReducerSum,
		Field:     FieldSales,
	},
	"produits-remise-moyenne": {
		Joins:     JoinSet{Product: true},
		Dimension: DimensionProductName,
		Reducer:   ReducerAverage,
		Field:     FieldDiscount,
	},

	// Global KPIs, no joins so orphaned orders still count.
	"ventes-globales": {
		Reducer: ReducerSum,
		Field:   FieldSales,
	},
	"nombre-commandes-global": {
		Reducer: ReducerCount,
	},
	"nombre-produits-vendus": {
		Reducer: ReducerSum,
		Field:   FieldQuantity,
	},
	"profit-global": {
		Reducer: ReducerSum,
		Field:   FieldProfit,
	},
	"remise-moyenne-globale": {
		Reducer: ReducerAverage,
		Field:   FieldDiscount,
	},
}

func init() {
	for id, d := range catalog {
		d.ID = id
		catalog[id] = d
	}
}

// Lookup returns the descriptor for id or an UnknownKPIError.
func Lookup(id string) (Descriptor, error) {
	d, ok := catalog[id]
	if !ok {
		return Descriptor{}, &UnknownKPIError{ID: id}
	}
	return d, nil
}

// IDs returns every catalog identifier in lexical order.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
