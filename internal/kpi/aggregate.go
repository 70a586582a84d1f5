package kpi

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/superstore-analytics/kpi-engine/internal/entity"
)

// Dimension selects the attribute rows are grouped by before reduction.
// DimensionNone groups everything under a single global bucket.
type Dimension int

const (
	DimensionNone Dimension = iota
	DimensionCustomerName
	DimensionProductName
	DimensionCategory
	DimensionSubCategory
	DimensionRegion
)

func (d Dimension) value(r Row) string {
	switch d {
	case DimensionCustomerName:
		return r.CustomerName
	case DimensionProductName:
		return r.ProductName
	case DimensionCategory:
		return r.Category
	case DimensionSubCategory:
		return r.SubCategory
	case DimensionRegion:
		return r.Region
	}
	return ""
}

// Field selects the order attribute fed into the reducer. Count ignores it.
type Field int

const (
	FieldNone Field = iota
	FieldSales
	FieldProfit
	FieldQuantity
	FieldDiscount
)

func (f Field) value(o entity.Order) decimal.Decimal {
	switch f {
	case FieldSales:
		return o.Sales
	case FieldProfit:
		return o.Profit
	case FieldQuantity:
		return decimal.NewFromInt(int64(o.Quantity))
	case FieldDiscount:
		return o.Discount
	}
	return decimal.Zero
}

// Reducer is the aggregation applied per group.
type Reducer int

const (
	ReducerSum Reducer = iota
	ReducerAverage
	ReducerCount
)

type group struct {
	key   string
	sum   decimal.Decimal
	count int64
}

// aggregate groups denormalized rows by dim, reduces each group and returns
// the groups sorted strictly descending by the reduced metric. Ties keep
// their first-seen relative order; there is deliberately no secondary sort
// key. Zero input rows produce an empty result set, not a zero-valued row:
// "no data" must stay distinguishable from a legitimate zero.
func aggregate(rows []Row, dim Dimension, red Reducer, field Field) []entity.KPIResult {
	groups := make(map[string]*group, 16)
	ordered := make([]*group, 0, 16)

	for _, r := range rows {
		key := dim.value(r)
		g, ok := groups[key]
		if !ok {
			g = &group{key: key, sum: decimal.Zero}
			groups[key] = g
			ordered = append(ordered, g)
		}
		if red != ReducerCount {
			g.sum = g.sum.Add(field.value(r.Order))
		}
		g.count++
	}

	results := make([]entity.KPIResult, 0, len(ordered))
	for _, g := range ordered {
		var metric decimal.Decimal
		switch red {
		case ReducerSum:
			metric = g.sum
		case ReducerAverage:
			// A group exists only if it has at least one row.
			metric = g.sum.Div(decimal.NewFromInt(g.count))
		case ReducerCount:
			metric = decimal.NewFromInt(g.count)
		}
		res := entity.KPIResult{MetricValue: metric}
		if dim != DimensionNone {
			key := g.key
			res.DimensionValue = &key
		}
		results = append(results, res)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MetricValue.GreaterThan(results[j].MetricValue)
	})
	return results
}
