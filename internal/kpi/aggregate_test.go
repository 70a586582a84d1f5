package kpi

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/superstore-analytics/kpi-engine/internal/entity"
)

func salesRow(customer string, sales float64) Row {
	return Row{
		Order:        entity.Order{Sales: decimal.NewFromFloat(sales)},
		CustomerName: customer,
	}
}

func TestAggregate_SumGroupsAndSortsDescending(t *testing.T) {
	rows := []Row{
		salesRow("Alice", 100),
		salesRow("Bob", 200),
		salesRow("Alice", 50),
		salesRow("Carol", 180),
	}

	results := aggregate(rows, DimensionCustomerName, ReducerSum, FieldSales)
	require.Len(t, results, 3)

	assert.Equal(t, "Bob", *results[0].DimensionValue)
	assert.True(t, results[0].MetricValue.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "Carol", *results[1].DimensionValue)
	assert.Equal(t, "Alice", *results[2].DimensionValue)
	assert.True(t, results[2].MetricValue.Equal(decimal.NewFromInt(150)))

	for i := 1; i < len(results); i++ {
		assert.True(t, results[i-1].MetricValue.GreaterThanOrEqual(results[i].MetricValue),
			"ranking must be non-increasing")
	}
}

func TestAggregate_SumSplitAdditivity(t *testing.T) {
	part1 := []Row{salesRow("Alice", 12.34), salesRow("Alice", 0.66)}
	part2 := []Row{salesRow("Alice", 87.5)}
	whole := append(append([]Row{}, part1...), part2...)

	sumOf := func(rows []Row) decimal.Decimal {
		res := aggregate(rows, DimensionCustomerName, ReducerSum, FieldSales)
		require.Len(t, res, 1)
		return res[0].MetricValue
	}

	assert.True(t, sumOf(part1).Add(sumOf(part2)).Equal(sumOf(whole)))
}

func TestAggregate_AverageIsArithmeticMean(t *testing.T) {
	rows := []Row{
		salesRow("Alice", 100),
		salesRow("Alice", 50),
		salesRow("Alice", 30),
	}

	results := aggregate(rows, DimensionCustomerName, ReducerAverage, FieldSales)
	require.Len(t, results, 1)
	assert.True(t, results[0].MetricValue.Equal(decimal.NewFromInt(60)))
}

func TestAggregate_CountIgnoresField(t *testing.T) {
	rows := []Row{
		salesRow("Alice", 100),
		salesRow("Alice", 50),
		salesRow("Bob", 1),
	}

	results := aggregate(rows, DimensionCustomerName, ReducerCount, FieldNone)
	require.Len(t, results, 2)
	assert.Equal(t, "Alice", *results[0].DimensionValue)
	assert.True(t, results[0].MetricValue.Equal(decimal.NewFromInt(2)))
	assert.True(t, results[1].MetricValue.Equal(decimal.NewFromInt(1)))
}

func TestAggregate_GlobalDimensionIsSingleNilKeyedRow(t *testing.T) {
	rows := []Row{salesRow("Alice", 100), salesRow("Bob", 200)}

	results := aggregate(rows, DimensionNone, ReducerSum, FieldSales)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].DimensionValue)
	assert.True(t, results[0].MetricValue.Equal(decimal.NewFromInt(300)))
}

func TestAggregate_ZeroRowsYieldEmptyResult(t *testing.T) {
	results := aggregate(nil, DimensionNone, ReducerAverage, FieldDiscount)
	assert.Empty(t, results, "no data must not become a zero-valued row")
}

func TestAggregate_TiesKeepFirstSeenOrder(t *testing.T) {
	rows := []Row{
		salesRow("Alice", 100),
		salesRow("Bob", 100),
		salesRow("Carol", 100),
	}

	results := aggregate(rows, DimensionCustomerName, ReducerSum, FieldSales)
	require.Len(t, results, 3)
	assert.Equal(t, "Alice", *results[0].DimensionValue)
	assert.Equal(t, "Bob", *results[1].DimensionValue)
	assert.Equal(t, "Carol", *results[2].DimensionValue)
}

func TestAggregate_QuantityFieldSumsIntegers(t *testing.T) {
	rows := []Row{
		{Order: entity.Order{Quantity: 3}, ProductName: "Desk"},
		{Order: entity.Order{Quantity: 4}, ProductName: "Desk"},
	}

	results := aggregate(rows, DimensionProductName, ReducerSum, FieldQuantity)
	require.Len(t, results, 1)
	assert.True(t, results[0].MetricValue.Equal(decimal.NewFromInt(7)))
}
