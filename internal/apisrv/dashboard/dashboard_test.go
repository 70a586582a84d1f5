package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/superstore-analytics/kpi-engine/internal/entity"
	"github.com/superstore-analytics/kpi-engine/internal/kpi"
)

type fixtureStore struct {
	orders    []entity.Order
	customers []entity.Customer
	err       error
}

func (f *fixtureStore) Orders(ctx context.Context, rng entity.DateRange) ([]entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Order
	for _, o := range f.orders {
		if rng.Contains(o.OrderDate) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fixtureStore) Customers(ctx context.Context) ([]entity.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.customers, nil
}

func (f *fixtureStore) Products(ctx context.Context) ([]entity.Product, error) {
	return nil, f.err
}

func (f *fixtureStore) Locations(ctx context.Context) ([]entity.Location, error) {
	return nil, f.err
}

func (f *fixtureStore) Ping(ctx context.Context) error { return f.err }
func (f *fixtureStore) Close()                         {}

type kpiBody struct {
	Data []struct {
		DimensionValue *string         `json:"dimension_value"`
		MetricValue    decimal.Decimal `json:"metric_value"`
	} `json:"data"`
}

func newTestRouter(f *fixtureStore) http.Handler {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	New(kpi.NewEngine(f), f).Routes(r)
	return r
}

func testStore() *fixtureStore {
	day := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	return &fixtureStore{
		orders: []entity.Order{
			{CustomerID: "C-A", OrderDate: day, Sales: decimal.NewFromInt(100)},
			{CustomerID: "C-B", OrderDate: day, Sales: decimal.NewFromInt(200)},
			{CustomerID: "C-C", OrderDate: day, Sales: decimal.NewFromInt(50)},
		},
		customers: []entity.Customer{
			{CustomerID: "C-A", CustomerName: "A"},
			{CustomerID: "C-B", CustomerName: "B"},
			{CustomerID: "C-C", CustomerName: "C"},
		},
	}
}

func get(t *testing.T, h http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRunKPI_RankedResponse(t *testing.T) {
	h := newTestRouter(testStore())

	w := get(t, h, "/api/kpi/ventes-par-client")
	require.Equal(t, http.StatusOK, w.Code)

	var body kpiBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 3)
	assert.Equal(t, "B", *body.Data[0].DimensionValue)
	assert.True(t, body.Data[0].MetricValue.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "A", *body.Data[1].DimensionValue)
	assert.Equal(t, "C", *body.Data[2].DimensionValue)
}

func TestRunKPI_GlobalHasNullDimension(t *testing.T) {
	h := newTestRouter(testStore())

	w := get(t, h, "/api/kpi/ventes-globales")
	require.Equal(t, http.StatusOK, w.Code)

	var body kpiBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Nil(t, body.Data[0].DimensionValue)
	assert.True(t, body.Data[0].MetricValue.Equal(decimal.NewFromInt(350)))
}

func TestRunKPI_LimitTruncatesRanking(t *testing.T) {
	h := newTestRouter(testStore())

	w := get(t, h, "/api/kpi/ventes-par-client?limit=2")
	require.Equal(t, http.StatusOK, w.Code)

	var body kpiBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "B", *body.Data[0].DimensionValue)
}

func TestRunKPI_EmptyRangeIsEmptyDataNotError(t *testing.T) {
	h := newTestRouter(testStore())

	w := get(t, h, "/api/kpi/remise-moyenne-globale?date_debut=1999-01-01&date_fin=1999-12-31")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())
}

func TestRunKPI_BadDateIsBadRequest(t *testing.T) {
	h := newTestRouter(testStore())

	w := get(t, h, "/api/kpi/ventes-par-client?date_debut=01/03/2023&date_fin=2023-04-01")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunKPI_NegativeLimitIsBadRequest(t *testing.T) {
	h := newTestRouter(testStore())

	w := get(t, h, "/api/kpi/ventes-par-client?limit=-3")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunKPI_UnknownIDIsNotFound(t *testing.T) {
	h := newTestRouter(testStore())

	w := get(t, h, "/api/kpi/no-such-kpi")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRunKPI_StoreDownIsServiceUnavailable(t *testing.T) {
	f := testStore()
	f.err = errors.New("dial tcp: connection refused")
	h := newTestRouter(f)

	w := get(t, h, "/api/kpi/ventes-par-client")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestListKPIs(t *testing.T) {
	h := newTestRouter(testStore())

	w := get(t, h, "/api/kpi")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		KPIs []string `json:"kpis"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.KPIs, 15)
	assert.Contains(t, body.KPIs, "profit-par-region")
}

func TestHealth(t *testing.T) {
	h := newTestRouter(testStore())
	w := get(t, h, "/health")
	assert.Equal(t, http.StatusOK, w.Code)

	f := testStore()
	f.err = errors.New("down")
	h = newTestRouter(f)
	w = get(t, h, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
