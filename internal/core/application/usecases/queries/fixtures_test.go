package queries_test

import (
	"testing"
	"time"

	"deliveryapi/internal/core/domain/model/catalog"
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/order"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
)

func fakeAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress(gofakeit.Street(), gofakeit.StreetNumber(), "Centro", gofakeit.City(), "SP", "01310100")
	require.NoError(t, err)
	return addr
}

func fakeRestaurant(t *testing.T, fee string) *catalog.Restaurant {
	t.Helper()
	r, err := catalog.NewRestaurant(kernel.NewUUID(), gofakeit.Company(), "Burgers", "", kernel.MustMoney(fee), 40)
	require.NoError(t, err)
	return r
}

func fakeProduct(t *testing.T, restaurantID kernel.UUID, name, price string) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(kernel.NewUUID(), restaurantID, name, "Main", "", kernel.MustMoney(price))
	require.NoError(t, err)
	return p
}

func orderWithLines(t *testing.T, fee string, status order.Status, prices ...string) *order.Order {
	t.Helper()
	lines := make([]*order.Line, 0, len(prices))
	for _, price := range prices {
		l, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), gofakeit.ProductName(), kernel.MustMoney(price), 2)
		require.NoError(t, err)
		lines = append(lines, l)
	}
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), fakeAddress(t),
		kernel.MustMoney(fee), lines, status, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return o
}
