package commands_test

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
	addr, err := kernel.NewAddress(gofakeit.Street(), gofakeit.StreetNumber(), "Centro", gofakeit.City(), "RJ", "20040020")
	require.NoError(t, err)
	return addr
}

func fakeRestaurant(t *testing.T, fee string) *catalog.Restaurant {
	t.Helper()
	r, err := catalog.NewRestaurant(kernel.NewUUID(), gofakeit.Company(), "Italian", "", kernel.MustMoney(fee), 30)
	require.NoError(t, err)
	return r
}

func fakeCustomer(t *testing.T) *catalog.Customer {
	t.Helper()
	c, err := catalog.NewCustomer(kernel.NewUUID(), gofakeit.Name(), gofakeit.Email(), "", fakeAddress(t), time.Now())
	require.NoError(t, err)
	return c
}

func fakeProduct(t *testing.T, restaurantID kernel.UUID, price string) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(kernel.NewUUID(), restaurantID, "Pizza", "Main", "", kernel.MustMoney(price))
	require.NoError(t, err)
	return p
}

func storedOrder(t *testing.T, status order.Status, lines ...*order.Line) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), fakeAddress(t),
		kernel.ZeroMoney(), lines, status, time.Now().Add(-3*time.Hour))
	require.NoError(t, err)
	return o
}

func fakeLine(t *testing.T, price string, qty int) *order.Line {
	t.Helper()
	l, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), "Pizza", kernel.MustMoney(price), qty)
	require.NoError(t, err)
	return l
}
