package queries_test

import (
	"context"
	"testing"
	"time"

	"deliveryapi/internal/adapters/out/postgres/catalogrepo"
	"deliveryapi/internal/adapters/out/postgres/orderrepo"
	"deliveryapi/internal/adapters/out/postgres/pgtest"
	"deliveryapi/internal/core/application/usecases/queries"
	"deliveryapi/internal/core/domain/model/catalog"
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/order"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
)

type GetSalesSummaryQueryHandlerTestSuite struct {
	suite.Suite
	database    *pgtest.Database
	handler     queries.GetSalesSummaryQueryHandler
	orders      *orderrepo.GormOrderRepository
	restaurants *catalogrepo.GormRestaurantRepository
	base        time.Time
}

func (suite *GetSalesSummaryQueryHandlerTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.handler = queries.NewGetSalesSummaryQueryHandler(database.DB)
	suite.orders = orderrepo.NewGormOrderRepository(database.DB, nil)
	suite.restaurants = catalogrepo.NewGormRestaurantRepository(database.DB)
	suite.base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *GetSalesSummaryQueryHandlerTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *GetSalesSummaryQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *GetSalesSummaryQueryHandlerTestSuite) restaurant(name, fee string) *catalog.Restaurant {
	r, err := catalog.NewRestaurant(kernel.NewUUID(), name, "Mixed", "", kernel.MustMoney(fee), 30)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.restaurants.Add(context.Background(), r))
	return r
}

// storeOrder saves an order of one line at price x 1 and drives it to status.
func (suite *GetSalesSummaryQueryHandlerTestSuite) storeOrder(
	r *catalog.Restaurant, price string, status order.Status, createdAt time.Time,
) {
	addr, err := kernel.NewAddress("Av. Paulista", "1000", "Bela Vista", "Sao Paulo", "SP", "01310100")
	suite.Require().NoError(err)
	line, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), "Item", kernel.MustMoney(price), 1)
	suite.Require().NoError(err)

	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), r.ID(), addr, r.DeliveryFee(),
		[]*order.Line{line}, status, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
}

func (suite *GetSalesSummaryQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetSalesSummaryQuery(nil, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetSalesSummaryQueryHandlerTestSuite) TestHandle_CountsOnlyDeliveredOrdersByRevenue() {
	pizza := suite.restaurant("Pizza Place", "5.00")
	sushi := suite.restaurant("Sushi Bar", "0")

	suite.storeOrder(pizza, "40.00", order.Delivered, suite.base)
	suite.storeOrder(pizza, "20.00", order.Delivered, suite.base.Add(time.Hour))
	suite.storeOrder(pizza, "99.00", order.Canceled, suite.base)
	suite.storeOrder(sushi, "120.00", order.Delivered, suite.base)
	suite.storeOrder(sushi, "15.00", order.Preparing, suite.base)

	query, err := queries.NewGetSalesSummaryQuery(nil, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	type row struct {
		Name    string
		Count   int64
		Revenue string
	}
	got := make([]row, 0, len(result))
	for _, r := range result {
		got = append(got, row{r.RestaurantName, r.OrdersCount, r.Revenue.String()})
	}

	want := []row{
		{"Sushi Bar", 1, "120.00"},
		{"Pizza Place", 2, "70.00"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		suite.Failf("unexpected summary", "(-want +got):\n%s", diff)
	}
	suite.Equal(sushi.ID(), result[0].RestaurantID)
}

func (suite *GetSalesSummaryQueryHandlerTestSuite) TestHandle_RespectsInclusivePeriod() {
	r := suite.restaurant("Taqueria", "0")
	suite.storeOrder(r, "10.00", order.Delivered, suite.base.AddDate(0, 0, -10))
	suite.storeOrder(r, "11.00", order.Delivered, suite.base)
	suite.storeOrder(r, "12.00", order.Delivered, suite.base.AddDate(0, 0, 1))

	from, to := suite.base, suite.base.AddDate(0, 0, 1)
	query, err := queries.NewGetSalesSummaryQuery(&from, &to)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(int64(2), result[0].OrdersCount)
	suite.Equal("23.00", result[0].Revenue.String())
}

func (suite *GetSalesSummaryQueryHandlerTestSuite) TestNewQuery_RejectsInvertedPeriod() {
	from, to := suite.base, suite.base.Add(-time.Second)
	_, err := queries.NewGetSalesSummaryQuery(&from, &to)
	suite.Error(err)
}

func TestGetSalesSummaryQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	suite.Run(t, new(GetSalesSummaryQueryHandlerTestSuite))
}
