package catalogrepo_test

import (
	"context"
	"testing"
	"time"

	"deliveryapi/internal/adapters/out/postgres/catalogrepo"
	"deliveryapi/internal/adapters/out/postgres/pgtest"
	"deliveryapi/internal/core/domain/model/catalog"
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"
)

type CatalogRepositoryIntegrationTestSuite struct {
	suite.Suite
	database    *pgtest.Database
	customers   *catalogrepo.GormCustomerRepository
	restaurants *catalogrepo.GormRestaurantRepository
	products    *catalogrepo.GormProductRepository
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.customers = catalogrepo.NewGormCustomerRepository(database.DB)
	suite.restaurants = catalogrepo.NewGormRestaurantRepository(database.DB)
	suite.products = catalogrepo.NewGormProductRepository(database.DB)
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *CatalogRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestCustomer_RoundTrip() {
	ctx := context.Background()
	addr, err := kernel.NewAddress(gofakeit.Street(), "100", "Jardins", "Sao Paulo", "SP", "01415000")
	suite.Require().NoError(err)
	c, err := catalog.NewCustomer(kernel.NewUUID(), gofakeit.Name(), gofakeit.Email(), gofakeit.Phone(), addr, time.Now())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.customers.Add(ctx, c))

	got, err := suite.customers.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(c.Name(), got.Name())
	suite.Equal(c.Email(), got.Email())
	suite.True(c.Address().IsEqual(got.Address()))
	suite.True(got.IsActive())
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestRestaurant_RoundTrip() {
	ctx := context.Background()
	r, err := catalog.NewRestaurant(kernel.NewUUID(), gofakeit.Company(), "Japanese", "", kernel.MustMoney("7.90"), 45)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.restaurants.Add(ctx, r))

	got, err := suite.restaurants.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal("7.90", got.DeliveryFee().String())
	suite.Equal(45, got.DeliveryTimeMinutes())
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestProduct_UpdateSwitchesAvailabilityOff() {
	ctx := context.Background()
	p, err := catalog.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Ramen", "Main", "Pork broth", kernel.MustMoney("39.90"))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.products.Add(ctx, p))

	p.SetAvailable(false)
	suite.Require().NoError(suite.products.Update(ctx, p))

	got, err := suite.products.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.False(got.IsAvailable())
	suite.Equal("39.90", got.Price().String())
	suite.Equal(p.RestaurantID(), got.RestaurantID())
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestUnknownIDs() {
	ctx := context.Background()

	_, err := suite.customers.Get(ctx, kernel.NewUUID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.restaurants.Get(ctx, kernel.NewUUID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	p, err := catalog.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Ghost", "Main", "", kernel.MustMoney("1"))
	suite.Require().NoError(err)
	suite.ErrorIs(suite.products.Update(ctx, p), errs.ErrObjectNotFound)
}

func TestCatalogRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	suite.Run(t, new(CatalogRepositoryIntegrationTestSuite))
}
