package commands_test

import (
	"errors"
	"testing"

	"deliveryapi/internal/core/application/usecases/commands"
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/order"
	"deliveryapi/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customer := fakeCustomer(t)
	restaurant := fakeRestaurant(t, "5.00")
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customer.ID(), restaurant.ID(), fakeAddress(t))
	require.NoError(t, err)

	customers := new(MockCustomerRepository)
	restaurants := new(MockRestaurantRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)

	var saved *order.Order
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("Get", ctx, customer.ID()).Return(customer, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurants).Once(),
		restaurants.On("Get", ctx, restaurant.ID()).Return(restaurant, nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, saved)
	assert.True(t, saved.ID().IsEqual(orderID))
	assert.Equal(t, order.Created, saved.Status())
	assert.True(t, saved.Total().IsZero())
	assert.True(t, saved.DeliveryFee().Equal(kernel.MustMoney("5.00")))

	customers.AssertExpectations(t)
	restaurants.AssertExpectations(t)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CustomerNotFound(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID, kernel.NewUUID(), fakeAddress(t))
	require.NoError(t, err)

	customers := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("Get", ctx, customerID).Return(nil, errs.NewObjectNotFoundError("customer", customerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "customer", notFound.ParamName)
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RestaurantNotFound(t *testing.T) {
	ctx := t.Context()
	customer := fakeCustomer(t)
	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customer.ID(), restaurantID, fakeAddress(t))
	require.NoError(t, err)

	customers := new(MockCustomerRepository)
	restaurants := new(MockRestaurantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("Get", ctx, customer.ID()).Return(customer, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurants).Once(),
		restaurants.On("Get", ctx, restaurantID).Return(nil, errs.NewObjectNotFoundError("restaurant", restaurantID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)

	assert.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderingUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), fakeAddress(t))

	uow := new(MockUoW)
	factory := new(MockOrderingUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)

	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	customer := fakeCustomer(t)
	restaurant := fakeRestaurant(t, "0")
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), customer.ID(), restaurant.ID(), fakeAddress(t))

	customers := new(MockCustomerRepository)
	restaurants := new(MockRestaurantRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("CustomerRepository").Return(customers)
	uow.On("RestaurantRepository").Return(restaurants)
	uow.On("OrderRepository").Return(orders)
	customers.On("Get", ctx, customer.ID()).Return(customer, nil)
	restaurants.On("Get", ctx, restaurant.ID()).Return(restaurant, nil)
	orders.On("Add", ctx, mock.Anything).Return(nil)
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)

	require.EqualError(t, h.Handle(ctx, cmd), "commit error")
	uow.AssertExpectations(t)
}
