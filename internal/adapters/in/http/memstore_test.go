package http_test

import (
	"context"
	"slices"
	"strings"
	"sync"

	"deliveryapi/internal/core/application/usecases/commands"
	"deliveryapi/internal/core/domain/model/account"
	"deliveryapi/internal/core/domain/model/catalog"
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/order"
	"deliveryapi/internal/core/ports"
	"deliveryapi/internal/pkg/errs"
)

// memStore keeps aggregates in maps. Transactions are no-ops: every write is
// visible immediately, which is enough to drive the HTTP layer end to end.
type memStore struct {
	mu          sync.Mutex
	orders      map[string]*order.Order
	customers   map[string]*catalog.Customer
	restaurants map[string]*catalog.Restaurant
	products    map[string]*catalog.Product
	users       map[string]*account.User
}

func newMemStore() *memStore {
	return &memStore{
		orders:      map[string]*order.Order{},
		customers:   map[string]*catalog.Customer{},
		restaurants: map[string]*catalog.Restaurant{},
		products:    map[string]*catalog.Product{},
		users:       map[string]*account.User{},
	}
}

func (s *memStore) Begin(context.Context) error    { return nil }
func (s *memStore) Commit(context.Context) error   { return nil }
func (s *memStore) Rollback(context.Context) error { return nil }

func (s *memStore) OrderRepository() ports.OrderRepository           { return memOrders{s} }
func (s *memStore) CustomerRepository() ports.CustomerRepository     { return memCustomers{s} }
func (s *memStore) RestaurantRepository() ports.RestaurantRepository { return memRestaurants{s} }
func (s *memStore) ProductRepository() ports.ProductRepository       { return memProducts{s} }
func (s *memStore) UserRepository() ports.UserRepository             { return memUsers{s} }

type (
	orderUoWs    struct{ s *memStore }
	orderingUoWs struct{ s *memStore }
	catalogUoWs  struct{ s *memStore }
	userUoWs     struct{ s *memStore }
)

func (f orderUoWs) Create() commands.OrderUoW       { return f.s }
func (f orderingUoWs) Create() commands.OrderingUoW { return f.s }
func (f catalogUoWs) Create() commands.CatalogUoW   { return f.s }
func (f userUoWs) Create() commands.UserUoW         { return f.s }

type memOrders struct{ s *memStore }

func (r memOrders) Add(_ context.Context, o *order.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.orders[o.ID().String()] = o
	return nil
}

func (r memOrders) Update(_ context.Context, o *order.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[o.ID().String()]; !ok {
		return errs.NewObjectNotFoundError("order", o.ID().String())
	}
	r.s.orders[o.ID().String()] = o
	return nil
}

func (r memOrders) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return o, nil
}

func (r memOrders) Delete(_ context.Context, id kernel.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[id.String()]; !ok {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	delete(r.s.orders, id.String())
	return nil
}

func (r memOrders) Find(_ context.Context, filter order.Filter) ([]*order.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	found := []*order.Order{}
	for _, o := range r.s.orders {
		if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, o.Status()) {
			continue
		}
		if filter.CustomerID != nil && !filter.CustomerID.IsEqual(o.CustomerID()) {
			continue
		}
		if filter.RestaurantID != nil && !filter.RestaurantID.IsEqual(o.RestaurantID()) {
			continue
		}
		if filter.CreatedAt != nil && !filter.CreatedAt.Contains(o.CreatedAt()) {
			continue
		}
		found = append(found, o)
	}

	slices.SortFunc(found, func(a, b *order.Order) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})
	return found, nil
}

type memCustomers struct{ s *memStore }

func (r memCustomers) Add(_ context.Context, c *catalog.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.customers[c.ID().String()] = c
	return nil
}

func (r memCustomers) Get(_ context.Context, id kernel.UUID) (*catalog.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("customer", id.String())
	}
	return c, nil
}

type memRestaurants struct{ s *memStore }

func (r memRestaurants) Add(_ context.Context, rest *catalog.Restaurant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.restaurants[rest.ID().String()] = rest
	return nil
}

func (r memRestaurants) Get(_ context.Context, id kernel.UUID) (*catalog.Restaurant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rest, ok := r.s.restaurants[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("restaurant", id.String())
	}
	return rest, nil
}

type memProducts struct{ s *memStore }

func (r memProducts) Add(_ context.Context, p *catalog.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID().String()] = p
	return nil
}

func (r memProducts) Update(_ context.Context, p *catalog.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID().String()]; !ok {
		return errs.NewObjectNotFoundError("product", p.ID().String())
	}
	r.s.products[p.ID().String()] = p
	return nil
}

func (r memProducts) Get(_ context.Context, id kernel.UUID) (*catalog.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("product", id.String())
	}
	return p, nil
}

type memUsers struct{ s *memStore }

func (r memUsers) Add(_ context.Context, u *account.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.Email()]; ok {
		return account.ErrEmailAlreadyTaken
	}
	r.s.users[u.Email()] = u
	return nil
}

func (r memUsers) GetByEmail(_ context.Context, email string) (*account.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[strings.ToLower(email)]
	if !ok {
		return nil, errs.NewObjectNotFoundError("user", email)
	}
	return u, nil
}
