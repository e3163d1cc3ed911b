package impl

import (
	"context"
	"sync"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
)

// memStore is an in-memory stand-in for the database used by the checkout tests.
// Transactions are serialised on txMu, which plays the part of the cart and order
// row locks; a failed transaction restores the snapshot taken when it began.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	products map[uuid.UUID]*entity.Product
	listings map[uuid.UUID]*entity.ProductListing
	carts    map[uuid.UUID]*entity.Cart
	orders   map[uuid.UUID]*entity.Order
	seqs     map[string]int64

	// sellers backs NewSellerRepository for the authorization checks.
	sellers repository.SellerRepository
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[uuid.UUID]*entity.Product),
		listings: make(map[uuid.UUID]*entity.ProductListing),
		carts:    make(map[uuid.UUID]*entity.Cart),
		orders:   make(map[uuid.UUID]*entity.Order),
		seqs:     make(map[string]int64),
	}
}

type memSnapshot struct {
	products map[uuid.UUID]*entity.Product
	carts    map[uuid.UUID]*entity.Cart
	orders   map[uuid.UUID]*entity.Order
	seqs     map[string]int64
}

func (s *memStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := memSnapshot{
		products: make(map[uuid.UUID]*entity.Product, len(s.products)),
		carts:    make(map[uuid.UUID]*entity.Cart, len(s.carts)),
		orders:   make(map[uuid.UUID]*entity.Order, len(s.orders)),
		seqs:     make(map[string]int64, len(s.seqs)),
	}
	for k, v := range s.products {
		snap.products[k] = cloneProduct(v)
	}
	for k, v := range s.carts {
		snap.carts[k] = cloneCart(v)
	}
	for k, v := range s.orders {
		snap.orders[k] = cloneOrder(v)
	}
	for k, v := range s.seqs {
		snap.seqs[k] = v
	}

	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = snap.products
	s.carts = snap.carts
	s.orders = snap.orders
	s.seqs = snap.seqs
}

// Execute implements repository.TransactionManager.
func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(memFactory{store: s}); err != nil {
		s.restore(snap)

		return err
	}

	return nil
}

func (s *memStore) putProduct(p *entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = cloneProduct(p)
}

func (s *memStore) product(id uuid.UUID) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneProduct(s.products[id])
}

func (s *memStore) putCart(c *entity.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[c.UserID] = cloneCart(c)
}

func (s *memStore) cart(userID uuid.UUID) *entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneCart(s.carts[userID])
}

func (s *memStore) putOrder(o *entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = cloneOrder(o)
}

func (s *memStore) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.orders)
}

func cloneProduct(p *entity.Product) *entity.Product {
	if p == nil {
		return nil
	}
	cp := *p

	return &cp
}

func cloneCart(c *entity.Cart) *entity.Cart {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Items = make([]*entity.CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		it := *item
		cp.Items = append(cp.Items, &it)
	}

	return &cp
}

func cloneOrder(o *entity.Order) *entity.Order {
	if o == nil {
		return nil
	}
	cp := *o
	cp.Items = make([]*entity.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		it := *item
		cp.Items = append(cp.Items, &it)
	}

	return &cp
}

// memFactory hands out repositories over the store. Repositories the
// checkout path never touches are left nil and panic when called.
type memFactory struct {
	repository.RepositoryFactory
	store *memStore
}

func (f memFactory) NewProductRepository() repository.ProductRepository {
	return memProductRepo{store: f.store}
}

func (f memFactory) NewListingRepository() repository.ListingRepository {
	return memListingRepo{store: f.store}
}

func (f memFactory) NewCartRepository() repository.CartRepository {
	return memCartRepo{store: f.store}
}

func (f memFactory) NewOrderRepository() repository.OrderRepository {
	return memOrderRepo{store: f.store}
}

func (f memFactory) NewSellerRepository() repository.SellerRepository {
	return f.store.sellers
}

type memProductRepo struct {
	repository.ProductRepository
	store *memStore
}

func (r memProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	if p := r.store.product(id); p != nil {
		return p, nil
	}

	return nil, repository.ErrProductNotFound
}

func (r memProductRepo) DecrementStock(_ context.Context, id uuid.UUID, qty int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.products[id]
	if !ok || p.Stock < qty {
		return repository.ErrInsufficientStock
	}
	p.Stock -= qty
	p.TotalSold += qty

	return nil
}

func (r memProductRepo) RestoreStock(_ context.Context, id uuid.UUID, qty int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	p.Stock += qty
	p.TotalSold = max(p.TotalSold-qty, 0)

	return nil
}

type memListingRepo struct {
	repository.ListingRepository
	store *memStore
}

func (r memListingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ProductListing, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	l, ok := r.store.listings[id]
	if !ok {
		return nil, repository.ErrListingNotFound
	}
	cp := *l

	return &cp, nil
}

type memCartRepo struct {
	store *memStore
}

func (r memCartRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Cart, error) {
	if c := r.store.cart(userID); c != nil {
		return c, nil
	}

	return nil, repository.ErrCartNotFound
}

func (r memCartRepo) FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return r.FindByUserID(ctx, userID)
}

func (r memCartRepo) Create(_ context.Context, cart *entity.Cart) error {
	r.store.putCart(cart)

	return nil
}

func (r memCartRepo) Save(_ context.Context, cart *entity.Cart) error {
	r.store.putCart(cart)

	return nil
}

type memOrderRepo struct {
	repository.OrderRepository
	store *memStore
}

func (r memOrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.store.putOrder(order)

	return nil
}

func (r memOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	o, ok := r.store.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}

	return cloneOrder(o), nil
}

func (r memOrderRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.FindByID(ctx, id)
}

func (r memOrderRepo) Update(_ context.Context, order *entity.Order) error {
	r.store.putOrder(order)

	return nil
}

func (r memOrderRepo) NextSequence(_ context.Context, day time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := day.Format("20060102")
	r.store.seqs[key]++

	return r.store.seqs[key], nil
}
