// Package store holds the in-memory state of one ordering session: the menu
// catalog, the cart and the placed orders.
//
// Lookups by identifier that miss are no-ops. Mutators report whether the
// target existed but never fail; validating input is the caller's job.
package store

import (
	"strings"
	"sync"
	"time"

	"go-hotel-ordering/models"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	EventNewOrder    = "newOrder"
	EventOrderStatus = "orderStatus"
)

// Event is emitted after an order mutation has been committed.
type Event struct {
	Type  string
	Order models.Order
}

type Option func(*OrderStore)

// WithMenu seeds the catalog. The slice is copied.
func WithMenu(items []models.MenuItem) Option {
	return func(s *OrderStore) {
		s.menu = append([]models.MenuItem(nil), items...)
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *OrderStore) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *OrderStore) { s.newID = newID }
}

// WithObserver registers fn to receive order events. fn runs outside the
// store lock, so it may call back into the store.
func WithObserver(fn func(Event)) Option {
	return func(s *OrderStore) { s.observer = fn }
}

// OrderStore is safe for concurrent use; every operation runs under one
// mutex so a store instance sees a single mutation at a time.
type OrderStore struct {
	mu       sync.Mutex
	menu     []models.MenuItem
	cart     []models.CartItem
	orders   []models.Order
	now      func() time.Time
	newID    func() string
	observer func(Event)
}

func New(opts ...Option) *OrderStore {
	s := &OrderStore{
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return primitive.NewObjectID().Hex() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *OrderStore) MenuItems() []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.MenuItem(nil), s.menu...)
}

func (s *OrderStore) MenuItem(id string) (models.MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookupMenuItem(id)
}

// Categories lists the distinct menu categories in first-seen order.
func (s *OrderStore) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]bool, len(s.menu))
	var categories []string
	for _, item := range s.menu {
		if seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	return categories
}

// AddMenuItem stores item under a freshly generated id; any id on the
// argument is ignored.
func (s *OrderStore) AddMenuItem(item models.MenuItem) models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.newID()
	s.menu = append(s.menu, item)
	return item
}

func (s *OrderStore) UpdateMenuItem(id string, patch models.MenuItemPatch) (models.MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.menu {
		if s.menu[i].ID == id {
			s.menu[i] = patch.Apply(s.menu[i])
			return s.menu[i], true
		}
	}
	return models.MenuItem{}, false
}

// DeleteMenuItem removes the catalog entry only. Cart lines and orders that
// reference it keep the dangling id.
func (s *OrderStore) DeleteMenuItem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.menu {
		if s.menu[i].ID == id {
			s.menu = append(s.menu[:i:i], s.menu[i+1:]...)
			return true
		}
	}
	return false
}

func (s *OrderStore) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartItem(nil), s.cart...)
}

// AddToCart appends a new line even when the same menu item is already in
// the cart. quantity must be at least 1.
func (s *OrderStore) AddToCart(menuItemID string, quantity int, instructions string) models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	line := models.CartItem{
		ID:                  s.newID(),
		MenuItemID:          menuItemID,
		Quantity:            quantity,
		SpecialInstructions: strings.TrimSpace(instructions),
		CreatedAt:           s.now(),
	}
	s.cart = append(s.cart, line)
	return line
}

func (s *OrderStore) RemoveFromCart(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].ID == id {
			s.cart = append(s.cart[:i:i], s.cart[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateCartItem replaces quantity and instructions of a line; an empty
// instructions string clears them.
func (s *OrderStore) UpdateCartItem(id string, quantity int, instructions string) (models.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].ID == id {
			s.cart[i].Quantity = quantity
			s.cart[i].SpecialInstructions = strings.TrimSpace(instructions)
			return s.cart[i], true
		}
	}
	return models.CartItem{}, false
}

func (s *OrderStore) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// PlaceOrder freezes the current cart into a pending order priced against
// the catalog as it is right now, then empties the cart. Both happen under
// the same lock. An empty cart yields an empty order with a zero total.
func (s *OrderStore) PlaceOrder(customerName, tableNumber string) models.Order {
	order, _ := s.placeOrder(customerName, tableNumber, true)
	return order
}

// PlaceNonEmptyOrder is PlaceOrder for callers that refuse empty carts. The
// emptiness check and the placement share one lock, so of two concurrent
// calls on a one-line cart exactly one succeeds.
func (s *OrderStore) PlaceNonEmptyOrder(customerName, tableNumber string) (models.Order, bool) {
	return s.placeOrder(customerName, tableNumber, false)
}

func (s *OrderStore) placeOrder(customerName, tableNumber string, allowEmpty bool) (models.Order, bool) {
	s.mu.Lock()
	if len(s.cart) == 0 && !allowEmpty {
		s.mu.Unlock()
		return models.Order{}, false
	}
	now := s.now()
	order := models.Order{
		ID:           s.newID(),
		CustomerName: strings.TrimSpace(customerName),
		TableNumber:  strings.TrimSpace(tableNumber),
		Items:        make([]models.OrderItem, 0, len(s.cart)),
		Status:       models.OrderStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, line := range s.cart {
		order.Items = append(order.Items, s.snapshotLine(line))
	}
	order.Total = order.ComputeTotal()
	s.orders = append(s.orders, order)
	s.cart = nil
	out := cloneOrder(order)
	s.mu.Unlock()

	s.emit(Event{Type: EventNewOrder, Order: cloneOrder(out)})
	return out, true
}

func (s *OrderStore) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = cloneOrder(o)
	}
	return out
}

func (s *OrderStore) Order(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return cloneOrder(o), true
		}
	}
	return models.Order{}, false
}

// UpdateOrderStatus sets the status unconditionally: any status may follow
// any other, including completed back to pending.
func (s *OrderStore) UpdateOrderStatus(id string, status models.OrderStatus) (models.Order, bool) {
	s.mu.Lock()
	var (
		out   models.Order
		found bool
	)
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = s.now()
			out, found = cloneOrder(s.orders[i]), true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.emit(Event{Type: EventOrderStatus, Order: cloneOrder(out)})
	}
	return out, found
}

func (s *OrderStore) lookupMenuItem(id string) (models.MenuItem, bool) {
	for _, item := range s.menu {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

func (s *OrderStore) snapshotLine(line models.CartItem) models.OrderItem {
	item := models.OrderItem{
		ID:                  line.ID,
		MenuItemID:          line.MenuItemID,
		Quantity:            line.Quantity,
		UnitPrice:           decimal.Zero,
		SpecialInstructions: line.SpecialInstructions,
		CreatedAt:           line.CreatedAt,
	}
	if menuItem, ok := s.lookupMenuItem(line.MenuItemID); ok {
		item.Name = menuItem.Name
		item.UnitPrice = menuItem.Price
	} else {
		item.Unavailable = true
	}
	return item
}

func (s *OrderStore) emit(e Event) {
	if s.observer != nil {
		s.observer(e)
	}
}

func cloneOrder(o models.Order) models.Order {
	items := make([]models.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
