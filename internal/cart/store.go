// Package cart owns the pending purchase: an in-memory cart persisted through
// a kv.Store and rebroadcast to subscribers on every change.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/kv"
)

const storageKey = "shopping_cart"

// Store is the single source of truth for the cart. Mutations persist first,
// then publish, so storage is never behind what subscribers have seen.
type Store struct {
	mu     sync.Mutex
	store  kv.Store
	logger *log.Logger

	cart Cart

	nextSub int
	subs    []subscriber
}

type subscriber struct {
	id int
	fn func(Cart)
}

// NewStore loads the persisted cart. An absent or malformed blob initializes
// an empty cart and persists it; construction never fails.
func NewStore(ctx context.Context, store kv.Store, logger *log.Logger) *Store {
	s := &Store{store: store, logger: logger}
	s.cart = s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) Cart {
	raw, err := s.store.Get(ctx, storageKey)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.logger.Printf("cart: load failed, starting empty: %v", err)
		}
		c := emptyCart()
		s.persist(ctx, c)
		return c
	}

	var c Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		s.logger.Printf("cart: discarding malformed persisted cart: %v", err)
		c = emptyCart()
		s.persist(ctx, c)
		return c
	}
	if c.Lines == nil {
		c.Lines = []Line{}
	}
	c.recalculate()
	return c
}

// AddLine merges into an existing line for the same product (quantity adds up)
// or appends a new one. Callers must pass quantity > 0.
func (s *Store) AddLine(ctx context.Context, line Line) {
	s.mutate(ctx, func(c *Cart) bool {
		for i := range c.Lines {
			if c.Lines[i].ProductID == line.ProductID {
				c.Lines[i].Quantity += line.Quantity
				return true
			}
		}
		c.Lines = append(c.Lines, line)
		return true
	})
}

// RemoveLine drops the line for productID. Removing an absent line is a no-op.
func (s *Store) RemoveLine(ctx context.Context, productID int64) {
	s.mutate(ctx, func(c *Cart) bool {
		return removeLine(c, productID)
	})
}

// SetQuantity replaces the quantity of an existing line. A quantity of zero or
// less removes the line. Unknown product ids are ignored.
func (s *Store) SetQuantity(ctx context.Context, productID int64, quantity int) {
	s.mutate(ctx, func(c *Cart) bool {
		if quantity <= 0 {
			return removeLine(c, productID)
		}
		for i := range c.Lines {
			if c.Lines[i].ProductID == productID {
				c.Lines[i].Quantity = quantity
				return true
			}
		}
		return false
	})
}

// Clear resets the cart to empty.
func (s *Store) Clear(ctx context.Context) {
	s.mutate(ctx, func(c *Cart) bool {
		*c = emptyCart()
		return true
	})
}

// Snapshot returns the current cart by value.
func (s *Store) Snapshot() Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.clone()
}

// Subscribe registers fn to run synchronously on every change, in registration
// order. fn immediately receives the current cart. The returned func cancels
// the subscription.
func (s *Store) Subscribe(fn func(Cart)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	current := s.cart.clone()
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// mutate applies fn under the lock. When fn reports a change the cart is
// recalculated and persisted before the lock drops; subscribers then run
// outside the lock so a callback may safely call back into the store.
// A crash between persist and publish leaves storage ahead of observers,
// which reload recovers.
func (s *Store) mutate(ctx context.Context, fn func(*Cart) bool) {
	s.mu.Lock()

	if !fn(&s.cart) {
		s.mu.Unlock()
		return
	}

	s.cart.recalculate()
	s.persist(ctx, s.cart)

	snapshot := s.cart.clone()
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(snapshot)
	}
}

func removeLine(c *Cart, productID int64) bool {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) persist(ctx context.Context, c Cart) {
	data, err := json.Marshal(c)
	if err != nil {
		s.logger.Printf("cart: marshal failed: %v", err)
		return
	}
	if err := s.store.Set(ctx, storageKey, string(data)); err != nil {
		// The in-memory cart stays authoritative; storage catches up on the
		// next successful write.
		s.logger.Printf("cart: persist failed: %v", err)
	}
}
