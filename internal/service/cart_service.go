package service

import (
	"sync"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
)

// CartService holds the buyer's in-progress basket. It is independent of the
// session and lives only in memory; a restart starts with an empty cart.
type CartService interface {
	// Add inserts a line with quantity 1, or increments the existing line for
	// the same product. Insertion order is preserved for display.
	Add(p model.Product)
	// Remove deletes the line for productID; absent lines are a no-op.
	Remove(productID string)
	// SetQuantity replaces the line's quantity verbatim. The store does not
	// clamp; screens are expected to send values >= 1.
	SetQuantity(productID string, quantity int)
	// Clear empties the cart.
	Clear()
	// Lines returns the cart lines in insertion order.
	Lines() []model.CartLine
	// Total is the sum of price x quantity over all lines, recomputed on every
	// call.
	Total() int64
	// Subscribe registers fn to run after every cart change. The returned func
	// cancels the subscription.
	Subscribe(fn func()) func()
}

type cartService struct {
	mu          sync.RWMutex
	lines       []model.CartLine
	subscribers map[int]func()
	nextSubID   int
}

// NewCartService creates an empty CartService.
func NewCartService() CartService {
	return &cartService{subscribers: make(map[int]func())}
}

func (s *cartService) Add(p model.Product) {
	s.mu.Lock()
	found := false
	for i := range s.lines {
		if s.lines[i].ProductID == p.ID {
			s.lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.lines = append(s.lines, model.CartLine{
			ProductID:   p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
			Quantity:    1,
		})
	}
	subs := s.snapshotSubscribers()
	s.mu.Unlock()
	notifyAll(subs)
}

func (s *cartService) Remove(productID string) {
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	subs := s.snapshotSubscribers()
	s.mu.Unlock()
	notifyAll(subs)
}

func (s *cartService) SetQuantity(productID string, quantity int) {
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity = quantity
			break
		}
	}
	subs := s.snapshotSubscribers()
	s.mu.Unlock()
	notifyAll(subs)
}

func (s *cartService) Clear() {
	s.mu.Lock()
	s.lines = nil
	subs := s.snapshotSubscribers()
	s.mu.Unlock()
	notifyAll(subs)
}

func (s *cartService) Lines() []model.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *cartService) Total() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total int64
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

func (s *cartService) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *cartService) snapshotSubscribers() []func() {
	subs := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	return subs
}

func notifyAll(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
