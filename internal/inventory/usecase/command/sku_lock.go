package command

import "sync"

// SKULocks provides per-SKU mutual exclusion for the stock
// check-and-decrement. Two reservations against the same SKU serialize;
// reservations against different SKUs proceed independently.
type SKULocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSKULocks creates an empty lock table
func NewSKULocks() *SKULocks {
	return &SKULocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for sku, creating it on first use.
// Lock entries are never removed; the SKU space is small and bounded by
// the inventory catalogue.
func (l *SKULocks) Lock(sku string) {
	l.mu.Lock()
	m, ok := l.locks[sku]
	if !ok {
		m = &sync.Mutex{}
		l.locks[sku] = m
	}
	l.mu.Unlock()

	m.Lock()
}

// Unlock releases the mutex for sku
func (l *SKULocks) Unlock(sku string) {
	l.mu.Lock()
	m := l.locks[sku]
	l.mu.Unlock()

	if m != nil {
		m.Unlock()
	}
}
