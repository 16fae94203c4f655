// Package store is the in-memory mirror of server-confirmed records. It is a
// cache only: every mutation is issued after the backend accepted the change.
package store

import (
	"log"
	"sync"
)

// Entity is anything a Collection can key by identifier.
type Entity interface {
	GetID() uint
}

// Collection holds one entity type in fetch order.
type Collection[T Entity] struct {
	name string

	mu      sync.RWMutex
	items   []T
	fetched bool
	gen     uint64 // bumped by Reset
}

func NewCollection[T Entity](name string) *Collection[T] {
	return &Collection[T]{name: name}
}

func (c *Collection[T]) Name() string { return c.name }

// SetAll replaces the whole collection and marks it fetched.
func (c *Collection[T]) SetAll(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(make([]T, 0, len(items)), items...)
	c.fetched = true
}

// Generation identifies the collection's contents between resets. Read it
// before a request and hand it to SetAllIf or AddIf with the response.
func (c *Collection[T]) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

// SetAllIf is SetAll unless the collection was reset after gen was read.
// Reports whether the items were stored.
func (c *Collection[T]) SetAllIf(gen uint64, items []T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		log.Printf("⚠️ store: dropped stale %s fetch (%d items)", c.name, len(items))
		return false
	}
	c.items = append(make([]T, 0, len(items)), items...)
	c.fetched = true
	return true
}

func (c *Collection[T]) Add(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// AddIf is Add unless the collection was reset after gen was read.
func (c *Collection[T]) AddIf(gen uint64, item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		log.Printf("⚠️ store: dropped stale %s add of id %d", c.name, item.GetID())
		return false
	}
	c.items = append(c.items, item)
	return true
}

// Update replaces the item with the same ID. A miss is logged and ignored.
func (c *Collection[T]) Update(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].GetID() == item.GetID() {
			c.items[i] = item
			return
		}
	}
	log.Printf("⚠️ store: update on %s missed id %d", c.name, item.GetID())
}

// Delete removes the item with the given ID. A miss is logged and ignored.
func (c *Collection[T]) Delete(id uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].GetID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
	log.Printf("⚠️ store: delete on %s missed id %d", c.name, id)
}

// Reset empties the collection and clears the fetched flag so the next view
// refetches.
func (c *Collection[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.fetched = false
	c.gen++
}

func (c *Collection[T]) Fetched() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fetched
}

func (c *Collection[T]) MarkFetched() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetched = true
}

func (c *Collection[T]) Get(id uint) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if it.GetID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// All returns a copy; callers may keep it across later mutations.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append(make([]T, 0, len(c.items)), c.items...)
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
