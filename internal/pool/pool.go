// Package pool provides typed object pooling for go-argparse
// Used by the parser to reuse per-parse scratch maps across calls
package pool

import (
	"sync"
)

// Pool provides a generic, type-safe object pool
type Pool[T any] struct {
	pool    sync.Pool
	reset   func(*T) // Optional reset function called before reuse
	maxSize int      // Maximum objects to keep (0 = unlimited)
	count   int64    // Objects currently parked in the pool (approximate)
	mutex   sync.Mutex
}

// NewPool creates a new generic pool with the given factory function
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool with a reset function called before reuse
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}

	p.mutex.Lock()
	if p.count > 0 {
		p.count--
	}
	p.mutex.Unlock()

	return obj
}

// Put returns an object to the pool for reuse
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}

	p.mutex.Lock()
	if p.maxSize > 0 && p.count >= int64(p.maxSize) {
		p.mutex.Unlock()
		return
	}
	p.count++
	p.mutex.Unlock()

	p.pool.Put(obj)
}

// SetMaxSize sets the maximum number of objects to keep in the pool
func (p *Pool[T]) SetMaxSize(size int) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.maxSize = size
}

// Stats returns approximate pool statistics
func (p *Pool[T]) Stats() (count int64, maxSize int) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.count, p.maxSize
}

// Global string-map pool used for occurrence maps

var stringMapPool = NewPoolWithReset(
	func() *map[string]string {
		m := make(map[string]string, 16)
		return &m
	},
	func(m *map[string]string) {
		clear(*m)
	},
)

// GetStringMap returns an empty map from the global pool
func GetStringMap() *map[string]string {
	return stringMapPool.Get()
}

// PutStringMap returns a map to the global pool
func PutStringMap(m *map[string]string) {
	stringMapPool.Put(m)
}
