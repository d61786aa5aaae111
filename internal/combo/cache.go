package combo

import (
	"math/big"
	"sync"
)

// fibKey is the memo key of a rabbit recurrence
type fibKey struct {
	generation int
	litter     int
}

// fibdKey is the memo key of a mortal rabbit recurrence
type fibdKey struct {
	generation int
	months     int
	litter     int
}

// population is the state of a mortal rabbit generation
type population struct {
	alive   *big.Int
	newborn *big.Int
}

// Cache memoizes recurrence results by their arguments. Entries are only
// ever added; Reset drops all of them. A Cache is safe for concurrent use.
type Cache struct {
	mu   sync.RWMutex
	fib  map[fibKey]*big.Int
	fibd map[fibdKey]population
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{
		fib:  make(map[fibKey]*big.Int),
		fibd: make(map[fibdKey]population),
	}
}

// Len is the number of memoized results.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.fib) + len(c.fibd)
}

// Reset drops every memoized result.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fib = make(map[fibKey]*big.Int)
	c.fibd = make(map[fibdKey]population)
}

func (c *Cache) getFib(k fibKey) (*big.Int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.fib[k]
	return v, ok
}

func (c *Cache) setFib(k fibKey, v *big.Int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.fib[k]; !ok {
		c.fib[k] = v
	}
}

func (c *Cache) getFibd(k fibdKey) (population, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.fibd[k]
	return v, ok
}

func (c *Cache) setFibd(k fibdKey, v population) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.fibd[k]; !ok {
		c.fibd[k] = v
	}
}
