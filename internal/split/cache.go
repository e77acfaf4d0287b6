package split

import "sync"

// Cache provides compiled splitter caching with FIFO eviction.
// Lock-free reads via sync.Map; only regex separators are cached,
// since the whitespace and single-byte tiers compile for free.
type Cache struct {
	cache   sync.Map   // map[string]*Splitter
	orderMu sync.Mutex // protects order and size
	order   []string   // FIFO order for eviction
	size    int
	maxSize int
}

// NewCache creates a cache with the given max size.
func NewCache(maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = 64
	}
	return &Cache{
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

// Get returns a compiled splitter for fs, compiling and caching if needed.
func (c *Cache) Get(fs string) (*Splitter, error) {
	// Cheap tiers bypass the cache entirely.
	if fs == Whitespace || len(fs) == 1 {
		return Compile(fs)
	}

	if s, ok := c.cache.Load(fs); ok {
		return s.(*Splitter), nil
	}

	s, err := Compile(fs)
	if err != nil {
		return nil, err
	}

	if existing, loaded := c.cache.LoadOrStore(fs, s); loaded {
		return existing.(*Splitter), nil
	}

	c.orderMu.Lock()
	c.order = append(c.order, fs)
	c.size++
	for c.size > c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		c.cache.Delete(oldest)
		c.size--
	}
	c.orderMu.Unlock()

	return s, nil
}

// Len returns the number of cached splitters.
func (c *Cache) Len() int {
	c.orderMu.Lock()
	n := c.size
	c.orderMu.Unlock()
	return n
}

var defaultCache = NewCache(64)

// Get returns a compiled splitter from the package-level cache.
func Get(fs string) (*Splitter, error) {
	return defaultCache.Get(fs)
}
