package suppliers

import (
	"sort"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Supplier)
)

// Register registers a supplier. Typically called from an init() function
// in each supplier package.
func Register(s Supplier) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if s == nil {
		panic("suppliers: Register supplier is nil")
	}
	if _, dup := registry[s.Key()]; dup {
		panic("suppliers: Register called twice for supplier " + s.Key())
	}
	registry[s.Key()] = s
}

// Get returns a supplier by key.
func Get(key string) (Supplier, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	s, ok := registry[key]
	return s, ok
}

// List returns a sorted list of registered supplier keys.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	var keys []string
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetAll returns all registered suppliers, ordered by key.
func GetAll() []Supplier {
	var out []Supplier
	for _, k := range List() {
		s, _ := Get(k)
		out = append(out, s)
	}
	return out
}
