package templates

// Memo caches the results of a recursive function keyed by its argument.
// The function receives the Memo itself so that recursive calls go through
// the cache.
type Memo[K comparable, V any] struct {
	fn    func(self *Memo[K, V], k K) V
	cache map[K]V
}

// NewMemo wraps fn with a fresh, empty cache.
func NewMemo[K comparable, V any](fn func(self *Memo[K, V], k K) V) *Memo[K, V] {
	return &Memo[K, V]{fn: fn, cache: make(map[K]V)}
}

// Get returns fn(k), computing it at most once per key.
func (m *Memo[K, V]) Get(k K) V {
	if v, ok := m.cache[k]; ok {
		return v
	}
	v := m.fn(m, k)
	m.cache[k] = v

	return v
}

// Len reports how many distinct keys have been computed.
func (m *Memo[K, V]) Len() int {
	return len(m.cache)
}
