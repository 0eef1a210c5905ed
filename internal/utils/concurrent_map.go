package utils

import "sync"

type ConcurrentMap[K comparable, V any] struct {
	items map[K]V
	mutex *sync.RWMutex
}

func NewConcurrentMap[K comparable, V any]() ConcurrentMap[K, V] {
	return ConcurrentMap[K, V]{
		items: make(map[K]V),
		mutex: &sync.RWMutex{},
	}
}

func (c *ConcurrentMap[K, V]) Get(key K) (V, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	val, ok := c.items[key]

	return val, ok
}

func (c *ConcurrentMap[K, V]) Set(key K, val V) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items[key] = val
}

func (c *ConcurrentMap[K, V]) Delete(key K) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.items, key)
}

func (c *ConcurrentMap[K, V]) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.items)
}

// DeleteFunc removes every entry for which del returns true.
func (c *ConcurrentMap[K, V]) DeleteFunc(del func(K, V) bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	for k, v := range c.items {
		if del(k, v) {
			delete(c.items, k)
		}
	}
}
