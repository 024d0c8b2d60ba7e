package session

import "sync"

// KV is the persistent key-value store the session lives in. In the browser
// it is window.localStorage.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Del(key string)
}

type MemoryKV struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{m: make(map[string]string)}
}

func (kv *MemoryKV) Get(key string) (string, bool) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	v, ok := kv.m[key]
	return v, ok
}

func (kv *MemoryKV) Set(key, value string) error {
	kv.mu.Lock()
	kv.m[key] = value
	kv.mu.Unlock()
	return nil
}

func (kv *MemoryKV) Del(key string) {
	kv.mu.Lock()
	delete(kv.m, key)
	kv.mu.Unlock()
}

func (kv *MemoryKV) Len() int {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	return len(kv.m)
}
