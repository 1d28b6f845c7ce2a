// -----------------------------------------------------------------------------
// Memory Cache Driver
// -----------------------------------------------------------------------------
// In-memory cache implementation (non-persistent).
//
// Testing ve geçici cache için idealdir.
// Request-level cache, unit test, development ortamlarında kullanılır.
//
// Özellikler:
// - Ultra-fast (direct memory access)
// - Thread-safe (sync.RWMutex)
// - TTL support (automatic cleanup)
// - No serialization overhead
//
// Sınırlamalar:
// - Non-persistent (restart'ta kaybolur)
// - Single-server only (distributed değil)
// - Memory leak riski (dikkatli kullan!)
// -----------------------------------------------------------------------------

package cache

import (
	"log"
	"sync"
	"time"
)

// MemoryCacheEntry, memory'de saklanan veri yapısı.
type MemoryCacheEntry struct {
	Value     interface{} // Gerçek değer (pointer)
	Counter   int64       // Increment için sayaç
	ExpiresAt time.Time   // Expire zamanı (zero value = süresiz)
}

// IsExpired, entry'nin expire olup olmadığını kontrol eder.
func (e *MemoryCacheEntry) IsExpired() bool {
	if e.ExpiresAt.IsZero() {
		return false // Süresiz
	}
	return time.Now().After(e.ExpiresAt)
}

// MemoryCache, in-memory cache implementation.
type MemoryCache struct {
	store  map[string]*MemoryCacheEntry
	mu     sync.RWMutex
	logger *log.Logger
}

// NewMemoryCache, yeni bir Memory cache instance oluşturur.
//
// Örnek:
//
//	cache := NewMemoryCache(logger)
//	cache.Set("raffle:42", raffle, 10*time.Minute)
func NewMemoryCache(logger *log.Logger) *MemoryCache {
	mc := &MemoryCache{
		store:  make(map[string]*MemoryCacheEntry),
		logger: logger,
	}

	// Garbage collection başlat
	go mc.startGarbageCollection()

	logger.Println("✅ Memory cache başlatıldı")

	return mc
}

// Get, cache'den veri okur.
func (m *MemoryCache) Get(key string) (interface{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, exists := m.store[key]
	if !exists {
		return nil, nil // Cache miss
	}

	// TTL kontrolü
	if entry.IsExpired() {
		// Expired - silinecek (GC tarafından)
		return nil, nil
	}

	return entry.Value, nil
}

// Set, cache'e veri yazar.
func (m *MemoryCache) Set(key string, value interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Expire zamanını hesapla
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	m.store[key] = &MemoryCacheEntry{
		Value:     value,
		ExpiresAt: expiresAt,
	}

	return nil
}

// Delete, cache'den veri siler.
func (m *MemoryCache) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.store, key)
	return nil
}

// Has, key'in varlığını kontrol eder.
func (m *MemoryCache) Has(key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, exists := m.store[key]
	if !exists {
		return false, nil
	}

	return !entry.IsExpired(), nil
}

// Remember, cache'den okur veya callback'i çalıştırıp cache'ler.
func (m *MemoryCache) Remember(key string, ttl time.Duration, callback func() (interface{}, error)) (interface{}, error) {
	val, err := m.Get(key)
	if err != nil {
		return nil, err
	}

	// Cache hit
	if val != nil {
		return val, nil
	}

	// Cache miss - callback çalıştır
	result, err := callback()
	if err != nil {
		return nil, err
	}

	if err := m.Set(key, result, ttl); err != nil {
		m.logger.Printf("⚠️  Remember cache yazma hatası [%s]: %v", key, err)
	}

	return result, nil
}

// Increment, sayısal değeri artırır.
func (m *MemoryCache) Increment(key string, value int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.store[key]
	if !exists || entry.IsExpired() {
		entry = &MemoryCacheEntry{}
		m.store[key] = entry
	}

	entry.Counter += value
	entry.Value = entry.Counter

	return entry.Counter, nil
}

// Flush, tüm cache'i temizler.
func (m *MemoryCache) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := len(m.store)
	m.store = make(map[string]*MemoryCacheEntry)

	m.logger.Printf("⚠️  Memory cache temizlendi [keys: %d]", count)
	return nil
}

// Stats, memory cache istatistiklerini döndürür.
func (m *MemoryCache) Stats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	expired := 0
	for _, entry := range m.store {
		if entry.IsExpired() {
			expired++
		}
	}

	return map[string]interface{}{
		"driver":       "memory",
		"total_keys":   len(m.store),
		"expired_keys": expired,
	}
}

// startGarbageCollection, expired entry'leri periyodik olarak temizler.
//
// Her 60 saniyede bir çalışır. Memory leak önlemek için gereklidir.
func (m *MemoryCache) startGarbageCollection() {
	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.mu.Lock()
		removed := 0
		for key, entry := range m.store {
			if entry.IsExpired() {
				delete(m.store, key)
				removed++
			}
		}
		m.mu.Unlock()

		if removed > 0 {
			m.logger.Printf("Memory cache GC: %d expired key temizlendi", removed)
		}
	}
}
