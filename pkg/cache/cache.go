// -----------------------------------------------------------------------------
// Cache Interface
// -----------------------------------------------------------------------------
// Laravel-style cache interface tanımı.
//
// Bu dosya tüm cache driver'ların implement etmesi gereken interface'i tanımlar.
// Driver'lar: Redis, Memory
//
// Özellikler:
// - Get/Set/Delete operations
// - TTL (Time To Live) support
// - Remember pattern (cache or execute)
// - Increment for counters
// - Flush (clear all)
// -----------------------------------------------------------------------------

package cache

import (
	"time"
)

// Cache, tüm cache driver'ların implement etmesi gereken interface.
//
// Bu interface Laravel Cache facade pattern'ini takip eder.
// Her driver (Redis, Memory) bu interface'i implement eder.
//
// Örnek kullanım:
//
//	var cache Cache = NewRedisCache(redisClient, logger, "rifa:")
//	cache.Set("raffle:42", raffle, 10*time.Minute)
type Cache interface {
	// Get, cache'den veri okur.
	//
	// Key bulunamazsa nil döner, hata vermez.
	//
	// Örnek:
	//   value, err := cache.Get("raffle:42")
	//   if value == nil {
	//       // Cache miss
	//   }
	Get(key string) (interface{}, error)

	// Set, cache'e veri yazar.
	//
	// TTL (Time To Live) belirtilirse, süre sonunda otomatik silinir.
	// TTL = 0 ise süresiz saklanır (dikkatli kullan!).
	//
	// Güvenlik Notu:
	// - Sensitive data cache'lemeden önce encrypt edilmeli
	// - TTL mutlaka belirlenmeli (memory leak önlemek için)
	Set(key string, value interface{}, ttl time.Duration) error

	// Delete, cache'den veri siler.
	//
	// Key bulunamazsa hata vermez, sessizce geçer.
	Delete(key string) error

	// Has, key'in cache'de olup olmadığını kontrol eder.
	Has(key string) (bool, error)

	// Remember, cache'den okur, bulamazsa fonksiyonu çalıştırıp cache'ler.
	//
	// Bu Laravel'in en popüler pattern'lerinden biri:
	// "Cache'de varsa al, yoksa hesapla ve cache'le"
	//
	// Örnek:
	//   raffle, err := cache.Remember("raffle:42", 10*time.Minute, func() (interface{}, error) {
	//       return raffleRepo.FindByID(42)
	//   })
	Remember(key string, ttl time.Duration, callback func() (interface{}, error)) (interface{}, error)

	// Increment, sayısal değeri artırır (atomic).
	//
	// Counter use case'leri için kullanılır. Key yoksa 0'dan başlatır.
	Increment(key string, value int64) (int64, error)

	// Flush, tüm cache'i temizler.
	//
	// UYARI: Bu operasyon geri alınamaz!
	// Production'da dikkatli kullanılmalı.
	Flush() error
}

// Stats, cache istatistikleri interface.
//
// Monitoring ve debugging için kullanılır.
// Tüm driver'lar optional olarak implement edebilir.
type Stats interface {
	Stats() map[string]interface{}
}
