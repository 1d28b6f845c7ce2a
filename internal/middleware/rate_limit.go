// -----------------------------------------------------------------------------
// Rate Limiting Middleware
// -----------------------------------------------------------------------------
// PIX ücreti oluşturmak her istekte gateway'e gerçek bir çağrı yaptığı için
// generate endpoint'i IP bazında sınırlanır. Token bucket implementasyonu
// golang.org/x/time/rate üzerine kuruludur; IP başına bir limiter tutulur ve
// uzun süredir görülmeyen IP'lerin limiter'ları periyodik olarak temizlenir.
// -----------------------------------------------------------------------------

package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/biyonik/raffle-pix-api/internal/http/request"
	"github.com/biyonik/raffle-pix-api/internal/http/response"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter, IP başına token bucket tutan limiter registry'sidir.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int

	stopChan chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter, pencere başına maxRequests isteğe izin veren bir
// limiter oluşturur.
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients:  make(map[string]*clientLimiter),
		limit:    rate.Limit(float64(maxRequests) / window.Seconds()),
		burst:    maxRequests,
		stopChan: make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Allow, verilen IP için bir token tüketmeye çalışır.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	client, exists := rl.clients[ip]
	if !exists {
		client = &clientLimiter{
			limiter: rate.NewLimiter(rl.limit, rl.burst),
		}
		rl.clients[ip] = client
	}
	client.lastSeen = time.Now()

	return client.limiter.Allow()
}

// Stop, cleanup goroutine'ini durdurur.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.stopChan)
	})
}

// cleanupLoop, 10 dakikadır istek göndermeyen IP'lerin limiter'larını siler.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopChan:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-10 * time.Minute)
			rl.mu.Lock()
			for ip, client := range rl.clients {
				if client.lastSeen.Before(cutoff) {
					delete(rl.clients, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// RateLimit, verilen limiter'ı kullanan middleware döndürür.
func RateLimit(rl *RateLimiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := request.New(r).GetIP()

			if !rl.Allow(ip) {
				response.TooManyRequests(w, "Çok fazla istek gönderdiniz, lütfen biraz bekleyin")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
