// -----------------------------------------------------------------------------
// Cron Secret Middleware
// -----------------------------------------------------------------------------
// Cleanup endpoint'i dışarıdan çağrılabilir ama yalnızca zamanlayıcı servisi
// tetiklemelidir. İstek, X-Cron-Secret başlığında düz secret taşır; env'de
// ise secret'ın bcrypt hash'i durur. Hash sızsa bile endpoint çağrılamaz.
// -----------------------------------------------------------------------------

package middleware

import (
	"net/http"

	"github.com/biyonik/raffle-pix-api/internal/http/response"
	"github.com/biyonik/raffle-pix-api/pkg/auth"
)

// CronSecret, X-Cron-Secret başlığını yapılandırılmış bcrypt hash'e karşı
// doğrulayan middleware döndürür. Hash yapılandırılmamışsa endpoint kapalıdır.
func CronSecret(secretHash string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secretHash == "" {
				response.Forbidden(w, "Cleanup endpoint'i yapılandırılmamış")
				return
			}

			secret := r.Header.Get("X-Cron-Secret")
			if secret == "" || !auth.Check(secret, secretHash) {
				response.Unauthorized(w, "Geçersiz cron secret")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
