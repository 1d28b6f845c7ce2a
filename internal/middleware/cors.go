// -----------------------------------------------------------------------------
// CORS Middleware
// -----------------------------------------------------------------------------
// Çekiliş sayfası ayrı bir domain'de çalıştığı için tüm endpoint'ler CORS
// başlıklarıyla yanıt verir. İzin verilen origin env'den gelir, varsayılanı
// "*" yani herkese açıktır.
//
// Middleware, gelen her isteğe uygun "Access-Control-Allow-*" başlıklarını
// ekler ve tarayıcıların preflight (OPTIONS) isteklerine doğru yanıt
// verilmesini sağlar.
// -----------------------------------------------------------------------------

package middleware

import (
	"net/http"
)

// CORSMiddleware, belirli bir origin'e izin veren CORS yapılandırmasını geri
// döndüren bir middleware üreticisidir. allowedOrigin parametresi ile, hangi
// domain'in API'ye erişim sağlayabileceği kontrol edilir.
func CORSMiddleware(allowedOrigin string) Middleware {

	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			// Her isteğe Access-Control-Allow-Origin başlığı eklenir.
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)

			// Tarayıcı, bazı isteklerden önce OPTIONS methodu ile "preflight"
			// kontrolü yapar. Bu durumda sunucu izin verilen method ve header'ları
			// bildirmeli ve 204 döndürmelidir.
			if r.Method == "OPTIONS" {
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Cron-Secret")

				w.WriteHeader(http.StatusNoContent) // 204 — içeriksiz başarılı yanıt
				return
			}

			// OPTIONS dışındaki istekler normal handler'a yönlendirilir.
			next.ServeHTTP(w, r)
		})
	}
}
