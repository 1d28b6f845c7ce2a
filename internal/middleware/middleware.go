// -----------------------------------------------------------------------------
// Middleware Package
// -----------------------------------------------------------------------------
// Bu dosya, uygulamanın HTTP istek yaşam döngüsüne müdahale eden middleware
// yapısını içerir. Laravel veya Symfony gibi framework'lerde yer alan
// "HTTP Kernel" mantığının Go'ya uyarlanmış, sade fakat güçlü bir modelidir.
//
// Middleware yapısı, bir http.Handler'ı alıp yeni bir http.Handler üreten
// fonksiyonlardan oluşur. Böylece istek işlenmeden önce veya sonra ek işlemler
// gerçekleştirmek mümkündür. Logging, Rate Limiting, Cron Secret doğrulama
// gibi özellikler bu yapının üzerine inşa edilir.
// -----------------------------------------------------------------------------

package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Middleware, bir sonraki http.Handler'ı alıp onu yeni bir handler olarak
// saran fonksiyon tipidir. Bu, Go'nun net/http mimarisinde cross-cutting
// concerns oluşturmanın standart yoludur.
type Middleware func(next http.Handler) http.Handler

// statusRecorder, yanıt status kodunu loglayabilmek için ResponseWriter'ı sarar.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Logging, gelen her HTTP isteğini structured olarak kaydeder. Her isteğe
// bir request id atanır ve X-Request-ID başlığı ile yanıta da yazılır;
// webhook teslimatlarını sağlayıcı loglarıyla eşleştirmeyi kolaylaştırır.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		log.WithFields(log.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     recorder.status,
			"duration":   time.Since(start).String(),
		}).Info("HTTP isteği")
	})
}
