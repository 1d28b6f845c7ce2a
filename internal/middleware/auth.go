// -----------------------------------------------------------------------------
// Auth Middleware
// -----------------------------------------------------------------------------
// Satın alma akışı anonimdir; JWT yalnızca admin tarafındaki istatistik ve
// yönetim endpoint'lerinde zorunludur. Token, Authorization: Bearer başlığı
// ile taşınır ve pkg/auth ile doğrulanır.
// -----------------------------------------------------------------------------

package middleware

import (
	"context"
	"net/http"

	"github.com/biyonik/raffle-pix-api/internal/http/response"
	"github.com/biyonik/raffle-pix-api/pkg/auth"
)

// claimsContextKey, doğrulanmış JWT claim'lerinin context anahtarı.
type claimsContextKey struct{}

// ClaimsKey, handler'ların claim'lere erişmek için kullandığı anahtar.
var ClaimsKey = claimsContextKey{}

// RequireAuth, geçerli bir JWT olmadan isteği reddeden middleware döndürür.
func RequireAuth(config *auth.JWTConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.ExtractTokenFromHeader(r.Header.Get("Authorization"))
			if token == "" {
				response.Unauthorized(w, "Kimlik doğrulaması gerekli")
				return
			}

			claims, err := auth.ParseToken(token, config)
			if err != nil {
				response.Unauthorized(w, "Geçersiz veya süresi dolmuş token")
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext, context'teki doğrulanmış claim'leri döndürür.
func ClaimsFromContext(ctx context.Context) (*auth.JWTClaims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*auth.JWTClaims)
	return claims, ok
}
