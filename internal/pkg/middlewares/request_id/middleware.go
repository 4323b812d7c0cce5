package request_id

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const Header = "X-Request-ID"

type ctxKey struct{}

// Middleware берёт id из заголовка клиента или выдаёт новый и возвращает его в ответе.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(Header)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			w.Header().Set(Header, requestID)

			ctx := context.WithValue(r.Context(), ctxKey{}, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func FromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(ctxKey{}).(string)
	return requestID
}
