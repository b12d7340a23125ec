// Package middleware HTTP middleware сервиса.
package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// userHeader заголовок с идентификатором вызывающего
const userHeader = "X-User-Name"

type userContextKey struct{}

// Identity извлекает идентификатор вызывающего из заголовка X-User-Name
// и кладет его в контекст запроса. Ядро сервиса видит идентификатор как
// непрозрачную строку; если заголовок не передан, используется фиксированный
// псевдо-пользователь.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := r.Header.Get(userHeader)
		if user == "" {
			user = domain.DefaultRequestedBy
		}

		ctx := context.WithValue(r.Context(), userContextKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUser возвращает идентификатор вызывающего из контекста
func GetUser(ctx context.Context) (string, bool) {
	user, ok := ctx.Value(userContextKey{}).(string)
	return user, ok
}
