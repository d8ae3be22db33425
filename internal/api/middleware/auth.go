package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-OpsPanel/internal/api/handlers"
	"github.com/m04kA/SMC-OpsPanel/internal/domain"
)

// ClientNameHeader заголовок с именем клиента
const ClientNameHeader = "X-Client-Name"

const (
	msgClientNameRequired = "требуется заголовок X-Client-Name"
	msgClientNameTooLong  = "имя клиента слишком длинное"
)

type ctxKey struct{}

// Auth требует заголовок X-Client-Name и кладёт имя клиента в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientName := strings.TrimSpace(r.Header.Get(ClientNameHeader))
		if clientName == "" {
			handlers.RespondUnauthorized(w, msgClientNameRequired)
			return
		}
		if len(clientName) > domain.MaxClientNameLength {
			handlers.RespondBadRequest(w, msgClientNameTooLong)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClientName(r.Context(), clientName)))
	})
}

// WithClientName возвращает контекст с именем клиента
func WithClientName(ctx context.Context, clientName string) context.Context {
	return context.WithValue(ctx, ctxKey{}, clientName)
}

// ClientNameFromContext достаёт имя клиента, положенное Auth
func ClientNameFromContext(ctx context.Context) (string, bool) {
	clientName, ok := ctx.Value(ctxKey{}).(string)
	return clientName, ok && clientName != ""
}
