package middleware

import (
	"net/http"

	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

// Recover turns a panic into a logged error and hands the response to
// onPanic, which renders the 500 page.
func Recover(logger *zap.Logger, onPanic http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}

					requestID, _ := utils.GetRequestIDFromContext(r.Context())
					logger.Error("PANIC recovered",
						zap.Any("error", err),
						zap.String("request_id", requestID),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
						zap.Stack("stack"),
					)

					onPanic(w, r)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
