// randomchat/middlewares/cors.go
package middlewares

import (
	"net/http"
)

// OriginGuard blocks requests from origins outside the allow-list before
// they reach any handler. Requests without an Origin header (curl, mobile
// apps, same-origin) pass through. Header management for allowed origins
// is left to the cors middleware mounted after this one.
func OriginGuard(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				if _, ok := allowed[origin]; !ok {
					http.Error(w, "CORS: Origin not allowed", http.StatusForbidden)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
