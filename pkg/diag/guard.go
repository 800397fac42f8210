// pkg/diag/guard.go
package diag

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// guard admits only requests carrying a bearer token signed HS256 with the
// admin secret. Claims beyond a valid signature are not inspected; this
// protects an operator surface, not user data.
func guard(secret string, next http.Handler) http.Handler {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	key := []byte(secret)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const scheme = "Bearer "
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, scheme) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		raw := strings.TrimSpace(header[len(scheme):])
		if raw == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		tok, err := parser.Parse(raw, func(t *jwt.Token) (any, error) { return key, nil })
		if err != nil || !tok.Valid {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
