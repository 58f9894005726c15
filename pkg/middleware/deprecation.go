package middleware

import "net/http"

// Deprecated marca a rota como obsoleta e aponta para a rota que a substitui
func Deprecated(successor string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Deprecation", "true")
			w.Header().Set("Link", "<"+successor+`>; rel="successor-version"`)
			next.ServeHTTP(w, r)
		})
	}
}
