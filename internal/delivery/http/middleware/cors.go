package middleware

import "net/http"

// CORS sets the permissive allow-origin header on every response, covering
// handlers mounted outside the envelope helpers (swagger, future static
// routes). Per-route OPTIONS preflight replies are registered by the router.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		next.ServeHTTP(w, r)
	})
}
