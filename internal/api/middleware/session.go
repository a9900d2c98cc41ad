package middleware

import (
	"log"
	"net/http"

	"github.com/karankatare99/uber/internal/auth"
)

// SessionGate protects page routes. Requests without a verifiable session
// cookie are bounced to the public entry point; invalid cookies are cleared
// on the way out. The request passes through unchanged on success — handlers
// re-derive identity from the cookie themselves.
func SessionGate(codec *auth.TokenCodec, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.SessionCookieName)
			if err != nil || cookie.Value == "" {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}

			if _, err := codec.Verify(cookie.Value); err != nil {
				log.Printf("ERROR [middleware.SessionGate] token verification failed: %v", err)
				auth.ClearSessionCookie(w, secure)
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
