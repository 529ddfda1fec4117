package server

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"

	"github.com/woozymasta/overviewer-util/internal/config"
)

const authRealm = "Overviewer"

// BasicAuth returns middleware requiring the configured credentials.
// With an empty user or password the middleware lets everything through.
func BasicAuth(auth config.AuthConfig) func(http.Handler) http.Handler {
	if auth.User == "" || auth.Pass == "" {
		return func(next http.Handler) http.Handler { return next }
	}

	// fixed-length digests keep the comparison independent of input length
	wantUser := sha256.Sum256([]byte(auth.User))
	wantPass := sha256.Sum256([]byte(auth.Pass))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if ok {
				gotUser := sha256.Sum256([]byte(user))
				gotPass := sha256.Sum256([]byte(pass))

				userOK := subtle.ConstantTimeCompare(gotUser[:], wantUser[:])
				passOK := subtle.ConstantTimeCompare(gotPass[:], wantPass[:])
				if userOK&passOK == 1 {
					next.ServeHTTP(w, r)
					return
				}
			}

			w.Header().Set("WWW-Authenticate", `Basic realm="`+authRealm+`"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		})
	}
}
