package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stratus-hr/hrd-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests without a verified access token. Token
// verification itself happens in jwtauth.Verifier further up the chain.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "Missing or invalid access token")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
