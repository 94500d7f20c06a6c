package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/DanielKiedis/TallerMecanico/internal/config"
	"github.com/DanielKiedis/TallerMecanico/internal/utils"
)

type ctxKey string

const (
	CtxUserID   ctxKey = "uid"
	CtxUsername ctxKey = "username"
	CtxRole     ctxKey = "role"
)

// WithAuth parses the session token from the Authorization header
// ("Bearer x" or the bare token the admin page sends) and puts the
// claims into the request context. Missing or invalid tokens pass
// through unauthenticated; RequireRoles is the gate.
func WithAuth(log zerolog.Logger, cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := strings.TrimSpace(r.Header.Get("Authorization"))
			tok = strings.TrimPrefix(tok, "Bearer ")
			if tok == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := utils.ParseJWT(cfg.SessionSecret, tok)
			if err != nil {
				log.Debug().Err(err).Msg("rejected session token")
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), CtxUserID, strconv.FormatInt(claims.UserID, 10))
			ctx = context.WithValue(ctx, CtxUsername, claims.Username)
			ctx = context.WithValue(ctx, CtxRole, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
