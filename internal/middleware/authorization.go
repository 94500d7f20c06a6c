package middleware

import (
	"net/http"

	"github.com/DanielKiedis/TallerMecanico/internal/utils"
)

// RequireRoles allows the request only if the current role is in the
// allowed list. Fails closed: no token, broken token or wrong role all
// end here.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := utils.GetString(r.Context(), CtxRole)
			if _, ok := allowed[role]; !ok {
				utils.Error(w, http.StatusForbidden, "acceso no autorizado")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
