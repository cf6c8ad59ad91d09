package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/finvera/ledger-core/pkg/web"
	"github.com/gin-gonic/gin"
)

const (
	// ActorHeaderKey carries the acting identity resolved by the platform's
	// auth layer in front of this service.
	ActorHeaderKey = "X-Actor"
	// ActorKey is the gin context key the identity is stored under.
	ActorKey = "acting_identity"
)

// ErrActorHeaderNotFound is returned when a write request arrives without an identity.
var ErrActorHeaderNotFound = errors.New("x-actor header is not provided")

// Actor requires the X-Actor header and stores it in the request context.
//
// Every state-changing ledger operation records who performed it, so routes
// wrapped by this middleware reject anonymous requests outright.
func Actor() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		actor := strings.TrimSpace(ctx.GetHeader(ActorHeaderKey))
		if actor == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(ErrActorHeaderNotFound))
			return
		}

		ctx.Set(ActorKey, actor)
		ctx.Next()
	}
}

// ActorFromCtx returns the identity stored by Actor, or "" when absent.
func ActorFromCtx(ctx *gin.Context) string {
	return ctx.GetString(ActorKey)
}
