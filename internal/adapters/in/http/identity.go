package http

import (
	"net/http"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// Identity headers injected by the API gateway after token verification.
// The service trusts them unconditionally: it sits behind the gateway and is
// never exposed directly. The full snapshot travels in headers, not just the
// id, because the engine denormalizes the actor into orders (the deliverer
// snapshot) and addresses notifications by name.
const (
	HeaderUserID        = "X-User-Id"
	HeaderUserFirstName = "X-User-Firstname"
	HeaderUserLastName  = "X-User-Lastname"
	HeaderUserEmail     = "X-User-Email"
	HeaderUserPhone     = "X-User-Phone"
	HeaderUserRole      = "X-User-Role"
)

const actorContextKey = "actor"

// IdentityMiddleware reconstructs the authenticated user snapshot from the
// gateway headers and stores it on the request context. Requests with a
// missing or malformed identity are rejected with 401 before reaching any
// handler.
func IdentityMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			actor, err := actorFromHeaders(ctx.Request().Header)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing or invalid identity",
				})
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func actorFromHeaders(header http.Header) (user.Snapshot, error) {
	id, err := kernel.UUIDFromString(header.Get(HeaderUserID))
	if err != nil {
		return user.Snapshot{}, err
	}

	role, err := user.RoleFromString(header.Get(HeaderUserRole))
	if err != nil {
		return user.Snapshot{}, err
	}

	return user.NewSnapshot(
		id,
		header.Get(HeaderUserFirstName),
		header.Get(HeaderUserLastName),
		header.Get(HeaderUserEmail),
		header.Get(HeaderUserPhone),
		role,
	)
}

// actorFrom returns the snapshot stored by IdentityMiddleware.
func actorFrom(ctx echo.Context) user.Snapshot {
	actor, _ := ctx.Get(actorContextKey).(user.Snapshot)
	return actor
}
