package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ezfinancial/go-entry-engine/internal/common"
	commonhttp "github.com/ezfinancial/go-entry-engine/internal/common/http"

	"github.com/labstack/echo/v4"
)

type ownerIDKey struct{}

// OwnerFromContext returns the owner resolved by ResolveOwner, or "" when
// the request was not authenticated.
func OwnerFromContext(ctx context.Context) string {
	owner, _ := ctx.Value(ownerIDKey{}).(string)
	return owner
}

func SetOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerIDKey{}, ownerID)
}

func (m *AppMiddleware) InternalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			secretKey := c.Request().Header.Get("X-Secret-Key")
			if secretKey == "" {
				return commonhttp.RestErrorResponse(c, http.StatusUnauthorized, fmt.Errorf("%s", "required secret key"))
			}

			if secretKey != m.conf.App.SecretKey {
				return commonhttp.RestErrorResponse(c, http.StatusUnauthorized, fmt.Errorf("%s", "invalid secret key"))
			}

			return next(c)
		}
	}
}

// ResolveOwner requires X-Owner-Id on every call. Nothing in the entry
// lifecycle is meaningful without a calling owner.
func (m *AppMiddleware) ResolveOwner() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ownerID := c.Request().Header.Get("X-Owner-Id")
			if ownerID == "" {
				return commonhttp.RestErrorResponse(c, http.StatusUnauthorized, common.ErrUnauthenticated)
			}

			ctx := SetOwner(c.Request().Context(), ownerID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
