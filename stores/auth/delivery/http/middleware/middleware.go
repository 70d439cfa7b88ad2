package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/delivery"
	"github.com/x-xyz/auctionhouse/domain"
)

// AuthMiddleware guards routes with the bearer token issued by the auth
// usecase.
type AuthMiddleware struct {
	auth   domain.AuthUsecase
	admins map[string]struct{}
}

func New(auth domain.AuthUsecase, adminAddresses []string) *AuthMiddleware {
	admins := make(map[string]struct{}, len(adminAddresses))
	for _, a := range adminAddresses {
		admins[domain.Address(a).ToLowerStr()] = struct{}{}
	}
	return &AuthMiddleware{auth: auth, admins: admins}
}

// Auth rejects requests without a valid bearer token and stashes the caller
// address under the "address" context key.
func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

// IsAdmin lets only configured admin addresses through. Mount it after Auth.
func (m *AuthMiddleware) IsAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			address := c.Get("address").(domain.Address)
			if _, ok := m.admins[address.ToLowerStr()]; !ok {
				return delivery.MakeJsonResp(c, http.StatusMethodNotAllowed, "require admin privilege")
			}
			return next(c)
		}
	}
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	address, err := m.auth.ParseToken(ctx, key)
	if err != nil {
		ctx.WithField("err", err).Error("auth.ParseToken failed")
		return false, err
	}
	c.Set("address", domain.Address(address))
	return true, nil
}
