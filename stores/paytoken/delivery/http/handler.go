package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/delivery"
	"github.com/x-xyz/auctionhouse/domain"
	authMiddleware "github.com/x-xyz/auctionhouse/stores/auth/delivery/http/middleware"
)

type handler struct {
	paytoken domain.PayTokenUseCase
}

func New(e *echo.Echo, paytoken domain.PayTokenUseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{paytoken}

	e.POST("/payTokens", h.register, authMiddleware.Auth(), authMiddleware.IsAdmin())
}

// register
//
//	@Summary		Register pay token
//	@Description	Add or update a fungible token accepted as auction currency
//	@Tags			paytoken
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			payToken	body	domain.PayToken	true	"pay token"
//	@Success		200
//	@Failure		400
//	@Failure		500
//	@Router			/payTokens [post]
func (h *handler) register(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := domain.PayToken{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid payload")
	}

	switch err := h.paytoken.Register(ctx, &p); err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, "ok")
	case domain.ErrInvalidAddress, domain.ErrInvalidCurrency, domain.ErrBadParamInput:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
