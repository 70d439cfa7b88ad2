package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/delivery"
	"github.com/x-xyz/auctionhouse/domain/healthcheck"
)

type handler struct {
	healthcheck healthcheck.Usecase
}

// New mounts the liveness probe.
func New(e *echo.Echo, uc healthcheck.Usecase) {
	h := &handler{healthcheck: uc}
	e.GET("/health", h.check)
}

func (h *handler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	if err := h.healthcheck.Check(context); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
