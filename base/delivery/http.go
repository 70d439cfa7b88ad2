// Package delivery carries helpers shared by the HTTP handlers.
package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

// JsonResponse is the envelope every handler writes, the payload plus
// a coarse success or fail flag.
type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// MakeJsonResp writes data wrapped in the response envelope. Errors
// are flattened to their message, and a missing record downgrades the
// chosen status to 404 so handlers can pass storage errors straight
// through.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound) {
			status = http.StatusNotFound
		}
		data = err.Error()
	}

	switch {
	case status >= 400:
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	case status >= 200 && status < 300:
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	default:
		return c.JSON(status, data)
	}
}
