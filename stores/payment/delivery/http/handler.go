package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pokemarket/goapi/base/ctx"
	"github.com/pokemarket/goapi/base/delivery"
	"github.com/pokemarket/goapi/domain/payment"
)

type handler struct {
	payment payment.Usecase
}

// New registers the purchase confirmation endpoint under /api.
func New(e *echo.Echo, pay payment.Usecase) {
	h := &handler{pay}
	e.POST("/api/confirm", h.confirmPurchase)
}

func (h *handler) confirmPurchase(c echo.Context) error {
	req := &payment.ConfirmRequest{}
	if err := c.Bind(req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "Missing fields")
	}

	_ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.payment.ConfirmPurchase(_ctx, req)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if res.Ok {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}

	switch res.Reason {
	case payment.ReasonMissingFields:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "Missing fields")
	case payment.ReasonListingNotFound:
		return delivery.MakeJsonResp(c, http.StatusNotFound, "Listing not found")
	default:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "On-chain verification failed")
	}
}
