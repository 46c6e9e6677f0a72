package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pokemarket/goapi/base/ctx"
	"github.com/pokemarket/goapi/base/delivery"
	"github.com/pokemarket/goapi/domain"
	"github.com/pokemarket/goapi/domain/listing"
)

type handler struct {
	listing listing.Usecase
}

// New registers the listing endpoints under /api.
func New(e *echo.Echo, lst listing.Usecase) {
	h := &handler{lst}

	g := e.Group("/api/listings")
	g.GET("", h.getListings)
	g.POST("", h.createListing)
	g.GET("/:id", h.getListing)
}

func (h *handler) getListings(c echo.Context) error {
	var q struct {
		Chain  *listing.ChainName `query:"chain"`
		Seller *string            `query:"seller"`
		Sold   *bool              `query:"sold"`
	}

	if err := c.Bind(&q); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	_ctx := c.Get("ctx").(ctx.Ctx)

	opts := []listing.FindAllOptions{}
	if q.Chain != nil {
		opts = append(opts, listing.WithChain(*q.Chain))
	}
	if q.Seller != nil {
		opts = append(opts, listing.WithSeller(domain.Address(*q.Seller)))
	}
	if q.Sold != nil {
		opts = append(opts, listing.WithSold(*q.Sold))
	}

	res, err := h.listing.GetListings(_ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) createListing(c echo.Context) error {
	payload := &listing.CreatePayload{}
	if err := c.Bind(payload); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "Invalid listing payload")
	}
	if err := c.Validate(payload); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "Invalid listing payload")
	}

	_ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.listing.CreateListing(_ctx, payload)
	if err != nil {
		if err == domain.ErrBadParamInput {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, "Invalid listing payload")
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) getListing(c echo.Context) error {
	id := c.Param("id")
	_ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.listing.GetListing(_ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return delivery.MakeJsonResp(c, http.StatusNotFound, err)
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
