package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pokemarket/goapi/domain"
	"github.com/pokemarket/goapi/service/query"
)

// ErrorResponse is the error envelope of the api, e.g. {"error": "Listing not found"}
type ErrorResponse struct {
	Error string `json:"error"`
}

// MakeJsonResp writes data as-is on success and wraps errors into the
// error envelope. Known not-found errors force a 404.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound) {
			status = http.StatusNotFound
		}
		data = ErrorResponse{Error: err.Error()}
	}

	if msg, ok := data.(string); ok && status >= 400 {
		data = ErrorResponse{Error: msg}
	}

	return c.JSON(status, data)
}
