package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pokemarket/goapi/base/ctx"
	"github.com/pokemarket/goapi/domain/payment"
	mPayment "github.com/pokemarket/goapi/domain/payment/mocks"
)

func serve(t *testing.T, uc payment.Usecase, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, uc)

	req := httptest.NewRequest(http.MethodPost, "/api/confirm", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestConfirmOk(t *testing.T) {
	req := require.New(t)

	mockUC := &mPayment.Usecase{}
	mockUC.On("ConfirmPurchase", mock.Anything, mock.Anything).Return(&payment.Result{Ok: true}, nil)

	rec := serve(t, mockUC, `{"listingId":"abc","chain":"Solana","txId":"sig"}`)
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`{"ok":true}`, rec.Body.String())
}

func TestConfirmMissingFields(t *testing.T) {
	req := require.New(t)

	mockUC := &mPayment.Usecase{}
	mockUC.On("ConfirmPurchase", mock.Anything, mock.Anything).Return(&payment.Result{Reason: payment.ReasonMissingFields}, nil)

	rec := serve(t, mockUC, `{}`)
	req.Equal(http.StatusBadRequest, rec.Code)
	req.JSONEq(`{"error":"Missing fields"}`, rec.Body.String())
}

func TestConfirmListingNotFound(t *testing.T) {
	req := require.New(t)

	mockUC := &mPayment.Usecase{}
	mockUC.On("ConfirmPurchase", mock.Anything, mock.Anything).Return(&payment.Result{Reason: payment.ReasonListingNotFound}, nil)

	rec := serve(t, mockUC, `{"listingId":"nope","chain":"Solana","txId":"sig"}`)
	req.Equal(http.StatusNotFound, rec.Code)
	req.JSONEq(`{"error":"Listing not found"}`, rec.Body.String())
}

func TestConfirmVerificationFailed(t *testing.T) {
	req := require.New(t)

	for _, reason := range []payment.Reason{
		payment.ReasonUnsupportedChain,
		payment.ReasonTxNotFound,
		payment.ReasonNotConfirmed,
		payment.ReasonReceiverMismatch,
		payment.ReasonAmountTooLow,
		payment.ReasonAlreadySold,
	} {
		mockUC := &mPayment.Usecase{}
		mockUC.On("ConfirmPurchase", mock.Anything, mock.Anything).Return(&payment.Result{Reason: reason}, nil)

		rec := serve(t, mockUC, `{"listingId":"abc","chain":"Solana","txId":"sig"}`)
		req.Equal(http.StatusBadRequest, rec.Code, string(reason))
		req.JSONEq(`{"error":"On-chain verification failed"}`, rec.Body.String(), string(reason))
	}
}
