package aptos

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/pokemarket/goapi/base/ctx"
	"github.com/pokemarket/goapi/domain"
	"github.com/pokemarket/goapi/domain/payment"
)

const (
	testHash   = "0x8b6e863ed176727c6d5b7d7ac33c6a04d1e5a792dfcf24744f2ba94dcbbdae26"
	testSeller = "0x5ae6789dd2fec65cea2b0d3ad3f0c1972a43a38c2cbb1cbb563e804e694b612e"
)

func fakeFullnode(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/transactions/by_hash/"+testHash, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func newTestClient(endpoint string) payment.Adapter {
	return NewClient(&ClientCfg{
		Endpoint:   endpoint,
		HttpClient: http.Client{},
		Timeout:    time.Second,
	})
}

func TestFetchTransfer(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	srv := fakeFullnode(t, http.StatusOK, `{
		"hash": "`+testHash+`",
		"success": true,
		"vm_status": "Executed successfully",
		"payload": {
			"type": "entry_function_payload",
			"function": "0x1::coin::transfer",
			"type_arguments": ["0x1::aptos_coin::AptosCoin"],
			"arguments": ["`+testSeller+`", "150000000"]
		}
	}`)
	defer srv.Close()

	transfer, err := newTestClient(srv.URL).FetchTransfer(ctx, testHash, domain.Address(testSeller))
	req.NoError(err)
	req.True(transfer.Confirmed)
	req.Equal(domain.Address(testSeller), transfer.Receiver)
	req.Equal("150000000", transfer.Amount.String())
}

func TestFetchTransferAbortedTx(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	srv := fakeFullnode(t, http.StatusOK, `{"hash": "`+testHash+`", "success": false, "vm_status": "Move abort"}`)
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchTransfer(ctx, testHash, domain.Address(testSeller))
	req.ErrorIs(err, payment.ErrTransferNotFound)
}

func TestFetchTransferWrongFunction(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	// an nft mint is not a coin transfer even when it succeeded
	srv := fakeFullnode(t, http.StatusOK, `{
		"success": true,
		"payload": {
			"type": "entry_function_payload",
			"function": "0x3::token::mint_script",
			"arguments": []
		}
	}`)
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchTransfer(ctx, testHash, domain.Address(testSeller))
	req.ErrorIs(err, payment.ErrTransferNotFound)
}

func TestFetchTransferUnknownHash(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	srv := fakeFullnode(t, http.StatusNotFound, `{"message":"transaction not found","error_code":"transaction_not_found"}`)
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchTransfer(ctx, testHash, domain.Address(testSeller))
	req.ErrorIs(err, payment.ErrTransferNotFound)
}

func TestFetchTransferMalformedAmount(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	srv := fakeFullnode(t, http.StatusOK, `{
		"success": true,
		"payload": {
			"type": "entry_function_payload",
			"function": "0x1::coin::transfer",
			"arguments": ["`+testSeller+`", "lots"]
		}
	}`)
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchTransfer(ctx, testHash, domain.Address(testSeller))
	req.ErrorIs(err, payment.ErrTransferNotFound)
}
