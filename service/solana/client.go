package solana

import (
	"errors"
	"net/http"
	"time"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
	ErrRpcError        = errors.New("rpc error")
)

type ClientCfg struct {
	// Endpoint is the JSON-RPC url of the cluster, e.g. https://api.devnet.solana.com
	Endpoint   string
	HttpClient http.Client
	Timeout    time.Duration
}

type rpcRequest struct {
	JsonRpc string        `json:"jsonrpc"`
	Id      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JsonRpc string             `json:"jsonrpc"`
	Result  *transactionResult `json:"result"`
	Error   *rpcError          `json:"error"`
}

type transactionResult struct {
	Slot        uint64      `json:"slot"`
	Transaction transaction `json:"transaction"`
	Meta        *meta       `json:"meta"`
}

type transaction struct {
	Message message `json:"message"`
}

type message struct {
	AccountKeys []accountKey `json:"accountKeys"`
}

// accountKey accepts both the plain string form and the jsonParsed
// object form of an account key
type accountKey struct {
	Pubkey string
}

type meta struct {
	Err          interface{} `json:"err"`
	Fee          uint64      `json:"fee"`
	PreBalances  []uint64    `json:"preBalances"`
	PostBalances []uint64    `json:"postBalances"`
}
