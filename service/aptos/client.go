package aptos

import (
	"errors"
	"net/http"
	"time"
)

const coinTransferFunction = "0x1::coin::transfer"

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
	ErrTxFailed        = errors.New("transaction not successful")
	ErrNotCoinTransfer = errors.New("payload is not a coin transfer")
)

type ClientCfg struct {
	// Endpoint is the fullnode REST url, e.g. https://fullnode.testnet.aptoslabs.com
	Endpoint   string
	HttpClient http.Client
	Timeout    time.Duration
}

// UserTransaction is the fullnode representation of a committed transaction
type UserTransaction struct {
	Type    string   `json:"type"`
	Hash    string   `json:"hash"`
	Success bool     `json:"success"`
	Payload *Payload `json:"payload"`
}

// Payload of an entry function call. For 0x1::coin::transfer the
// arguments are [recipient, amount] as plain strings.
type Payload struct {
	Type      string        `json:"type"`
	Function  string        `json:"function"`
	Arguments []interface{} `json:"arguments"`
}
