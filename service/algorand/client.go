package algorand

import (
	"errors"
	"net/http"
	"time"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
	ErrNotPayment      = errors.New("transaction is not a payment")
)

type ClientCfg struct {
	// Endpoint is the indexer url, e.g. https://testnet-idx.algonode.cloud
	Endpoint   string
	HttpClient http.Client
	Timeout    time.Duration
}

// LookupResponse wraps the indexer's transaction lookup result
type LookupResponse struct {
	CurrentRound uint64       `json:"current-round"`
	Transaction  *Transaction `json:"transaction"`
}

type Transaction struct {
	Id             string              `json:"id"`
	TxType         string              `json:"tx-type"`
	ConfirmedRound uint64              `json:"confirmed-round"`
	Payment        *PaymentTransaction `json:"payment-transaction"`
}

// PaymentTransaction carries the receiver and microAlgo amount of a pay tx
type PaymentTransaction struct {
	Amount   uint64 `json:"amount"`
	Receiver string `json:"receiver"`
}
