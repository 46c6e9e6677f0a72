package algorand

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"math/big"
	"net/http"
	"time"

	bCtx "github.com/pokemarket/goapi/base/ctx"
	"github.com/pokemarket/goapi/base/log"
	"github.com/pokemarket/goapi/base/metrics"
	"github.com/pokemarket/goapi/domain"
	"github.com/pokemarket/goapi/domain/payment"
)

// NewClient creates a payment adapter backed by an Algorand indexer
func NewClient(cfg *ClientCfg) payment.Adapter {
	return &client{
		endpoint: cfg.Endpoint,
		client:   cfg.HttpClient,
		timeout:  cfg.Timeout,
		met:      metrics.New("algorand"),
	}
}

type client struct {
	endpoint string
	client   http.Client
	timeout  time.Duration
	met      metrics.Service
}

func (c *client) FetchTransfer(ctx bCtx.Ctx, txID string, recipient domain.Address) (*payment.Transfer, error) {
	defer c.met.BumpTime("latency", "method", "lookupTransaction").End()

	tx, err := c.lookupTransaction(ctx, txID)
	if err != nil {
		ctx.WithFields(log.Fields{"txId": txID, "err": err}).Error("lookupTransaction failed")
		return nil, payment.ErrTransferNotFound
	}

	if tx.TxType != "pay" || tx.Payment == nil {
		ctx.WithFields(log.Fields{"txId": txID, "txType": tx.TxType}).Warn("transaction is not a payment")
		return nil, payment.ErrTransferNotFound
	}

	return &payment.Transfer{
		Receiver:  domain.Address(tx.Payment.Receiver),
		Amount:    new(big.Int).SetUint64(tx.Payment.Amount),
		Confirmed: tx.ConfirmedRound > 0,
	}, nil
}

func (c *client) lookupTransaction(ctx bCtx.Ctx, txID string) (*Transaction, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/v2/transactions/%s", c.endpoint, txID)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{"url": url, "statusCode": resp.StatusCode}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	lookup := LookupResponse{}
	if err := json.Unmarshal(data, &lookup); err != nil {
		return nil, err
	}
	if lookup.Transaction == nil {
		return nil, fmt.Errorf("transaction not found")
	}
	return lookup.Transaction, nil
}
