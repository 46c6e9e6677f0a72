package aptos

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

// NewClient creates a payment adapter backed by an Aptos fullnode
func NewClient(cfg *ClientCfg) payment.Adapter {
	return &client{
		endpoint: cfg.Endpoint,
		client:   cfg.HttpClient,
		timeout:  cfg.Timeout,
		met:      metrics.New("aptos"),
	}
}

type client struct {
	endpoint string
	client   http.Client
	timeout  time.Duration
	met      metrics.Service
}

func (c *client) FetchTransfer(ctx bCtx.Ctx, txID string, recipient domain.Address) (*payment.Transfer, error) {
	defer c.met.BumpTime("latency", "method", "getTransactionByHash").End()

	tx, err := c.getTransactionByHash(ctx, txID)
	if err != nil {
		ctx.WithFields(log.Fields{"txId": txID, "err": err}).Error("getTransactionByHash failed")
		return nil, payment.ErrTransferNotFound
	}

	if !tx.Success {
		ctx.WithField("txId", txID).Warn("transaction not successful")
		return nil, payment.ErrTransferNotFound
	}
	if tx.Payload == nil || tx.Payload.Type != "entry_function_payload" || tx.Payload.Function != coinTransferFunction {
		ctx.WithField("txId", txID).Warn("payload is not a coin transfer")
		return nil, payment.ErrTransferNotFound
	}
	if len(tx.Payload.Arguments) < 2 {
		return nil, payment.ErrTransferNotFound
	}

	receiver, ok := tx.Payload.Arguments[0].(string)
	if !ok {
		return nil, payment.ErrTransferNotFound
	}
	rawAmount, ok := tx.Payload.Arguments[1].(string)
	if !ok {
		return nil, payment.ErrTransferNotFound
	}
	octas, ok := new(big.Int).SetString(rawAmount, 10)
	if !ok {
		ctx.WithField("amount", rawAmount).Warn("amount is not an integer")
		return nil, payment.ErrTransferNotFound
	}

	return &payment.Transfer{
		Receiver:  domain.Address(receiver),
		Amount:    octas,
		Confirmed: true,
	}, nil
}

func (c *client) getTransactionByHash(ctx bCtx.Ctx, hash string) (*UserTransaction, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/v1/transactions/by_hash/%s", c.endpoint, hash)
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

	tx := UserTransaction{}
	if err := json.Unmarshal(data, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}
