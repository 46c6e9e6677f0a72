package solana

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"math/big"
	"net/http"
	"time"

	solanago "github.com/gagliardetto/solana-go"

	bCtx "github.com/pokemarket/goapi/base/ctx"
	"github.com/pokemarket/goapi/base/log"
	"github.com/pokemarket/goapi/base/metrics"
	"github.com/pokemarket/goapi/domain"
	"github.com/pokemarket/goapi/domain/payment"
)

// NewClient creates a payment adapter backed by a Solana JSON-RPC endpoint
func NewClient(cfg *ClientCfg) payment.Adapter {
	return &client{
		endpoint: cfg.Endpoint,
		client:   cfg.HttpClient,
		timeout:  cfg.Timeout,
		met:      metrics.New("solana"),
	}
}

type client struct {
	endpoint string
	client   http.Client
	timeout  time.Duration
	met      metrics.Service
}

func (c *client) FetchTransfer(ctx bCtx.Ctx, txID string, recipient domain.Address) (*payment.Transfer, error) {
	defer c.met.BumpTime("latency", "method", "getTransaction").End()

	if _, err := solanago.SignatureFromBase58(txID); err != nil {
		ctx.WithFields(log.Fields{"txId": txID, "err": err}).Warn("invalid transaction signature")
		return nil, payment.ErrTransferNotFound
	}
	sellerKey, err := solanago.PublicKeyFromBase58(string(recipient))
	if err != nil {
		ctx.WithFields(log.Fields{"recipient": recipient, "err": err}).Warn("invalid seller pubkey")
		return nil, payment.ErrTransferNotFound
	}

	res, err := c.getTransaction(ctx, txID)
	if err != nil {
		ctx.WithFields(log.Fields{"txId": txID, "err": err}).Error("getTransaction failed")
		return nil, payment.ErrTransferNotFound
	}
	if res == nil || res.Meta == nil {
		return nil, payment.ErrTransferNotFound
	}

	// locate the seller among the transaction's account keys, the
	// transfer cannot be attributed when the seller is absent
	keys := res.Transaction.Message.AccountKeys
	sellerIdx := -1
	for i, key := range keys {
		if pk, err := solanago.PublicKeyFromBase58(key.Pubkey); err == nil && pk.Equals(sellerKey) {
			sellerIdx = i
			break
		}
	}
	if sellerIdx < 0 {
		ctx.WithField("recipient", recipient).Warn("seller not in account keys")
		return nil, payment.ErrTransferNotFound
	}
	if sellerIdx >= len(res.Meta.PreBalances) || sellerIdx >= len(res.Meta.PostBalances) {
		return nil, payment.ErrTransferNotFound
	}

	pre := new(big.Int).SetUint64(res.Meta.PreBalances[sellerIdx])
	post := new(big.Int).SetUint64(res.Meta.PostBalances[sellerIdx])
	delta := new(big.Int).Sub(post, pre)

	return &payment.Transfer{
		Receiver:  recipient,
		Amount:    delta,
		Confirmed: res.Meta.Err == nil,
	}, nil
}

func (c *client) getTransaction(ctx bCtx.Ctx, signature string) (*transactionResult, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqBody := rpcRequest{
		JsonRpc: "2.0",
		Id:      1,
		Method:  "getTransaction",
		Params: []interface{}{
			signature,
			map[string]interface{}{
				"encoding":                       "jsonParsed",
				"commitment":                     "confirmed",
				"maxSupportedTransactionVersion": 0,
			},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithField("statusCode", resp.StatusCode).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	rpcResp := rpcResponse{}
	if err := json.Unmarshal(data, &rpcResp); err != nil {
		return nil, err
	}
	if rpcResp.Error != nil {
		ctx.WithFields(log.Fields{"code": rpcResp.Error.Code, "message": rpcResp.Error.Message}).Error("rpc error")
		return nil, ErrRpcError
	}
	return rpcResp.Result, nil
}

func (k *accountKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		k.Pubkey = s
		return nil
	}
	obj := struct {
		Pubkey string `json:"pubkey"`
	}{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	k.Pubkey = obj.Pubkey
	return nil
}
