package evmchain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	bCtx "github.com/pokemarket/goapi/base/ctx"
	"github.com/pokemarket/goapi/base/log"
	"github.com/pokemarket/goapi/base/metrics"
	"github.com/pokemarket/goapi/domain"
	"github.com/pokemarket/goapi/domain/payment"
)

// NewClient dials the rpc url and returns a payment adapter. A dial
// failure is a soft warning, the adapter then reports every transfer
// as not found until the process restarts.
func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) payment.Adapter {
	eth, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	im := &impl{
		timeout: cfg.Timeout,
		met:     metrics.New("evmchain"),
	}
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "url": cfg.RpcUrl}).Warn("failed to dial rpc")
		return im
	}
	im.client = eth
	return im
}

type impl struct {
	client  EthClient
	timeout time.Duration
	met     metrics.Service
}

func (im *impl) FetchTransfer(ctx bCtx.Ctx, txID string, recipient domain.Address) (*payment.Transfer, error) {
	defer im.met.BumpTime("latency", "method", "transactionByHash").End()

	if im.client == nil {
		return nil, payment.ErrTransferNotFound
	}

	c, cancel := bCtx.WithTimeout(ctx, im.timeout)
	defer cancel()

	hash := common.HexToHash(txID)
	tx, isPending, err := im.client.TransactionByHash(c, hash)
	if err != nil {
		ctx.WithFields(log.Fields{"txId": txID, "err": err}).Error("TransactionByHash failed")
		return nil, payment.ErrTransferNotFound
	}

	var receipt *types.Receipt
	if !isPending {
		if receipt, err = im.client.TransactionReceipt(c, hash); err != nil {
			ctx.WithFields(log.Fields{"txId": txID, "err": err}).Error("TransactionReceipt failed")
			return nil, payment.ErrTransferNotFound
		}
	}

	return transferFromTx(tx, receipt, isPending)
}

// transferFromTx extracts the native transfer of tx. A pending or
// reverted transaction yields an unconfirmed transfer.
func transferFromTx(tx *types.Transaction, receipt *types.Receipt, pending bool) (*payment.Transfer, error) {
	if tx.To() == nil {
		// contract creation carries no recipient
		return nil, payment.ErrTransferNotFound
	}
	confirmed := !pending && receipt != nil && receipt.Status == types.ReceiptStatusSuccessful
	return &payment.Transfer{
		Receiver:  domain.Address(tx.To().Hex()),
		Amount:    tx.Value(),
		Confirmed: confirmed,
	}, nil
}
