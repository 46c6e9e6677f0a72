package evmchain

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type ClientCfg struct {
	// RpcUrl is the JSON-RPC url of the network
	RpcUrl  string
	Timeout time.Duration
}

// EthClient is the subset of ethclient.Client the adapter relies on
type EthClient interface {
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}
