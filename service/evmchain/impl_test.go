package evmchain

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/pokemarket/goapi/domain"
	"github.com/pokemarket/goapi/domain/payment"
)

var testSeller = common.HexToAddress("0xce4468e7ce84aceb74363f4ea64e5a038176f369")

func nativeTransferTx(value *big.Int) *types.Transaction {
	return types.NewTransaction(0, testSeller, value, 21000, big.NewInt(1_000_000_000), nil)
}

func TestTransferFromTx(t *testing.T) {
	req := require.New(t)

	oneEth := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	tx := nativeTransferTx(oneEth)
	receipt := &types.Receipt{Status: types.ReceiptStatusSuccessful}

	transfer, err := transferFromTx(tx, receipt, false)
	req.NoError(err)
	req.True(transfer.Confirmed)
	req.Equal(oneEth, transfer.Amount)
	req.True(transfer.Receiver.Equals(domain.Address(testSeller.Hex())))
}

func TestTransferFromTxPending(t *testing.T) {
	req := require.New(t)

	transfer, err := transferFromTx(nativeTransferTx(big.NewInt(1)), nil, true)
	req.NoError(err)
	req.False(transfer.Confirmed)
}

func TestTransferFromTxReverted(t *testing.T) {
	req := require.New(t)

	receipt := &types.Receipt{Status: types.ReceiptStatusFailed}
	transfer, err := transferFromTx(nativeTransferTx(big.NewInt(1)), receipt, false)
	req.NoError(err)
	req.False(transfer.Confirmed)
}

func TestTransferFromTxContractCreation(t *testing.T) {
	req := require.New(t)

	tx := types.NewContractCreation(0, big.NewInt(0), 100000, big.NewInt(1_000_000_000), []byte{0x60, 0x60})
	_, err := transferFromTx(tx, &types.Receipt{Status: types.ReceiptStatusSuccessful}, false)
	req.ErrorIs(err, payment.ErrTransferNotFound)
}

func TestReceiverHexCasing(t *testing.T) {
	req := require.New(t)

	// tx.To().Hex() yields an EIP-55 checksummed address, matching
	// against a lowercased seller must still succeed
	transfer, err := transferFromTx(nativeTransferTx(big.NewInt(1)), &types.Receipt{Status: types.ReceiptStatusSuccessful}, false)
	req.NoError(err)
	req.True(transfer.Receiver.Equals(domain.Address(strings.ToLower(testSeller.Hex()))))
}
