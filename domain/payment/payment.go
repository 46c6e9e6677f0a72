package payment

import (
	"errors"
	"math/big"

	"github.com/pokemarket/goapi/base/ctx"
	"github.com/pokemarket/goapi/domain"
	"github.com/pokemarket/goapi/domain/listing"
)

var (
	// ErrTransferNotFound is returned by adapters whenever a transfer
	// cannot be derived from chain state, regardless of the underlying
	// cause. Network failures and malformed responses collapse into it
	// so they never escape the adapter boundary.
	ErrTransferNotFound = errors.New("transfer not found")
)

// Decimal places of each chain's smallest unit.
// 1 SOL = 10^9 lamports, 1 APT = 10^8 octas,
// 1 ALGO = 10^6 microAlgos, 1 ETH = 10^18 wei.
var ChainDecimals = map[listing.ChainName]int32{
	listing.ChainSolana:   9,
	listing.ChainAptos:    8,
	listing.ChainAlgorand: 6,
	listing.ChainEvm:      18,
}

// Transfer is a native asset transfer re-derived from public chain data
type Transfer struct {
	Receiver domain.Address
	// Amount in the chain's smallest unit
	Amount    *big.Int
	Confirmed bool
}

// Adapter independently fetches the transfer attributed to recipient
// out of transaction txID on its chain.
type Adapter interface {
	FetchTransfer(c ctx.Ctx, txID string, recipient domain.Address) (*Transfer, error)
}

// ConfirmRequest is the client's claim that a transfer happened
type ConfirmRequest struct {
	ListingId string `json:"listingId"`
	Chain     string `json:"chain"`
	TxId      string `json:"txId"`
}

// Reason describes why a confirmation did not go through
type Reason string

const (
	ReasonMissingFields    Reason = "missing fields"
	ReasonListingNotFound  Reason = "listing not found"
	ReasonUnsupportedChain Reason = "unsupported chain"
	ReasonInvalidPrice     Reason = "invalid listing price"
	ReasonTxNotFound       Reason = "transaction not found"
	ReasonNotConfirmed     Reason = "transaction not confirmed"
	ReasonReceiverMismatch Reason = "receiver mismatch"
	ReasonAmountTooLow     Reason = "amount below expected"
	ReasonAlreadySold      Reason = "listing already sold"
)

// Result is the outcome of one confirmation attempt
type Result struct {
	Ok     bool   `json:"ok"`
	Reason Reason `json:"reason,omitempty"`
}

// Usecase drives the verify-then-update confirmation flow
type Usecase interface {
	ConfirmPurchase(c ctx.Ctx, req *ConfirmRequest) (*Result, error)
}
