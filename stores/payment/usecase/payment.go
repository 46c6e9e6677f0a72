package usecase

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/pokemarket/goapi/base/ctx"
	"github.com/pokemarket/goapi/base/log"
	"github.com/pokemarket/goapi/domain"
	"github.com/pokemarket/goapi/domain/listing"
	"github.com/pokemarket/goapi/domain/payment"
	"github.com/pokemarket/goapi/service/query"
)

type PaymentUseCaseCfg struct {
	ListingRepo listing.Repo
	Adapters    map[listing.ChainName]payment.Adapter
}

type paymentUseCase struct {
	listingRepo listing.Repo
	adapters    map[listing.ChainName]payment.Adapter
}

func NewPaymentUseCase(cfg *PaymentUseCaseCfg) payment.Usecase {
	return &paymentUseCase{
		listingRepo: cfg.ListingRepo,
		adapters:    cfg.Adapters,
	}
}

func (im *paymentUseCase) ConfirmPurchase(c ctx.Ctx, req *payment.ConfirmRequest) (*payment.Result, error) {
	if req.ListingId == "" || req.Chain == "" || req.TxId == "" {
		return &payment.Result{Reason: payment.ReasonMissingFields}, nil
	}

	lst, err := im.listingRepo.FindOne(c, req.ListingId)
	if err == query.ErrNotFound || err == domain.ErrNotFound {
		return &payment.Result{Reason: payment.ReasonListingNotFound}, nil
	} else if err != nil {
		return nil, err
	}

	if lst.Sold {
		return &payment.Result{Reason: payment.ReasonAlreadySold}, nil
	}

	chain := listing.ChainName(req.Chain)
	adapter, ok := im.adapters[chain]
	if !ok {
		return &payment.Result{Reason: payment.ReasonUnsupportedChain}, nil
	}

	expected, err := expectedAmount(lst.Price, chain)
	if err != nil {
		c.WithFields(log.Fields{"listingId": lst.Id, "price": lst.Price, "err": err}).Error("unparsable listing price")
		return &payment.Result{Reason: payment.ReasonInvalidPrice}, nil
	}

	transfer, err := im.fetchTransfer(c, adapter, req.TxId, lst.Seller)
	if err != nil {
		c.WithFields(log.Fields{"chain": chain, "txId": req.TxId, "err": err}).Info("transfer lookup failed")
		return &payment.Result{Reason: payment.ReasonTxNotFound}, nil
	}

	if !transfer.Confirmed {
		return &payment.Result{Reason: payment.ReasonNotConfirmed}, nil
	}
	if !transfer.Receiver.Equals(lst.Seller) {
		c.WithFields(log.Fields{"want": lst.Seller, "got": transfer.Receiver}).Info("transfer receiver mismatch")
		return &payment.Result{Reason: payment.ReasonReceiverMismatch}, nil
	}
	if transfer.Amount == nil || transfer.Amount.Cmp(expected) < 0 {
		c.WithFields(log.Fields{"expected": expected.String(), "observed": stringOrNil(transfer.Amount)}).Info("transfer amount below listing price")
		return &payment.Result{Reason: payment.ReasonAmountTooLow}, nil
	}
	if transfer.Amount.Cmp(expected) > 0 {
		c.WithFields(log.Fields{"expected": expected.String(), "observed": transfer.Amount.String()}).Info("overpayment accepted")
	}

	if err := im.listingRepo.MarkSold(c, lst.Id); err != nil {
		if err == query.ErrNotFound {
			// another confirmation won the flip between FindOne and here
			return &payment.Result{Reason: payment.ReasonAlreadySold}, nil
		}
		return nil, err
	}

	return &payment.Result{Ok: true}, nil
}

// fetchTransfer shields the pipeline from a panicking adapter
func (im *paymentUseCase) fetchTransfer(c ctx.Ctx, adapter payment.Adapter, txID string, seller domain.Address) (t *payment.Transfer, err error) {
	defer func() {
		if r := recover(); r != nil {
			c.WithField("panic", r).Error("chain adapter panicked")
			t, err = nil, payment.ErrTransferNotFound
		}
	}()
	return adapter.FetchTransfer(c, txID, seller)
}

// expectedAmount converts a display price like "1.5 SOL" into the
// chain's smallest unit, truncating sub-unit dust
func expectedAmount(price string, chain listing.ChainName) (*big.Int, error) {
	parts := strings.Fields(price)
	if len(parts) == 0 {
		return nil, xerrors.Errorf("empty price: %w", domain.ErrInvalidNumberFormat)
	}

	d, err := decimal.NewFromString(parts[0])
	if err != nil {
		return nil, xerrors.Errorf("parse price %q: %w", parts[0], domain.ErrInvalidNumberFormat)
	}
	if d.Sign() <= 0 {
		return nil, xerrors.Errorf("non-positive price %q: %w", parts[0], domain.ErrInvalidNumberFormat)
	}

	decimals, ok := payment.ChainDecimals[chain]
	if !ok {
		return nil, xerrors.Errorf("no decimals for chain %s: %w", chain, domain.ErrInvalidChainName)
	}

	return d.Shift(decimals).Floor().BigInt(), nil
}

func stringOrNil(v *big.Int) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}
