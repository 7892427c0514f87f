package application

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/domain"
	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/ports"
	"github.com/wjuan-mob/mobilecoind-buddy/pkg/stats"
)

// TransactionBuilder assembles, signs and submits transactions against the
// ledger-view peer. Selected outputs are reserved in the amount ledger
// before the blob is built; that reservation is the single point
// preventing this client from double-spending its own outputs, and it is
// released on every non-success exit path.
type TransactionBuilder struct {
	key     *domain.AccountKey
	ledger  *domain.AmountLedger
	pending *domain.PendingBook
	signer  ports.Signer
	view    ports.LedgerView
	tokens  domain.TokenRegistry
}

// TxBuilderOpts defines the parameters needed for creating a
// TransactionBuilder with NewTransactionBuilder.
type TxBuilderOpts struct {
	Key     *domain.AccountKey
	Ledger  *domain.AmountLedger
	Pending *domain.PendingBook
	Signer  ports.Signer
	View    ports.LedgerView
	Tokens  domain.TokenRegistry
}

// NewTransactionBuilder returns a builder bound to the session's ledger
// and pending book.
func NewTransactionBuilder(opts TxBuilderOpts) *TransactionBuilder {
	return &TransactionBuilder{
		key:     opts.Key,
		ledger:  opts.Ledger,
		pending: opts.Pending,
		signer:  opts.Signer,
		view:    opts.View,
		tokens:  opts.Tokens,
	}
}

// SendPayment builds, signs and submits a simple payment of the given
// amount to the destination. On success the consumed outputs stay reserved
// under a tracked pending transaction until the sync worker confirms or
// times them out.
func (b *TransactionBuilder) SendPayment(
	ctx context.Context, destination domain.PublicAddress, amount domain.Amount,
) (uuid.UUID, error) {
	if err := destination.Validate(); err != nil {
		return uuid.Nil, err
	}
	info, ok := b.tokens.Get(amount.Token)
	if !ok {
		return uuid.Nil, domain.ErrUnknownToken
	}
	target, err := addFee(amount.Value, info.Fee)
	if err != nil {
		return uuid.Nil, err
	}

	selected, err := b.ledger.SelectOutputs(amount.Token, target)
	if err != nil {
		return uuid.Nil, err
	}

	return b.signAndSubmit(ctx, selected, destination, amount, info.Fee, nil)
}

// ExecuteSwap builds, signs and submits the two-leg atomic swap filling
// the given quote for the desired base amount. Fees are paid in the
// counter token, the one the account is spending.
func (b *TransactionBuilder) ExecuteSwap(
	ctx context.Context, quote domain.Quote, desired uint64,
) (uuid.UUID, error) {
	if quote.IsExpired(time.Now()) {
		return uuid.Nil, ErrQuoteExpired
	}
	info, ok := b.tokens.Get(quote.Pair.Counter)
	if !ok {
		return uuid.Nil, domain.ErrUnknownToken
	}

	cost := quote.CostFor(desired)
	target, err := addFee(cost, info.Fee)
	if err != nil {
		return uuid.Nil, err
	}

	selected, err := b.ledger.SelectOutputs(quote.Pair.Counter, target)
	if err != nil {
		return uuid.Nil, err
	}

	swapLeg := &ports.SwapLeg{
		QuoteID: quote.ID,
		Base:    domain.NewAmount(desired, quote.Pair.Base),
		Counter: domain.NewAmount(cost, quote.Pair.Counter),
	}
	// The base leg of the swap lands back on our own address.
	return b.signAndSubmit(
		ctx, selected, b.key.PublicAddress(),
		domain.NewAmount(desired, quote.Pair.Base), info.Fee, swapLeg,
	)
}

func (b *TransactionBuilder) signAndSubmit(
	ctx context.Context,
	selected []domain.SpendableOutput,
	destination domain.PublicAddress,
	amount domain.Amount,
	fee uint64,
	swapLeg *ports.SwapLeg,
) (uuid.UUID, error) {
	ids := domain.OutputIDs(selected)
	if err := b.ledger.ReserveForSpend(ids); err != nil {
		return uuid.Nil, err
	}

	blob, err := b.signer.BuildSignedTransaction(
		ctx, b.key, selected, destination, amount, fee, swapLeg,
	)
	if err != nil {
		b.ledger.ReleaseReservation(ids)
		return uuid.Nil, fmt.Errorf("building transaction: %w", err)
	}

	if err := b.view.SubmitTransaction(ctx, blob); err != nil {
		b.ledger.ReleaseReservation(ids)
		return uuid.Nil, fmt.Errorf("submitting transaction: %w", err)
	}

	tx := domain.NewPendingTransaction(amount, destination, ids)
	b.pending.Add(tx)
	stats.TxsSubmitted.Inc()
	log.Infof(
		"transaction %s submitted, %d inputs consumed", tx.ID, len(ids),
	)
	return tx.ID, nil
}

func addFee(value, fee uint64) (uint64, error) {
	if value > math.MaxUint64-fee {
		return 0, domain.ErrAmountOutOfRange
	}
	return value + fee, nil
}
