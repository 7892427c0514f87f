package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/application"
	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/domain"
	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/ports"
)

type builderFixture struct {
	ledger  *domain.AmountLedger
	pending *domain.PendingBook
	view    *mockLedgerView
	signer  *mockSigner
	builder *application.TransactionBuilder
}

func newBuilderFixture(t *testing.T, outputs ...domain.SpendableOutput) *builderFixture {
	t.Helper()

	ledger := domain.NewAmountLedger()
	ledger.ApplyConfirmedDelta(outputs, nil)
	pending := domain.NewPendingBook()
	view := &mockLedgerView{}
	signer := &mockSigner{}

	builder := application.NewTransactionBuilder(application.TxBuilderOpts{
		Key:     testAccountKey(),
		Ledger:  ledger,
		Pending: pending,
		Signer:  signer,
		View:    view,
		Tokens:  domain.NewTokenRegistry(testTokens()),
	})

	return &builderFixture{
		ledger:  ledger,
		pending: pending,
		view:    view,
		signer:  signer,
		builder: builder,
	}
}

func testOutput(id string, token domain.TokenID, value uint64) domain.SpendableOutput {
	return domain.SpendableOutput{
		ID:    domain.OutputID(id),
		Token: token,
		Value: value,
	}
}

func TestSendPayment(t *testing.T) {
	t.Parallel()

	f := newBuilderFixture(t,
		testOutput("a", 0, 100),
		testOutput("b", 0, 30),
	)
	dest := domain.EncodePublicAddress([]byte("recipient"))

	// 50 + fee 10 is covered by the largest output alone.
	id, err := f.builder.SendPayment(
		context.Background(), dest, domain.NewAmount(50, 0),
	)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	require.Equal(t, 1, f.pending.Len())
	require.Len(t, f.view.submitted, 1)
	// The consumed output is reserved, only "b" remains spendable.
	require.Equal(t, uint64(30), f.ledger.Balance(0))
	require.Equal(t, uint64(100), f.ledger.ReservedValue(0))
}

func TestSendPaymentInsufficientFunds(t *testing.T) {
	t.Parallel()

	f := newBuilderFixture(t, testOutput("a", 0, 100))
	dest := domain.EncodePublicAddress([]byte("recipient"))

	_, err := f.builder.SendPayment(
		context.Background(), dest, domain.NewAmount(200, 0),
	)
	require.EqualError(t, err, domain.ErrInsufficientFunds.Error())
	require.Equal(t, 0, f.pending.Len())
	require.Equal(t, uint64(100), f.ledger.Balance(0))
}

func TestSendPaymentUnknownToken(t *testing.T) {
	t.Parallel()

	f := newBuilderFixture(t, testOutput("a", 0, 100))
	dest := domain.EncodePublicAddress([]byte("recipient"))

	_, err := f.builder.SendPayment(
		context.Background(), dest, domain.NewAmount(10, 42),
	)
	require.EqualError(t, err, domain.ErrUnknownToken.Error())
}

func TestSendPaymentRollsBackOnSubmitFailure(t *testing.T) {
	t.Parallel()

	f := newBuilderFixture(t, testOutput("a", 0, 100))
	f.view.setSubmitErr(ports.ErrPeerUnavailable)
	dest := domain.EncodePublicAddress([]byte("recipient"))

	_, err := f.builder.SendPayment(
		context.Background(), dest, domain.NewAmount(50, 0),
	)
	require.ErrorIs(t, err, ports.ErrPeerUnavailable)

	// Full rollback: no reservation survives a failed submission.
	require.Equal(t, 0, f.pending.Len())
	require.Equal(t, uint64(100), f.ledger.Balance(0))
	require.Equal(t, uint64(0), f.ledger.ReservedValue(0))
}

func TestSendPaymentRollsBackOnSigningFailure(t *testing.T) {
	t.Parallel()

	f := newBuilderFixture(t, testOutput("a", 0, 100))
	f.signer.err = errors.New("ring construction failed")
	dest := domain.EncodePublicAddress([]byte("recipient"))

	_, err := f.builder.SendPayment(
		context.Background(), dest, domain.NewAmount(50, 0),
	)
	require.Error(t, err)
	require.Equal(t, uint64(100), f.ledger.Balance(0))
	require.Equal(t, uint64(0), f.ledger.ReservedValue(0))
	require.Empty(t, f.view.submitted)
}

func TestSendPaymentRejectsBadDestination(t *testing.T) {
	t.Parallel()

	f := newBuilderFixture(t, testOutput("a", 0, 100))

	_, err := f.builder.SendPayment(
		context.Background(), "bogus", domain.NewAmount(50, 0),
	)
	require.Error(t, err)
	require.Equal(t, 0, f.signer.calls)
}

func TestExecuteSwap(t *testing.T) {
	t.Parallel()

	// Paying with token 1, receiving token 0.
	f := newBuilderFixture(t, testOutput("a", 1, 1000))
	quote := domain.Quote{
		ID:            "q1",
		Pair:          domain.Pair{Base: 0, Counter: 1},
		BaseVolume:    100,
		CounterVolume: 250,
		Expiry:        time.Now().Add(time.Minute),
	}

	id, err := f.builder.ExecuteSwap(context.Background(), quote, 100)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	require.NotNil(t, f.signer.lastLeg)
	require.Equal(t, "q1", f.signer.lastLeg.QuoteID)
	require.Equal(t, domain.NewAmount(100, 0), f.signer.lastLeg.Base)
	require.Equal(t, domain.NewAmount(250, 1), f.signer.lastLeg.Counter)

	// The sole counter output is reserved under the pending swap.
	require.Equal(t, 1, f.pending.Len())
	require.Equal(t, uint64(0), f.ledger.Balance(1))
	require.Equal(t, uint64(1000), f.ledger.ReservedValue(1))
}

func TestExecuteSwapExpiredQuote(t *testing.T) {
	t.Parallel()

	f := newBuilderFixture(t, testOutput("a", 1, 1000))
	quote := domain.Quote{
		ID:            "q1",
		Pair:          domain.Pair{Base: 0, Counter: 1},
		BaseVolume:    100,
		CounterVolume: 250,
		Expiry:        time.Now().Add(-time.Second),
	}

	_, err := f.builder.ExecuteSwap(context.Background(), quote, 100)
	require.EqualError(t, err, application.ErrQuoteExpired.Error())
	require.Equal(t, uint64(1000), f.ledger.Balance(1))
}

func TestExecuteSwapInsufficientCounterFunds(t *testing.T) {
	t.Parallel()

	f := newBuilderFixture(t, testOutput("a", 1, 100))
	quote := domain.Quote{
		ID:            "q1",
		Pair:          domain.Pair{Base: 0, Counter: 1},
		BaseVolume:    100,
		CounterVolume: 250,
		Expiry:        time.Now().Add(time.Minute),
	}

	_, err := f.builder.ExecuteSwap(context.Background(), quote, 100)
	require.EqualError(t, err, domain.ErrInsufficientFunds.Error())
}
