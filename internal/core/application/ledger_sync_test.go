package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/application"
	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/domain"
	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/ports"
	"github.com/wjuan-mob/mobilecoind-buddy/pkg/errorqueue"
)

type workerFixture struct {
	ledger  *domain.AmountLedger
	pending *domain.PendingBook
	view    *mockLedgerView
	errs    *errorqueue.Queue
	worker  *application.LedgerSyncWorker
}

func newWorkerFixture(t *testing.T, submitTimeout time.Duration) *workerFixture {
	t.Helper()

	f := &workerFixture{
		ledger:  domain.NewAmountLedger(),
		pending: domain.NewPendingBook(),
		view:    &mockLedgerView{},
		errs:    errorqueue.New(10),
	}
	f.worker = application.NewLedgerSyncWorker(application.LedgerSyncOpts{
		View:          f.view,
		Ledger:        f.ledger,
		Pending:       f.pending,
		Errors:        f.errs,
		Interval:      10 * time.Millisecond,
		CallTimeout:   time.Second,
		SubmitTimeout: submitTimeout,
	})
	return f
}

func (f *workerFixture) start(t *testing.T) {
	t.Helper()
	go func() { _ = f.worker.Start() }()
	t.Cleanup(f.worker.Stop)
}

func TestWorkerAppliesFirstSnapshot(t *testing.T) {
	t.Parallel()

	f := newWorkerFixture(t, time.Minute)
	f.view.setStatus(ports.AccountStatus{
		NewOutputs:   []domain.SpendableOutput{testOutput("a", 0, 100)},
		Cursor:       42,
		LedgerHeight: 50,
	})
	f.start(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, f.worker.WaitSynced(ctx))

	require.Equal(t, uint64(100), f.ledger.Balance(0))
	synced, total := f.worker.Progress()
	require.Equal(t, uint64(42), synced)
	require.Equal(t, uint64(50), total)
}

func TestWorkerRetriesAfterPollFailure(t *testing.T) {
	t.Parallel()

	f := newWorkerFixture(t, time.Minute)
	f.view.setStatusErr(ports.ErrPeerUnavailable)
	f.start(t)

	// A failing poll neither syncs nor kills the loop.
	require.Eventually(t, func() bool {
		return f.view.pollCount() >= 2
	}, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.Error(t, f.worker.WaitSynced(ctx))
	require.Equal(t, 1, f.errs.Len())

	// Service recovers, worker catches up on the next interval.
	f.view.setStatus(ports.AccountStatus{
		NewOutputs:   []domain.SpendableOutput{testOutput("a", 0, 100)},
		Cursor:       7,
		LedgerHeight: 7,
	})
	syncCtx, cancelSync := context.WithTimeout(context.Background(), time.Second)
	defer cancelSync()
	require.NoError(t, f.worker.WaitSynced(syncCtx))
	require.Equal(t, uint64(100), f.ledger.Balance(0))
}

func TestWorkerConfirmsPendingWhenOutputsSpent(t *testing.T) {
	t.Parallel()

	f := newWorkerFixture(t, time.Minute)
	f.view.setStatus(ports.AccountStatus{
		NewOutputs: []domain.SpendableOutput{testOutput("a", 0, 100)},
		Cursor:     1, LedgerHeight: 1,
	})
	f.start(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, f.worker.WaitSynced(ctx))

	// An in-flight payment consuming "a".
	require.NoError(t, f.ledger.ReserveForSpend([]domain.OutputID{"a"}))
	f.pending.Add(domain.PendingTransaction{
		ID:          uuid.New(),
		Amount:      domain.NewAmount(50, 0),
		Destination: domain.EncodePublicAddress([]byte("dest")),
		ConsumedIDs: []domain.OutputID{"a"},
		SubmittedAt: time.Now(),
		Status:      domain.StatusSubmitted,
	})

	// The peer reports "a" spent.
	f.view.setStatus(ports.AccountStatus{
		SpentIDs: []domain.OutputID{"a"},
		Cursor:   2, LedgerHeight: 2,
	})

	require.Eventually(t, func() bool {
		return f.pending.Len() == 0
	}, time.Second, 5*time.Millisecond)
	require.Equal(t, uint64(0), f.ledger.Balance(0))
	require.Equal(t, uint64(0), f.ledger.ReservedValue(0))
}

func TestWorkerReleasesTimedOutSubmission(t *testing.T) {
	t.Parallel()

	f := newWorkerFixture(t, 50*time.Millisecond)
	f.view.setStatus(ports.AccountStatus{
		NewOutputs: []domain.SpendableOutput{testOutput("a", 0, 100)},
		Cursor:     1, LedgerHeight: 1,
	})
	f.start(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, f.worker.WaitSynced(ctx))

	// A 10-unit payment reserving "a" that is never observed upstream.
	require.NoError(t, f.ledger.ReserveForSpend([]domain.OutputID{"a"}))
	require.Equal(t, uint64(0), f.ledger.Balance(0))
	f.pending.Add(domain.PendingTransaction{
		ID:          uuid.New(),
		Amount:      domain.NewAmount(10, 0),
		Destination: domain.EncodePublicAddress([]byte("dest")),
		ConsumedIDs: []domain.OutputID{"a"},
		SubmittedAt: time.Now(),
		Status:      domain.StatusSubmitted,
	})

	// Past the timeout the reservation is optimistically released and the
	// output is spendable again.
	require.Eventually(t, func() bool {
		return f.pending.Len() == 0 && f.ledger.Balance(0) == 100
	}, time.Second, 5*time.Millisecond)

	msg, ok := f.errs.Top()
	require.True(t, ok)
	require.Contains(t, msg, "timed out")
}

func TestWorkerCursorNeverRegresses(t *testing.T) {
	t.Parallel()

	f := newWorkerFixture(t, time.Minute)
	f.view.setStatus(ports.AccountStatus{Cursor: 10, LedgerHeight: 10})
	f.start(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, f.worker.WaitSynced(ctx))

	// An out-of-order response with a lower cursor must not rewind.
	f.view.setStatus(ports.AccountStatus{Cursor: 5, LedgerHeight: 12})
	require.Eventually(t, func() bool {
		_, total := f.worker.Progress()
		return total == 12
	}, time.Second, 5*time.Millisecond)

	synced, _ := f.worker.Progress()
	require.Equal(t, uint64(10), synced)
}

func TestWorkerResyncResetsCursor(t *testing.T) {
	t.Parallel()

	f := newWorkerFixture(t, time.Minute)
	f.view.setStatus(ports.AccountStatus{Cursor: 10, LedgerHeight: 10})
	f.start(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, f.worker.WaitSynced(ctx))

	require.Eventually(t, func() bool {
		cursors := f.view.requestedCursors()
		return cursors[len(cursors)-1] == 10
	}, time.Second, 5*time.Millisecond)
	polled := f.view.pollCount()

	// Resync restarts the account view from scratch.
	f.worker.Resync()
	require.Eventually(t, func() bool {
		for _, cursor := range f.view.requestedCursors()[polled:] {
			if cursor == 0 {
				return true
			}
		}
		return false
	}, time.Second, 5*time.Millisecond)
}
