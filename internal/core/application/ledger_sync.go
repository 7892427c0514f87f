package application

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/domain"
	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/ports"
	"github.com/wjuan-mob/mobilecoind-buddy/pkg/errorqueue"
	"github.com/wjuan-mob/mobilecoind-buddy/pkg/stats"
)

// LedgerSyncWorker polls the ledger-view peer at a fixed interval and
// advances the local account view: it merges output deltas into the amount
// ledger, confirms in-flight transactions whose consumed outputs were
// observed spent, and releases the reservations of submissions that
// outlived the timeout threshold (optimistic unlock; the duplicate-relay
// risk is surfaced to the user, never silently retried).
//
// The worker owns the sync cursor. It only advances, and resets solely
// through an explicit Resync.
type LedgerSyncWorker struct {
	view          ports.LedgerView
	ledger        *domain.AmountLedger
	pending       *domain.PendingBook
	errs          *errorqueue.Queue
	limiter       *rate.Limiter
	interval      time.Duration
	callTimeout   time.Duration
	submitTimeout time.Duration

	cursor       atomic.Uint64
	syncedBlocks atomic.Uint64
	totalBlocks  atomic.Uint64
	failStreak   int

	synced     chan struct{}
	syncedOnce sync.Once
	stopChan   chan struct{}
	stopOnce   sync.Once
}

// LedgerSyncOpts defines the parameters needed for creating a
// LedgerSyncWorker with NewLedgerSyncWorker.
type LedgerSyncOpts struct {
	View          ports.LedgerView
	Ledger        *domain.AmountLedger
	Pending       *domain.PendingBook
	Errors        *errorqueue.Queue
	Interval      time.Duration
	CallTimeout   time.Duration
	SubmitTimeout time.Duration
}

// NewLedgerSyncWorker returns a worker ready to be started.
func NewLedgerSyncWorker(opts LedgerSyncOpts) *LedgerSyncWorker {
	return &LedgerSyncWorker{
		view:          opts.View,
		ledger:        opts.Ledger,
		pending:       opts.Pending,
		errs:          opts.Errors,
		limiter:       rate.NewLimiter(rate.Every(opts.Interval), 1),
		interval:      opts.Interval,
		callTimeout:   opts.CallTimeout,
		submitTimeout: opts.SubmitTimeout,
		synced:        make(chan struct{}),
		stopChan:      make(chan struct{}),
	}
}

// Start runs the polling loop until Stop is called. It always returns nil
// so it can be supervised by an errgroup together with the quote book.
func (w *LedgerSyncWorker) Start() error {
	log.Debug("ledger sync worker started")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.poll()
	for {
		select {
		case <-ticker.C:
			w.poll()
		case <-w.stopChan:
			log.Debug("ledger sync worker stopped")
			return nil
		}
	}
}

// Stop signals the loop to exit after the in-flight poll, if any.
func (w *LedgerSyncWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stopChan) })
}

// WaitSynced blocks until the first successful poll has been applied, or
// the context is done.
func (w *LedgerSyncWorker) WaitSynced(ctx context.Context) error {
	select {
	case <-w.synced:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Progress returns the highest block index incorporated locally and the
// ledger height last reported by the peer.
func (w *LedgerSyncWorker) Progress() (syncedBlocks, totalBlocks uint64) {
	return w.syncedBlocks.Load(), w.totalBlocks.Load()
}

// Resync resets the cursor so the next poll re-fetches the account view
// from scratch. This is the recovery path for any detected local
// inconsistency: all state is reconstructable from the peer.
func (w *LedgerSyncWorker) Resync() {
	log.Info("resyncing account view from scratch")
	w.cursor.Store(0)
}

func (w *LedgerSyncWorker) poll() {
	ctx, cancel := context.WithTimeout(context.Background(), w.callTimeout)
	defer cancel()

	if err := w.limiter.Wait(ctx); err != nil {
		return
	}

	stats.PollsTotal.Inc()
	cursor := w.cursor.Load()
	status, err := w.view.GetAccountStatus(ctx, cursor)
	if err != nil {
		stats.PollsFailed.Inc()
		w.failStreak++
		log.WithError(err).Warnf("ledger poll failed, retrying next interval")
		if w.failStreak == 1 {
			w.errs.Push(fmt.Sprintf("ledger sync: %s", err))
		}
		return
	}
	w.failStreak = 0

	w.ledger.ApplyConfirmedDelta(status.NewOutputs, status.SpentIDs)
	if len(status.NewOutputs) > 0 {
		stats.OutputsDiscovered.Add(float64(len(status.NewOutputs)))
		log.Debugf("discovered %d new outputs", len(status.NewOutputs))
	}

	// The cursor never moves backwards, whatever the peer reports.
	if status.Cursor > cursor {
		w.cursor.Store(status.Cursor)
	}
	w.syncedBlocks.Store(w.cursor.Load())
	w.totalBlocks.Store(status.LedgerHeight)

	for _, tx := range w.pending.MarkSpent(status.SpentIDs) {
		stats.TxsConfirmed.Inc()
		w.ledger.ConfirmSpend(tx.ConsumedIDs)
		log.Infof("transaction %s confirmed", tx.ID)
	}

	deadline := time.Now().Add(-w.submitTimeout)
	for _, tx := range w.pending.Expire(deadline) {
		stats.TxsTimedOut.Inc()
		w.ledger.ReleaseReservation(tx.ConsumedIDs)
		log.Warnf("transaction %s timed out, outputs released", tx.ID)
		w.errs.Push(fmt.Sprintf(
			"transaction %s timed out after %s; it may still be relayed, "+
				"verify before retrying", tx.ID, w.submitTimeout,
		))
	}

	w.syncedOnce.Do(func() { close(w.synced) })
}
