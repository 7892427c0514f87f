// Package stats exposes the session's prometheus counters and a periodic
// statistics logger.
package stats

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

var (
	// PollsTotal counts ledger-view polls, successful or not.
	PollsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "buddy_ledger_polls_total",
		Help: "Number of ledger-view polls issued.",
	})
	// PollsFailed counts ledger-view polls that failed at the network layer.
	PollsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "buddy_ledger_polls_failed_total",
		Help: "Number of ledger-view polls that failed.",
	})
	// OutputsDiscovered counts spendable outputs learned from the peer.
	OutputsDiscovered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "buddy_outputs_discovered_total",
		Help: "Number of spendable outputs discovered.",
	})
	// TxsSubmitted counts transactions accepted for relay.
	TxsSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "buddy_txs_submitted_total",
		Help: "Number of transactions accepted for relay.",
	})
	// TxsConfirmed counts submissions observed spent on the remote ledger.
	TxsConfirmed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "buddy_txs_confirmed_total",
		Help: "Number of submitted transactions confirmed.",
	})
	// TxsTimedOut counts submissions that outlived the timeout threshold.
	TxsTimedOut = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "buddy_txs_timed_out_total",
		Help: "Number of submitted transactions timed out.",
	})
	// QuoteRefreshes counts quote book refreshes against the quote peer.
	QuoteRefreshes = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "buddy_quote_refreshes_total",
		Help: "Number of quote book refreshes.",
	})
)

func init() {
	prometheus.MustRegister(
		PollsTotal,
		PollsFailed,
		OutputsDiscovered,
		TxsSubmitted,
		TxsConfirmed,
		TxsTimedOut,
		QuoteRefreshes,
	)
}

// EnableSessionStatistics starts a goroutine that periodically logs the
// snapshot returned by the given function, until the context is done.
func EnableSessionStatistics(
	ctx context.Context, interval time.Duration, snapshot func() string,
) {
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				log.Info(snapshot())
			case <-ctx.Done():
				return
			}
		}
	}()
}
