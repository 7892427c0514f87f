package application

import (
	"context"
	"sort"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/domain"
	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/ports"
	"github.com/wjuan-mob/mobilecoind-buddy/pkg/stats"
)

// QuoteBook caches the live quotes of the watched trading pair, refreshed
// at a fixed interval from the quote peer. Quotes used by a submitted swap
// are marked consumed immediately and never offered again, even before the
// peer confirms. A stale book is never served: when the peer is
// unreachable, selection fails with ErrQuotePeerUnavailable.
type QuoteBook struct {
	source      ports.QuoteSource
	limiter     *rate.Limiter
	interval    time.Duration
	callTimeout time.Duration

	mtx       sync.RWMutex
	pair      *domain.Pair
	quotes    map[string]domain.Quote
	consumed  map[string]struct{}
	available bool

	refreshNow chan struct{}
	stopChan   chan struct{}
	stopOnce   sync.Once
}

// QuoteBookOpts defines the parameters needed for creating a QuoteBook
// with NewQuoteBook.
type QuoteBookOpts struct {
	Source      ports.QuoteSource
	Interval    time.Duration
	CallTimeout time.Duration
}

// NewQuoteBook returns a quote book ready to be started. It is idle until
// SetPair selects a pair to watch.
func NewQuoteBook(opts QuoteBookOpts) *QuoteBook {
	return &QuoteBook{
		source:      opts.Source,
		limiter:     rate.NewLimiter(rate.Every(opts.Interval), 1),
		interval:    opts.Interval,
		callTimeout: opts.CallTimeout,
		quotes:      map[string]domain.Quote{},
		consumed:    map[string]struct{}{},
		refreshNow:  make(chan struct{}, 1),
		stopChan:    make(chan struct{}),
	}
}

// Start runs the refresh loop until Stop is called. Always returns nil so
// it can be supervised by an errgroup together with the sync worker.
func (b *QuoteBook) Start() error {
	log.Debug("quote book started")
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			b.refresh()
		case <-b.refreshNow:
			b.refresh()
		case <-b.stopChan:
			log.Debug("quote book stopped")
			return nil
		}
	}
}

// Stop signals the refresh loop to exit.
func (b *QuoteBook) Stop() {
	b.stopOnce.Do(func() { close(b.stopChan) })
}

// SetPair switches the watched pair and schedules an immediate refresh.
func (b *QuoteBook) SetPair(pair domain.Pair) {
	b.mtx.Lock()
	if b.pair != nil && *b.pair == pair {
		b.mtx.Unlock()
		return
	}
	b.pair = &pair
	b.quotes = map[string]domain.Quote{}
	b.available = false
	b.mtx.Unlock()

	select {
	case b.refreshNow <- struct{}{}:
	default:
	}
}

// ClearPair stops watching quotes, emptying the book.
func (b *QuoteBook) ClearPair() {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	b.pair = nil
	b.quotes = map[string]domain.Quote{}
	b.available = false
}

// Refresh synchronously fetches the book for the given pair, switching the
// watched pair if needed. Used by the swap command path so selection never
// runs against quotes of another pair.
func (b *QuoteBook) Refresh(ctx context.Context, pair domain.Pair) error {
	b.SetPair(pair)

	quotes, err := b.source.GetQuotes(ctx, pair)
	b.applyRefresh(pair, quotes, err)
	if err != nil {
		return ErrQuotePeerUnavailable
	}
	return nil
}

// BestQuote returns the live quote most favorable to the taker among those
// covering the desired base amount: lowest counter-per-base rate, ties
// broken by earliest expiration so time-limited liquidity is used first.
func (b *QuoteBook) BestQuote(
	pair domain.Pair, desired uint64,
) (domain.Quote, error) {
	b.purgeExpired()

	b.mtx.RLock()
	defer b.mtx.RUnlock()

	if b.pair == nil || *b.pair != pair || !b.available {
		return domain.Quote{}, ErrQuotePeerUnavailable
	}

	var best *domain.Quote
	for id, q := range b.quotes {
		if _, ok := b.consumed[id]; ok {
			continue
		}
		if !q.Covers(desired) {
			continue
		}
		if best == nil {
			quote := q
			best = &quote
			continue
		}
		switch q.Rate().Cmp(best.Rate()) {
		case -1:
			quote := q
			best = &quote
		case 0:
			if q.Expiry.Before(best.Expiry) {
				quote := q
				best = &quote
			}
		}
	}
	if best == nil {
		return domain.Quote{}, ErrNoQuoteAvailable
	}
	return *best, nil
}

// MarkConsumed removes the quote from the offerable set.
func (b *QuoteBook) MarkConsumed(id string) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	b.consumed[id] = struct{}{}
	delete(b.quotes, id)
}

// Snapshot returns the live book for the given pair sorted by rate, most
// favorable first, for display.
func (b *QuoteBook) Snapshot(pair domain.Pair) []domain.Quote {
	b.purgeExpired()

	b.mtx.RLock()
	defer b.mtx.RUnlock()

	if b.pair == nil || *b.pair != pair {
		return nil
	}
	quotes := make([]domain.Quote, 0, len(b.quotes))
	for id, q := range b.quotes {
		if _, ok := b.consumed[id]; ok {
			continue
		}
		quotes = append(quotes, q)
	}
	sort.Slice(quotes, func(i, j int) bool {
		switch quotes[i].Rate().Cmp(quotes[j].Rate()) {
		case -1:
			return true
		case 1:
			return false
		}
		return quotes[i].Expiry.Before(quotes[j].Expiry)
	})
	return quotes
}

// OfferQuote submits a self-originated quote to the peer: an offer to
// trade the offered amount against the wanted one.
func (b *QuoteBook) OfferQuote(
	ctx context.Context, offered, wanted domain.Amount,
) (string, error) {
	id, err := b.source.SubmitQuote(ctx, offered, wanted)
	if err != nil {
		return "", ErrQuotePeerUnavailable
	}
	return id, nil
}

func (b *QuoteBook) refresh() {
	b.mtx.RLock()
	pair := b.pair
	b.mtx.RUnlock()
	if pair == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.callTimeout)
	defer cancel()

	if err := b.limiter.Wait(ctx); err != nil {
		return
	}

	quotes, err := b.source.GetQuotes(ctx, *pair)
	b.applyRefresh(*pair, quotes, err)
}

func (b *QuoteBook) applyRefresh(
	pair domain.Pair, quotes []domain.Quote, err error,
) {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	// The watched pair may have changed while the call was in flight.
	if b.pair == nil || *b.pair != pair {
		return
	}
	if err != nil {
		b.available = false
		log.WithError(err).Warn("quote refresh failed, retrying next interval")
		return
	}

	stats.QuoteRefreshes.Inc()
	now := time.Now()
	b.quotes = map[string]domain.Quote{}
	for _, q := range quotes {
		if q.IsExpired(now) {
			continue
		}
		if _, ok := b.consumed[q.ID]; ok {
			continue
		}
		b.quotes[q.ID] = q
	}
	b.available = true
}

func (b *QuoteBook) purgeExpired() {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	now := time.Now()
	for id, q := range b.quotes {
		if q.IsExpired(now) {
			delete(b.quotes, id)
		}
	}
}
