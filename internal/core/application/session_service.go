package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/domain"
	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/ports"
	"github.com/wjuan-mob/mobilecoind-buddy/pkg/errorqueue"
)

// SessionState is the lifecycle state of a session.
type SessionState int32

const (
	// SessionStarting means the first sync poll has not completed yet.
	SessionStarting SessionState = iota
	// SessionActive means at least one real snapshot has been applied and
	// commands are accepted.
	SessionActive
	// SessionShuttingDown means shutdown has begun; commands are refused.
	SessionShuttingDown
	// SessionStopped is terminal. A new session requires a new controller.
	SessionStopped
)

func (s SessionState) String() string {
	switch s {
	case SessionStarting:
		return "STARTING"
	case SessionActive:
		return "ACTIVE"
	case SessionShuttingDown:
		return "SHUTTING_DOWN"
	case SessionStopped:
		return "STOPPED"
	default:
		return "UNDEFINED"
	}
}

// SessionController owns one account key and orchestrates the sync worker,
// the quote book and the transaction builder around a single amount
// ledger. It is the only mutation entry point exposed to the UI layer, and
// it serializes mutating commands so two of them can never race to reserve
// the same outputs.
type SessionController struct {
	key       *domain.AccountKey
	ledger    *domain.AmountLedger
	pending   *domain.PendingBook
	worker    *LedgerSyncWorker
	quoteBook *QuoteBook
	builder   *TransactionBuilder
	tokens    domain.TokenRegistry
	errs      *errorqueue.Queue

	stateMtx sync.RWMutex
	state    SessionState
	started  bool
	cmdMtx   sync.Mutex
	loops    errgroup.Group
}

// SessionOpts defines the parameters needed for creating a
// SessionController with NewSessionController.
type SessionOpts struct {
	AccountKey *domain.AccountKey
	View       ports.LedgerView
	Signer     ports.Signer
	// QuoteSource is optional; when nil all swap commands fail with
	// ErrSwapsDisabled.
	QuoteSource          ports.QuoteSource
	Tokens               []domain.TokenInfo
	PollInterval         time.Duration
	QuoteRefreshInterval time.Duration
	CallTimeout          time.Duration
	SubmitTimeout        time.Duration
	ErrorQueueSize       int
}

func (o SessionOpts) validate() error {
	if o.AccountKey == nil {
		return domain.ErrInvalidAccountKey
	}
	if o.View == nil {
		return fmt.Errorf("missing ledger view")
	}
	if o.Signer == nil {
		return fmt.Errorf("missing signer")
	}
	if len(o.Tokens) == 0 {
		return domain.ErrUnknownToken
	}
	if o.PollInterval <= 0 || o.CallTimeout <= 0 || o.SubmitTimeout <= 0 {
		return fmt.Errorf("intervals and timeouts must be positive")
	}
	return nil
}

// NewSessionController returns a session in Starting state.
func NewSessionController(opts SessionOpts) (*SessionController, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	ledger := domain.NewAmountLedger()
	pending := domain.NewPendingBook()
	tokens := domain.NewTokenRegistry(opts.Tokens)
	errs := errorqueue.New(opts.ErrorQueueSize)

	worker := NewLedgerSyncWorker(LedgerSyncOpts{
		View:          opts.View,
		Ledger:        ledger,
		Pending:       pending,
		Errors:        errs,
		Interval:      opts.PollInterval,
		CallTimeout:   opts.CallTimeout,
		SubmitTimeout: opts.SubmitTimeout,
	})

	var quoteBook *QuoteBook
	if opts.QuoteSource != nil {
		refreshInterval := opts.QuoteRefreshInterval
		if refreshInterval <= 0 {
			refreshInterval = opts.PollInterval
		}
		quoteBook = NewQuoteBook(QuoteBookOpts{
			Source:      opts.QuoteSource,
			Interval:    refreshInterval,
			CallTimeout: opts.CallTimeout,
		})
	}

	builder := NewTransactionBuilder(TxBuilderOpts{
		Key:     opts.AccountKey,
		Ledger:  ledger,
		Pending: pending,
		Signer:  opts.Signer,
		View:    opts.View,
		Tokens:  tokens,
	})

	return &SessionController{
		key:       opts.AccountKey,
		ledger:    ledger,
		pending:   pending,
		worker:    worker,
		quoteBook: quoteBook,
		builder:   builder,
		tokens:    tokens,
		errs:      errs,
		state:     SessionStarting,
	}, nil
}

// Start launches the background loops and blocks until the first
// successful sync poll, so an Active session never reports a zero balance
// merely because it has not synced yet. If the context expires first, the
// loops are torn down and the session ends up Stopped.
func (s *SessionController) Start(ctx context.Context) error {
	// The loops are launched under the lock so a concurrent Start cannot
	// pass the check and launch them a second time.
	s.stateMtx.Lock()
	if s.state != SessionStarting || s.started {
		s.stateMtx.Unlock()
		return ErrSessionNotStartable
	}
	s.started = true
	s.loops.Go(s.worker.Start)
	if s.quoteBook != nil {
		s.loops.Go(s.quoteBook.Start)
	}
	s.stateMtx.Unlock()

	if err := s.worker.WaitSynced(ctx); err != nil {
		s.teardown()
		return fmt.Errorf("waiting for first sync: %w", err)
	}

	s.setState(SessionActive)
	log.Infof("session active for %s", s.key)
	return nil
}

// Stop shuts the session down cooperatively: background loops are
// signalled, their clean exit awaited. Idempotent; Stopped is terminal.
func (s *SessionController) Stop() {
	s.stateMtx.Lock()
	if s.state == SessionStopped || s.state == SessionShuttingDown {
		s.stateMtx.Unlock()
		return
	}
	s.state = SessionShuttingDown
	s.stateMtx.Unlock()

	log.Debug("session shutting down")
	s.teardown()
	log.Info("session stopped")
}

func (s *SessionController) teardown() {
	s.worker.Stop()
	if s.quoteBook != nil {
		s.quoteBook.Stop()
	}
	// Start methods always return nil, the Wait is for joining only.
	_ = s.loops.Wait()
	s.setState(SessionStopped)
}

// State returns the session's lifecycle state.
func (s *SessionController) State() SessionState {
	s.stateMtx.RLock()
	defer s.stateMtx.RUnlock()
	return s.state
}

func (s *SessionController) setState(state SessionState) {
	s.stateMtx.Lock()
	defer s.stateMtx.Unlock()
	s.state = state
}

func (s *SessionController) requireActive() error {
	if s.State() != SessionActive {
		return ErrSessionNotActive
	}
	return nil
}

// commandFailed queues the failure for the UI. A signing failure is
// non-recoverable: the session terminates rather than risk building
// further transactions with broken crypto.
func (s *SessionController) commandFailed(op string, err error) {
	s.errs.Push(fmt.Sprintf("%s: %s", op, err))
	if errors.Is(err, ports.ErrSigningFailed) {
		log.WithError(err).Error("signing failed, terminating session")
		s.Stop()
	}
}

// CurrentBalance returns the spendable balance for the given token.
func (s *SessionController) CurrentBalance(token domain.TokenID) uint64 {
	return s.ledger.Balance(token)
}

// Balances returns the spendable balance of every funded token.
func (s *SessionController) Balances() map[domain.TokenID]uint64 {
	return s.ledger.Balances()
}

// PendingTransactions returns a snapshot of the in-flight submissions.
func (s *SessionController) PendingTransactions() []domain.PendingTransaction {
	return s.pending.List()
}

// Resync drops the sync cursor so the account view is rebuilt from
// scratch on the next poll. This is the recovery path for any suspected
// local inconsistency: all state is reconstructable from the peer.
func (s *SessionController) Resync() error {
	if err := s.requireActive(); err != nil {
		return err
	}
	s.cmdMtx.Lock()
	defer s.cmdMtx.Unlock()
	s.worker.Resync()
	return nil
}

// SyncProgress returns the synced block index and the ledger height.
func (s *SessionController) SyncProgress() (syncedBlocks, totalBlocks uint64) {
	return s.worker.Progress()
}

// PublicAddress returns the account's b58 public address.
func (s *SessionController) PublicAddress() domain.PublicAddress {
	return s.key.PublicAddress()
}

// Tokens returns the token table of the session.
func (s *SessionController) Tokens() []domain.TokenInfo {
	return s.tokens.List()
}

// TopError returns the oldest not-yet-dismissed background error, if any.
func (s *SessionController) TopError() (string, bool) {
	return s.errs.Top()
}

// PopError dismisses the oldest background error.
func (s *SessionController) PopError() {
	s.errs.Pop()
}

// SendPayment submits a payment of the given amount to the destination and
// returns the id of the tracked pending transaction.
func (s *SessionController) SendPayment(
	ctx context.Context, destination domain.PublicAddress, amount domain.Amount,
) (uuid.UUID, error) {
	if err := s.requireActive(); err != nil {
		return uuid.Nil, err
	}

	s.cmdMtx.Lock()
	defer s.cmdMtx.Unlock()
	if err := s.requireActive(); err != nil {
		return uuid.Nil, err
	}

	id, err := s.builder.SendPayment(ctx, destination, amount)
	if err != nil {
		s.commandFailed("send payment", err)
		return uuid.Nil, err
	}
	return id, nil
}

// ExecuteSwap fills the best available quote for the pair with the desired
// base amount and returns the id of the tracked pending transaction.
func (s *SessionController) ExecuteSwap(
	ctx context.Context, pair domain.Pair, desired uint64,
) (uuid.UUID, error) {
	if s.quoteBook == nil {
		return uuid.Nil, ErrSwapsDisabled
	}
	if err := s.requireActive(); err != nil {
		return uuid.Nil, err
	}

	s.cmdMtx.Lock()
	defer s.cmdMtx.Unlock()
	if err := s.requireActive(); err != nil {
		return uuid.Nil, err
	}

	if err := s.quoteBook.Refresh(ctx, pair); err != nil {
		s.errs.Push(fmt.Sprintf("execute swap: %s", err))
		return uuid.Nil, err
	}
	quote, err := s.quoteBook.BestQuote(pair, desired)
	if err != nil {
		s.errs.Push(fmt.Sprintf("execute swap: %s", err))
		return uuid.Nil, err
	}

	id, err := s.builder.ExecuteSwap(ctx, quote, desired)
	if err != nil {
		s.commandFailed("execute swap", err)
		return uuid.Nil, err
	}
	s.quoteBook.MarkConsumed(quote.ID)
	return id, nil
}

// OfferSwap submits a self-originated quote offering to trade the offered
// amount against the wanted one, after checking the offered amount plus
// fee is covered by the current balance. No outputs are reserved until a
// counterparty fills the offer.
func (s *SessionController) OfferSwap(
	ctx context.Context, offered, wanted domain.Amount,
) (string, error) {
	if s.quoteBook == nil {
		return "", ErrSwapsDisabled
	}
	if err := s.requireActive(); err != nil {
		return "", err
	}

	s.cmdMtx.Lock()
	defer s.cmdMtx.Unlock()
	if err := s.requireActive(); err != nil {
		return "", err
	}

	info, ok := s.tokens.Get(offered.Token)
	if !ok {
		return "", domain.ErrUnknownToken
	}
	required, err := addFee(offered.Value, info.Fee)
	if err != nil {
		return "", err
	}
	if s.ledger.Balance(offered.Token) < required {
		return "", domain.ErrInsufficientFunds
	}

	id, err := s.quoteBook.OfferQuote(ctx, offered, wanted)
	if err != nil {
		s.errs.Push(fmt.Sprintf("offer swap: %s", err))
		return "", err
	}
	log.Infof("quote %s offered", id)
	return id, nil
}

// WatchQuotes points the quote book at the given pair for display
// purposes; QuotesSnapshot returns its live content.
func (s *SessionController) WatchQuotes(pair domain.Pair) error {
	if s.quoteBook == nil {
		return ErrSwapsDisabled
	}
	s.quoteBook.SetPair(pair)
	return nil
}

// StopWatchingQuotes idles the quote book.
func (s *SessionController) StopWatchingQuotes() {
	if s.quoteBook != nil {
		s.quoteBook.ClearPair()
	}
}

// QuotesSnapshot returns the live quotes for the pair sorted most
// favorable first.
func (s *SessionController) QuotesSnapshot(pair domain.Pair) []domain.Quote {
	if s.quoteBook == nil {
		return nil
	}
	return s.quoteBook.Snapshot(pair)
}
