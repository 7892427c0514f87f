package application_test

import (
	"context"
	"sync"

	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/domain"
	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/ports"
)

type mockLedgerView struct {
	mtx       sync.Mutex
	status    ports.AccountStatus
	statusErr error
	submitErr error
	submitted [][]byte
	polls     int
	cursors   []uint64
}

func (m *mockLedgerView) setStatus(status ports.AccountStatus) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.status = status
	m.statusErr = nil
}

func (m *mockLedgerView) setStatusErr(err error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.statusErr = err
}

func (m *mockLedgerView) setSubmitErr(err error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.submitErr = err
}

func (m *mockLedgerView) pollCount() int {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.polls
}

func (m *mockLedgerView) requestedCursors() []uint64 {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	cursors := make([]uint64, len(m.cursors))
	copy(cursors, m.cursors)
	return cursors
}

func (m *mockLedgerView) GetAccountStatus(
	_ context.Context, cursor uint64,
) (*ports.AccountStatus, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.polls++
	m.cursors = append(m.cursors, cursor)
	if m.statusErr != nil {
		return nil, m.statusErr
	}
	status := m.status
	return &status, nil
}

func (m *mockLedgerView) SubmitTransaction(_ context.Context, blob []byte) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if m.submitErr != nil {
		return m.submitErr
	}
	m.submitted = append(m.submitted, blob)
	return nil
}

type mockSigner struct {
	mtx     sync.Mutex
	err     error
	lastLeg *ports.SwapLeg
	calls   int
}

func (m *mockSigner) setErr(err error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.err = err
}

func (m *mockSigner) BuildSignedTransaction(
	_ context.Context,
	_ *domain.AccountKey,
	inputs []domain.SpendableOutput,
	_ domain.PublicAddress,
	_ domain.Amount,
	_ uint64,
	swapLeg *ports.SwapLeg,
) ([]byte, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.calls++
	m.lastLeg = swapLeg
	if m.err != nil {
		return nil, m.err
	}
	return []byte("signed-blob"), nil
}

type mockQuoteSource struct {
	mtx       sync.Mutex
	quotes    []domain.Quote
	quotesErr error
	submitID  string
	submitErr error
}

func (m *mockQuoteSource) setQuotes(quotes []domain.Quote) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.quotes = quotes
	m.quotesErr = nil
}

func (m *mockQuoteSource) setQuotesErr(err error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.quotesErr = err
}

func (m *mockQuoteSource) setSubmitID(id string) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.submitID = id
}

func (m *mockQuoteSource) GetQuotes(
	_ context.Context, _ domain.Pair,
) ([]domain.Quote, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if m.quotesErr != nil {
		return nil, m.quotesErr
	}
	quotes := make([]domain.Quote, len(m.quotes))
	copy(quotes, m.quotes)
	return quotes, nil
}

func (m *mockQuoteSource) SubmitQuote(
	_ context.Context, _, _ domain.Amount,
) (string, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if m.submitErr != nil {
		return "", m.submitErr
	}
	return m.submitID, nil
}

func testAccountKey() *domain.AccountKey {
	view := make([]byte, 32)
	spend := make([]byte, 32)
	for i := range view {
		view[i] = byte(i)
		spend[i] = byte(31 - i)
	}
	addr := domain.EncodePublicAddress([]byte("test account"))
	key, err := domain.NewAccountKey(view, spend, addr)
	if err != nil {
		panic(err)
	}
	return key
}

func testTokens() []domain.TokenInfo {
	return []domain.TokenInfo{
		{ID: 0, Symbol: "TOK", Decimals: 6, Fee: 10},
		{ID: 1, Symbol: "CTR", Decimals: 6, Fee: 5},
	}
}
