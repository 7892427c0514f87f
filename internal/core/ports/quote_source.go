package ports

import (
	"context"

	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/domain"
)

// QuoteSource is the interface of the optional swap-quote peer (DEQS).
type QuoteSource interface {
	// GetQuotes returns the live quotes for the given pair.
	GetQuotes(ctx context.Context, pair domain.Pair) ([]domain.Quote, error)
	// SubmitQuote offers to trade the given offered amount against the
	// wanted one and returns the id assigned by the peer.
	SubmitQuote(ctx context.Context, offered, wanted domain.Amount) (string, error)
}
