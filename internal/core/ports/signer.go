package ports

import (
	"context"

	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/domain"
)

// SwapLeg describes the counter-party leg of a two-leg atomic swap,
// derived from the quote being filled: the taker receives Base and pays
// Counter against the signed counter-party intent identified by QuoteID.
type SwapLeg struct {
	QuoteID string
	Base    domain.Amount
	Counter domain.Amount
}

// Signer produces signed transaction blobs. The ring-confidential
// construction behind it is a trusted black box with a fixed contract;
// any failure it reports is non-recoverable for the session.
type Signer interface {
	BuildSignedTransaction(
		ctx context.Context,
		key *domain.AccountKey,
		inputs []domain.SpendableOutput,
		destination domain.PublicAddress,
		amount domain.Amount,
		fee uint64,
		swapLeg *SwapLeg,
	) ([]byte, error)
}
