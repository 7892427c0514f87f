package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/domain"
)

func newPendingTx(ids []domain.OutputID, submittedAt time.Time) domain.PendingTransaction {
	return domain.PendingTransaction{
		ID:          uuid.New(),
		Amount:      domain.NewAmount(10, 0),
		Destination: domain.EncodePublicAddress([]byte("dest")),
		ConsumedIDs: ids,
		SubmittedAt: submittedAt,
		Status:      domain.StatusSubmitted,
	}
}

func TestMarkSpentConfirmsWhenAllOutputsSpent(t *testing.T) {
	t.Parallel()

	book := domain.NewPendingBook()
	tx := newPendingTx([]domain.OutputID{"a", "b"}, time.Now())
	book.Add(tx)

	confirmed := book.MarkSpent([]domain.OutputID{"a"})
	require.Empty(t, confirmed)
	require.Equal(t, 1, book.Len())

	confirmed = book.MarkSpent([]domain.OutputID{"b", "unrelated"})
	require.Len(t, confirmed, 1)
	require.Equal(t, tx.ID, confirmed[0].ID)
	require.Equal(t, domain.StatusConfirmed, confirmed[0].Status)
	require.Equal(t, 0, book.Len())
}

func TestExpireTimesOutOldSubmissions(t *testing.T) {
	t.Parallel()

	book := domain.NewPendingBook()
	old := newPendingTx([]domain.OutputID{"a"}, time.Now().Add(-time.Minute))
	fresh := newPendingTx([]domain.OutputID{"b"}, time.Now())
	book.Add(old)
	book.Add(fresh)

	expired := book.Expire(time.Now().Add(-30 * time.Second))
	require.Len(t, expired, 1)
	require.Equal(t, old.ID, expired[0].ID)
	require.Equal(t, domain.StatusTimedOut, expired[0].Status)
	require.Equal(t, []domain.OutputID{"a"}, expired[0].ConsumedIDs)
	require.Equal(t, 1, book.Len())
}

func TestNewPendingTransactionCopiesIDs(t *testing.T) {
	t.Parallel()

	ids := []domain.OutputID{"a"}
	tx := domain.NewPendingTransaction(
		domain.NewAmount(5, 1), domain.EncodePublicAddress([]byte("dest")), ids,
	)
	ids[0] = "mutated"

	require.Equal(t, domain.StatusSubmitted, tx.Status)
	require.Equal(t, []domain.OutputID{"a"}, tx.ConsumedIDs)
	require.NotEqual(t, uuid.Nil, tx.ID)
}
