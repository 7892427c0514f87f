// Package mobilecoindclient implements the ledger-view and signing ports
// over the mobilecoind gRPC API.
package mobilecoindclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/sony/gobreaker"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	mobilecoindv1 "github.com/wjuan-mob/mobilecoind-buddy/api/mobilecoind/v1"
	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/domain"
	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/ports"
	"github.com/wjuan-mob/mobilecoind-buddy/pkg/circuitbreaker"
)

// Service is the mobilecoind connector: it implements both ports.LedgerView
// and ports.Signer, since the daemon exposes transaction construction next
// to the ledger view.
type Service interface {
	ports.LedgerView
	ports.Signer
	Close() error
}

type service struct {
	conn    *grpc.ClientConn
	client  mobilecoindv1.MobilecoindAPIClient
	breaker *gobreaker.CircuitBreaker
	viewKey []byte
}

// Opts defines the parameters needed for creating a Service with
// NewService.
type Opts struct {
	RPCAddress string
	AccountKey *domain.AccountKey
}

// NewService dials the daemon and returns a connector bound to the given
// account key.
func NewService(opts Opts) (Service, error) {
	if opts.AccountKey == nil {
		return nil, domain.ErrInvalidAccountKey
	}
	conn, err := grpc.Dial(opts.RPCAddress, grpc.WithInsecure())
	if err != nil {
		return nil, fmt.Errorf("dialing mobilecoind: %w", err)
	}

	return &service{
		conn:    conn,
		client:  mobilecoindv1.NewMobilecoindAPIClient(conn),
		breaker: circuitbreaker.NewCircuitBreaker("mobilecoind"),
		viewKey: opts.AccountKey.ViewPrivateKey(),
	}, nil
}

func (s *service) GetAccountStatus(
	ctx context.Context, cursor uint64,
) (*ports.AccountStatus, error) {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		return s.client.GetAccountStatus(ctx, &mobilecoindv1.GetAccountStatusRequest{
			ViewKey: &mobilecoindv1.AccountKey{ViewPrivateKey: s.viewKey},
			Cursor:  cursor,
		})
	})
	if err != nil {
		return nil, wrapNetworkError(err)
	}
	reply := res.(*mobilecoindv1.GetAccountStatusResponse)

	newOutputs := make([]domain.SpendableOutput, 0, len(reply.NewOutputs))
	for _, out := range reply.NewOutputs {
		newOutputs = append(newOutputs, domain.SpendableOutput{
			ID:         domain.OutputID(out.Id),
			Token:      domain.TokenID(out.TokenId),
			Value:      out.Value,
			BlockIndex: out.BlockIndex,
		})
	}
	spentIDs := make([]domain.OutputID, 0, len(reply.SpentIds))
	for _, id := range reply.SpentIds {
		spentIDs = append(spentIDs, domain.OutputID(id))
	}

	return &ports.AccountStatus{
		NewOutputs:   newOutputs,
		SpentIDs:     spentIDs,
		Cursor:       reply.Cursor,
		LedgerHeight: reply.LedgerHeight,
	}, nil
}

func (s *service) SubmitTransaction(ctx context.Context, blob []byte) error {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		return s.client.SubmitTransaction(ctx, &mobilecoindv1.SubmitTransactionRequest{
			TxBlob: blob,
		})
	})
	if err != nil {
		return wrapNetworkError(err)
	}
	reply := res.(*mobilecoindv1.SubmitTransactionResponse)
	if !reply.Accepted {
		return &ports.SubmitError{Reason: reply.Reason}
	}
	return nil
}

func (s *service) BuildSignedTransaction(
	ctx context.Context,
	key *domain.AccountKey,
	inputs []domain.SpendableOutput,
	destination domain.PublicAddress,
	amount domain.Amount,
	fee uint64,
	swapLeg *ports.SwapLeg,
) ([]byte, error) {
	inputIDs := make([]string, 0, len(inputs))
	for _, in := range inputs {
		inputIDs = append(inputIDs, string(in.ID))
	}
	req := &mobilecoindv1.GenerateSignedTxRequest{
		AccountKey: &mobilecoindv1.AccountKey{
			ViewPrivateKey:  key.ViewPrivateKey(),
			SpendPrivateKey: key.SpendPrivateKey(),
		},
		InputIds:         inputIDs,
		RecipientAddress: string(destination),
		TokenId:          uint64(amount.Token),
		Value:            amount.Value,
		Fee:              fee,
	}
	if swapLeg != nil {
		req.SwapLeg = &mobilecoindv1.SwapLeg{
			QuoteId:        swapLeg.QuoteID,
			BaseTokenId:    uint64(swapLeg.Base.Token),
			BaseValue:      swapLeg.Base.Value,
			CounterTokenId: uint64(swapLeg.Counter.Token),
			CounterValue:   swapLeg.Counter.Value,
		}
	}

	res, err := s.breaker.Execute(func() (interface{}, error) {
		return s.client.GenerateSignedTx(ctx, req)
	})
	if err != nil {
		if netErr := wrapNetworkError(err); errors.Is(netErr, ports.ErrPeerUnavailable) {
			return nil, netErr
		}
		// A signing failure reported by a reachable daemon is not
		// retryable and terminates the session.
		return nil, fmt.Errorf("%w: %s", ports.ErrSigningFailed, err)
	}
	return res.(*mobilecoindv1.GenerateSignedTxResponse).TxBlob, nil
}

func (s *service) Close() error {
	return s.conn.Close()
}

func wrapNetworkError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) ||
		errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %s", ports.ErrPeerUnavailable, err)
	}
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return fmt.Errorf("%w: %s", ports.ErrPeerUnavailable, err)
	}
	return err
}
