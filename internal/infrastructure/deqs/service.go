// Package deqsclient implements the quote-source port over the DEQS gRPC
// API.
package deqsclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	deqsv1 "github.com/wjuan-mob/mobilecoind-buddy/api/deqs/v1"
	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/domain"
	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/ports"
	"github.com/wjuan-mob/mobilecoind-buddy/pkg/circuitbreaker"
)

// Service is the DEQS connector.
type Service interface {
	ports.QuoteSource
	Close() error
}

type service struct {
	conn    *grpc.ClientConn
	client  deqsv1.DeqsClientAPIClient
	breaker *gobreaker.CircuitBreaker
}

// NewService dials the quote peer at the given address.
func NewService(rpcAddress string) (Service, error) {
	conn, err := grpc.Dial(rpcAddress, grpc.WithInsecure())
	if err != nil {
		return nil, fmt.Errorf("dialing deqs: %w", err)
	}

	return &service{
		conn:    conn,
		client:  deqsv1.NewDeqsClientAPIClient(conn),
		breaker: circuitbreaker.NewCircuitBreaker("deqs"),
	}, nil
}

func (s *service) GetQuotes(
	ctx context.Context, pair domain.Pair,
) ([]domain.Quote, error) {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		return s.client.GetQuotes(ctx, &deqsv1.GetQuotesRequest{
			Pair: &deqsv1.Pair{
				BaseTokenId:    uint64(pair.Base),
				CounterTokenId: uint64(pair.Counter),
			},
		})
	})
	if err != nil {
		return nil, wrapNetworkError(err)
	}

	reply := res.(*deqsv1.GetQuotesResponse)
	quotes := make([]domain.Quote, 0, len(reply.Quotes))
	for _, q := range reply.Quotes {
		if q.Pair == nil {
			continue
		}
		quotes = append(quotes, domain.Quote{
			ID: q.Id,
			Pair: domain.Pair{
				Base:    domain.TokenID(q.Pair.BaseTokenId),
				Counter: domain.TokenID(q.Pair.CounterTokenId),
			},
			BaseVolume:    q.BaseVolume,
			CounterVolume: q.CounterVolume,
			Expiry:        time.Unix(q.ExpiryTimestamp, 0),
		})
	}
	return quotes, nil
}

func (s *service) SubmitQuote(
	ctx context.Context, offered, wanted domain.Amount,
) (string, error) {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		return s.client.SubmitQuote(ctx, &deqsv1.SubmitQuoteRequest{
			OfferedTokenId: uint64(offered.Token),
			OfferedValue:   offered.Value,
			WantedTokenId:  uint64(wanted.Token),
			WantedValue:    wanted.Value,
		})
	})
	if err != nil {
		return "", wrapNetworkError(err)
	}
	return res.(*deqsv1.SubmitQuoteResponse).QuoteId, nil
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
