package deqsv1

import (
	"context"

	"google.golang.org/grpc"
)

// DeqsClientAPIClient is the client API for the DeqsClientAPI service.
type DeqsClientAPIClient interface {
	GetQuotes(
		ctx context.Context, in *GetQuotesRequest, opts ...grpc.CallOption,
	) (*GetQuotesResponse, error)
	SubmitQuote(
		ctx context.Context, in *SubmitQuoteRequest, opts ...grpc.CallOption,
	) (*SubmitQuoteResponse, error)
}

type deqsClientAPIClient struct {
	cc grpc.ClientConnInterface
}

// NewDeqsClientAPIClient returns a DeqsClientAPIClient bound to the given
// connection.
func NewDeqsClientAPIClient(cc grpc.ClientConnInterface) DeqsClientAPIClient {
	return &deqsClientAPIClient{cc}
}

func (c *deqsClientAPIClient) GetQuotes(
	ctx context.Context, in *GetQuotesRequest, opts ...grpc.CallOption,
) (*GetQuotesResponse, error) {
	out := new(GetQuotesResponse)
	err := c.cc.Invoke(ctx, "/deqs.v1.DeqsClientAPI/GetQuotes", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deqsClientAPIClient) SubmitQuote(
	ctx context.Context, in *SubmitQuoteRequest, opts ...grpc.CallOption,
) (*SubmitQuoteResponse, error) {
	out := new(SubmitQuoteResponse)
	err := c.cc.Invoke(ctx, "/deqs.v1.DeqsClientAPI/SubmitQuote", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
