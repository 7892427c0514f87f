package mobilecoindv1

import (
	"context"

	"google.golang.org/grpc"
)

// MobilecoindAPIClient is the client API for the MobilecoindAPI service.
type MobilecoindAPIClient interface {
	GetAccountStatus(
		ctx context.Context, in *GetAccountStatusRequest, opts ...grpc.CallOption,
	) (*GetAccountStatusResponse, error)
	SubmitTransaction(
		ctx context.Context, in *SubmitTransactionRequest, opts ...grpc.CallOption,
	) (*SubmitTransactionResponse, error)
	GenerateSignedTx(
		ctx context.Context, in *GenerateSignedTxRequest, opts ...grpc.CallOption,
	) (*GenerateSignedTxResponse, error)
}

type mobilecoindAPIClient struct {
	cc grpc.ClientConnInterface
}

// NewMobilecoindAPIClient returns a MobilecoindAPIClient bound to the
// given connection.
func NewMobilecoindAPIClient(cc grpc.ClientConnInterface) MobilecoindAPIClient {
	return &mobilecoindAPIClient{cc}
}

func (c *mobilecoindAPIClient) GetAccountStatus(
	ctx context.Context, in *GetAccountStatusRequest, opts ...grpc.CallOption,
) (*GetAccountStatusResponse, error) {
	out := new(GetAccountStatusResponse)
	err := c.cc.Invoke(
		ctx, "/mobilecoind.v1.MobilecoindAPI/GetAccountStatus", in, out, opts...,
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mobilecoindAPIClient) SubmitTransaction(
	ctx context.Context, in *SubmitTransactionRequest, opts ...grpc.CallOption,
) (*SubmitTransactionResponse, error) {
	out := new(SubmitTransactionResponse)
	err := c.cc.Invoke(
		ctx, "/mobilecoind.v1.MobilecoindAPI/SubmitTransaction", in, out, opts...,
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mobilecoindAPIClient) GenerateSignedTx(
	ctx context.Context, in *GenerateSignedTxRequest, opts ...grpc.CallOption,
) (*GenerateSignedTxResponse, error) {
	out := new(GenerateSignedTxResponse)
	err := c.cc.Invoke(
		ctx, "/mobilecoind.v1.MobilecoindAPI/GenerateSignedTx", in, out, opts...,
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}
