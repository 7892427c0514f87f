// Package mobilecoindv1 is a hand-maintained subset of the mobilecoind
// gRPC API, limited to the messages and calls this client issues.
package mobilecoindv1

import (
	"github.com/gogo/protobuf/proto"
)

// AccountKey carries the key material mobilecoind needs to scan and spend
// for the account it monitors.
type AccountKey struct {
	ViewPrivateKey  []byte `protobuf:"bytes,1,opt,name=view_private_key,json=viewPrivateKey,proto3" json:"view_private_key,omitempty"`
	SpendPrivateKey []byte `protobuf:"bytes,2,opt,name=spend_private_key,json=spendPrivateKey,proto3" json:"spend_private_key,omitempty"`
}

func (m *AccountKey) Reset()         { *m = AccountKey{} }
func (m *AccountKey) String() string { return proto.CompactTextString(m) }
func (*AccountKey) ProtoMessage()    {}

// SpendableOutput is one unspent tx out owned by the monitored account.
type SpendableOutput struct {
	Id         string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TokenId    uint64 `protobuf:"varint,2,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
	Value      uint64 `protobuf:"varint,3,opt,name=value,proto3" json:"value,omitempty"`
	BlockIndex uint64 `protobuf:"varint,4,opt,name=block_index,json=blockIndex,proto3" json:"block_index,omitempty"`
}

func (m *SpendableOutput) Reset()         { *m = SpendableOutput{} }
func (m *SpendableOutput) String() string { return proto.CompactTextString(m) }
func (*SpendableOutput) ProtoMessage()    {}

type GetAccountStatusRequest struct {
	ViewKey *AccountKey `protobuf:"bytes,1,opt,name=view_key,json=viewKey,proto3" json:"view_key,omitempty"`
	Cursor  uint64      `protobuf:"varint,2,opt,name=cursor,proto3" json:"cursor,omitempty"`
}

func (m *GetAccountStatusRequest) Reset()         { *m = GetAccountStatusRequest{} }
func (m *GetAccountStatusRequest) String() string { return proto.CompactTextString(m) }
func (*GetAccountStatusRequest) ProtoMessage()    {}

type GetAccountStatusResponse struct {
	NewOutputs   []*SpendableOutput `protobuf:"bytes,1,rep,name=new_outputs,json=newOutputs,proto3" json:"new_outputs,omitempty"`
	SpentIds     []string           `protobuf:"bytes,2,rep,name=spent_ids,json=spentIds,proto3" json:"spent_ids,omitempty"`
	Cursor       uint64             `protobuf:"varint,3,opt,name=cursor,proto3" json:"cursor,omitempty"`
	LedgerHeight uint64             `protobuf:"varint,4,opt,name=ledger_height,json=ledgerHeight,proto3" json:"ledger_height,omitempty"`
}

func (m *GetAccountStatusResponse) Reset()         { *m = GetAccountStatusResponse{} }
func (m *GetAccountStatusResponse) String() string { return proto.CompactTextString(m) }
func (*GetAccountStatusResponse) ProtoMessage()    {}

type SubmitTransactionRequest struct {
	TxBlob []byte `protobuf:"bytes,1,opt,name=tx_blob,json=txBlob,proto3" json:"tx_blob,omitempty"`
}

func (m *SubmitTransactionRequest) Reset()         { *m = SubmitTransactionRequest{} }
func (m *SubmitTransactionRequest) String() string { return proto.CompactTextString(m) }
func (*SubmitTransactionRequest) ProtoMessage()    {}

type SubmitTransactionResponse struct {
	Accepted bool   `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	Reason   string `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
}

func (m *SubmitTransactionResponse) Reset()         { *m = SubmitTransactionResponse{} }
func (m *SubmitTransactionResponse) String() string { return proto.CompactTextString(m) }
func (*SubmitTransactionResponse) ProtoMessage()    {}

// SwapLeg is the counter-party leg of a two-leg atomic swap derived from a
// quote.
type SwapLeg struct {
	QuoteId        string `protobuf:"bytes,1,opt,name=quote_id,json=quoteId,proto3" json:"quote_id,omitempty"`
	BaseTokenId    uint64 `protobuf:"varint,2,opt,name=base_token_id,json=baseTokenId,proto3" json:"base_token_id,omitempty"`
	BaseValue      uint64 `protobuf:"varint,3,opt,name=base_value,json=baseValue,proto3" json:"base_value,omitempty"`
	CounterTokenId uint64 `protobuf:"varint,4,opt,name=counter_token_id,json=counterTokenId,proto3" json:"counter_token_id,omitempty"`
	CounterValue   uint64 `protobuf:"varint,5,opt,name=counter_value,json=counterValue,proto3" json:"counter_value,omitempty"`
}

func (m *SwapLeg) Reset()         { *m = SwapLeg{} }
func (m *SwapLeg) String() string { return proto.CompactTextString(m) }
func (*SwapLeg) ProtoMessage()    {}

type GenerateSignedTxRequest struct {
	AccountKey       *AccountKey `protobuf:"bytes,1,opt,name=account_key,json=accountKey,proto3" json:"account_key,omitempty"`
	InputIds         []string    `protobuf:"bytes,2,rep,name=input_ids,json=inputIds,proto3" json:"input_ids,omitempty"`
	RecipientAddress string      `protobuf:"bytes,3,opt,name=recipient_address,json=recipientAddress,proto3" json:"recipient_address,omitempty"`
	TokenId          uint64      `protobuf:"varint,4,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
	Value            uint64      `protobuf:"varint,5,opt,name=value,proto3" json:"value,omitempty"`
	Fee              uint64      `protobuf:"varint,6,opt,name=fee,proto3" json:"fee,omitempty"`
	SwapLeg          *SwapLeg    `protobuf:"bytes,7,opt,name=swap_leg,json=swapLeg,proto3" json:"swap_leg,omitempty"`
}

func (m *GenerateSignedTxRequest) Reset()         { *m = GenerateSignedTxRequest{} }
func (m *GenerateSignedTxRequest) String() string { return proto.CompactTextString(m) }
func (*GenerateSignedTxRequest) ProtoMessage()    {}

type GenerateSignedTxResponse struct {
	TxBlob []byte `protobuf:"bytes,1,opt,name=tx_blob,json=txBlob,proto3" json:"tx_blob,omitempty"`
}

func (m *GenerateSignedTxResponse) Reset()         { *m = GenerateSignedTxResponse{} }
func (m *GenerateSignedTxResponse) String() string { return proto.CompactTextString(m) }
func (*GenerateSignedTxResponse) ProtoMessage()    {}
