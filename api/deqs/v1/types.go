// Package deqsv1 is a hand-maintained subset of the DEQS (decentralized
// quote exchange service) gRPC API, limited to the messages and calls this
// client issues.
package deqsv1

import (
	"github.com/gogo/protobuf/proto"
)

// Pair identifies a trading pair: takers receive the base token and pay
// the counter token.
type Pair struct {
	BaseTokenId    uint64 `protobuf:"varint,1,opt,name=base_token_id,json=baseTokenId,proto3" json:"base_token_id,omitempty"`
	CounterTokenId uint64 `protobuf:"varint,2,opt,name=counter_token_id,json=counterTokenId,proto3" json:"counter_token_id,omitempty"`
}

func (m *Pair) Reset()         { *m = Pair{} }
func (m *Pair) String() string { return proto.CompactTextString(m) }
func (*Pair) ProtoMessage()    {}

// Quote is a live offer in the quote book.
type Quote struct {
	Id              string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Pair            *Pair  `protobuf:"bytes,2,opt,name=pair,proto3" json:"pair,omitempty"`
	BaseVolume      uint64 `protobuf:"varint,3,opt,name=base_volume,json=baseVolume,proto3" json:"base_volume,omitempty"`
	CounterVolume   uint64 `protobuf:"varint,4,opt,name=counter_volume,json=counterVolume,proto3" json:"counter_volume,omitempty"`
	ExpiryTimestamp int64  `protobuf:"varint,5,opt,name=expiry_timestamp,json=expiryTimestamp,proto3" json:"expiry_timestamp,omitempty"`
}

func (m *Quote) Reset()         { *m = Quote{} }
func (m *Quote) String() string { return proto.CompactTextString(m) }
func (*Quote) ProtoMessage()    {}

type GetQuotesRequest struct {
	Pair *Pair `protobuf:"bytes,1,opt,name=pair,proto3" json:"pair,omitempty"`
}

func (m *GetQuotesRequest) Reset()         { *m = GetQuotesRequest{} }
func (m *GetQuotesRequest) String() string { return proto.CompactTextString(m) }
func (*GetQuotesRequest) ProtoMessage()    {}

type GetQuotesResponse struct {
	Quotes []*Quote `protobuf:"bytes,1,rep,name=quotes,proto3" json:"quotes,omitempty"`
}

func (m *GetQuotesResponse) Reset()         { *m = GetQuotesResponse{} }
func (m *GetQuotesResponse) String() string { return proto.CompactTextString(m) }
func (*GetQuotesResponse) ProtoMessage()    {}

type SubmitQuoteRequest struct {
	OfferedTokenId uint64 `protobuf:"varint,1,opt,name=offered_token_id,json=offeredTokenId,proto3" json:"offered_token_id,omitempty"`
	OfferedValue   uint64 `protobuf:"varint,2,opt,name=offered_value,json=offeredValue,proto3" json:"offered_value,omitempty"`
	WantedTokenId  uint64 `protobuf:"varint,3,opt,name=wanted_token_id,json=wantedTokenId,proto3" json:"wanted_token_id,omitempty"`
	WantedValue    uint64 `protobuf:"varint,4,opt,name=wanted_value,json=wantedValue,proto3" json:"wanted_value,omitempty"`
}

func (m *SubmitQuoteRequest) Reset()         { *m = SubmitQuoteRequest{} }
func (m *SubmitQuoteRequest) String() string { return proto.CompactTextString(m) }
func (*SubmitQuoteRequest) ProtoMessage()    {}

type SubmitQuoteResponse struct {
	QuoteId string `protobuf:"bytes,1,opt,name=quote_id,json=quoteId,proto3" json:"quote_id,omitempty"`
}

func (m *SubmitQuoteResponse) Reset()         { *m = SubmitQuoteResponse{} }
func (m *SubmitQuoteResponse) String() string { return proto.CompactTextString(m) }
func (*SubmitQuoteResponse) ProtoMessage()    {}
