package domain

import (
	"bytes"
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcutil/base58"
)

const addressChecksumSize = 4

// PublicAddress is the b58-encoded public address of a MobileCoin account.
type PublicAddress string

// EncodePublicAddress wraps the given address payload with its 4-byte
// sha256 checksum prefix and encodes the whole in base58.
func EncodePublicAddress(payload []byte) PublicAddress {
	sum := sha256.Sum256(payload)
	buf := make([]byte, 0, addressChecksumSize+len(payload))
	buf = append(buf, sum[:addressChecksumSize]...)
	buf = append(buf, payload...)
	return PublicAddress(base58.Encode(buf))
}

// DecodePublicAddress decodes a b58 address and verifies its checksum,
// returning the wrapped payload.
func DecodePublicAddress(addr PublicAddress) ([]byte, error) {
	raw := base58.Decode(string(addr))
	if len(raw) <= addressChecksumSize {
		return nil, ErrInvalidAddress
	}
	payload := raw[addressChecksumSize:]
	sum := sha256.Sum256(payload)
	if !bytes.Equal(raw[:addressChecksumSize], sum[:addressChecksumSize]) {
		return nil, ErrInvalidAddress
	}
	return payload, nil
}

// Validate returns whether the address is well formed.
func (a PublicAddress) Validate() error {
	_, err := DecodePublicAddress(a)
	return err
}
