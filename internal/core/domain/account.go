package domain

import "fmt"

const privateKeySize = 32

// AccountKey holds the key material driving the session: the view private
// key finds outputs belonging to the account, the spend private key
// authorizes spending them. It is immutable for the session lifetime and
// must never be logged or serialized; String and GoString redact it.
type AccountKey struct {
	viewPrivateKey  []byte
	spendPrivateKey []byte
	publicAddress   PublicAddress
}

// NewAccountKey validates the given key material and returns an AccountKey.
func NewAccountKey(
	viewPrivateKey, spendPrivateKey []byte, publicAddress PublicAddress,
) (*AccountKey, error) {
	if len(viewPrivateKey) != privateKeySize ||
		len(spendPrivateKey) != privateKeySize {
		return nil, ErrInvalidAccountKey
	}
	if err := publicAddress.Validate(); err != nil {
		return nil, err
	}
	view := make([]byte, privateKeySize)
	copy(view, viewPrivateKey)
	spend := make([]byte, privateKeySize)
	copy(spend, spendPrivateKey)
	return &AccountKey{
		viewPrivateKey:  view,
		spendPrivateKey: spend,
		publicAddress:   publicAddress,
	}, nil
}

// ViewPrivateKey returns a copy of the view private key bytes.
func (k *AccountKey) ViewPrivateKey() []byte {
	buf := make([]byte, privateKeySize)
	copy(buf, k.viewPrivateKey)
	return buf
}

// SpendPrivateKey returns a copy of the spend private key bytes.
func (k *AccountKey) SpendPrivateKey() []byte {
	buf := make([]byte, privateKeySize)
	copy(buf, k.spendPrivateKey)
	return buf
}

// PublicAddress returns the account's b58 public address.
func (k *AccountKey) PublicAddress() PublicAddress {
	return k.publicAddress
}

func (k *AccountKey) String() string {
	addr := string(k.publicAddress)
	if len(addr) > 16 {
		addr = addr[:8] + "..." + addr[len(addr)-8:]
	}
	return fmt.Sprintf("AccountKey(%s)", addr)
}

func (k *AccountKey) GoString() string {
	return k.String()
}
