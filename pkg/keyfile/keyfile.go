// Package keyfile loads the JSON-formatted account key-file given at
// process start. A malformed key-file is fatal: the session cannot start
// without valid key material.
package keyfile

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/domain"
)

type keyFile struct {
	ViewPrivateKey  string `json:"view_private_key"`
	SpendPrivateKey string `json:"spend_private_key"`
	PublicAddress   string `json:"public_address"`
}

// ReadFile parses the key-file at the given path into an AccountKey.
func ReadFile(path string) (*domain.AccountKey, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading key-file: %w", err)
	}
	return parse(buf)
}

func parse(buf []byte) (*domain.AccountKey, error) {
	kf := &keyFile{}
	if err := json.Unmarshal(buf, kf); err != nil {
		return nil, fmt.Errorf("parsing key-file: %w", err)
	}

	viewKey, err := hex.DecodeString(kf.ViewPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: bad view key encoding", domain.ErrInvalidAccountKey)
	}
	spendKey, err := hex.DecodeString(kf.SpendPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: bad spend key encoding", domain.ErrInvalidAccountKey)
	}

	return domain.NewAccountKey(
		viewKey, spendKey, domain.PublicAddress(kf.PublicAddress),
	)
}
