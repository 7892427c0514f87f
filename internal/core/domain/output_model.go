package domain

// OutputID is the unique identifier of a transaction output, derived from
// the hex encoding of its cryptographic commitment.
type OutputID string

// SpendableOutput is one unspent transaction output the account can spend.
// Immutable once created.
type SpendableOutput struct {
	ID         OutputID
	Token      TokenID
	Value      uint64
	BlockIndex uint64
}

// OutputIDs returns the identifiers of the given outputs, in order.
func OutputIDs(outputs []SpendableOutput) []OutputID {
	ids := make([]OutputID, len(outputs))
	for i, out := range outputs {
		ids[i] = out.ID
	}
	return ids
}
