package model

// UnsignedTransaction is the preparer's output: everything a wallet needs to
// sign and broadcast a tip. Value is a base-10 string in the smallest native
// unit to avoid precision loss at 18-decimal scale.
type UnsignedTransaction struct {
	To      string `json:"to"`
	Value   string `json:"value"`
	Data    string `json:"data"`
	ChainID int64  `json:"chain_id"`
}
