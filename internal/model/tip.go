package model

import "time"

// TipRequest is a candidate tip reconstructed from URL state on every screen
// transition. It is never persisted; the URL is the only state carrier
// between steps.
type TipRequest struct {
	Amount    string `json:"amount"`
	Token     string `json:"token"`
	Recipient string `json:"recipient"`
	ChainID   int64  `json:"chain_id,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Tip is a confirmed, on-chain tip recorded after the wallet callback.
type Tip struct {
	ID        int64     `json:"id"`
	Recipient string    `json:"recipient"`
	Sender    string    `json:"sender,omitempty"`
	Amount    string    `json:"amount"`
	Token     string    `json:"token"`
	ChainID   int64     `json:"chain_id"`
	TxHash    string    `json:"tx_hash"`
	Message   *string   `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type LeaderboardEntry struct {
	Rank      int    `json:"rank"`
	Recipient string `json:"recipient"`
	Token     string `json:"token"`
	Total     string `json:"total"`
	TipCount  int64  `json:"tip_count"`
}
