package dto

import (
	"tipcast.app/frames/internal/model"
)

type RecordTipRequest struct {
	TxHash    string  `json:"tx_hash" binding:"required"`
	Recipient string  `json:"recipient" binding:"required"`
	Sender    string  `json:"sender"`
	Amount    string  `json:"amount" binding:"required"`
	Token     string  `json:"token" binding:"required"`
	ChainID   int64   `json:"chain_id" binding:"required"`
	Message   *string `json:"message,omitempty"`
}

type TipResponse struct {
	ID         int64   `json:"id"`
	Recipient  string  `json:"recipient"`
	Amount     string  `json:"amount"`
	Token      string  `json:"token"`
	ChainID    int64   `json:"chain_id"`
	TxHash     string  `json:"tx_hash"`
	Message    *string `json:"message,omitempty"`
	Duplicated bool    `json:"duplicated"`
}

func ToTipResponse(tip *model.Tip, duplicated bool) TipResponse {
	return TipResponse{
		ID:         tip.ID,
		Recipient:  tip.Recipient,
		Amount:     tip.Amount,
		Token:      tip.Token,
		ChainID:    tip.ChainID,
		TxHash:     tip.TxHash,
		Message:    tip.Message,
		Duplicated: duplicated,
	}
}

type LeaderboardResponse struct {
	Token   string                   `json:"token"`
	Period  string                   `json:"period"`
	Entries []model.LeaderboardEntry `json:"entries"`
}
