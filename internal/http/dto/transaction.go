package dto

import (
	"fmt"

	"tipcast.app/frames/internal/model"
)

// TransactionParams is the wallet-facing payload of a prepared transaction.
type TransactionParams struct {
	To    string `json:"to"`
	Value string `json:"value"`
	Data  string `json:"data"`
}

// TransactionResponse is the tx-button response: the chain in CAIP-2 form,
// the wallet method, and the encoded call.
type TransactionResponse struct {
	ChainID string            `json:"chainId"`
	Method  string            `json:"method"`
	Params  TransactionParams `json:"params"`
}

// PrepareTipResponse pairs the rendered document with the transaction, when
// one was prepared. A rejection carries only the error document.
type PrepareTipResponse struct {
	Frame       *model.FrameDocument `json:"frame"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

func ToTransactionResponse(tx *model.UnsignedTransaction) *TransactionResponse {
	return &TransactionResponse{
		ChainID: fmt.Sprintf("eip155:%d", tx.ChainID),
		Method:  "eth_sendTransaction",
		Params: TransactionParams{
			To:    tx.To,
			Value: tx.Value,
			Data:  tx.Data,
		},
	}
}
