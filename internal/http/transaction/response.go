package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/mfreitas/contas/internal/transaction"
)

type transactionResponse struct {
	ID          uuid.UUID        `json:"id"`
	Description string           `json:"description"`
	Amount      int64            `json:"amount"`
	Kind        transaction.Kind `json:"kind"`
	PersonID    uuid.UUID        `json:"person_id"`
	CategoryID  uuid.UUID        `json:"category_id"`
	CreatedAt   time.Time        `json:"created_at"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Description: tx.Description,
		Amount:      tx.Amount,
		Kind:        tx.Kind,
		PersonID:    tx.PersonID,
		CategoryID:  tx.CategoryID,
		CreatedAt:   tx.CreatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
