package transaction

import (
	"time"

	transactionDatamodel "github.com/MGhiremath0281/Apex-Money/internal/core/datamodel/transaction"
	"github.com/MGhiremath0281/Apex-Money/pkg/money"
)

type Transaction struct {
	ID           int64        `json:"id"`
	UserID       int64        `json:"-"`
	CategoryID   int64        `json:"category_id"`
	CategoryName string       `json:"category_name,omitempty"`
	Amount       money.Amount `json:"amount"`
	Kind         string       `json:"kind"`
	Description  *string      `json:"description,omitempty"`
	Date         time.Time    `json:"date"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func FromDataModel(t *transactionDatamodel.Transaction) *Transaction {
	return &Transaction{
		ID:          t.ID,
		UserID:      t.UserID,
		CategoryID:  t.CategoryID,
		Amount:      money.New(t.Amount),
		Kind:        t.Kind,
		Description: t.Description,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func ToDataModel(t *Transaction) *transactionDatamodel.Transaction {
	return &transactionDatamodel.Transaction{
		ID:          t.ID,
		UserID:      t.UserID,
		CategoryID:  t.CategoryID,
		Amount:      t.Amount.Decimal,
		Kind:        t.Kind,
		Description: t.Description,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
