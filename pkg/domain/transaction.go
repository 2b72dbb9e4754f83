package domain

import (
	"encoding/json"
	"fmt"
)

// Transaction is a posted or pending monetary event. Amounts are signed,
// negative meaning money out. Category assignment is the only field the
// client ever changes.
type Transaction struct {
	ID          string `json:"id"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`

	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`

	// Calendar date as YYYY-MM-DD.
	Date string `json:"date"`
	// Unix times the transaction posted / occurred.
	Posted       int64 `json:"posted"`
	TransactedAt int64 `json:"transacted_at"`

	Description string `json:"description"`
	Payee       string `json:"payee"`
	Memo        string `json:"memo"`

	Pending bool `json:"pending"`

	CategoryID    string `json:"category_id"`
	SubcategoryID string `json:"subcategory_id"`
}

// Outflow reports whether this is money leaving the account.
func (t *Transaction) Outflow() bool {
	return t.Amount < 0
}

// Categorized reports whether a category has been assigned.
func (t *Transaction) Categorized() bool {
	return t.CategoryID != ""
}

func (t *Transaction) JSON() ([]byte, error) {
	return json.Marshal(t)
}

// Validate reports whether a backend reply carried the fields the
// client cannot work without.
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transaction missing id")
	}
	return nil
}

// BatchResult reports the outcome of a batch categorization call.
type BatchResult struct {
	UpdatedCount int      `json:"updated_count"`
	FailedCount  int      `json:"failed_count"`
	FailedIDs    []string `json:"failed_ids"`
}
