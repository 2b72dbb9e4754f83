package domain

import (
	"fmt"
	"time"
)

// Budget is a named spending plan. Line items hang off it, and it may be
// assigned to specific calendar months.
type Budget struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
	Emoji     string `json:"emoji"`
	Color     string `json:"color"`
}

func (b *Budget) Validate() error {
	if b.ID == "" || b.Name == "" {
		return fmt.Errorf("budget missing id or name")
	}
	return nil
}

// LineItem is one (category, optional subcategory, amount) allocation
// within a budget.
type LineItem struct {
	ID            string  `json:"id"`
	BudgetID      string  `json:"budget_id"`
	CategoryID    string  `json:"category_id"`
	SubcategoryID string  `json:"subcategory_id"`
	Amount        float64 `json:"amount"`
}

func (l *LineItem) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("line item missing id")
	}
	return nil
}

// BudgetMonth assigns a budget to one calendar month ("YYYY-MM").
type BudgetMonth struct {
	ID       string `json:"id"`
	BudgetID string `json:"budget_id"`
	Month    string `json:"month"`
}

func (m *BudgetMonth) Validate() error {
	if m.ID == "" || m.Month == "" {
		return fmt.Errorf("budget month missing id or month")
	}
	return nil
}

// BudgetAccount links an account's spending to a budget.
type BudgetAccount struct {
	BudgetID    string  `json:"budget_id"`
	AccountID   string  `json:"account_id"`
	AccountName string  `json:"account_name"`
	Balance     float64 `json:"balance"`
}

// SummaryLine is a budget line item with actuals for the month.
type SummaryLine struct {
	ID            string  `json:"id"`
	BudgetID      string  `json:"budget_id"`
	CategoryID    string  `json:"category_id"`
	SubcategoryID string  `json:"subcategory_id"`
	Amount        float64 `json:"amount"`
	Spent         float64 `json:"spent"`
	Remaining     float64 `json:"remaining"`
}

func (l *SummaryLine) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("summary line missing id")
	}
	return nil
}

// UnbudgetedCategory is a category with recorded spending but no line
// item in the month's budget.
type UnbudgetedCategory struct {
	CategoryID string  `json:"category_id"`
	Spent      float64 `json:"spent"`
}

// BudgetSummary is the backend-computed roll-up for one month. Read only
// from the client's perspective.
type BudgetSummary struct {
	BudgetID   string `json:"budget_id"`
	BudgetName string `json:"budget_name"`
	Month      string `json:"month"`

	TotalBudgeted float64 `json:"total_budgeted"`
	TotalSpent    float64 `json:"total_spent"`

	LineItems  []SummaryLine        `json:"line_items"`
	Unbudgeted []UnbudgetedCategory `json:"unbudgeted_categories"`

	// subcategory id -> amount spent
	SubcategorySpending map[string]float64 `json:"subcategory_spending"`

	UncategorizedSpending float64 `json:"uncategorized_spending"`
}

func (s *BudgetSummary) Validate() error {
	if s.BudgetID == "" || s.Month == "" {
		return fmt.Errorf("budget summary missing budget id or month")
	}
	return nil
}

// ValidMonth reports whether s is a YYYY-MM month string.
func ValidMonth(s string) bool {
	_, err := time.Parse("2006-01", s)
	return err == nil
}

// ValidDate reports whether s is a YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
