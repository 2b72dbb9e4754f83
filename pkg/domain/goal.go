package domain

import (
	"fmt"
	"math"
)

type GoalType string

const (
	GoalSavings     GoalType = "savings"
	GoalDebtPayment GoalType = "debt_payment"
)

// GoalAccount links a bank account to a goal. Savings goals attribute a
// slice of the balance via AllocationPercentage; debt goals are always
// 100% and remember the balance at goal creation.
type GoalAccount struct {
	ID          string `json:"id"`
	AccountID   string `json:"simplefin_account_id"`
	AccountName string `json:"account_name"`

	AllocationPercentage float64 `json:"allocation_percentage"`
	CurrentBalance       float64 `json:"current_balance"`

	// Set for debt goals only. Negative, like the balances themselves.
	StartingBalance float64 `json:"starting_balance"`
}

// Goal is a savings or debt-payoff target.
type Goal struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        GoalType `json:"goal_type"`

	TargetAmount float64 `json:"target_amount"`
	// YYYY-MM-DD, empty when open-ended.
	TargetDate  string `json:"target_date"`
	IsCompleted bool   `json:"is_completed"`

	CurrentAmount   float64 `json:"current_amount"`
	ProgressPercent float64 `json:"progress_percent"`

	Accounts []GoalAccount `json:"accounts"`
}

func (g *Goal) Validate() error {
	if g.ID == "" || g.Name == "" {
		return fmt.Errorf("goal missing id or name")
	}
	return nil
}

// Snapshot is one point in a goal's balance time series.
type Snapshot struct {
	Date    string  `json:"date"`
	Balance float64 `json:"balance"`
}

func (s *Snapshot) Validate() error {
	if s.Date == "" {
		return fmt.Errorf("snapshot missing date")
	}
	return nil
}

// GoalDetail carries the balance history used for charting.
type GoalDetail struct {
	Goal
	ProgressData []Snapshot `json:"progress_data"`
}

// CurrentBalance sums the live balances of all linked accounts.
func (g *Goal) CurrentBalance() float64 {
	var total float64
	for _, a := range g.Accounts {
		total += a.CurrentBalance
	}
	return total
}

// StartingTotal sums the recorded starting balances of all linked
// accounts. Only meaningful for debt goals.
func (g *Goal) StartingTotal() float64 {
	var total float64
	for _, a := range g.Accounts {
		total += a.StartingBalance
	}
	return total
}

// TargetBalance is the account balance the goal aims for. For a debt goal
// paying off targetAmount of debt from a (negative) starting total, that
// is startingTotal + targetAmount. For savings it is the target itself.
func (g *Goal) TargetBalance() float64 {
	if g.Type == GoalDebtPayment {
		return g.StartingTotal() + g.TargetAmount
	}
	return g.TargetAmount
}

// AllocationAvailable returns the allocation percentage of accountID not
// yet consumed by the given goals. Used as a UX guard before creating or
// editing a savings goal; the backend re-checks on write.
func AllocationAvailable(goals []Goal, accountID string) float64 {
	used := 0.0
	for _, g := range goals {
		if g.Type != GoalSavings {
			continue
		}
		for _, a := range g.Accounts {
			if a.AccountID == accountID {
				used += a.AllocationPercentage
			}
		}
	}
	return math.Max(0, 100-used)
}
