package main

import (
	"fmt"
	"time"
)

type budgetCmd struct {
	List    budgetListCmd    `cmd:"" help:"List budgets."`
	Summary budgetSummaryCmd `cmd:"" help:"Show a month's budget summary."`
}

type budgetListCmd struct{}

func (b *budgetListCmd) Run(app *appCtx) error {
	budgets, err := app.client.ListBudgets(app.ctx)
	if err != nil {
		return err
	}
	return dump(budgets)
}

type budgetSummaryCmd struct {
	Month string `help:"Month as YYYY-MM; defaults to the current month."`
}

func (b *budgetSummaryCmd) Run(app *appCtx) error {
	month := b.Month
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	summary, err := app.client.BudgetSummary(app.ctx, month)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", summary.Month, summary.BudgetName)
	fmt.Printf("budgeted %.2f, spent %.2f\n", summary.TotalBudgeted, summary.TotalSpent)
	for _, li := range summary.LineItems {
		fmt.Printf("  %-24s %8.2f / %8.2f (%.2f left)\n", li.CategoryID, li.Spent, li.Amount, li.Remaining)
	}
	for _, u := range summary.Unbudgeted {
		fmt.Printf("  %-24s %8.2f (unbudgeted)\n", u.CategoryID, u.Spent)
	}
	if summary.UncategorizedSpending != 0 {
		fmt.Printf("  uncategorized: %.2f\n", summary.UncategorizedSpending)
	}
	return nil
}
