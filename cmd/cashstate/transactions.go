package main

import (
	"fmt"

	"github.com/cashstate/cashstate-go/pkg/api"
)

type txCmd struct {
	List       txListCmd       `cmd:"" help:"List transactions."`
	Categorize txCategorizeCmd `cmd:"" help:"Assign a category to one transaction."`
}

type txListCmd struct {
	From   string `help:"Start date (YYYY-MM-DD)."`
	To     string `help:"End date (YYYY-MM-DD)."`
	Limit  int    `default:"50" help:"Page size."`
	Cursor string `help:"Continue from a previous page's cursor."`
	All    bool   `help:"Keep paging until done."`
}

func (t *txListCmd) Run(app *appCtx) error {
	cursor := t.Cursor
	for {
		page, err := app.client.ListTransactions(app.ctx, api.ListTransactionsParams{
			DateFrom: t.From,
			DateTo:   t.To,
			Limit:    t.Limit,
			Cursor:   cursor,
		})
		if err != nil {
			return err
		}

		for _, tx := range page.Items {
			cat := tx.CategoryID
			if cat == "" {
				cat = "-"
			}
			fmt.Printf("%s  %10.2f %s  %-24s %s\n", tx.Date, tx.Amount, tx.Currency, cat, tx.Description)
		}

		if page.IsDone || !t.All {
			if !page.IsDone {
				fmt.Println("next cursor:", page.NextCursor)
			}
			return nil
		}
		cursor = page.NextCursor
	}
}

type txCategorizeCmd struct {
	TransactionID string `arg:"" help:"Transaction id."`
	Category      string `arg:"" help:"Category id."`
	Subcategory   string `help:"Subcategory id."`
	Rule          bool   `help:"Also create a payee rule for future transactions."`
}

func (t *txCategorizeCmd) Run(app *appCtx) error {
	err := app.client.Categorize(app.ctx, api.CategorizeParams{
		TransactionID: t.TransactionID,
		CategoryID:    t.Category,
		SubcategoryID: t.Subcategory,
		CreateRule:    t.Rule,
	})
	if err != nil {
		return err
	}

	tx, err := app.client.GetTransaction(app.ctx, t.TransactionID)
	if err != nil {
		return err
	}
	return dump(tx)
}
