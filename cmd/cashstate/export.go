package main

import (
	"fmt"

	"github.com/cashstate/cashstate-go/pkg/api"
	"github.com/cashstate/cashstate-go/pkg/domain"
	"github.com/cashstate/cashstate-go/pkg/store"
)

type categorizeCmd struct {
	Force bool `help:"Re-categorize transactions that already have a category."`
	Wait  bool `help:"Block until the job finishes."`
}

func (c *categorizeCmd) Run(app *appCtx) error {
	job, err := app.client.StartCategorization(app.ctx, nil, c.Force)
	if err != nil {
		return err
	}
	fmt.Println("started job", job.ID)

	if !c.Wait {
		return nil
	}

	job, err = app.client.WaitForCategorization(app.ctx, job.ID)
	if err != nil {
		return err
	}
	if job.Status == domain.JobFailed {
		return fmt.Errorf("categorization failed: %s", job.Error)
	}
	fmt.Printf("categorized %d transactions (%d failed)\n", job.CategorizedCount, job.FailedCount)
	return nil
}

type exportCmd struct {
	Out  string `help:"Where to write [jsonfile:/path/file.json es8:http://myelasticsearch:9200]. Defaults to CASHSTATE_EXPORT."`
	From string `help:"Start date (YYYY-MM-DD)."`
	To   string `help:"End date (YYYY-MM-DD)."`
}

func (e *exportCmd) Run(app *appCtx) error {
	out := e.Out
	if out == "" {
		out = app.cfg.ExportTarget
	}
	storage, err := store.FromAddress(out)
	if err != nil {
		return err
	}

	var txns []*domain.Transaction
	cursor := ""
	for {
		page, err := app.client.ListTransactions(app.ctx, api.ListTransactionsParams{
			DateFrom: e.From,
			DateTo:   e.To,
			Limit:    200,
			Cursor:   cursor,
		})
		if err != nil {
			return err
		}
		for i := range page.Items {
			txns = append(txns, &page.Items[i])
		}
		if page.IsDone {
			break
		}
		cursor = page.NextCursor
	}

	app.log.Info().Int("count", len(txns)).Str("out", out).Msg("exporting transactions")
	return storage.Write(txns)
}
