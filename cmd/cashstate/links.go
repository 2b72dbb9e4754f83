package main

import (
	"fmt"
	"time"

	"github.com/cashstate/cashstate-go/pkg/api"
)

type linkCmd struct {
	List       linkListCmd       `cmd:"" help:"List bank links."`
	Setup      linkSetupCmd      `cmd:"" help:"Exchange a SimpleFin setup token for a new link."`
	Accounts   linkAccountsCmd   `cmd:"" help:"List accounts under a link."`
	Sync       linkSyncCmd       `cmd:"" help:"Sync a link's accounts and transactions."`
	Disconnect linkDisconnectCmd `cmd:"" help:"Remove a link."`
}

type linkListCmd struct{}

func (l *linkListCmd) Run(app *appCtx) error {
	links, err := app.client.ListLinks(app.ctx)
	if err != nil {
		return err
	}
	return dump(links)
}

type linkSetupCmd struct {
	Token       string `arg:"" help:"SimpleFin setup token."`
	Institution string `help:"Display name for the institution."`
}

func (l *linkSetupCmd) Run(app *appCtx) error {
	link, err := app.client.SetupLink(app.ctx, l.Token, l.Institution)
	if err != nil {
		return err
	}
	fmt.Println("linked:", link.ID)
	return nil
}

type linkAccountsCmd struct {
	LinkID string `arg:"" help:"Link id."`
}

func (l *linkAccountsCmd) Run(app *appCtx) error {
	accounts, err := app.client.ListAccounts(app.ctx, l.LinkID)
	if err != nil {
		return err
	}
	return dump(accounts)
}

type linkSyncCmd struct {
	LinkID string `arg:"" help:"Link id."`
	Days   int    `default:"90" help:"Number of days backward to fetch transactions."`
	Force  bool   `help:"Bypass the sync cooldown."`
}

func (l *linkSyncCmd) Run(app *appCtx) error {
	p := api.SyncParams{LinkID: l.LinkID, Force: l.Force}
	if l.Days > 0 {
		p.StartDate = time.Now().AddDate(0, 0, -l.Days).Unix()
	}

	result, err := app.client.Sync(app.ctx, p)
	if err != nil {
		return err
	}
	fmt.Printf("synced %d accounts: +%d / ~%d transactions\n",
		result.AccountsSynced, result.TransactionsAdded, result.TransactionsUpdated)
	for _, e := range result.Errors {
		fmt.Println("warning:", e)
	}
	return nil
}

type linkDisconnectCmd struct {
	LinkID string `arg:"" help:"Link id."`
}

func (l *linkDisconnectCmd) Run(app *appCtx) error {
	return app.client.Disconnect(app.ctx, l.LinkID)
}
