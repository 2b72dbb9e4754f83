package main

import (
	"fmt"

	"github.com/cashstate/cashstate-go/pkg/api"
)

type snapshotCmd struct {
	Networth snapshotNetWorthCmd `cmd:"" help:"Net worth over time, summed across accounts."`
	Account  snapshotAccountCmd  `cmd:"" help:"One account's balance history."`
	Store    snapshotStoreCmd    `cmd:"" help:"Record today's balances as snapshot rows."`
}

type snapshotNetWorthCmd struct {
	From        string `help:"Start date (YYYY-MM-DD)."`
	To          string `help:"End date (YYYY-MM-DD)."`
	Granularity string `default:"day" help:"Aggregation: day, week, month or year."`
}

func (s *snapshotNetWorthCmd) Run(app *appCtx) error {
	series, err := app.client.NetWorthSnapshots(app.ctx, api.SnapshotParams{
		StartDate:   s.From,
		EndDate:     s.To,
		Granularity: s.Granularity,
	})
	if err != nil {
		return err
	}
	for _, point := range series.Data {
		fmt.Printf("%s  %12.2f\n", point.Date, point.Balance)
	}
	return nil
}

type snapshotAccountCmd struct {
	AccountID   string `arg:"" help:"Account id."`
	From        string `help:"Start date (YYYY-MM-DD)."`
	To          string `help:"End date (YYYY-MM-DD)."`
	Granularity string `default:"day" help:"Aggregation: day, week, month or year."`
}

func (s *snapshotAccountCmd) Run(app *appCtx) error {
	series, err := app.client.AccountSnapshots(app.ctx, s.AccountID, api.SnapshotParams{
		StartDate:   s.From,
		EndDate:     s.To,
		Granularity: s.Granularity,
	})
	if err != nil {
		return err
	}
	for _, point := range series.Data {
		fmt.Printf("%s  %12.2f\n", point.Date, point.Balance)
	}
	return nil
}

type snapshotStoreCmd struct {
	Date string `help:"Date to record (YYYY-MM-DD); defaults to today."`
}

func (s *snapshotStoreCmd) Run(app *appCtx) error {
	return app.client.StoreSnapshots(app.ctx, s.Date)
}
