package main

import (
	"fmt"

	"github.com/cashstate/cashstate-go/pkg/api"
)

type goalCmd struct {
	List goalListCmd `cmd:"" help:"List goals with progress."`
	Show goalShowCmd `cmd:"" help:"Show one goal with its balance history."`
}

type goalListCmd struct{}

func (g *goalListCmd) Run(app *appCtx) error {
	goals, err := app.client.ListGoals(app.ctx)
	if err != nil {
		return err
	}
	for _, goal := range goals {
		fmt.Printf("%-28s %-12s %8.2f / %8.2f (%.1f%%)\n",
			goal.Name, goal.Type, goal.CurrentAmount, goal.TargetAmount, goal.ProgressPercent)
	}
	return nil
}

type goalShowCmd struct {
	GoalID      string `arg:"" help:"Goal id."`
	From        string `help:"Start date (YYYY-MM-DD)."`
	Granularity string `default:"day" help:"Snapshot granularity: day, week, month or year."`
}

func (g *goalShowCmd) Run(app *appCtx) error {
	goal, err := app.client.GetGoal(app.ctx, g.GoalID, api.GoalDetailParams{
		StartDate:   g.From,
		Granularity: g.Granularity,
	})
	if err != nil {
		return err
	}
	return dump(goal)
}
