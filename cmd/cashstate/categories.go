package main

type categoryCmd struct {
	Tree  categoryTreeCmd `cmd:"" help:"Show categories with subcategories."`
	Seed  categorySeedCmd `cmd:"" help:"Seed the default taxonomy and budgets."`
	Rules ruleListCmd     `cmd:"" help:"List categorization rules."`
}

type categoryTreeCmd struct{}

func (c *categoryTreeCmd) Run(app *appCtx) error {
	tree, err := app.client.CategoryTree(app.ctx)
	if err != nil {
		return err
	}
	return dump(tree)
}

type categorySeedCmd struct {
	MonthlyBudget float64  `arg:"" help:"Total monthly budget to spread across the defaults."`
	Accounts      []string `help:"Account ids to track; empty means all."`
}

func (c *categorySeedCmd) Run(app *appCtx) error {
	result, err := app.client.SeedDefaults(app.ctx, c.MonthlyBudget, c.Accounts)
	if err != nil {
		return err
	}
	return dump(result)
}

type ruleListCmd struct{}

func (r *ruleListCmd) Run(app *appCtx) error {
	rules, err := app.client.ListRules(app.ctx)
	if err != nil {
		return err
	}
	return dump(rules)
}
