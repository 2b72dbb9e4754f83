/*CashState command line client.*/
package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/cashstate/cashstate-go/pkg/api"
	"github.com/cashstate/cashstate-go/pkg/config"
	"github.com/cashstate/cashstate-go/pkg/logger"
	"github.com/cashstate/cashstate-go/pkg/session"
)

// appCtx holds what every command needs.
type appCtx struct {
	ctx    context.Context
	cfg    *config.Config
	sess   *session.Store
	client *api.Client
	log    zerolog.Logger
}

// cli commands / args available
var cli struct {
	Debug bool `help:"Log every request and response."`

	Register registerCmd `cmd:"" help:"Create an account and store the session."`
	Login    loginCmd    `cmd:"" help:"Log in and store the session."`
	Refresh  refreshCmd  `cmd:"" help:"Rotate the stored access token."`
	Logout   logoutCmd   `cmd:"" help:"Clear the stored session."`
	Me       meCmd       `cmd:"" help:"Show the current user's profile."`

	Link     linkCmd     `cmd:"" help:"Manage bank links."`
	Tx       txCmd       `cmd:"" help:"List and categorize transactions."`
	Category categoryCmd `cmd:"" help:"Manage the category taxonomy."`
	Budget   budgetCmd   `cmd:"" help:"Budgets and monthly summaries."`
	Goal     goalCmd     `cmd:"" help:"Savings and debt-payoff goals."`
	Snapshot snapshotCmd `cmd:"" help:"Net-worth and account balance history."`

	Categorize categorizeCmd `cmd:"" help:"Run AI categorization over uncategorized transactions."`
	Export     exportCmd     `cmd:"" help:"Export all transactions to a jsonfile or elasticsearch store."`
}

func main() {
	k := kong.Parse(&cli)

	cfg, err := config.Load()
	k.FatalIfErrorf(err)
	if cli.Debug {
		cfg.Debug = true
	}

	log := logger.New(cfg.Debug)

	var opts []session.Option
	if cfg.SessionKey != "" && cfg.SessionSig != "" {
		opts = append(opts, session.WithEncryption(cfg.SessionKey, cfg.SessionSig))
	}
	sess := session.NewFileStore(cfg.SessionFile, opts...)

	client, err := api.New(cfg, sess, api.WithLogger(log))
	k.FatalIfErrorf(err)

	err = k.Run(&appCtx{
		ctx:    context.Background(),
		cfg:    cfg,
		sess:   sess,
		client: client,
		log:    log,
	})
	k.FatalIfErrorf(err)
}

// dump pretty-prints a result to stdout.
func dump(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
