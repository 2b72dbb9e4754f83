package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cashstate/cashstate-go/pkg/domain"
)

// SnapshotParams bounds a balance-history query. Empty dates let the
// backend pick its defaults; granularity defaults to day.
type SnapshotParams struct {
	// YYYY-MM-DD bounds, EndDate defaulting to today.
	StartDate string
	EndDate   string
	// "day", "week", "month" or "year".
	Granularity string
}

func (p *SnapshotParams) normalize() (string, error) {
	granularity := p.Granularity
	if granularity == "" {
		granularity = "day"
	}
	if !validGranularity(granularity) {
		return "", fmt.Errorf("granularity must be day, week, month or year")
	}
	return granularity, nil
}

func snapshotWire(p SnapshotParams, granularity string) (url.Values, map[string]any) {
	query := url.Values{}
	query.Set("granularity", granularity)
	args := map[string]any{"granularity": granularity}
	if p.StartDate != "" {
		query.Set("start_date", p.StartDate)
		args["startDate"] = p.StartDate
	}
	if p.EndDate != "" {
		query.Set("end_date", p.EndDate)
		args["endDate"] = p.EndDate
	}
	return query, args
}

// NetWorthSnapshots returns the user's net worth over time, summed
// across all accounts.
func (c *Client) NetWorthSnapshots(ctx context.Context, p SnapshotParams) (*domain.SnapshotSeries, error) {
	granularity, err := p.normalize()
	if err != nil {
		return nil, err
	}
	query, args := snapshotWire(p, granularity)

	out := domain.SnapshotSeries{}
	err = c.call(ctx, &operation{
		fn:   "snapshots:list",
		kind: opQuery,
		args: args,

		method: "GET",
		path:   "/snapshots",
		query:  query,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AccountSnapshots returns one account's balance history.
func (c *Client) AccountSnapshots(ctx context.Context, accountID string, p SnapshotParams) (*domain.SnapshotSeries, error) {
	if err := required("account id", accountID); err != nil {
		return nil, err
	}
	granularity, err := p.normalize()
	if err != nil {
		return nil, err
	}
	query, args := snapshotWire(p, granularity)
	args["accountId"] = accountID

	out := domain.SnapshotSeries{}
	err = c.call(ctx, &operation{
		fn:   "snapshots:listAccount",
		kind: opQuery,
		args: args,

		method: "GET",
		path:   "/snapshots/account/" + url.PathEscape(accountID),
		query:  query,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// StoreSnapshots records today's account balances as snapshot rows.
// The backend does this on a schedule; the call exists for manual
// backfill. date is YYYY-MM-DD, empty meaning today.
func (c *Client) StoreSnapshots(ctx context.Context, date string) error {
	if date != "" && !domain.ValidDate(date) {
		return fmt.Errorf("date must be YYYY-MM-DD, got %q", date)
	}

	query := url.Values{}
	args := map[string]any{}
	if date != "" {
		query.Set("snapshot_date", date)
		args["snapshotDate"] = date
	}

	return c.call(ctx, &operation{
		fn:   "snapshots:store",
		kind: opAction,
		args: args,

		method: "POST",
		path:   "/snapshots/store",
		query:  query,
	}, nil)
}

func validGranularity(g string) bool {
	switch g {
	case "day", "week", "month", "year":
		return true
	}
	return false
}
