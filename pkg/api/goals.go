package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cashstate/cashstate-go/pkg/domain"
)

// GoalAccountParams links one account to a goal being created or
// updated. AllocationPercentage only applies to savings goals; debt
// goals are always 100%.
type GoalAccountParams struct {
	AccountID            string  `json:"simplefin_account_id"`
	AllocationPercentage float64 `json:"allocation_percentage"`
}

// GoalParams creates a goal.
type GoalParams struct {
	Name         string
	Description  string
	Type         domain.GoalType
	TargetAmount float64
	// YYYY-MM-DD, empty for open-ended.
	TargetDate string
	Accounts   []GoalAccountParams
}

// validate is the client-side UX guard. The backend re-checks account
// polarity and allocation caps on write.
func (p *GoalParams) validate() error {
	if err := required("goal name", p.Name); err != nil {
		return err
	}
	if p.Type != domain.GoalSavings && p.Type != domain.GoalDebtPayment {
		return fmt.Errorf("goal type must be %s or %s", domain.GoalSavings, domain.GoalDebtPayment)
	}
	if p.TargetAmount <= 0 {
		return fmt.Errorf("target amount must be positive")
	}
	if p.TargetDate != "" && !domain.ValidDate(p.TargetDate) {
		return fmt.Errorf("target date must be YYYY-MM-DD, got %q", p.TargetDate)
	}
	if len(p.Accounts) == 0 {
		return fmt.Errorf("at least one account is required")
	}
	for _, a := range p.Accounts {
		if a.AccountID == "" {
			return fmt.Errorf("account id is required")
		}
		if p.Type == domain.GoalSavings && (a.AllocationPercentage <= 0 || a.AllocationPercentage > 100) {
			return fmt.Errorf("allocation percentage must be in (0, 100], got %v", a.AllocationPercentage)
		}
	}
	return nil
}

func goalAccountsWire(accounts []GoalAccountParams, rpc bool) []map[string]any {
	out := make([]map[string]any, 0, len(accounts))
	for _, a := range accounts {
		if rpc {
			out = append(out, map[string]any{
				"accountId":            a.AccountID,
				"allocationPercentage": a.AllocationPercentage,
			})
		} else {
			out = append(out, map[string]any{
				"simplefin_account_id":  a.AccountID,
				"allocation_percentage": a.AllocationPercentage,
			})
		}
	}
	return out
}

// ListGoals returns all goals with current progress.
func (c *Client) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	out := listReply[domain.Goal]{}
	err := c.call(ctx, &operation{
		fn:   "goals:list",
		kind: opQuery,

		method: "GET",
		path:   "/goals",
	}, &out)
	return out.Items, err
}

// CreateGoal creates a savings or debt-payoff goal with its linked
// accounts.
func (c *Client) CreateGoal(ctx context.Context, p GoalParams) (*domain.Goal, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	out := domain.Goal{}
	err := c.call(ctx, &operation{
		fn:   "goals:create",
		kind: opMutation,
		args: map[string]any{
			"name": p.Name, "description": p.Description,
			"goalType": string(p.Type), "targetAmount": p.TargetAmount,
			"targetDate": p.TargetDate,
			"accounts":   goalAccountsWire(p.Accounts, true),
		},

		method: "POST",
		path:   "/goals",
		body: map[string]any{
			"name": p.Name, "description": p.Description,
			"goal_type": string(p.Type), "target_amount": p.TargetAmount,
			"target_date": p.TargetDate,
			"accounts":    goalAccountsWire(p.Accounts, false),
		},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GoalDetailParams bounds the snapshot series returned with a goal.
type GoalDetailParams struct {
	// YYYY-MM-DD; empty defaults are chosen by the backend
	// (one month back through today).
	StartDate string
	EndDate   string
	// "day", "week", "month" or "year"; empty means day.
	Granularity string
}

// GetGoal fetches one goal with its balance time series for charting.
func (c *Client) GetGoal(ctx context.Context, goalID string, p GoalDetailParams) (*domain.GoalDetail, error) {
	if err := required("goal id", goalID); err != nil {
		return nil, err
	}
	granularity := p.Granularity
	if granularity == "" {
		granularity = "day"
	}
	if !validGranularity(granularity) {
		return nil, fmt.Errorf("granularity must be day, week, month or year")
	}

	query := url.Values{}
	query.Set("granularity", granularity)
	args := map[string]any{"goalId": goalID, "granularity": granularity}
	if p.StartDate != "" {
		query.Set("start_date", p.StartDate)
		args["startDate"] = p.StartDate
	}
	if p.EndDate != "" {
		query.Set("end_date", p.EndDate)
		args["endDate"] = p.EndDate
	}

	out := domain.GoalDetail{}
	err := c.call(ctx, &operation{
		fn:   "goals:get",
		kind: opQuery,
		args: args,

		method: "GET",
		path:   "/goals/" + url.PathEscape(goalID),
		query:  query,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GoalUpdateParams changes a goal. Nil fields are left untouched;
// Accounts non-nil replaces the full allocation set.
type GoalUpdateParams struct {
	Name         *string
	Description  *string
	TargetAmount *float64
	TargetDate   *string
	IsCompleted  *bool
	Accounts     []GoalAccountParams
}

func (c *Client) UpdateGoal(ctx context.Context, goalID string, p GoalUpdateParams) (*domain.Goal, error) {
	if err := required("goal id", goalID); err != nil {
		return nil, err
	}
	if p.TargetAmount != nil && *p.TargetAmount <= 0 {
		return nil, fmt.Errorf("target amount must be positive")
	}

	args := map[string]any{"goalId": goalID}
	body := map[string]any{}
	if p.Name != nil {
		args["name"] = *p.Name
		body["name"] = *p.Name
	}
	if p.Description != nil {
		args["description"] = *p.Description
		body["description"] = *p.Description
	}
	if p.TargetAmount != nil {
		args["targetAmount"] = *p.TargetAmount
		body["target_amount"] = *p.TargetAmount
	}
	if p.TargetDate != nil {
		args["targetDate"] = *p.TargetDate
		body["target_date"] = *p.TargetDate
	}
	if p.IsCompleted != nil {
		args["isCompleted"] = *p.IsCompleted
		body["is_completed"] = *p.IsCompleted
	}
	if p.Accounts != nil {
		args["accounts"] = goalAccountsWire(p.Accounts, true)
		body["accounts"] = goalAccountsWire(p.Accounts, false)
	}

	out := domain.Goal{}
	err := c.call(ctx, &operation{
		fn:   "goals:update",
		kind: opMutation,
		args: args,

		method: "PUT",
		path:   "/goals/" + url.PathEscape(goalID),
		body:   body,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteGoal(ctx context.Context, goalID string) error {
	if err := required("goal id", goalID); err != nil {
		return err
	}

	return c.call(ctx, &operation{
		fn:   "goals:remove",
		kind: opMutation,
		args: map[string]any{"goalId": goalID},

		method: "DELETE",
		path:   "/goals/" + url.PathEscape(goalID),
	}, nil)
}
