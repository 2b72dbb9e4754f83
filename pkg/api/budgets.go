package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cashstate/cashstate-go/pkg/domain"
)

// BudgetSummary returns the backend-computed roll-up for one month
// ("YYYY-MM").
func (c *Client) BudgetSummary(ctx context.Context, month string) (*domain.BudgetSummary, error) {
	if !domain.ValidMonth(month) {
		return nil, fmt.Errorf("month must be YYYY-MM, got %q", month)
	}

	query := url.Values{}
	query.Set("month", month)

	out := domain.BudgetSummary{}
	err := c.call(ctx, &operation{
		fn:   "budgets:summary",
		kind: opQuery,
		args: map[string]any{"month": month},

		method: "GET",
		path:   "/budgets/summary",
		query:  query,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListBudgets returns all the user's budgets.
func (c *Client) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	out := listReply[domain.Budget]{}
	err := c.call(ctx, &operation{
		fn:   "budgets:list",
		kind: opQuery,

		method: "GET",
		path:   "/budgets",
	}, &out)
	return out.Items, err
}

// BudgetParams creates or updates a budget.
type BudgetParams struct {
	Name      string
	IsDefault bool
	Emoji     string
	Color     string
	// Accounts to link at creation time.
	AccountIDs []string
}

func (c *Client) CreateBudget(ctx context.Context, p BudgetParams) (*domain.Budget, error) {
	if err := required("budget name", p.Name); err != nil {
		return nil, err
	}
	if p.AccountIDs == nil {
		p.AccountIDs = []string{}
	}

	out := domain.Budget{}
	err := c.call(ctx, &operation{
		fn:   "budgets:create",
		kind: opMutation,
		args: map[string]any{
			"name": p.Name, "isDefault": p.IsDefault,
			"emoji": p.Emoji, "color": p.Color, "accountIds": p.AccountIDs,
		},

		method: "POST",
		path:   "/budgets",
		body: map[string]any{
			"name": p.Name, "is_default": p.IsDefault,
			"emoji": p.Emoji, "color": p.Color, "account_ids": p.AccountIDs,
		},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBudget(ctx context.Context, budgetID string, p BudgetParams) (*domain.Budget, error) {
	if err := required("budget id", budgetID); err != nil {
		return nil, err
	}

	out := domain.Budget{}
	err := c.call(ctx, &operation{
		fn:   "budgets:update",
		kind: opMutation,
		args: map[string]any{
			"budgetId": budgetID, "name": p.Name, "isDefault": p.IsDefault,
			"emoji": p.Emoji, "color": p.Color,
		},

		method: "PATCH",
		path:   "/budgets/" + url.PathEscape(budgetID),
		body: map[string]any{
			"name": p.Name, "is_default": p.IsDefault,
			"emoji": p.Emoji, "color": p.Color,
		},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBudget(ctx context.Context, budgetID string) error {
	if err := required("budget id", budgetID); err != nil {
		return err
	}

	return c.call(ctx, &operation{
		fn:   "budgets:remove",
		kind: opMutation,
		args: map[string]any{"budgetId": budgetID},

		method: "DELETE",
		path:   "/budgets/" + url.PathEscape(budgetID),
	}, nil)
}

// SetDefaultBudget marks one budget as the default for new months.
func (c *Client) SetDefaultBudget(ctx context.Context, budgetID string) (*domain.Budget, error) {
	if err := required("budget id", budgetID); err != nil {
		return nil, err
	}

	out := domain.Budget{}
	err := c.call(ctx, &operation{
		fn:   "budgets:setDefault",
		kind: opMutation,
		args: map[string]any{"budgetId": budgetID},

		method: "POST",
		path:   "/budgets/" + url.PathEscape(budgetID) + "/set-default",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// LineItemParams allocates an amount to a category within a budget.
type LineItemParams struct {
	CategoryID    string
	SubcategoryID string
	Amount        float64
}

func (c *Client) ListLineItems(ctx context.Context, budgetID string) ([]domain.LineItem, error) {
	if err := required("budget id", budgetID); err != nil {
		return nil, err
	}

	out := listReply[domain.LineItem]{}
	err := c.call(ctx, &operation{
		fn:   "budgets:listLineItems",
		kind: opQuery,
		args: map[string]any{"budgetId": budgetID},

		method: "GET",
		path:   "/budgets/" + url.PathEscape(budgetID) + "/line-items",
	}, &out)
	return out.Items, err
}

func (c *Client) CreateLineItem(ctx context.Context, budgetID string, p LineItemParams) (*domain.LineItem, error) {
	if err := required("budget id", budgetID); err != nil {
		return nil, err
	}
	if err := required("category id", p.CategoryID); err != nil {
		return nil, err
	}
	if p.Amount < 0 {
		return nil, fmt.Errorf("amount must not be negative")
	}

	out := domain.LineItem{}
	err := c.call(ctx, &operation{
		fn:   "budgets:createLineItem",
		kind: opMutation,
		args: map[string]any{
			"budgetId": budgetID, "categoryId": p.CategoryID,
			"subcategoryId": p.SubcategoryID, "amount": p.Amount,
		},

		method: "POST",
		path:   "/budgets/" + url.PathEscape(budgetID) + "/line-items",
		body: map[string]any{
			"category_id": p.CategoryID, "subcategory_id": p.SubcategoryID,
			"amount": p.Amount,
		},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLineItem changes an allocation's amount.
func (c *Client) UpdateLineItem(ctx context.Context, budgetID, itemID string, amount float64) (*domain.LineItem, error) {
	if err := required("budget id", budgetID); err != nil {
		return nil, err
	}
	if err := required("line item id", itemID); err != nil {
		return nil, err
	}
	if amount < 0 {
		return nil, fmt.Errorf("amount must not be negative")
	}

	out := domain.LineItem{}
	err := c.call(ctx, &operation{
		fn:   "budgets:updateLineItem",
		kind: opMutation,
		args: map[string]any{"lineItemId": itemID, "amount": amount},

		method: "PATCH",
		path:   "/budgets/" + url.PathEscape(budgetID) + "/line-items/" + url.PathEscape(itemID),
		body:   map[string]any{"amount": amount},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteLineItem(ctx context.Context, budgetID, itemID string) error {
	if err := required("budget id", budgetID); err != nil {
		return err
	}
	if err := required("line item id", itemID); err != nil {
		return err
	}

	return c.call(ctx, &operation{
		fn:   "budgets:removeLineItem",
		kind: opMutation,
		args: map[string]any{"lineItemId": itemID},

		method: "DELETE",
		path:   "/budgets/" + url.PathEscape(budgetID) + "/line-items/" + url.PathEscape(itemID),
	}, nil)
}

// ListBudgetMonths returns the month assignments across all budgets.
func (c *Client) ListBudgetMonths(ctx context.Context) ([]domain.BudgetMonth, error) {
	out := listReply[domain.BudgetMonth]{}
	err := c.call(ctx, &operation{
		fn:   "budgets:listMonths",
		kind: opQuery,

		method: "GET",
		path:   "/budgets/months",
	}, &out)
	return out.Items, err
}

// AssignBudgetMonth puts a budget in charge of one calendar month.
func (c *Client) AssignBudgetMonth(ctx context.Context, budgetID, month string) (*domain.BudgetMonth, error) {
	if err := required("budget id", budgetID); err != nil {
		return nil, err
	}
	if !domain.ValidMonth(month) {
		return nil, fmt.Errorf("month must be YYYY-MM, got %q", month)
	}

	out := domain.BudgetMonth{}
	err := c.call(ctx, &operation{
		fn:   "budgets:assignMonth",
		kind: opMutation,
		args: map[string]any{"budgetId": budgetID, "month": month},

		method: "POST",
		path:   "/budgets/months",
		body:   map[string]any{"budget_id": budgetID, "month": month},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBudgetMonth(ctx context.Context, monthID string) error {
	if err := required("month id", monthID); err != nil {
		return err
	}

	return c.call(ctx, &operation{
		fn:   "budgets:removeMonth",
		kind: opMutation,
		args: map[string]any{"monthId": monthID},

		method: "DELETE",
		path:   "/budgets/months/" + url.PathEscape(monthID),
	}, nil)
}

// ListBudgetAccounts returns the accounts whose spending feeds a budget.
func (c *Client) ListBudgetAccounts(ctx context.Context, budgetID string) ([]domain.BudgetAccount, error) {
	if err := required("budget id", budgetID); err != nil {
		return nil, err
	}

	out := listReply[domain.BudgetAccount]{}
	err := c.call(ctx, &operation{
		fn:   "budgets:listAccounts",
		kind: opQuery,
		args: map[string]any{"budgetId": budgetID},

		method: "GET",
		path:   "/budgets/" + url.PathEscape(budgetID) + "/accounts",
	}, &out)
	return out.Items, err
}

func (c *Client) AddBudgetAccount(ctx context.Context, budgetID, accountID string) (*domain.BudgetAccount, error) {
	if err := required("budget id", budgetID); err != nil {
		return nil, err
	}
	if err := required("account id", accountID); err != nil {
		return nil, err
	}

	out := domain.BudgetAccount{}
	err := c.call(ctx, &operation{
		fn:   "budgets:addAccount",
		kind: opMutation,
		args: map[string]any{"budgetId": budgetID, "accountId": accountID},

		method: "POST",
		path:   "/budgets/" + url.PathEscape(budgetID) + "/accounts",
		body:   map[string]any{"account_id": accountID},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveBudgetAccount(ctx context.Context, budgetID, accountID string) error {
	if err := required("budget id", budgetID); err != nil {
		return err
	}
	if err := required("account id", accountID); err != nil {
		return err
	}

	return c.call(ctx, &operation{
		fn:   "budgets:removeAccount",
		kind: opMutation,
		args: map[string]any{"budgetId": budgetID, "accountId": accountID},

		method: "DELETE",
		path:   "/budgets/" + url.PathEscape(budgetID) + "/accounts/" + url.PathEscape(accountID),
	}, nil)
}
