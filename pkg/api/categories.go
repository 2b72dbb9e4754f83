package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cashstate/cashstate-go/pkg/domain"
)

type listReply[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// ListCategories returns the flat category list, system defaults
// included.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	out := listReply[domain.Category]{}
	err := c.call(ctx, &operation{
		fn:   "categories:list",
		kind: opQuery,

		method: "GET",
		path:   "/categories",
	}, &out)
	return out.Items, err
}

// CategoryTree returns categories with their subcategories nested.
func (c *Client) CategoryTree(ctx context.Context) ([]domain.CategoryNode, error) {
	out := listReply[domain.CategoryNode]{}
	err := c.call(ctx, &operation{
		fn:   "categories:tree",
		kind: opQuery,

		method: "GET",
		path:   "/categories/tree",
	}, &out)
	return out.Items, err
}

// CategoryParams creates or renames a category.
type CategoryParams struct {
	Name         string
	Icon         string
	Color        string
	DisplayOrder int
}

func (c *Client) CreateCategory(ctx context.Context, p CategoryParams) (*domain.Category, error) {
	if err := required("category name", p.Name); err != nil {
		return nil, err
	}

	out := domain.Category{}
	err := c.call(ctx, &operation{
		fn:   "categories:create",
		kind: opMutation,
		args: map[string]any{
			"name": p.Name, "icon": p.Icon, "color": p.Color,
			"displayOrder": p.DisplayOrder,
		},

		method: "POST",
		path:   "/categories",
		body: map[string]any{
			"name": p.Name, "icon": p.Icon, "color": p.Color,
			"display_order": p.DisplayOrder,
		},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, categoryID string, p CategoryParams) (*domain.Category, error) {
	if err := required("category id", categoryID); err != nil {
		return nil, err
	}

	out := domain.Category{}
	err := c.call(ctx, &operation{
		fn:   "categories:update",
		kind: opMutation,
		args: map[string]any{
			"categoryId": categoryID,
			"name":       p.Name, "icon": p.Icon, "color": p.Color,
			"displayOrder": p.DisplayOrder,
		},

		method: "PATCH",
		path:   "/categories/" + url.PathEscape(categoryID),
		body: map[string]any{
			"name": p.Name, "icon": p.Icon, "color": p.Color,
			"display_order": p.DisplayOrder,
		},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := required("category id", categoryID); err != nil {
		return err
	}

	return c.call(ctx, &operation{
		fn:   "categories:remove",
		kind: opMutation,
		args: map[string]any{"categoryId": categoryID},

		method: "DELETE",
		path:   "/categories/" + url.PathEscape(categoryID),
	}, nil)
}

// SubcategoryParams creates or renames a subcategory under a category.
type SubcategoryParams struct {
	Name         string
	Icon         string
	DisplayOrder int
}

func (c *Client) CreateSubcategory(ctx context.Context, categoryID string, p SubcategoryParams) (*domain.Subcategory, error) {
	if err := required("category id", categoryID); err != nil {
		return nil, err
	}
	if err := required("subcategory name", p.Name); err != nil {
		return nil, err
	}

	out := domain.Subcategory{}
	err := c.call(ctx, &operation{
		fn:   "categories:createSubcategory",
		kind: opMutation,
		args: map[string]any{
			"categoryId": categoryID, "name": p.Name, "icon": p.Icon,
			"displayOrder": p.DisplayOrder,
		},

		method: "POST",
		path:   "/categories/" + url.PathEscape(categoryID) + "/subcategories",
		body: map[string]any{
			"name": p.Name, "icon": p.Icon, "display_order": p.DisplayOrder,
		},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSubcategory(ctx context.Context, subcategoryID string, p SubcategoryParams) (*domain.Subcategory, error) {
	if err := required("subcategory id", subcategoryID); err != nil {
		return nil, err
	}

	out := domain.Subcategory{}
	err := c.call(ctx, &operation{
		fn:   "categories:updateSubcategory",
		kind: opMutation,
		args: map[string]any{
			"subcategoryId": subcategoryID, "name": p.Name, "icon": p.Icon,
			"displayOrder": p.DisplayOrder,
		},

		method: "PATCH",
		path:   "/categories/subcategories/" + url.PathEscape(subcategoryID),
		body: map[string]any{
			"name": p.Name, "icon": p.Icon, "display_order": p.DisplayOrder,
		},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSubcategory(ctx context.Context, subcategoryID string) error {
	if err := required("subcategory id", subcategoryID); err != nil {
		return err
	}

	return c.call(ctx, &operation{
		fn:   "categories:removeSubcategory",
		kind: opMutation,
		args: map[string]any{"subcategoryId": subcategoryID},

		method: "DELETE",
		path:   "/categories/subcategories/" + url.PathEscape(subcategoryID),
	}, nil)
}

// ListRules returns the user's categorization rules.
func (c *Client) ListRules(ctx context.Context) ([]domain.Rule, error) {
	out := listReply[domain.Rule]{}
	err := c.call(ctx, &operation{
		fn:   "categories:listRules",
		kind: opQuery,

		method: "GET",
		path:   "/categories/rules",
	}, &out)
	return out.Items, err
}

// RuleParams creates a categorization rule.
type RuleParams struct {
	// "payee", "description" or "memo".
	MatchField string
	// Case-insensitive substring to match.
	MatchValue string

	CategoryID    string
	SubcategoryID string
}

func (p *RuleParams) validate() error {
	switch p.MatchField {
	case "payee", "description", "memo":
	default:
		return fmt.Errorf("match field must be payee, description or memo")
	}
	if err := required("match value", p.MatchValue); err != nil {
		return err
	}
	return required("category id", p.CategoryID)
}

func (c *Client) CreateRule(ctx context.Context, p RuleParams) (*domain.Rule, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	out := domain.Rule{}
	err := c.call(ctx, &operation{
		fn:   "categories:createRule",
		kind: opMutation,
		args: map[string]any{
			"matchField": p.MatchField, "matchValue": p.MatchValue,
			"categoryId": p.CategoryID, "subcategoryId": p.SubcategoryID,
		},

		method: "POST",
		path:   "/categories/rules",
		body: map[string]any{
			"match_field": p.MatchField, "match_value": p.MatchValue,
			"category_id": p.CategoryID, "subcategory_id": p.SubcategoryID,
		},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteRule(ctx context.Context, ruleID string) error {
	if err := required("rule id", ruleID); err != nil {
		return err
	}

	return c.call(ctx, &operation{
		fn:   "categories:removeRule",
		kind: opMutation,
		args: map[string]any{"ruleId": ruleID},

		method: "DELETE",
		path:   "/categories/rules/" + url.PathEscape(ruleID),
	}, nil)
}

// SeedDefaults creates the default category taxonomy and spreads a
// monthly budget across it. Intended for onboarding.
func (c *Client) SeedDefaults(ctx context.Context, monthlyBudget float64, accountIDs []string) (*domain.SeedResult, error) {
	if monthlyBudget <= 0 {
		return nil, fmt.Errorf("monthly budget must be positive")
	}
	if accountIDs == nil {
		accountIDs = []string{}
	}

	out := domain.SeedResult{}
	err := c.call(ctx, &operation{
		fn:   "categories:seedDefaults",
		kind: opMutation,
		args: map[string]any{"monthlyBudget": monthlyBudget, "accountIds": accountIDs},

		method: "POST",
		path:   "/categories/seed-defaults",
		body: map[string]any{
			"monthly_budget": monthlyBudget, "account_ids": accountIDs,
		},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
