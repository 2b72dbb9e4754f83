package domain

import (
	"fmt"
)

// Category is a top-level taxonomy node.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Emoji character, e.g. "🍔".
	Icon string `json:"icon"`
	// Hex color code, e.g. "#F59E0B".
	Color string `json:"color"`

	DisplayOrder int `json:"display_order"`

	// "income" or "expense", empty when unset.
	Kind string `json:"type"`

	// System-seeded categories are flagged default and have no owner.
	IsDefault bool `json:"is_default"`
}

func (c *Category) Validate() error {
	if c.ID == "" || c.Name == "" {
		return fmt.Errorf("category missing id or name")
	}
	return nil
}

// Subcategory belongs to exactly one Category.
type Subcategory struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Icon       string `json:"icon"`

	DisplayOrder int  `json:"display_order"`
	IsDefault    bool `json:"is_default"`
}

func (s *Subcategory) Validate() error {
	if s.ID == "" || s.Name == "" {
		return fmt.Errorf("subcategory missing id or name")
	}
	return nil
}

// CategoryNode is a category with its subcategories nested, as returned
// by the tree listing.
type CategoryNode struct {
	Category
	Subcategories []Subcategory `json:"subcategories"`
}

// Rule maps a transaction field match to a category assignment. The
// backend applies rules to future transactions automatically.
type Rule struct {
	ID string `json:"id"`

	// "payee", "description" or "memo".
	MatchField string `json:"match_field"`
	// Case-insensitive substring.
	MatchValue string `json:"match_value"`

	CategoryID    string `json:"category_id"`
	SubcategoryID string `json:"subcategory_id"`
}

func (r *Rule) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("rule missing id")
	}
	return nil
}

// SeedResult reports what the seed-defaults bulk operation created.
type SeedResult struct {
	CategoriesCreated    int     `json:"categories_created"`
	SubcategoriesCreated int     `json:"subcategories_created"`
	BudgetsCreated       int     `json:"budgets_created"`
	MonthlyBudget        float64 `json:"monthly_budget"`
	BudgetPerCategory    float64 `json:"budget_per_category"`
}
