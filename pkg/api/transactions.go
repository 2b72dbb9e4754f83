package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/cashstate/cashstate-go/pkg/config"
	"github.com/cashstate/cashstate-go/pkg/domain"
)

const defaultPageSize = 50

// ListTransactionsParams filters and pages a transaction listing.
type ListTransactionsParams struct {
	// YYYY-MM-DD bounds, inclusive. Empty means unbounded.
	DateFrom string
	DateTo   string

	// Page size; defaults to 50.
	Limit int

	// Opaque cursor from a previous page's NextCursor. Empty starts
	// from the beginning.
	Cursor string

	// Restrict to these accounts. Empty means all.
	AccountIDs []string
}

// TransactionPage is one page of a listing, shaped the same whichever
// backend variant produced it.
type TransactionPage struct {
	Items      []domain.Transaction
	IsDone     bool
	NextCursor string
}

// ListTransactions pages through the user's transactions, newest first.
func (c *Client) ListTransactions(ctx context.Context, p ListTransactionsParams) (*TransactionPage, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	if c.variant == config.VariantRPC {
		return c.listTransactionsRPC(ctx, p, limit)
	}
	return c.listTransactionsREST(ctx, p, limit)
}

// The REST variant pages by limit/offset with a total count; the cursor
// is a stringified offset.
func (c *Client) listTransactionsREST(ctx context.Context, p ListTransactionsParams, limit int) (*TransactionPage, error) {
	offset := 0
	if p.Cursor != "" {
		n, err := strconv.Atoi(p.Cursor)
		if err != nil || n < 0 {
			return nil, errInvalidURL(err)
		}
		offset = n
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))
	if p.DateFrom != "" {
		query.Set("date_from", p.DateFrom)
	}
	if p.DateTo != "" {
		query.Set("date_to", p.DateTo)
	}
	if len(p.AccountIDs) > 0 {
		query.Set("account_ids", strings.Join(p.AccountIDs, ","))
	}

	out := struct {
		Items  []domain.Transaction `json:"items"`
		Total  int                  `json:"total"`
		Limit  int                  `json:"limit"`
		Offset int                  `json:"offset"`
	}{}
	err := c.call(ctx, &operation{
		method: "GET",
		path:   "/transactions",
		query:  query,
	}, &out)
	if err != nil {
		return nil, err
	}

	next := offset + len(out.Items)
	return &TransactionPage{
		Items:      out.Items,
		IsDone:     next >= out.Total || len(out.Items) == 0,
		NextCursor: strconv.Itoa(next),
	}, nil
}

// The RPC variant pages by opaque continuation cursor.
func (c *Client) listTransactionsRPC(ctx context.Context, p ListTransactionsParams, limit int) (*TransactionPage, error) {
	pagination := map[string]any{"numItems": limit}
	if p.Cursor != "" {
		pagination["cursor"] = p.Cursor
	}
	args := map[string]any{"paginationOpts": pagination}
	if p.DateFrom != "" {
		args["dateFrom"] = p.DateFrom
	}
	if p.DateTo != "" {
		args["dateTo"] = p.DateTo
	}
	if len(p.AccountIDs) > 0 {
		args["accountIds"] = p.AccountIDs
	}

	out := struct {
		Page           []domain.Transaction `json:"page"`
		IsDone         bool                 `json:"isDone"`
		ContinueCursor string               `json:"continueCursor"`
	}{}
	err := c.call(ctx, &operation{
		fn:   "transactions:list",
		kind: opQuery,
		args: args,
	}, &out)
	if err != nil {
		return nil, err
	}

	return &TransactionPage{
		Items:      out.Page,
		IsDone:     out.IsDone,
		NextCursor: out.ContinueCursor,
	}, nil
}

// GetTransaction fetches a single transaction by id.
func (c *Client) GetTransaction(ctx context.Context, txID string) (*domain.Transaction, error) {
	if err := required("transaction id", txID); err != nil {
		return nil, err
	}

	out := domain.Transaction{}
	err := c.call(ctx, &operation{
		fn:   "transactions:get",
		kind: opQuery,
		args: map[string]any{"transactionId": txID},

		method: "GET",
		path:   "/transactions/" + url.PathEscape(txID),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CategorizeParams assigns a category to one transaction. Nil-equivalent
// (empty) ids clear the assignment.
type CategorizeParams struct {
	TransactionID string
	CategoryID    string
	SubcategoryID string
	// CreateRule also persists a rule matching this transaction's
	// payee, so future transactions categorize themselves.
	CreateRule bool
}

// Categorize sets a transaction's category and subcategory. The backend
// acknowledges without echoing the transaction; fetch it again if the
// updated row is needed.
func (c *Client) Categorize(ctx context.Context, p CategorizeParams) error {
	if err := required("transaction id", p.TransactionID); err != nil {
		return err
	}

	return c.call(ctx, &operation{
		fn:   "transactions:categorize",
		kind: opMutation,
		args: map[string]any{
			"transactionId": p.TransactionID,
			"categoryId":    p.CategoryID,
			"subcategoryId": p.SubcategoryID,
			"createRule":    p.CreateRule,
		},

		method: "PATCH",
		path:   "/categories/transactions/" + url.PathEscape(p.TransactionID) + "/categorize",
		body: map[string]any{
			"category_id":    p.CategoryID,
			"subcategory_id": p.SubcategoryID,
			"create_rule":    p.CreateRule,
		},
	}, nil)
}

// CategoryUpdate is one pending categorization in a batch.
type CategoryUpdate struct {
	TransactionID string `json:"transaction_id"`
	CategoryID    string `json:"category_id"`
	SubcategoryID string `json:"subcategory_id"`
}

// BatchCategorize applies many categorizations in one call. Partial
// failure is reported in the result, not as an error.
func (c *Client) BatchCategorize(ctx context.Context, updates []CategoryUpdate) (*domain.BatchResult, error) {
	if len(updates) == 0 {
		return &domain.BatchResult{}, nil
	}

	rpcUpdates := make([]map[string]any, 0, len(updates))
	for _, u := range updates {
		rpcUpdates = append(rpcUpdates, map[string]any{
			"transactionId": u.TransactionID,
			"categoryId":    u.CategoryID,
			"subcategoryId": u.SubcategoryID,
		})
	}

	out := domain.BatchResult{}
	err := c.call(ctx, &operation{
		fn:   "transactions:batchCategorize",
		kind: opMutation,
		args: map[string]any{"updates": rpcUpdates},

		method: "PATCH",
		path:   "/transactions/batch/categorize",
		body:   map[string]any{"updates": updates},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
