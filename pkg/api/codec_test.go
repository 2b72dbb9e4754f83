package api

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashstate/cashstate-go/pkg/domain"
)

func TestRESTDecodeServerErrorDetail(t *testing.T) {
	err := restCodec{}.decode(500, []byte(`{"detail":"internal failure"}`), nil)

	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindServer, e.Kind)
	assert.Equal(t, 500, e.Status)
	assert.Equal(t, "internal failure", e.Error())
}

func TestRESTDecodeServerErrorNoDetail(t *testing.T) {
	err := restCodec{}.decode(503, []byte(`not even json`), nil)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindServer, e.Kind)
	assert.Equal(t, "server error (503)", e.Error())
}

func TestRESTDecodeTypeMismatchIsHardFailure(t *testing.T) {
	out := domain.Transaction{}
	err := restCodec{}.decode(200, []byte(`{"id":"t1","amount":"not-a-number"}`), &out)

	assert.True(t, IsKind(err, KindDecode))
}

func TestDecodeMissingRequiredFieldsIsHardFailure(t *testing.T) {
	// an empty object is not a transaction, even though every field
	// has a usable zero value
	out := domain.Transaction{}
	err := restCodec{}.decode(200, []byte(`{}`), &out)
	assert.True(t, IsKind(err, KindDecode))

	out = domain.Transaction{}
	err = rpcCodec{}.decode(200, []byte(`{"status":"success","value":{}}`), &out)
	assert.True(t, IsKind(err, KindDecode))
}

func TestDecodeChecksListElements(t *testing.T) {
	out := []domain.Link{}
	err := restCodec{}.decode(200, []byte(`[{"id":"lnk_1"},{}]`), &out)
	assert.True(t, IsKind(err, KindDecode))
}

func TestDecodeChecksNestedReplies(t *testing.T) {
	// a summary whose line item lost its id fails, not just the top level
	body := []byte(`{"budget_id":"b1","month":"2025-02","line_items":[{"budget_id":"b1"}]}`)

	out := domain.BudgetSummary{}
	err := restCodec{}.decode(200, body, &out)
	assert.True(t, IsKind(err, KindDecode))
}

func TestRPCEnvelopeErrorBeatsHTTPStatus(t *testing.T) {
	// status=="error" classifies as a backend error even on HTTP 200
	err := rpcCodec{}.decode(200, []byte(`{"status":"error","errorMessage":"boom"}`), nil)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindBackend, e.Kind)
	assert.Equal(t, "backend error: boom", e.Error())
}

func TestRPCDecodeValue(t *testing.T) {
	body := []byte(`{"status":"success","value":{"id":"t1","amount":-4.5}}`)

	out := domain.Transaction{}
	require.NoError(t, rpcCodec{}.decode(200, body, &out))
	assert.Equal(t, "t1", out.ID)
	assert.Equal(t, -4.5, out.Amount)
}

func TestRPCDecodeMissingValue(t *testing.T) {
	out := domain.Transaction{}
	err := rpcCodec{}.decode(200, []byte(`{"status":"success"}`), &out)

	assert.True(t, IsKind(err, KindDecode))
}

func TestEnvelopeRoundTrip(t *testing.T) {
	want := domain.BudgetSummary{
		BudgetID:      "b1",
		BudgetName:    "Monthly",
		Month:         "2025-02",
		TotalBudgeted: 800,
		TotalSpent:    765,
		LineItems: []domain.SummaryLine{
			{ID: "li1", BudgetID: "b1", CategoryID: "Food", Amount: 800, Spent: 765, Remaining: 35},
		},
		SubcategorySpending: map[string]float64{"Coffee": 120},
	}
	raw, err := json.Marshal(&want)
	require.NoError(t, err)

	// REST: the body is the typed result itself
	got := domain.BudgetSummary{}
	require.NoError(t, restCodec{}.decode(200, raw, &got))
	assert.Equal(t, want, got)

	// RPC: the typed result rides in the envelope's value field
	wrapped, err := json.Marshal(map[string]any{"status": "success", "value": json.RawMessage(raw)})
	require.NoError(t, err)

	got = domain.BudgetSummary{}
	require.NoError(t, rpcCodec{}.decode(200, wrapped, &got))
	assert.Equal(t, want, got)
}

func TestRESTRequestAttachesBearer(t *testing.T) {
	base, _ := url.Parse("https://api.example.com")
	id := domain.NewIdentity("u1", "tok-123", "", 3600)

	req, err := restCodec{}.newRequest(context.Background(), base, id, &operation{
		method: "GET",
		path:   "/transactions",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", req.Header.Get("Authorization"))
	assert.Equal(t, "https://api.example.com/transactions", req.URL.String())
}

func TestRPCRequestInjectsUserID(t *testing.T) {
	base, _ := url.Parse("https://api.example.com")
	id := domain.NewIdentity("u1", "", "", 0)

	req, err := rpcCodec{}.newRequest(context.Background(), base, id, &operation{
		fn:   "transactions:list",
		kind: opQuery,
		args: map[string]any{"dateFrom": "2025-01-01"},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/api/query", req.URL.String())

	raw, err := io.ReadAll(req.Body)
	require.NoError(t, err)

	call := struct {
		Path   string         `json:"path"`
		Args   map[string]any `json:"args"`
		Format string         `json:"format"`
	}{}
	require.NoError(t, json.Unmarshal(raw, &call))
	assert.Equal(t, "transactions:list", call.Path)
	assert.Equal(t, "json", call.Format)
	assert.Equal(t, "u1", call.Args["userId"])
	assert.Equal(t, "2025-01-01", call.Args["dateFrom"])
}

func TestRPCRequestSkipsInjectionForAuth(t *testing.T) {
	base, _ := url.Parse("https://api.example.com")
	id := domain.NewIdentity("u1", "", "", 0)

	req, err := rpcCodec{}.newRequest(context.Background(), base, id, &operation{
		fn:           "auth:login",
		kind:         opAction,
		args:         map[string]any{"username": "alice"},
		skipIdentity: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/api/action", req.URL.String())

	raw, _ := io.ReadAll(req.Body)
	call := struct {
		Args map[string]any `json:"args"`
	}{}
	require.NoError(t, json.Unmarshal(raw, &call))
	_, injected := call.Args["userId"]
	assert.False(t, injected)
}
