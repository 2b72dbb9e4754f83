package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashstate/cashstate-go/pkg/config"
)

func TestNetWorthSnapshots(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /snapshots", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "week", r.URL.Query().Get("granularity"))
		assert.Equal(t, "2025-01-01", r.URL.Query().Get("start_date"))

		json.NewEncoder(w).Encode(map[string]any{
			"start_date": "2025-01-01", "end_date": "2025-02-01", "granularity": "week",
			"data": []map[string]any{
				{"date": "2025-01-05", "balance": 10250.40},
				{"date": "2025-01-12", "balance": 10318.95},
			},
		})
	})

	c, sess := testClient(t, config.VariantREST, mux)
	login(t, sess)

	series, err := c.NetWorthSnapshots(context.Background(), SnapshotParams{
		StartDate: "2025-01-01", Granularity: "week",
	})
	require.NoError(t, err)
	assert.Equal(t, "week", series.Granularity)
	require.Len(t, series.Data, 2)
	assert.Equal(t, 10250.40, series.Data[0].Balance)
}

func TestAccountSnapshots(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /snapshots/account/acc_1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"start_date": "2025-01-01", "end_date": "2025-01-02", "granularity": "day",
			"data": []map[string]any{{"date": "2025-01-01", "balance": -420.10}},
		})
	})

	c, sess := testClient(t, config.VariantREST, mux)
	login(t, sess)

	series, err := c.AccountSnapshots(context.Background(), "acc_1", SnapshotParams{})
	require.NoError(t, err)
	require.Len(t, series.Data, 1)
	assert.Equal(t, "2025-01-01", series.Data[0].Date)
}

func TestSnapshotsRejectBadGranularity(t *testing.T) {
	c, sess := testClient(t, config.VariantREST, http.NotFoundHandler())
	login(t, sess)

	_, err := c.NetWorthSnapshots(context.Background(), SnapshotParams{Granularity: "fortnight"})
	assert.Error(t, err)

	_, err = c.AccountSnapshots(context.Background(), "", SnapshotParams{})
	assert.Error(t, err)
}

func TestStoreSnapshots(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /snapshots/store", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2025-02-14", r.URL.Query().Get("snapshot_date"))
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	c, sess := testClient(t, config.VariantREST, mux)
	login(t, sess)

	require.NoError(t, c.StoreSnapshots(context.Background(), "2025-02-14"))
	assert.Error(t, c.StoreSnapshots(context.Background(), "14/02/2025"))
}
