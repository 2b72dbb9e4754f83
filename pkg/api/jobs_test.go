package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashstate/cashstate-go/pkg/config"
	"github.com/cashstate/cashstate-go/pkg/domain"
)

func TestWaitForCategorizationPollsUntilTerminal(t *testing.T) {
	var polls int64
	c, sess := testClient(t, config.VariantREST, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt64(&polls, 1)
		status := domain.JobRunning
		if n >= 2 {
			status = domain.JobCompleted
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id": "job_1", "status": status, "categorized_count": 40, "failed_count": 2,
		})
	}))
	login(t, sess)

	job, err := c.WaitForCategorization(context.Background(), "job_1")
	require.NoError(t, err)
	assert.Equal(t, domain.JobCompleted, job.Status)
	assert.Equal(t, 40, job.CategorizedCount)
	assert.GreaterOrEqual(t, atomic.LoadInt64(&polls), int64(2))
}

func TestWaitForCategorizationHonoursCancellation(t *testing.T) {
	c, sess := testClient(t, config.VariantREST, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": "job_1", "status": "running"})
	}))
	login(t, sess)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.WaitForCategorization(ctx, "job_1")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestWaitForCategorizationStopsOnPollError(t *testing.T) {
	c, sess := testClient(t, config.VariantREST, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"job store down"}`))
	}))
	login(t, sess)

	_, err := c.WaitForCategorization(context.Background(), "job_1")
	assert.True(t, IsKind(err, KindServer))
}

func TestStartCategorization(t *testing.T) {
	c, sess := testClient(t, config.VariantREST, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories/ai/categorize", r.URL.Path)

		body := map[string]any{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, true, body["force"])

		json.NewEncoder(w).Encode(map[string]any{"id": "job_7", "status": "pending"})
	}))
	login(t, sess)

	job, err := c.StartCategorization(context.Background(), nil, true)
	require.NoError(t, err)
	assert.Equal(t, "job_7", job.ID)
	assert.False(t, job.Status.Terminal())
}
