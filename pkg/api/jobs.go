package api

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/cashstate/cashstate-go/pkg/domain"
)

// StartCategorization kicks off a bulk AI-categorization job. Nil
// transaction ids means all uncategorized transactions; force
// re-categorizes ones that already have a category.
func (c *Client) StartCategorization(ctx context.Context, transactionIDs []string, force bool) (*domain.CategorizationJob, error) {
	args := map[string]any{"force": force}
	body := map[string]any{"force": force}
	if transactionIDs != nil {
		args["transactionIds"] = transactionIDs
		body["transaction_ids"] = transactionIDs
	}

	out := domain.CategorizationJob{}
	err := c.call(ctx, &operation{
		fn:   "categorization:start",
		kind: opAction,
		args: args,

		method: "POST",
		path:   "/categories/ai/categorize",
		body:   body,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CategorizationStatus fetches the current state of a job.
func (c *Client) CategorizationStatus(ctx context.Context, jobID string) (*domain.CategorizationJob, error) {
	if err := required("job id", jobID); err != nil {
		return nil, err
	}

	out := domain.CategorizationJob{}
	err := c.call(ctx, &operation{
		fn:   "categorization:status",
		kind: opQuery,
		args: map[string]any{"jobId": jobID},

		method: "GET",
		path:   "/categories/ai/jobs/" + url.PathEscape(jobID),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

var errJobRunning = errors.New("job still running")

// WaitForCategorization polls a job until it reaches a terminal state,
// backing off exponentially between polls. Cancel the context to stop
// waiting; the job itself keeps running server-side.
func (c *Client) WaitForCategorization(ctx context.Context, jobID string) (*domain.CategorizationJob, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.MaxInterval = 15 * time.Second
	bo.MaxElapsedTime = 0 // poll until terminal or ctx is done

	var job *domain.CategorizationJob
	poll := func() error {
		j, err := c.CategorizationStatus(ctx, jobID)
		if err != nil {
			// a failed poll is not retried: the caller decides
			return backoff.Permanent(err)
		}
		if !j.Status.Terminal() {
			return errJobRunning
		}
		job = j
		return nil
	}

	if err := backoff.Retry(poll, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}
	return job, nil
}
