package domain

import (
	"fmt"
)

type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// Terminal reports whether the job will make no further progress.
func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed
}

// CategorizationJob is an asynchronous bulk AI-categorization task. The
// client polls it until terminal; there is no push channel.
type CategorizationJob struct {
	ID     string    `json:"id"`
	Status JobStatus `json:"status"`

	CategorizedCount int `json:"categorized_count"`
	FailedCount      int `json:"failed_count"`
	TotalCount       int `json:"total_count"`

	Error string `json:"error_message"`
}

func (j *CategorizationJob) Validate() error {
	if j.ID == "" || j.Status == "" {
		return fmt.Errorf("categorization job missing id or status")
	}
	return nil
}
