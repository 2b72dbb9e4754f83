package domain

import (
	"fmt"
)

// SnapshotSeries is a dated balance history: net worth summed across
// every account, or a single account's balance, aggregated to the
// requested granularity. Distinct from a goal's progress_data, which
// only covers the goal's linked accounts.
type SnapshotSeries struct {
	StartDate   string     `json:"start_date"`
	EndDate     string     `json:"end_date"`
	Granularity string     `json:"granularity"`
	Data        []Snapshot `json:"data"`
}

func (s *SnapshotSeries) Validate() error {
	if s.Granularity == "" {
		return fmt.Errorf("snapshot series missing granularity")
	}
	return nil
}
