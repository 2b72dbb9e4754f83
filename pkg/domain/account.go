package domain

import (
	"fmt"
)

// Link is one SimpleFin connection ("item") to a financial institution.
// Created by the setup-token exchange, removed by disconnect.
type Link struct {
	ID              string `json:"id"`
	InstitutionName string `json:"institution_name"`
	Status          string `json:"status"`
	LastSyncedAt    string `json:"last_synced_at"`
	CreatedAt       string `json:"created_at"`
}

func (l *Link) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("link missing id")
	}
	return nil
}

// Account is an external bank account under a Link. The client never
// mutates accounts; sync operations refresh them server-side.
type Account struct {
	ID         string `json:"id"`
	ExternalID string `json:"simplefin_account_id"`
	LinkID     string `json:"simplefin_item_id"`

	Name     string `json:"name"`
	Currency string `json:"currency"`

	Balance          float64 `json:"balance"`
	AvailableBalance float64 `json:"available_balance"`
	// Unix time the balance was reported at.
	BalanceDate int64 `json:"balance_date"`

	OrgName   string `json:"organization_name"`
	OrgDomain string `json:"organization_domain"`
}

func (a *Account) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("account missing id")
	}
	return nil
}

// SyncResult reports what one sync run against a Link did.
type SyncResult struct {
	JobID               string   `json:"sync_job_id"`
	AccountsSynced      int      `json:"accounts_synced"`
	TransactionsAdded   int      `json:"transactions_added"`
	TransactionsUpdated int      `json:"transactions_updated"`
	Errors              []string `json:"errors"`
}

func (r *SyncResult) Validate() error {
	if r.JobID == "" {
		return fmt.Errorf("sync result missing job id")
	}
	return nil
}
