// Package inventory assembles the external account inventory record from a
// traversal run and derives its change fingerprint.
package inventory

import (
	"fmt"

	"github.com/orgpull/orgpull/core/orgdir"
	"github.com/orgpull/orgpull/core/orgtree"
)

// ScopeRequest is the caller's traversal request: which subtree roots to
// inventory, whether to keep only active accounts, and the per-account role
// name written into each record.
type ScopeRequest struct {
	Roots      []string
	ActiveOnly bool
	RoleName   string
}

// Entry is one account in the external record schema.
type Entry struct {
	AccountID string   `json:"account_id" yaml:"account_id"`
	Email     string   `json:"email" yaml:"email"`
	Name      string   `json:"name" yaml:"name"`
	Paths     []string `json:"paths" yaml:"paths"`
	Role      string   `json:"role" yaml:"role"`
}

// Record is the full inventory under its top-level accounts key. Account
// order is collection order: scope roots in request order, OUs pre-order
// within each subtree, provider order within each OU.
type Record struct {
	Accounts []Entry `json:"accounts" yaml:"accounts"`
}

// Build resolves every requested scope root, collects all accounts under it
// recursively, and shapes them into the record schema. Accounts reachable
// from two requested roots appear twice; there is no cross-scope
// de-duplication. Any failure aborts the whole build: no partial record is
// returned.
func Build(client orgdir.Client, scope ScopeRequest) (Record, error) {
	record := Record{Accounts: []Entry{}}

	for _, root := range scope.Roots {
		ou, err := orgtree.Resolve(client, root)
		if err != nil {
			return Record{}, err
		}
		accounts, err := orgtree.CollectAccounts(client, []orgdir.OU{ou}, scope.ActiveOnly, true)
		if err != nil {
			return Record{}, err
		}
		for _, account := range accounts {
			record.Accounts = append(record.Accounts, Entry{
				AccountID: account.ID,
				Email:     account.Email,
				Name:      account.Name,
				Paths:     orgtree.TagPaths(account.Path),
				Role:      fmt.Sprintf("arn:aws:iam::%s:role/%s", account.ID, scope.RoleName),
			})
		}
	}

	return record, nil
}
