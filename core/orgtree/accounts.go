package orgtree

import "github.com/orgpull/orgpull/core/orgdir"

// CollectAccounts pages through the accounts directly owned by each OU in
// ous, stamping each account with its owning OU's path. With recursive set,
// the input list is first expanded to every descendant OU via
// EnumerateSubtree. With activeOnly set, accounts whose status is not the
// active sentinel are dropped.
//
// No de-duplication by account id is performed: an OU appearing twice in the
// input yields its accounts twice. Pagination failures are fatal; pages
// already consumed are not rolled back.
func CollectAccounts(client orgdir.Client, ous []orgdir.OU, activeOnly, recursive bool) ([]orgdir.Account, error) {
	targets := ous
	if recursive {
		expanded := make([]orgdir.OU, 0, len(ous))
		for _, ou := range ous {
			subtree, err := EnumerateSubtree(client, ou)
			if err != nil {
				return nil, err
			}
			expanded = append(expanded, subtree...)
		}
		targets = expanded
	}

	collected := make([]orgdir.Account, 0, len(targets))
	for _, ou := range targets {
		pageToken := ""
		for {
			accounts, nextToken, err := client.Accounts(ou.ID, pageToken)
			if err != nil {
				return nil, err
			}
			for _, account := range accounts {
				if activeOnly && account.Status != orgdir.StatusActive {
					continue
				}
				account.Path = ou.Path
				collected = append(collected, account)
			}
			if nextToken == "" {
				break
			}
			pageToken = nextToken
		}
	}

	return collected, nil
}
