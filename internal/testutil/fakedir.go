// Package testutil holds test doubles shared across packages, chiefly an
// in-memory paginated organization directory.
package testutil

import (
	"strconv"

	"github.com/orgpull/orgpull/core/orgdir"
)

// FakeDirectory is an in-memory orgdir.Client. Hierarchy is described by
// parent-id keyed maps; pagination slices results into PageSize chunks
// (0 means everything in one page) with numeric offset tokens. Call
// counters and error injection support traversal assertions.
type FakeDirectory struct {
	RootOU           orgdir.OU
	ChildrenByParent map[string][]orgdir.OU
	AccountsByParent map[string][]orgdir.Account
	PageSize         int

	RootErr    error
	ChildErr   error
	AccountErr error

	RootCalls    int
	ChildCalls   int
	AccountCalls int
}

func (f *FakeDirectory) Root() (orgdir.OU, error) {
	f.RootCalls++
	if f.RootErr != nil {
		return orgdir.OU{}, f.RootErr
	}
	root := f.RootOU
	if root.Path == "" {
		root.Path = "/"
	}
	return root, nil
}

func (f *FakeDirectory) ChildOUs(parentID, pageToken string) ([]orgdir.OU, string, error) {
	f.ChildCalls++
	if f.ChildErr != nil {
		return nil, "", f.ChildErr
	}
	all := f.ChildrenByParent[parentID]
	start, end, nextToken := f.pageBounds(len(all), pageToken)
	return all[start:end], nextToken, nil
}

func (f *FakeDirectory) Accounts(parentID, pageToken string) ([]orgdir.Account, string, error) {
	f.AccountCalls++
	if f.AccountErr != nil {
		return nil, "", f.AccountErr
	}
	all := f.AccountsByParent[parentID]
	start, end, nextToken := f.pageBounds(len(all), pageToken)
	return all[start:end], nextToken, nil
}

func (f *FakeDirectory) pageBounds(total int, pageToken string) (int, int, string) {
	start := 0
	if pageToken != "" {
		start, _ = strconv.Atoi(pageToken)
	}
	if start > total {
		start = total
	}
	if f.PageSize <= 0 {
		return start, total, ""
	}
	end := start + f.PageSize
	if end >= total {
		return start, total, ""
	}
	return start, end, strconv.Itoa(end)
}
