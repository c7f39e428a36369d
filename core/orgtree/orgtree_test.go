package orgtree

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	coreerrors "github.com/orgpull/orgpull/core/errors"
	"github.com/orgpull/orgpull/core/orgdir"
	"github.com/orgpull/orgpull/internal/testutil"
)

// demoDirectory is the shared fixture: root -> company -> {prod, dev},
// two active accounts under prod, one suspended under dev.
func demoDirectory() *testutil.FakeDirectory {
	return &testutil.FakeDirectory{
		RootOU: orgdir.OU{ID: "r-1", Name: "Root"},
		ChildrenByParent: map[string][]orgdir.OU{
			"r-1":        {{ID: "ou-company", Name: "company"}},
			"ou-company": {{ID: "ou-prod", Name: "prod"}, {ID: "ou-dev", Name: "dev"}},
		},
		AccountsByParent: map[string][]orgdir.Account{
			"ou-prod": {
				{ID: "111111111111", Email: "prod-a@example.com", Name: "prod-a", Status: orgdir.StatusActive},
				{ID: "222222222222", Email: "prod-b@example.com", Name: "prod-b", Status: orgdir.StatusActive},
			},
			"ou-dev": {
				{ID: "333333333333", Email: "dev-a@example.com", Name: "dev-a", Status: "SUSPENDED"},
			},
		},
	}
}

func TestResolveRootWithoutChildLookups(t *testing.T) {
	directory := demoDirectory()
	ou, err := Resolve(directory, "/")
	if err != nil {
		t.Fatalf("resolve root: %v", err)
	}
	if ou.ID != "r-1" || ou.Path != "/" {
		t.Fatalf("unexpected root: %+v", ou)
	}
	if directory.ChildCalls != 0 {
		t.Fatalf("expected zero child lookups for root, got %d", directory.ChildCalls)
	}
}

func TestResolveNestedPath(t *testing.T) {
	directory := demoDirectory()
	ou, err := Resolve(directory, "/company/prod")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ou.ID != "ou-prod" {
		t.Fatalf("unexpected OU: %+v", ou)
	}
	if ou.Path != "/company/prod" {
		t.Fatalf("unexpected path: %q", ou.Path)
	}
}

func TestResolveKeepsCallerPathSpelling(t *testing.T) {
	directory := demoDirectory()
	ou, err := Resolve(directory, "/company/prod/")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ou.Path != "/company/prod/" {
		t.Fatalf("expected caller spelling preserved, got %q", ou.Path)
	}
}

func TestResolveNotFoundNamesFullPath(t *testing.T) {
	directory := demoDirectory()
	_, err := Resolve(directory, "/nope")
	if err == nil {
		t.Fatal("expected path not found error")
	}
	if coreerrors.CategoryOf(err) != coreerrors.CategoryPathNotFound {
		t.Fatalf("unexpected category: %s", coreerrors.CategoryOf(err))
	}
	if !strings.Contains(err.Error(), "/nope") {
		t.Fatalf("expected error to mention /nope, got: %v", err)
	}
}

func TestResolveMidPathNotFoundNamesFullPath(t *testing.T) {
	directory := demoDirectory()
	_, err := Resolve(directory, "/company/staging/web")
	if err == nil {
		t.Fatal("expected path not found error")
	}
	if !strings.Contains(err.Error(), "/company/staging/web") {
		t.Fatalf("expected full requested path in error, got: %v", err)
	}
}

func TestResolveAcrossPages(t *testing.T) {
	directory := demoDirectory()
	directory.PageSize = 1
	ou, err := Resolve(directory, "/company/dev")
	if err != nil {
		t.Fatalf("resolve paginated: %v", err)
	}
	if ou.ID != "ou-dev" {
		t.Fatalf("unexpected OU: %+v", ou)
	}
	// dev is on the second single-item page under company.
	if directory.ChildCalls < 3 {
		t.Fatalf("expected paginated lookups, got %d calls", directory.ChildCalls)
	}
}

func TestResolvePropagatesDirectoryFailure(t *testing.T) {
	directory := demoDirectory()
	directory.ChildErr = stderrors.New("throttled")
	_, err := Resolve(directory, "/company")
	if !stderrors.Is(err, directory.ChildErr) {
		t.Fatalf("expected directory failure to propagate, got: %v", err)
	}
}

func TestEnumerateSubtreePreOrder(t *testing.T) {
	directory := demoDirectory()
	root, err := Resolve(directory, "/")
	if err != nil {
		t.Fatalf("resolve root: %v", err)
	}
	ous, err := EnumerateSubtree(directory, root)
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}

	wantPaths := []string{"/", "/company", "/company/prod", "/company/dev"}
	if len(ous) != len(wantPaths) {
		t.Fatalf("expected %d OUs, got %d: %+v", len(wantPaths), len(ous), ous)
	}
	for index, want := range wantPaths {
		if ous[index].Path != want {
			t.Fatalf("position %d: expected path %q got %q", index, want, ous[index].Path)
		}
	}
}

func TestEnumerateSubtreeLeaf(t *testing.T) {
	directory := demoDirectory()
	leaf := orgdir.OU{ID: "ou-prod", Name: "prod", Path: "/company/prod"}
	ous, err := EnumerateSubtree(directory, leaf)
	if err != nil {
		t.Fatalf("enumerate leaf: %v", err)
	}
	if len(ous) != 1 || ous[0].ID != "ou-prod" {
		t.Fatalf("expected the leaf alone, got %+v", ous)
	}
}

func TestEnumerateSubtreeAcrossPages(t *testing.T) {
	directory := demoDirectory()
	directory.PageSize = 1
	root, err := Resolve(directory, "/")
	if err != nil {
		t.Fatalf("resolve root: %v", err)
	}
	ous, err := EnumerateSubtree(directory, root)
	if err != nil {
		t.Fatalf("enumerate paginated: %v", err)
	}
	if len(ous) != 4 {
		t.Fatalf("expected 4 OUs, got %d", len(ous))
	}
}

func TestEnumerateSubtreeDepthGuard(t *testing.T) {
	children := map[string][]orgdir.OU{}
	parent := "r-1"
	for level := 0; level < maxTreeDepth+5; level++ {
		id := fmt.Sprintf("ou-%d", level)
		children[parent] = []orgdir.OU{{ID: id, Name: fmt.Sprintf("level%d", level)}}
		parent = id
	}
	directory := &testutil.FakeDirectory{
		RootOU:           orgdir.OU{ID: "r-1", Name: "Root"},
		ChildrenByParent: children,
	}

	_, err := EnumerateSubtree(directory, orgdir.OU{ID: "r-1", Path: "/"})
	if err == nil {
		t.Fatal("expected depth guard failure")
	}
	if coreerrors.CategoryOf(err) != coreerrors.CategoryInternal {
		t.Fatalf("unexpected category: %s", coreerrors.CategoryOf(err))
	}
}

func TestCollectAccountsScenario(t *testing.T) {
	directory := demoDirectory()
	prod, err := Resolve(directory, "/company/prod")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	accounts, err := CollectAccounts(directory, []orgdir.OU{prod}, true, true)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 active accounts, got %d", len(accounts))
	}
	for _, account := range accounts {
		if account.Path != "/company/prod" {
			t.Fatalf("unexpected owning path: %q", account.Path)
		}
		tags := TagPaths(account.Path)
		if len(tags) != 2 || tags[0] != "path:/company" || tags[1] != "path:/company/prod" {
			t.Fatalf("unexpected tags: %v", tags)
		}
	}
}

func TestCollectAccountsActiveFilterIsSubset(t *testing.T) {
	directory := demoDirectory()
	root, err := Resolve(directory, "/")
	if err != nil {
		t.Fatalf("resolve root: %v", err)
	}

	all, err := CollectAccounts(directory, []orgdir.OU{root}, false, true)
	if err != nil {
		t.Fatalf("collect all: %v", err)
	}
	active, err := CollectAccounts(demoDirectory(), []orgdir.OU{root}, true, true)
	if err != nil {
		t.Fatalf("collect active: %v", err)
	}

	if len(all) != 3 || len(active) != 2 {
		t.Fatalf("expected 3 total and 2 active, got %d and %d", len(all), len(active))
	}
	allIDs := map[string]bool{}
	for _, account := range all {
		allIDs[account.ID] = true
	}
	for _, account := range active {
		if !allIDs[account.ID] {
			t.Fatalf("active account %s missing from unfiltered set", account.ID)
		}
		if account.Status != orgdir.StatusActive {
			t.Fatalf("inactive account %s passed the filter", account.ID)
		}
	}
}

func TestCollectAccountsNonRecursive(t *testing.T) {
	directory := demoDirectory()
	company := orgdir.OU{ID: "ou-company", Name: "company", Path: "/company"}
	accounts, err := CollectAccounts(directory, []orgdir.OU{company}, false, false)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(accounts) != 0 {
		t.Fatalf("expected no directly-owned accounts under company, got %d", len(accounts))
	}
}

func TestCollectAccountsDuplicateInput(t *testing.T) {
	directory := demoDirectory()
	prod := orgdir.OU{ID: "ou-prod", Name: "prod", Path: "/company/prod"}
	accounts, err := CollectAccounts(directory, []orgdir.OU{prod, prod}, false, false)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(accounts) != 4 {
		t.Fatalf("expected duplicated accounts for duplicated OU input, got %d", len(accounts))
	}
}

func TestCollectAccountsAcrossPages(t *testing.T) {
	directory := demoDirectory()
	directory.PageSize = 1
	prod := orgdir.OU{ID: "ou-prod", Name: "prod", Path: "/company/prod"}
	accounts, err := CollectAccounts(directory, []orgdir.OU{prod}, false, false)
	if err != nil {
		t.Fatalf("collect paginated: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts across pages, got %d", len(accounts))
	}
}

func TestCollectAccountsPropagatesPageFailure(t *testing.T) {
	directory := demoDirectory()
	directory.AccountErr = stderrors.New("page fetch failed")
	prod := orgdir.OU{ID: "ou-prod", Name: "prod", Path: "/company/prod"}
	_, err := CollectAccounts(directory, []orgdir.OU{prod}, false, false)
	if !stderrors.Is(err, directory.AccountErr) {
		t.Fatalf("expected page failure to propagate, got: %v", err)
	}
}

func TestTagPaths(t *testing.T) {
	cases := []struct {
		owningPath string
		want       []string
	}{
		{"/a/b/c", []string{"path:/a", "path:/a/b", "path:/a/b/c"}},
		{"/company", []string{"path:/company"}},
		{"/company/prod/", []string{"path:/company", "path:/company/prod"}},
		{"company/prod", []string{"path:/company", "path:/company/prod"}},
		{"/", []string{"path:/"}},
	}
	for _, tc := range cases {
		got := TagPaths(tc.owningPath)
		if len(got) != len(tc.want) {
			t.Fatalf("%q: expected %v got %v", tc.owningPath, tc.want, got)
		}
		for index := range got {
			if got[index] != tc.want[index] {
				t.Fatalf("%q: expected %v got %v", tc.owningPath, tc.want, got)
			}
		}
	}
}

func TestTagPathsLastTagMatchesNormalizedOwningPath(t *testing.T) {
	owningPath := "/company/prod"
	tags := TagPaths(owningPath)
	if tags[len(tags)-1] != "path:"+owningPath {
		t.Fatalf("expected last tag to equal normalized owning path, got %v", tags)
	}
}
