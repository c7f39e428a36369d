// Package orgdir defines the directory capability the traversal core
// consumes: paginated parent-child lookups against an organization
// hierarchy of organizational units and member accounts.
package orgdir

// StatusActive is the provider sentinel for an account in good standing.
const StatusActive = "ACTIVE"

// OU is one container node in the organization hierarchy. Path is assigned
// during resolution or subtree enumeration and is never mutated afterwards.
type OU struct {
	ID   string
	Name string
	Path string
}

// Account is one member account as listed under a single OU. Path is the
// owning OU's path, set at collection time.
type Account struct {
	ID     string
	Email  string
	Name   string
	Status string
	Path   string
}

// Client is the read-only lookup surface of the organization directory.
// Calls are synchronous and page-level: an empty page token requests the
// first page, a non-empty returned token means more pages remain. The core
// performs no retries; failures propagate to the caller as fatal.
type Client interface {
	// Root returns the top node of the hierarchy.
	Root() (OU, error)

	// ChildOUs lists the immediate child OUs of parentID, one page at a time.
	ChildOUs(parentID, pageToken string) ([]OU, string, error)

	// Accounts lists the accounts directly owned by parentID, one page at a time.
	Accounts(parentID, pageToken string) ([]Account, string, error)
}
