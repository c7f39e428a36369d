// Package orgtree implements the organization tree traversal: resolving
// slash paths to OU nodes, enumerating subtrees, collecting member
// accounts, and deriving path membership tags.
package orgtree

import (
	"fmt"
	"strings"

	coreerrors "github.com/orgpull/orgpull/core/errors"
	"github.com/orgpull/orgpull/core/orgdir"
)

// Resolve walks a slash-delimited path child-by-name from the tree root and
// returns the matching OU. "/" (or any path with no named segments) resolves
// to the root without a single child lookup. The returned OU keeps the
// caller's original path string, so slash normalization quirks in the input
// remain caller-visible.
//
// Duplicate sibling names are not disambiguated: the first child returned by
// the provider with a matching name wins. This is a known limitation
// inherited from the directory's lack of a uniqueness guarantee on names.
func Resolve(client orgdir.Client, path string) (orgdir.OU, error) {
	current, err := client.Root()
	if err != nil {
		return orgdir.OU{}, err
	}

	for _, segment := range pathSegments(path) {
		child, found, err := findChildByName(client, current.ID, segment)
		if err != nil {
			return orgdir.OU{}, err
		}
		if !found {
			return orgdir.OU{}, coreerrors.Wrap(
				fmt.Errorf("organizational unit path %q not found", path),
				coreerrors.CategoryPathNotFound,
				"path_not_found",
				"check the scope paths in the source configuration",
				false,
			)
		}
		current = child
	}

	current.Path = path
	return current, nil
}

func pathSegments(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// findChildByName pages through the immediate children of parentID until a
// name match is found or the pages run out.
func findChildByName(client orgdir.Client, parentID, name string) (orgdir.OU, bool, error) {
	pageToken := ""
	for {
		children, nextToken, err := client.ChildOUs(parentID, pageToken)
		if err != nil {
			return orgdir.OU{}, false, err
		}
		for _, child := range children {
			if child.Name == name {
				return child, true, nil
			}
		}
		if nextToken == "" {
			return orgdir.OU{}, false, nil
		}
		pageToken = nextToken
	}
}
