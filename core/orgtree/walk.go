package orgtree

import (
	"fmt"
	"strings"

	coreerrors "github.com/orgpull/orgpull/core/errors"
	"github.com/orgpull/orgpull/core/orgdir"
)

// maxTreeDepth bounds the subtree walk. The provider guarantees the
// hierarchy is a tree of modest depth; hitting this bound means the
// invariant is broken and the walk fails closed instead of looping.
const maxTreeDepth = 32

// EnumerateSubtree returns ou and every OU below it, pre-order with the
// starting node first and provider sibling order preserved. Each discovered
// child is assigned the path {parent path minus trailing slash}/{child name},
// so the root's children get single-leading-slash paths.
//
// The walk uses an explicit stack rather than recursion so a malformed
// (cyclic or overly deep) hierarchy surfaces as an internal failure.
func EnumerateSubtree(client orgdir.Client, ou orgdir.OU) ([]orgdir.OU, error) {
	type frame struct {
		ou    orgdir.OU
		depth int
	}

	discovered := make([]orgdir.OU, 0, 8)
	stack := []frame{{ou: ou}}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current.depth > maxTreeDepth {
			return nil, coreerrors.Wrap(
				fmt.Errorf("organization hierarchy exceeds depth %d under %q", maxTreeDepth, ou.Path),
				coreerrors.CategoryInternal,
				"hierarchy_too_deep",
				"the directory returned a structure deeper than any well-formed organization tree",
				false,
			)
		}

		discovered = append(discovered, current.ou)

		children, err := listChildren(client, current.ou.ID)
		if err != nil {
			return nil, err
		}

		parentPath := strings.TrimRight(current.ou.Path, "/")
		for index := len(children) - 1; index >= 0; index-- {
			child := children[index]
			child.Path = parentPath + "/" + child.Name
			stack = append(stack, frame{ou: child, depth: current.depth + 1})
		}
	}

	return discovered, nil
}

func listChildren(client orgdir.Client, parentID string) ([]orgdir.OU, error) {
	var children []orgdir.OU
	pageToken := ""
	for {
		page, nextToken, err := client.ChildOUs(parentID, pageToken)
		if err != nil {
			return nil, err
		}
		children = append(children, page...)
		if nextToken == "" {
			return children, nil
		}
		pageToken = nextToken
	}
}
