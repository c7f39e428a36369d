package orgtree

import "strings"

// TagPrefix marks membership tags derived from an account's owning path.
const TagPrefix = "path:"

// TagPaths expands an owning path into its ordered ancestor-inclusive
// prefix tags, root to leaf: /a/b/c becomes
// [path:/a path:/a/b path:/a/b/c]. An owning path of "/" (an account held
// directly at the tree root) yields the single tag "path:/".
func TagPaths(owningPath string) []string {
	trimmed := strings.Trim(owningPath, "/")
	if trimmed == "" {
		return []string{TagPrefix + "/"}
	}

	segments := strings.Split(trimmed, "/")
	tags := make([]string, 0, len(segments))
	prefix := ""
	for _, segment := range segments {
		prefix += "/" + segment
		tags = append(tags, TagPrefix+prefix)
	}
	return tags
}
