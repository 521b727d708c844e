package editor

import (
	"net/url"
	"strings"
)

// ShareURL returns the public link of a tree: <origin>/tree/<treeID>.
// A trailing slash on origin is ignored and the id is path-escaped.
func ShareURL(origin, treeID string) string {
	return strings.TrimRight(origin, "/") + "/tree/" + url.PathEscape(treeID)
}

// ShareURL returns the public link of the tree being edited.
func (s *Store) ShareURL(origin string) string {
	return ShareURL(origin, s.tree.ID)
}
