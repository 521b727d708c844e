// Package server is the read-only share viewer.
//
// A share link has the form <origin>/tree/<id> (see [editor.ShareURL]).
// The server answers it with the tree drawn as SVG and offers the same tree
// as JSON and Graphviz DOT:
//
//	GET /                   index of shared trees (HTML)
//	GET /tree/{id}          SVG; ?style=cards (default) or ?style=hexagons
//	GET /tree/{id}/export   SkillTree JSON
//	GET /tree/{id}/dot      Graphviz DOT source
//
// Trees are held in memory for the lifetime of the process. Rendered SVGs
// are cached per tree and style until the tree is replaced with Add. Routing uses
// [github.com/go-chi/chi/v5].
//
// [editor.ShareURL]: github.com/matzehuels/skilltree/pkg/editor.ShareURL
package server
