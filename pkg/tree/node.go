package tree

import (
	"slices"

	"github.com/matzehuels/skilltree/pkg/errors"
)

// Status is the learning state of a skill.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ParseStatus converts a string to a Status. The empty string maps to
// StatusNotStarted.
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return StatusNotStarted, nil
	}
	st := Status(s)
	if !st.Valid() {
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown status %q", s)
	}
	return st, nil
}

// Difficulty is an optional effort rating used by the canvas builder.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is empty or a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case "", DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Point is a canvas coordinate in world space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Node is a single skill. Progress and Status are authoritative for leaves
// and derived by Recalc for nodes with children.
type Node struct {
	ID          string
	Name        string
	Status      Status
	Progress    int
	Description string
	Notes       string
	Resources   []string
	Category    string
	Difficulty  Difficulty
	Color       string

	// Position is the node's canvas location once it has been placed or
	// dragged. Nil means the renderer should seed a layout.
	Position *Point
}

func (n *Node) clone() *Node {
	c := *n
	c.Resources = slices.Clone(n.Resources)
	if n.Position != nil {
		p := *n.Position
		c.Position = &p
	}
	return &c
}

// Spec is the nested form of a node used when inserting subtrees and when
// reading trees from JSON.
type Spec struct {
	Node
	Dependencies []string
	Children     []Spec
}

// EdgeKind distinguishes ownership from dependency edges.
type EdgeKind int

const (
	// EdgeContains links a parent (From) to an owned child (To).
	EdgeContains EdgeKind = iota
	// EdgeDependsOn links a prerequisite (From) to the skill requiring it (To).
	EdgeDependsOn
)

func (k EdgeKind) String() string {
	if k == EdgeContains {
		return "contains"
	}
	return "depends-on"
}

// Edge is a directed edge between two node ids.
type Edge struct {
	From string
	To   string
	Kind EdgeKind
}

// Ptr returns a pointer to v. It keeps Patch literals short.
func Ptr[T any](v T) *T { return &v }
