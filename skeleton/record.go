package skeleton

import (
	"fmt"
	"io"
	"strings"
)

// Kind is the structural role of a node in a hierarchy. Only joints and
// transforms are representable, everything else is pruned on capture.
type Kind string

const (
	KindJoint     Kind = "joint"
	KindTransform Kind = "transform"
)

// Valid reports whether k is one of the two structural kinds.
func (k Kind) Valid() bool {
	return k == KindJoint || k == KindTransform
}

// Vec3 a triple of floats as used for translate, rotate, scale and the like
type Vec3 [3]float64

// Truncated returns a copy of v with every component truncated
func (v Vec3) Truncated() Vec3 {
	return Vec3{Truncate(v[0]), Truncate(v[1]), Truncate(v[2])}
}

// Record node in a serialized hierarchy
type Record struct {
	Kind        Kind      `json:"nodeType"`
	Name        string    `json:"name"` // unique identifier - it is your responsibility, that they are unique
	Translate   Vec3      `json:"translate"`
	Rotate      Vec3      `json:"rotate"`
	Scale       Vec3      `json:"scale"`
	RotateOrder int       `json:"rotateOrder"` // one of the six axis rotation orderings
	RotateAxis  Vec3      `json:"rotateAxis"`
	JointOrient Vec3      `json:"jointOrient"`
	Radius      float64   `json:"radius"`
	Side        int       `json:"side"`
	Type        int       `json:"type"`
	OtherType   string    `json:"otherType"` // free text label, used when Type is the "other" sentinel
	JointTypeX  int       `json:"jointTypeX"`
	JointTypeY  int       `json:"jointTypeY"`
	JointTypeZ  int       `json:"jointTypeZ"`
	Children    []*Record `json:"children"` // ordered - sibling order is semantically significant
}

// Count the number of records in the subtree including the record itself
func (r *Record) Count() int {
	count := 1
	for _, child := range r.Children {
		count += child.Count()
	}
	return count
}

// Depth the longest chain of records from this record down to a leaf
func (r *Record) Depth() int {
	depth := 0
	for _, child := range r.Children {
		if childDepth := child.Depth(); childDepth > depth {
			depth = childDepth
		}
	}
	return depth + 1
}

// Joints counts the records of kind joint in the subtree
func (r *Record) Joints() int {
	count := 0
	if r.Kind == KindJoint {
		count = 1
	}
	for _, child := range r.Children {
		count += child.Joints()
	}
	return count
}

// PrintRecord essentially a recursive dump
func (r *Record) PrintRecord(w io.Writer, level int) {
	prefix := strings.Repeat(Indent, level)
	fmt.Fprintf(w, "%s%s (%s)\n", prefix, r.Name, r.Kind)
	for _, child := range r.Children {
		child.PrintRecord(w, level+1)
	}
}
