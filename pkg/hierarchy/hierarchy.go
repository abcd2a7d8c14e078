// Package hierarchy walks live joint/transform hierarchies and rebuilds them
// from serialized records. The live scene graph is only reached through the
// Host interface, so the traversal can run against any implementation.
package hierarchy

import (
	"github.com/foomo/skeletonio/skeleton"
)

// TransformAttrs the attribute set shared by joints and transforms
type TransformAttrs struct {
	Translate   skeleton.Vec3 `json:"translate"`
	Rotate      skeleton.Vec3 `json:"rotate"`
	Scale       skeleton.Vec3 `json:"scale"`
	RotateOrder int           `json:"rotateOrder"`
	RotateAxis  skeleton.Vec3 `json:"rotateAxis"`
}

// JointAttrs attributes that only exist on joints
type JointAttrs struct {
	JointOrient skeleton.Vec3 `json:"jointOrient"`
	Radius      float64       `json:"radius"`
	Side        int           `json:"side"`
	Type        int           `json:"type"`
	OtherType   string        `json:"otherType"`
	JointTypeX  int           `json:"jointTypeX"`
	JointTypeY  int           `json:"jointTypeY"`
	JointTypeZ  int           `json:"jointTypeZ"`
}

// Host is the capability surface the serializer needs from a scene graph.
// Nodes are addressed by name.
type Host interface {
	// NodeType returns the type of the named node, e.g. "joint" or "mesh"
	NodeType(node string) (string, error)
	// HasShapes reports whether the node carries renderable shape content
	HasShapes(node string) (bool, error)
	// Children lists the direct structural children in sibling order
	Children(node string) ([]string, error)
	// TransformAttrs reads the shared attribute set
	TransformAttrs(node string) (*TransformAttrs, error)
	// JointAttrs reads the joint only attribute set
	JointAttrs(node string) (*JointAttrs, error)
	// CreateNode creates a node of the given type under no parent and
	// returns the name the scene graph settled on
	CreateNode(nodeType, name string) (string, error)
	// SetParent moves node under parent, appending to its children
	SetParent(node, parent string) error
	// SetTransformAttrs writes the shared attribute set
	SetTransformAttrs(node string, attrs *TransformAttrs) error
	// SetJointAttrs writes the joint only attribute set
	SetJointAttrs(node string, attrs *JointAttrs) error
}
