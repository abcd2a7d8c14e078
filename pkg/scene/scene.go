// Package scene is a minimal in-memory scene graph. It stands in for the
// content creation application that owns the real hierarchy and implements
// hierarchy.Host, which makes it both the test double and the target for
// rebuilding skeletons outside that application.
package scene

import (
	"github.com/foomo/skeletonio/pkg/hierarchy"
	"github.com/foomo/skeletonio/skeleton"
	"github.com/pkg/errors"
)

var (
	ErrNodeNotFound  = errors.New("node not found")
	ErrDuplicateNode = errors.New("node already exists")
)

// Node a named node in the scene graph
type Node struct {
	name      string
	nodeType  string
	parent    *Node
	children  []*Node
	shapes    []string
	transform hierarchy.TransformAttrs
	joint     hierarchy.JointAttrs
}

// Scene holds nodes by name. Node names are unique per scene, creating a
// second node under a taken name fails.
type Scene struct {
	nodes map[string]*Node
	roots []*Node
}

// New an empty scene
func New() *Scene {
	return &Scene{
		nodes: map[string]*Node{},
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Scene graph mutation
// ------------------------------------------------------------------------------------------------

// CreateNode creates a parentless node of the given type. Joints start out
// with radius 1 and unit scale, everything else with unit scale only.
func (s *Scene) CreateNode(nodeType, name string) (string, error) {
	if _, ok := s.nodes[name]; ok {
		return "", errors.Wrap(ErrDuplicateNode, name)
	}
	node := &Node{
		name:     name,
		nodeType: nodeType,
		transform: hierarchy.TransformAttrs{
			Scale: skeleton.Vec3{1, 1, 1},
		},
	}
	if nodeType == string(skeleton.KindJoint) {
		node.joint.Radius = 1
	}
	s.nodes[name] = node
	s.roots = append(s.roots, node)
	return name, nil
}

// SetParent moves node under parent, appending it to the parent's children
func (s *Scene) SetParent(name, parent string) error {
	node, ok := s.nodes[name]
	if !ok {
		return errors.Wrap(ErrNodeNotFound, name)
	}
	parentNode, ok := s.nodes[parent]
	if !ok {
		return errors.Wrap(ErrNodeNotFound, parent)
	}
	s.detach(node)
	node.parent = parentNode
	parentNode.children = append(parentNode.children, node)
	return nil
}

// AddShape attaches renderable shape content to a node
func (s *Scene) AddShape(name, shape string) error {
	node, ok := s.nodes[name]
	if !ok {
		return errors.Wrap(ErrNodeNotFound, name)
	}
	node.shapes = append(node.shapes, shape)
	return nil
}

// SetTransformAttrs writes the shared attribute set
func (s *Scene) SetTransformAttrs(name string, attrs *hierarchy.TransformAttrs) error {
	node, ok := s.nodes[name]
	if !ok {
		return errors.Wrap(ErrNodeNotFound, name)
	}
	node.transform = *attrs
	return nil
}

// SetJointAttrs writes the joint only attribute set
func (s *Scene) SetJointAttrs(name string, attrs *hierarchy.JointAttrs) error {
	node, ok := s.nodes[name]
	if !ok {
		return errors.Wrap(ErrNodeNotFound, name)
	}
	if node.nodeType != string(skeleton.KindJoint) {
		return errors.Errorf("node %q is not a joint", name)
	}
	node.joint = *attrs
	return nil
}

// ------------------------------------------------------------------------------------------------
// ~ Scene graph queries
// ------------------------------------------------------------------------------------------------

// NodeType the type of the named node
func (s *Scene) NodeType(name string) (string, error) {
	node, ok := s.nodes[name]
	if !ok {
		return "", errors.Wrap(ErrNodeNotFound, name)
	}
	return node.nodeType, nil
}

// HasShapes reports whether the node carries shape content
func (s *Scene) HasShapes(name string) (bool, error) {
	node, ok := s.nodes[name]
	if !ok {
		return false, errors.Wrap(ErrNodeNotFound, name)
	}
	return len(node.shapes) > 0, nil
}

// Children direct children in sibling order
func (s *Scene) Children(name string) ([]string, error) {
	node, ok := s.nodes[name]
	if !ok {
		return nil, errors.Wrap(ErrNodeNotFound, name)
	}
	children := make([]string, len(node.children))
	for i, child := range node.children {
		children[i] = child.name
	}
	return children, nil
}

// TransformAttrs reads the shared attribute set
func (s *Scene) TransformAttrs(name string) (*hierarchy.TransformAttrs, error) {
	node, ok := s.nodes[name]
	if !ok {
		return nil, errors.Wrap(ErrNodeNotFound, name)
	}
	attrs := node.transform
	return &attrs, nil
}

// JointAttrs reads the joint only attribute set
func (s *Scene) JointAttrs(name string) (*hierarchy.JointAttrs, error) {
	node, ok := s.nodes[name]
	if !ok {
		return nil, errors.Wrap(ErrNodeNotFound, name)
	}
	if node.nodeType != string(skeleton.KindJoint) {
		return nil, errors.Errorf("node %q is not a joint", name)
	}
	attrs := node.joint
	return &attrs, nil
}

// Roots the names of all parentless nodes in creation order
func (s *Scene) Roots() []string {
	roots := make([]string, len(s.roots))
	for i, node := range s.roots {
		roots[i] = node.name
	}
	return roots
}

// Len the number of nodes in the scene
func (s *Scene) Len() int {
	return len(s.nodes)
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func (s *Scene) detach(node *Node) {
	if node.parent == nil {
		for i, root := range s.roots {
			if root == node {
				s.roots = append(s.roots[:i], s.roots[i+1:]...)
				break
			}
		}
		return
	}
	siblings := node.parent.children
	for i, sibling := range siblings {
		if sibling == node {
			node.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	node.parent = nil
}
