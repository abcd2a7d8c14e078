package scene

import (
	"io"
	"os"

	"github.com/foomo/skeletonio/pkg/hierarchy"
	"github.com/foomo/skeletonio/skeleton"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/multierr"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var _ hierarchy.Host = (*Scene)(nil)

// DocumentNode one node in a scene document. Unlike a skeleton record it can
// describe nodes of any type and carries shape attachments.
type DocumentNode struct {
	Name string `json:"name"`
	Type string `json:"type"`
	hierarchy.TransformAttrs
	Joint    *hierarchy.JointAttrs `json:"joint,omitempty"`
	Shapes   []string              `json:"shapes,omitempty"`
	Children []*DocumentNode       `json:"children,omitempty"`
}

// Document the serialized form of a whole scene
type Document struct {
	Nodes []*DocumentNode `json:"nodes"`
}

// WriteDocument serializes the scene to w
func WriteDocument(w io.Writer, s *Scene) error {
	doc := &Document{Nodes: []*DocumentNode{}}
	for _, root := range s.roots {
		doc.Nodes = append(doc.Nodes, documentNode(root))
	}
	data, err := json.MarshalIndent(doc, "", skeleton.Indent)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadDocument builds a scene from a serialized document
func ReadDocument(r io.Reader) (*Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	s := New()
	for _, node := range doc.Nodes {
		if err := s.addDocumentNode(node, ""); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// ReadDocumentFile builds a scene from a document file on disk
func ReadDocumentFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	s, err := ReadDocument(f)
	if err := multierr.Append(err, f.Close()); err != nil {
		return nil, err
	}
	return s, nil
}

// ------------------------------------------------------------------------------------------------
// ~ Private
// ------------------------------------------------------------------------------------------------

func documentNode(node *Node) *DocumentNode {
	doc := &DocumentNode{
		Name:           node.name,
		Type:           node.nodeType,
		TransformAttrs: node.transform,
		Shapes:         node.shapes,
	}
	if node.nodeType == string(skeleton.KindJoint) {
		joint := node.joint
		doc.Joint = &joint
	}
	for _, child := range node.children {
		doc.Children = append(doc.Children, documentNode(child))
	}
	return doc
}

func (s *Scene) addDocumentNode(doc *DocumentNode, parent string) error {
	name, err := s.CreateNode(doc.Type, doc.Name)
	if err != nil {
		return err
	}
	if parent != "" {
		if err := s.SetParent(name, parent); err != nil {
			return err
		}
	}
	attrs := doc.TransformAttrs
	if err := s.SetTransformAttrs(name, &attrs); err != nil {
		return err
	}
	if doc.Joint != nil && doc.Type == string(skeleton.KindJoint) {
		joint := *doc.Joint
		if err := s.SetJointAttrs(name, &joint); err != nil {
			return err
		}
	}
	for _, shape := range doc.Shapes {
		if err := s.AddShape(name, shape); err != nil {
			return err
		}
	}
	for _, child := range doc.Children {
		if err := s.addDocumentNode(child, name); err != nil {
			return err
		}
	}
	return nil
}
