package scene

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foomo/skeletonio/pkg/hierarchy"
	"github.com/foomo/skeletonio/skeleton"
)

func documentScene(t *testing.T) *Scene {
	t.Helper()
	s := New()
	_, err := s.CreateNode("joint", "root")
	require.NoError(t, err)
	require.NoError(t, s.SetTransformAttrs("root", &hierarchy.TransformAttrs{
		Translate: skeleton.Vec3{0, 10, 0},
		Scale:     skeleton.Vec3{1, 1, 1},
	}))
	require.NoError(t, s.SetJointAttrs("root", &hierarchy.JointAttrs{
		Radius:     0.5,
		Side:       1,
		JointTypeX: 2,
	}))
	_, err = s.CreateNode("transform", "geo")
	require.NoError(t, err)
	require.NoError(t, s.SetParent("geo", "root"))
	require.NoError(t, s.AddShape("geo", "geoShape"))
	_, err = s.CreateNode("joint", "tip")
	require.NoError(t, err)
	require.NoError(t, s.SetParent("tip", "root"))
	return s
}

func TestWriteReadDocument(t *testing.T) {
	var (
		s   = documentScene(t)
		buf bytes.Buffer
	)

	require.NoError(t, WriteDocument(&buf, s))

	got, err := ReadDocument(&buf)
	require.NoError(t, err)
	assert.Equal(t, s.Len(), got.Len())
	assert.Equal(t, s.Roots(), got.Roots())

	children, err := got.Children("root")
	require.NoError(t, err)
	assert.Equal(t, []string{"geo", "tip"}, children)

	hasShapes, err := got.HasShapes("geo")
	require.NoError(t, err)
	assert.True(t, hasShapes)

	joint, err := got.JointAttrs("root")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, joint.Radius, 0)
	assert.Equal(t, 1, joint.Side)
	assert.Equal(t, 2, joint.JointTypeX)
}

func TestReadDocumentDuplicateName(t *testing.T) {
	_, err := ReadDocument(bytes.NewReader([]byte(`{
    "nodes": [
        {"name": "root", "type": "joint"},
        {"name": "root", "type": "transform"}
    ]
}`)))
	require.ErrorIs(t, err, ErrDuplicateNode)
}

func TestReadDocumentIgnoresJointBlockOnTransform(t *testing.T) {
	s, err := ReadDocument(bytes.NewReader([]byte(`{
    "nodes": [
        {"name": "grp", "type": "transform", "joint": {"radius": 3}}
    ]
}`)))
	require.NoError(t, err)

	_, err = s.JointAttrs("grp")
	require.Error(t, err)
}

func TestReadDocumentFile(t *testing.T) {
	_, err := ReadDocumentFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
