package hierarchy_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/foomo/skeletonio/pkg/hierarchy"
	"github.com/foomo/skeletonio/pkg/scene"
	"github.com/foomo/skeletonio/skeleton"
)

func TestDump(t *testing.T) {
	var (
		l   = zaptest.NewLogger(t)
		s   = testScene(t)
		buf bytes.Buffer
	)

	record, err := hierarchy.New(l, s).Dump("root", &buf)
	require.NoError(t, err)
	require.NotNil(t, record)

	decoded, err := skeleton.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, record, decoded)
}

func TestDumpFilteredRootWritesNothing(t *testing.T) {
	var (
		l   = zaptest.NewLogger(t)
		s   = scene.New()
		buf bytes.Buffer
	)
	mustCreate(t, s, "transform", "geo", "")
	require.NoError(t, s.AddShape("geo", "geoShape"))

	record, err := hierarchy.New(l, s).Dump("geo", &buf)
	require.NoError(t, err)
	assert.Nil(t, record)
	assert.Zero(t, buf.Len())
}

func TestDumpFileFilteredRootKeepsExistingFile(t *testing.T) {
	var (
		l    = zaptest.NewLogger(t)
		s    = scene.New()
		path = filepath.Join(t.TempDir(), "skeleton.json")
	)
	mustCreate(t, s, "transform", "geo", "")
	require.NoError(t, s.AddShape("geo", "geoShape"))
	require.NoError(t, os.WriteFile(path, []byte(`{"nodeType": "joint"}`), 0600))

	record, err := hierarchy.New(l, s).DumpFile("geo", path)
	require.NoError(t, err)
	assert.Nil(t, record)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"nodeType": "joint"}`), data, "a filtered root must not touch the file")
}

func TestDumpFileLoadFile(t *testing.T) {
	var (
		l    = zaptest.NewLogger(t)
		s    = testScene(t)
		path = filepath.Join(t.TempDir(), "skeleton.json")
	)

	record, err := hierarchy.New(l, s).DumpFile("root", path)
	require.NoError(t, err)
	require.NotNil(t, record)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 0)

	rebuilt := scene.New()
	node, err := hierarchy.New(l, rebuilt).LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "root", node)

	recaptured, err := hierarchy.New(l, rebuilt).Capture(node)
	require.NoError(t, err)
	assert.Equal(t, record, recaptured)
}

func TestLoad(t *testing.T) {
	var (
		l = zaptest.NewLogger(t)
		s = scene.New()
	)

	node, err := hierarchy.New(l, s).Load(bytes.NewReader([]byte(`{
    "nodeType": "joint",
    "name": "root",
    "translate": [0, 1, 0],
    "rotate": [0, 0, 0],
    "scale": [1, 1, 1],
    "rotateOrder": 0,
    "rotateAxis": [0, 0, 0],
    "jointOrient": [0, 0, 0],
    "radius": 0.5,
    "side": 0,
    "type": 0,
    "otherType": "",
    "jointTypeX": 2,
    "jointTypeY": 2,
    "jointTypeZ": 2,
    "children": []
}`)))
	require.NoError(t, err)
	assert.Equal(t, "root", node)

	joint, err := s.JointAttrs("root")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, joint.Radius, 0)
	assert.Equal(t, 2, joint.JointTypeX)
}

func TestLoadMalformed(t *testing.T) {
	var (
		l = zaptest.NewLogger(t)
		s = scene.New()
	)

	_, err := hierarchy.New(l, s).Load(bytes.NewReader([]byte(`{"nodeType"`)))
	require.Error(t, err)
	assert.Zero(t, s.Len())
}

func TestLoadFileMissing(t *testing.T) {
	l := zaptest.NewLogger(t)

	_, err := hierarchy.New(l, scene.New()).LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
