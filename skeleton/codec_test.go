package skeleton

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	record := testRecord()
	record.Translate = Vec3{1.5, -2.25, 0}
	record.Radius = 0.5

	data, err := Marshal(record)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestMarshalFieldOrderIsStable(t *testing.T) {
	data, err := Marshal(&Record{Kind: KindJoint, Name: "a", Children: []*Record{}})
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "{\n    \"nodeType\": \"joint\""), text)
	assert.Less(t, strings.Index(text, `"name"`), strings.Index(text, `"translate"`))
	assert.Less(t, strings.Index(text, `"rotateOrder"`), strings.Index(text, `"rotateAxis"`))
	assert.True(t, strings.Contains(text, `"children": []`))
}

func TestUnmarshalDoesNotValidate(t *testing.T) {
	// decode is well-formedness only - a bogus node type must pass through
	got, err := Unmarshal([]byte(`{"nodeType": "camera", "name": "nope"}`))
	require.NoError(t, err)
	assert.Equal(t, Kind("camera"), got.Kind)
	assert.False(t, got.Kind.Valid())
}

func TestUnmarshalMissingJointFields(t *testing.T) {
	// transform records written without joint fields decode to zero values
	got, err := Unmarshal([]byte(`{
    "nodeType": "transform",
    "name": "grp",
    "translate": [1, 2, 3],
    "rotate": [0, 0, 0],
    "scale": [1, 1, 1],
    "rotateOrder": 2,
    "rotateAxis": [0, 0, 0],
    "children": []
}`))
	require.NoError(t, err)
	assert.Equal(t, KindTransform, got.Kind)
	assert.Equal(t, Vec3{1, 2, 3}, got.Translate)
	assert.Equal(t, 2, got.RotateOrder)
	assert.InDelta(t, 0.0, got.Radius, 0)
	assert.Empty(t, got.OtherType)
}

func TestUnmarshalMalformed(t *testing.T) {
	_, err := Unmarshal([]byte(`{"nodeType": `))
	require.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testRecord()))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, testRecord(), got)
}
