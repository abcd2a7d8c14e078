package skeleton

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRecord() *Record {
	return &Record{
		Kind: KindJoint,
		Name: "root",
		Children: []*Record{
			{
				Kind: KindTransform,
				Name: "offset",
				Children: []*Record{
					{Kind: KindJoint, Name: "tip", Children: []*Record{}},
				},
			},
			{Kind: KindJoint, Name: "stub", Children: []*Record{}},
		},
	}
}

func TestKindValid(t *testing.T) {
	assert.True(t, KindJoint.Valid())
	assert.True(t, KindTransform.Valid())
	assert.False(t, Kind("mesh").Valid())
	assert.False(t, Kind("").Valid())
}

func TestRecordCount(t *testing.T) {
	assert.Equal(t, 4, testRecord().Count())
	assert.Equal(t, 1, (&Record{Name: "lonely"}).Count())
}

func TestRecordDepth(t *testing.T) {
	assert.Equal(t, 3, testRecord().Depth())
	assert.Equal(t, 1, (&Record{Name: "lonely"}).Depth())
}

func TestRecordJoints(t *testing.T) {
	assert.Equal(t, 3, testRecord().Joints())
	assert.Equal(t, 0, (&Record{Kind: KindTransform}).Joints())
}

func TestPrintRecord(t *testing.T) {
	var buf bytes.Buffer
	testRecord().PrintRecord(&buf, 0)
	assert.Equal(t, `root (joint)
    offset (transform)
        tip (joint)
    stub (joint)
`, buf.String())
}
