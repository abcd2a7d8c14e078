package hierarchy

import (
	"time"

	"github.com/foomo/skeletonio/pkg/metrics"
	"github.com/foomo/skeletonio/skeleton"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Serializer captures live hierarchies into records and replays records back
// into live nodes. It holds no state beyond its host, calls are synchronous
// and single threaded.
type Serializer struct {
	l    *zap.Logger
	host Host
}

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

func New(l *zap.Logger, host Host) *Serializer {
	return &Serializer{
		l:    l.Named("serializer"),
		host: host,
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

// Capture walks the hierarchy under root top-down and assembles a record
// tree. Nodes that are neither joints nor transforms yield no record, as do
// transforms carrying shape content - for those the whole subtree is skipped
// and (nil, nil) is returned. Joints are captured even when they carry
// shapes, so locator style helpers survive the round trip.
func (s *Serializer) Capture(root string) (*skeleton.Record, error) {
	start := time.Now()

	record, err := s.capture(root)
	if err != nil {
		metrics.CapturesFailedCounter.WithLabelValues().Inc()
		return nil, err
	}

	metrics.CapturesCompletedCounter.WithLabelValues().Inc()
	metrics.CaptureDuration.WithLabelValues().Observe(time.Since(start).Seconds())

	if record == nil {
		s.l.Debug("nothing to capture", zap.String("root", root))
	} else {
		s.l.Debug("captured hierarchy",
			zap.String("root", root),
			zap.Int("nodes", record.Count()),
			zap.Int("depth", record.Depth()),
		)
	}
	return record, nil
}

// Reconstruct creates live nodes for the given record tree. If parent is not
// empty the new root is attached under it right after creation. The name of
// the created root node is returned - the scene graph may have renamed it on
// collision. The first host error aborts the traversal, nodes created up to
// that point stay behind.
func (s *Serializer) Reconstruct(record *skeleton.Record, parent string) (string, error) {
	node, err := s.reconstruct(record, parent)
	if err != nil {
		metrics.ReconstructsFailedCounter.WithLabelValues().Inc()
		return "", err
	}

	metrics.ReconstructsCompletedCounter.WithLabelValues().Inc()

	s.l.Debug("reconstructed hierarchy",
		zap.String("root", node),
		zap.Int("nodes", record.Count()),
	)
	return node, nil
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func (s *Serializer) capture(node string) (*skeleton.Record, error) {
	nodeType, err := s.host.NodeType(node)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query type of node %q", node)
	}

	kind := skeleton.Kind(nodeType)
	if !kind.Valid() {
		return nil, nil
	}

	hasShapes, err := s.host.HasShapes(node)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list shapes of node %q", node)
	}
	if kind == skeleton.KindTransform && hasShapes {
		// leaf geometry, not part of the skeleton
		return nil, nil
	}

	attrs, err := s.host.TransformAttrs(node)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read attributes of node %q", node)
	}

	record := &skeleton.Record{
		Kind:        kind,
		Name:        node,
		Translate:   attrs.Translate.Truncated(),
		Rotate:      attrs.Rotate.Truncated(),
		Scale:       attrs.Scale.Truncated(),
		RotateOrder: attrs.RotateOrder,
		RotateAxis:  attrs.RotateAxis.Truncated(),
		Children:    []*skeleton.Record{},
	}

	if kind == skeleton.KindJoint {
		joint, err := s.host.JointAttrs(node)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read joint attributes of node %q", node)
		}
		record.JointOrient = joint.JointOrient.Truncated()
		record.Radius = joint.Radius
		record.Side = joint.Side
		record.Type = joint.Type
		record.OtherType = joint.OtherType
		// all three flags carry the X flag, so round trips stay byte
		// identical with existing skeleton files
		record.JointTypeX = joint.JointTypeX
		record.JointTypeY = joint.JointTypeX
		record.JointTypeZ = joint.JointTypeX
	}

	children, err := s.host.Children(node)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list children of node %q", node)
	}
	for _, child := range children {
		childRecord, err := s.capture(child)
		if err != nil {
			return nil, err
		}
		if childRecord != nil {
			record.Children = append(record.Children, childRecord)
		}
	}
	return record, nil
}

func (s *Serializer) reconstruct(record *skeleton.Record, parent string) (string, error) {
	node, err := s.host.CreateNode(string(record.Kind), record.Name)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create node %q", record.Name)
	}

	if parent != "" {
		if err := s.host.SetParent(node, parent); err != nil {
			return "", errors.Wrapf(err, "failed to parent node %q under %q", node, parent)
		}
	}

	err = s.host.SetTransformAttrs(node, &TransformAttrs{
		Translate:   record.Translate,
		Rotate:      record.Rotate,
		Scale:       record.Scale,
		RotateOrder: record.RotateOrder,
		RotateAxis:  record.RotateAxis,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to set attributes on node %q", node)
	}

	if record.Kind == skeleton.KindJoint {
		err = s.host.SetJointAttrs(node, &JointAttrs{
			JointOrient: record.JointOrient,
			Radius:      record.Radius,
			Side:        record.Side,
			Type:        record.Type,
			OtherType:   record.OtherType,
			JointTypeX:  record.JointTypeX,
			JointTypeY:  record.JointTypeY,
			JointTypeZ:  record.JointTypeZ,
		})
		if err != nil {
			return "", errors.Wrapf(err, "failed to set joint attributes on node %q", node)
		}
	}

	for _, child := range record.Children {
		if _, err := s.reconstruct(child, node); err != nil {
			return "", err
		}
	}
	return node, nil
}
