package hierarchy

import (
	"io"
	"os"

	"github.com/foomo/skeletonio/skeleton"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Dump captures the hierarchy under root and writes the encoded record tree
// to w. When the root yields no record nothing is written and (nil, nil) is
// returned - the caller decides whether that is worth reporting.
func (s *Serializer) Dump(root string, w io.Writer) (*skeleton.Record, error) {
	record, err := s.Capture(root)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	if err := skeleton.Encode(w, record); err != nil {
		return nil, err
	}
	return record, nil
}

// DumpFile captures the hierarchy under root into the given file. The file is
// only created once there is a record to write, a filtered root leaves an
// existing file untouched. A write failure midway leaves a partially written
// file behind.
func (s *Serializer) DumpFile(root, path string) (*skeleton.Record, error) {
	record, err := s.Capture(root)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	err = multierr.Append(skeleton.Encode(f, record), f.Close())
	if err != nil {
		return nil, err
	}
	s.l.Debug("dumped hierarchy", zap.String("root", root), zap.String("path", path))
	return record, nil
}

// Load decodes a record tree from r and reconstructs it as live nodes. Use
// skeleton.Decode directly to inspect a record tree without creating nodes.
func (s *Serializer) Load(r io.Reader) (string, error) {
	record, err := skeleton.Decode(r)
	if err != nil {
		return "", err
	}
	return s.Reconstruct(record, "")
}

// LoadFile reads a skeleton file and reconstructs its hierarchy
func (s *Serializer) LoadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	node, err := s.Load(f)
	err = multierr.Append(err, f.Close())
	if err != nil {
		return "", err
	}
	s.l.Debug("loaded hierarchy", zap.String("root", node), zap.String("path", path))
	return node, nil
}
