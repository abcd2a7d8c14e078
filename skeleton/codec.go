package skeleton

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal serializes a record tree to indented json with stable field order
func Marshal(record *Record) ([]byte, error) {
	return json.MarshalIndent(record, "", Indent)
}

// Unmarshal parses a record tree from json. There is no validation beyond
// well-formedness - a bogus node type only surfaces once somebody tries to
// recreate nodes from the record.
func Unmarshal(data []byte) (*Record, error) {
	record := &Record{}
	if err := json.Unmarshal(data, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Encode writes a record tree to w in the canonical format
func Encode(w io.Writer, record *Record) error {
	data, err := Marshal(record)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Decode reads a record tree from r
func Decode(r io.Reader) (*Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Unmarshal(data)
}
