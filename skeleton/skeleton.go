// Package skeleton contains the data structures that describe a serialized
// joint/transform hierarchy and the canonical json codec for them
package skeleton

const (
	// Indent for json indentation
	Indent string = "    "
)
