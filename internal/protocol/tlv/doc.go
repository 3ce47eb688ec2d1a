// Package tlv encodes and decodes nested Tag-Length-Value documents.
//
// A document is a tree of nodes. Every node carries three fixed-width header
// fields (attribute, tag, length) and then either a raw value (leaf) or the
// records of its children (structural). Field widths and the byte order of the
// length field are fixed per Tree by its Config.
//
// Wire layout, repeated per node in pre-order:
//
//	[attribute][tag][length][value, leaves only]
//
// Nodes live in a per-tree arena and are addressed by NodeID handles. A handle
// is invalidated when its node is destroyed; stale handles are rejected rather
// than aliased to a recycled slot.
//
// Typical use:
//
//	t, _ := tlv.New(tlv.DefaultConfig())
//	root := t.NewNode()
//	_ = t.SetRoot(root)
//	leaf := t.NewNode()
//	_, _ = t.WriteTag(leaf, []byte{0x9f, 0x01})
//	_ = t.WriteValue(leaf, []byte("hello"))
//	_ = t.AddChild(root, leaf)
//	b, _ := t.Marshal() // Layout + Encode
//
// Lengths are only authoritative after Layout. Marshal runs it; callers that
// use Encode directly must call Layout first.
//
// A Tree is not safe for concurrent use.
package tlv
