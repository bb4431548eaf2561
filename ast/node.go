// Package ast defines the compiler's central data model: the node arena and
// the script and global tables.
//
// The node array is an arena; every edge between nodes is an index into it.
// Index-based edges make the compaction pass (swap-remove with reference
// fix-up) tractable and keep the published arrays position-stable for
// downstream serializers.
package ast

import "github.com/cwbudde/go-hsc/types"

// NodeIndex is a typed handle into a node arena.
type NodeIndex int32

// NullNode is the sentinel terminating sibling lists.
const NullNode NodeIndex = -1

// MaxNameLength is the longest script or global name the engine stores.
// Longer names are truncated on storage.
const MaxNameLength = 31

// Node is one element of the node graph. A node is either primitive (a leaf
// carrying typed literal data or the unresolved source string) or
// non-primitive (an interior call node whose ChildNode is the first of a
// sibling list linked through NextNode).
//
// Exactly one of ChildNode, LongInt, ShortInt, BoolInt, and Real is
// meaningful, selected by IsPrimitive and Type: interior nodes use
// ChildNode; primitive long/short/boolean/real nodes use the matching
// numeric field once specialized.
type Node struct {
	// StringData is the leaf's source string before resolution, the callee
	// name for function-name leaves, and the (lowercased) referenced name
	// for globals and engine references after resolution. It is nil once a
	// leaf has been specialized to a numeric or boolean literal.
	StringData *string

	// NextNode is the next sibling, or NullNode.
	NextNode NodeIndex

	Type types.ValueType

	IsPrimitive  bool
	IsGlobal     bool
	IsScriptCall bool

	// CallIndex is set after resolution for script-call nodes to the index
	// of the target script in the final script table.
	CallIndex uint16

	// Source coordinates.
	File   int
	Line   int
	Column int

	ChildNode NodeIndex
	LongInt   int32
	ShortInt  int16
	BoolInt   int8
	Real      float32
}

// String returns the node's string payload, or "" if it has none.
func (n *Node) String() string {
	if n.StringData == nil {
		return ""
	}
	return *n.StringData
}

// SetString replaces the node's string payload.
func (n *Node) SetString(s string) {
	n.StringData = &s
}

// ClearString releases the node's string payload. Called when a leaf is
// specialized into a numeric or boolean primitive.
func (n *Node) ClearString() {
	n.StringData = nil
}

// NodeArray is an arena of nodes that grows through Append; the resolver's
// compaction pass removes nodes by swap-remove. The zero value is ready to
// use.
type NodeArray struct {
	Nodes []Node
}

// Append adds a fresh node and returns its index. The node starts out
// Unparsed with no siblings; stringData of "" means no string payload.
func (a *NodeArray) Append(stringData string, hasString bool) NodeIndex {
	n := Node{
		NextNode:  NullNode,
		ChildNode: NullNode,
	}
	if hasString {
		n.SetString(stringData)
	}
	a.Nodes = append(a.Nodes, n)
	return NodeIndex(len(a.Nodes) - 1)
}

// At returns the node at the given index.
func (a *NodeArray) At(i NodeIndex) *Node {
	return &a.Nodes[i]
}

// Len returns the number of nodes in the arena.
func (a *NodeArray) Len() int {
	return len(a.Nodes)
}
