package node

import (
	"github.com/vk/gridflow/internal/typeid"
)

// Node is a single connectable object in the pipeline under construction.
// Modules register nodes as ports; the builder wires edges between them.
//
// A node is shared by pointer between the registering module's port bindings
// and the builder's own tables. Neither side exclusively owns it; it stays
// valid for as long as either holds a reference. Nodes carry only identity
// and declared payload type here; execution state belongs to the runtime,
// which is outside this subsystem.
type Node struct {
	// name is the globally-unique, prefix-scoped identifier for the node.
	// Example: "pipeline/stage_a/internal_buffer"
	name string
	// typ is the payload type the node carries on its edges.
	typ typeid.Token
}

// New creates a connectable node. Name uniqueness is enforced by the builder,
// which is the only component that creates nodes.
func New(name string, typ typeid.Token) *Node {
	return &Node{name: name, typ: typ}
}

// Name returns the node's globally-unique identifier.
func (n *Node) Name() string {
	return n.name
}

// Type returns the payload type token declared for this node.
func (n *Node) Type() typeid.Token {
	return n.typ
}
