// Package port records the named, typed connection points a module exposes.
//
// Each module instance holds two independent registries, one per direction,
// because input and output ports of the same module commonly share a name
// (a passthrough module's "data" input and "data" output) and must not
// collide with each other. Registration order is preserved and is the
// iteration order exposed to callers; builders may rely on declaration order
// for default wiring.
package port

import (
	"errors"
	"fmt"

	"github.com/vk/gridflow/internal/node"
	"github.com/vk/gridflow/internal/typeid"
)

var (
	// ErrDuplicatePort is returned when a port name is registered twice in
	// the same direction on the same module instance.
	ErrDuplicatePort = errors.New("duplicate port")
	// ErrUnknownPort is returned when looking up a name that was never
	// registered in the given direction.
	ErrUnknownPort = errors.New("unknown port")
)

// Binding associates a port name with the connectable node the builder will
// wire and the type token describing the data the port carries. The node is
// shared with the builder; the type never changes once registered.
type Binding struct {
	Node *node.Node
	Type typeid.Token
}

// Registry holds the ports of one module instance for one direction.
type Registry struct {
	ids      []string
	bindings map[string]Binding
}

// NewRegistry creates an empty port registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[string]Binding),
	}
}

// Register stores a binding under name. The name collision check runs before
// anything else; a duplicate name is rejected regardless of the types
// involved.
func (r *Registry) Register(name string, n *node.Node, typ typeid.Token) error {
	if _, exists := r.bindings[name]; exists {
		return fmt.Errorf("%w: %q already registered", ErrDuplicatePort, name)
	}
	if n == nil {
		return fmt.Errorf("port %q: nil node", name)
	}
	r.bindings[name] = Binding{Node: n, Type: typ}
	r.ids = append(r.ids, name)
	return nil
}

// IDs returns the registered port names in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.ids))
	copy(ids, r.ids)
	return ids
}

// Len returns the number of registered ports.
func (r *Registry) Len() int {
	return len(r.ids)
}

// Binding returns the full binding for name.
func (r *Registry) Binding(name string) (Binding, error) {
	binding, ok := r.bindings[name]
	if !ok {
		return Binding{}, fmt.Errorf("%w: %q", ErrUnknownPort, name)
	}
	return binding, nil
}

// Node returns the connectable node registered under name.
func (r *Registry) Node(name string) (*node.Node, error) {
	binding, err := r.Binding(name)
	if err != nil {
		return nil, err
	}
	return binding.Node, nil
}

// Type returns the type token registered under name.
func (r *Registry) Type(name string) (typeid.Token, error) {
	binding, err := r.Binding(name)
	if err != nil {
		return typeid.Token{}, err
	}
	return binding.Type, nil
}

// Nodes returns the full name-to-node mapping for bulk inspection.
func (r *Registry) Nodes() map[string]*node.Node {
	out := make(map[string]*node.Node, len(r.bindings))
	for name, binding := range r.bindings {
		out[name] = binding.Node
	}
	return out
}

// Types returns the full name-to-type mapping for bulk inspection.
func (r *Registry) Types() map[string]typeid.Token {
	out := make(map[string]typeid.Token, len(r.bindings))
	for name, binding := range r.bindings {
		out[name] = binding.Type
	}
	return out
}
