package module

import (
	"fmt"

	"github.com/vk/gridflow/internal/modconfig"
	"github.com/vk/gridflow/internal/naming"
	"github.com/vk/gridflow/internal/node"
	"github.com/vk/gridflow/internal/port"
	"github.com/vk/gridflow/internal/typeid"
)

// State is the lifecycle state of a module instance.
type State int32

const (
	// StateConstructed means the name and config are set and the registries
	// are empty.
	StateConstructed State = iota
	// StateInitializing means Initialize is running and ports may be
	// registered.
	StateInitializing
	// StateReady means Initialize returned and the registries are frozen.
	StateReady
)

// Base carries the identity, configuration, and port registries shared by
// every module implementation. Concrete modules embed *Base and populate the
// registries from their Initialize.
type Base struct {
	path    naming.Path
	cfg     modconfig.Document
	inputs  *port.Registry
	outputs *port.Registry
	state   State
}

// NewBase constructs the base for a module with no parent scope. The name
// becomes the component prefix. Malformed names fail with
// naming.ErrInvalidName.
func NewBase(name string, cfg modconfig.Document) (*Base, error) {
	path, err := naming.Root(name)
	if err != nil {
		return nil, err
	}
	return newBase(path, cfg), nil
}

// NewChildBase constructs the base for a module nested under parent. The
// child's prefix is the parent's prefix, the separator, then the child's own
// name. Distinct sibling names are a precondition of the caller.
func NewChildBase(parent *Base, name string, cfg modconfig.Document) (*Base, error) {
	if parent == nil {
		return NewBase(name, cfg)
	}
	path, err := parent.path.Child(name)
	if err != nil {
		return nil, err
	}
	return newBase(path, cfg), nil
}

func newBase(path naming.Path, cfg modconfig.Document) *Base {
	return &Base{
		path:    path,
		cfg:     cfg,
		inputs:  port.NewRegistry(),
		outputs: port.NewRegistry(),
		state:   StateConstructed,
	}
}

func (b *Base) base() *Base { return b }

// Name returns the instance's own name, unique only within its parent scope.
func (b *Base) Name() string {
	return b.path.Name()
}

// ComponentPrefix returns the globally-unique hierarchical name of this
// instance. It is computed once at construction and stable for the
// instance's lifetime.
func (b *Base) ComponentPrefix() string {
	return b.path.String()
}

// Path returns the structured form of the component prefix.
func (b *Base) Path() naming.Path {
	return b.path
}

// ComponentName derives a globally-unique identifier for an internal object
// this module creates that is not itself a port, such as an intermediate
// pipeline node.
func (b *Base) ComponentName(component string) (string, error) {
	return b.path.ComponentName(component)
}

// Config returns the configuration document supplied at construction. The
// document is immutable; a module constructed without configuration sees the
// empty document.
func (b *Base) Config() modconfig.Document {
	return b.cfg
}

// State returns the instance's lifecycle state.
func (b *Base) State() State {
	return b.state
}

// RegisterInputPort exposes an input port under name. Only callable while
// Initialize is running; afterwards the registries are frozen.
func (b *Base) RegisterInputPort(name string, n *node.Node, typ typeid.Token) error {
	if err := b.checkMutable(); err != nil {
		return err
	}
	return b.inputs.Register(name, n, typ)
}

// RegisterOutputPort exposes an output port under name. Only callable while
// Initialize is running.
func (b *Base) RegisterOutputPort(name string, n *node.Node, typ typeid.Token) error {
	if err := b.checkMutable(); err != nil {
		return err
	}
	return b.outputs.Register(name, n, typ)
}

func (b *Base) checkMutable() error {
	switch b.state {
	case StateInitializing:
		return nil
	case StateReady:
		return fmt.Errorf("%w: %s: port registries are frozen", ErrAlreadyInitialized, b.ComponentPrefix())
	default:
		return fmt.Errorf("module %q: ports may only be registered during initialization", b.ComponentPrefix())
	}
}

// InputIDs returns the input port names in registration order.
func (b *Base) InputIDs() []string {
	return b.inputs.IDs()
}

// OutputIDs returns the output port names in registration order.
func (b *Base) OutputIDs() []string {
	return b.outputs.IDs()
}

// InputPort returns the connectable node behind the named input port.
func (b *Base) InputPort(name string) (*node.Node, error) {
	return b.inputs.Node(name)
}

// InputPortType returns the type token behind the named input port.
func (b *Base) InputPortType(name string) (typeid.Token, error) {
	return b.inputs.Type(name)
}

// InputPorts returns the full input name-to-node mapping.
func (b *Base) InputPorts() map[string]*node.Node {
	return b.inputs.Nodes()
}

// InputPortTypes returns the full input name-to-type mapping.
func (b *Base) InputPortTypes() map[string]typeid.Token {
	return b.inputs.Types()
}

// OutputPort returns the connectable node behind the named output port.
func (b *Base) OutputPort(name string) (*node.Node, error) {
	return b.outputs.Node(name)
}

// OutputPortType returns the type token behind the named output port.
func (b *Base) OutputPortType(name string) (typeid.Token, error) {
	return b.outputs.Type(name)
}

// OutputPorts returns the full output name-to-node mapping.
func (b *Base) OutputPorts() map[string]*node.Node {
	return b.outputs.Nodes()
}

// OutputPortTypes returns the full output name-to-type mapping.
func (b *Base) OutputPortTypes() map[string]typeid.Token {
	return b.outputs.Types()
}
