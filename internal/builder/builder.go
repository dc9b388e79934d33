// Package builder assembles modules into a build-time pipeline graph.
//
// The builder constructs nothing that runs; it owns the wiring protocol.
// It activates each module instance exactly once (via module.Build), hands
// out connectable nodes, and type-checks every connection before recording
// it as an edge. Execution of the resulting graph belongs to a runtime
// outside this subsystem.
package builder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vk/gridflow/internal/ctxlog"
	"github.com/vk/gridflow/internal/module"
	"github.com/vk/gridflow/internal/node"
	"github.com/vk/gridflow/internal/typeid"
)

var (
	// ErrTypeMismatch is returned when the two endpoints of a connection
	// carry different payload types.
	ErrTypeMismatch = errors.New("port type mismatch")
	// ErrDuplicateNode is returned when a node name is requested twice.
	// Sibling modules with colliding names surface here, since their
	// component-scoped node names collide too.
	ErrDuplicateNode = errors.New("duplicate node name")
)

// Edge is a directed, type-checked connection between two nodes.
type Edge struct {
	From *node.Node
	To   *node.Node
}

// Builder is the graph builder modules are initialized against. It is a
// single-threaded, synchronous construction-time object; a failure from any
// of its methods aborts the build.
type Builder struct {
	logger *slog.Logger

	nodes     map[string]*node.Node
	nodeOrder []string
	edges     []Edge
	modules   map[string]module.Module
}

// New creates an empty builder. The context supplies the build logger.
func New(ctx context.Context) *Builder {
	return &Builder{
		logger:  ctxlog.FromContext(ctx),
		nodes:   make(map[string]*node.Node),
		modules: make(map[string]module.Module),
	}
}

// MakeNode creates a connectable node under the given globally-unique name.
// The node is shared between the builder's tables and whatever port binding
// the caller registers it into.
func (b *Builder) MakeNode(name string, typ typeid.Token) (*node.Node, error) {
	if _, exists := b.nodes[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, name)
	}
	n := node.New(name, typ)
	b.nodes[name] = n
	b.nodeOrder = append(b.nodeOrder, name)
	b.logger.Debug("Node created.", "name", name, "type", typ.String())
	return n, nil
}

// Build activates a module instance exactly once, letting it register its
// ports and construct child modules against this builder. Once built, the
// module is tracked under its component prefix.
func (b *Builder) Build(m module.Module) error {
	prefix := m.ComponentPrefix()
	if _, exists := b.modules[prefix]; exists {
		return fmt.Errorf("module %q already built; sibling names must be distinct", prefix)
	}
	b.logger.Debug("Building module.", "prefix", prefix)
	if err := module.Build(b, m); err != nil {
		return err
	}
	b.modules[prefix] = m
	b.logger.Debug("Module ready.",
		"prefix", prefix,
		"inputs", len(m.InputIDs()),
		"outputs", len(m.OutputIDs()),
	)
	return nil
}

// Connect records a directed edge between two builder-owned nodes after
// verifying the payload types agree.
func (b *Builder) Connect(from, to *node.Node) error {
	if from == nil || to == nil {
		return fmt.Errorf("connect: nil node")
	}
	if !from.Type().Equal(to.Type()) {
		return fmt.Errorf("%w: %q carries %s, %q expects %s",
			ErrTypeMismatch, from.Name(), from.Type(), to.Name(), to.Type())
	}
	b.edges = append(b.edges, Edge{From: from, To: to})
	b.logger.Debug("Nodes connected.", "from", from.Name(), "to", to.Name())
	return nil
}

// ConnectPorts wires a source module's output port to a destination module's
// input port. Port lookups and the type check follow the same failure rules
// as the registries and Connect.
func (b *Builder) ConnectPorts(src module.Module, outputName string, dst module.Module, inputName string) error {
	from, err := src.OutputPort(outputName)
	if err != nil {
		return fmt.Errorf("module %q: %w", src.ComponentPrefix(), err)
	}
	to, err := dst.InputPort(inputName)
	if err != nil {
		return fmt.Errorf("module %q: %w", dst.ComponentPrefix(), err)
	}
	return b.Connect(from, to)
}

// Module returns a built module by its component prefix.
func (b *Builder) Module(prefix string) (module.Module, bool) {
	m, ok := b.modules[prefix]
	return m, ok
}

// Modules returns the number of built modules.
func (b *Builder) Modules() int {
	return len(b.modules)
}

// Nodes returns every node in creation order.
func (b *Builder) Nodes() []*node.Node {
	out := make([]*node.Node, 0, len(b.nodeOrder))
	for _, name := range b.nodeOrder {
		out = append(out, b.nodes[name])
	}
	return out
}

// Edges returns every recorded connection in wiring order.
func (b *Builder) Edges() []Edge {
	edges := make([]Edge, len(b.edges))
	copy(edges, b.edges)
	return edges
}
