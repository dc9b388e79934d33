// Package module defines the reusable unit of pipeline work: a named,
// configured instance exposing typed input and output ports that an external
// builder wires into an executable graph.
//
// A concrete module embeds *Base and supplies Initialize, the only place
// ports may be registered. The builder drives every instance through the
// same lifecycle: Constructed (name and config set, registries empty) ->
// Initializing (inside Initialize, ports being registered, children may be
// constructed) -> Ready (registries frozen, eligible for wiring). There is
// no way back; a second build attempt fails with ErrAlreadyInitialized.
package module

import (
	"errors"
	"fmt"

	"github.com/vk/gridflow/internal/node"
	"github.com/vk/gridflow/internal/typeid"
)

// ErrAlreadyInitialized is returned when a module's build entrypoint is
// invoked more than once, or when port registration is attempted after the
// registries were frozen.
var ErrAlreadyInitialized = errors.New("module already initialized")

// Builder is the surface a module may use while it is being initialized.
// It is implemented by the graph builder, which passes itself into
// Initialize so the module can create pipeline nodes and recursively build
// child modules against the same graph.
type Builder interface {
	// MakeNode creates a connectable node owned jointly by the builder and
	// whoever registers it as a port. The name must be globally unique;
	// modules derive it via ComponentName to stay inside their own scope.
	MakeNode(name string, typ typeid.Token) (*node.Node, error)

	// Build runs a module's initialization exactly once. Modules call this
	// for the child instances they construct inside their own Initialize.
	Build(m Module) error

	// Connect records a directed edge between two nodes the builder created.
	// The connection is rejected if the payload types differ.
	Connect(from, to *node.Node) error
}

// Module is the contract a concrete module fulfills. The read surface is
// provided by embedding *Base; the concrete type supplies Initialize.
type Module interface {
	// Initialize registers the module's ports and internal nodes against
	// the builder. Invoked exactly once, by Build.
	Initialize(b Builder) error

	// Read surface, served by the embedded *Base.
	Name() string
	ComponentPrefix() string
	InputIDs() []string
	OutputIDs() []string
	InputPort(name string) (*node.Node, error)
	InputPortType(name string) (typeid.Token, error)
	OutputPort(name string) (*node.Node, error)
	OutputPortType(name string) (typeid.Token, error)

	// base ties the interface to *Base so the lifecycle state machine stays
	// under this package's control.
	base() *Base
}

// Build is the single entrypoint a builder uses to activate a module. It
// enforces the initialize-exactly-once contract: the first call transitions
// the instance through Initializing into Ready; any later call fails with
// ErrAlreadyInitialized and leaves the registries exactly as the first call
// produced them.
func Build(b Builder, m Module) error {
	s := m.base()
	if s == nil {
		return fmt.Errorf("module has no base; embed *module.Base")
	}
	if s.state != StateConstructed {
		return fmt.Errorf("%w: %s", ErrAlreadyInitialized, s.ComponentPrefix())
	}
	s.state = StateInitializing
	if err := m.Initialize(b); err != nil {
		// The build as a whole is abandoned on failure; the instance stays
		// unfinishable so a retry cannot observe a half-registered module.
		return fmt.Errorf("initializing module %q: %w", s.ComponentPrefix(), err)
	}
	s.state = StateReady
	return nil
}
