// Package passthrough provides the "passthrough" module type: a stage with
// one input and one output that forwards data unchanged. Both ports share
// the name "data", which is legal because port names are direction-scoped.
package passthrough

import (
	"github.com/vk/gridflow/internal/modconfig"
	"github.com/vk/gridflow/internal/module"
	"github.com/vk/gridflow/internal/registry"
	"github.com/vk/gridflow/internal/typeid"
)

// TypeName is the declarative type identifier for this module.
const TypeName = "passthrough"

// PortName is the name shared by the input and output port.
const PortName = "data"

// Module implements the registry.Provider interface for this package.
type Module struct{}

// Register registers the module factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterModule(TypeName, New)
}

// Passthrough forwards string payloads from its "data" input to its "data"
// output.
type Passthrough struct {
	*module.Base
}

// New constructs a top-level passthrough instance.
func New(name string, cfg modconfig.Document) (module.Module, error) {
	base, err := module.NewBase(name, cfg)
	if err != nil {
		return nil, err
	}
	return &Passthrough{Base: base}, nil
}

// NewChild constructs a passthrough nested under parent, for modules that
// compose passthrough stages internally.
func NewChild(parent *module.Base, name string, cfg modconfig.Document) (*Passthrough, error) {
	base, err := module.NewChildBase(parent, name, cfg)
	if err != nil {
		return nil, err
	}
	return &Passthrough{Base: base}, nil
}

// Initialize registers the input and output ports and wires the internal
// forwarding edge between them.
func (p *Passthrough) Initialize(b module.Builder) error {
	typ := typeid.Of[string]()

	inName, err := p.ComponentName("in")
	if err != nil {
		return err
	}
	in, err := b.MakeNode(inName, typ)
	if err != nil {
		return err
	}
	if err := p.RegisterInputPort(PortName, in, typ); err != nil {
		return err
	}

	outName, err := p.ComponentName("out")
	if err != nil {
		return err
	}
	out, err := b.MakeNode(outName, typ)
	if err != nil {
		return err
	}
	if err := p.RegisterOutputPort(PortName, out, typ); err != nil {
		return err
	}

	return b.Connect(in, out)
}
