// Package mirror provides the "mirror" module type: a nested composition
// that fans one input out to two internal passthrough stages and re-exports
// their outputs as "left" and "right".
//
// Mirror exists as much to exercise the composition machinery as to be
// useful: it constructs child module instances inside its own Initialize,
// scopes their names under its component prefix, and shares its children's
// port nodes through its own registries.
package mirror

import (
	"github.com/vk/gridflow/internal/modconfig"
	"github.com/vk/gridflow/internal/module"
	"github.com/vk/gridflow/internal/registry"
	"github.com/vk/gridflow/internal/typeid"
	"github.com/vk/gridflow/modules/passthrough"
)

// TypeName is the declarative type identifier for this module.
const TypeName = "mirror"

// Module implements the registry.Provider interface for this package.
type Module struct{}

// Register registers the module factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterModule(TypeName, New)
}

// Mirror duplicates its "in" stream into the "left" and "right" outputs.
type Mirror struct {
	*module.Base
	left  *passthrough.Passthrough
	right *passthrough.Passthrough
}

// New constructs a top-level mirror instance.
func New(name string, cfg modconfig.Document) (module.Module, error) {
	base, err := module.NewBase(name, cfg)
	if err != nil {
		return nil, err
	}
	return &Mirror{Base: base}, nil
}

// Initialize builds both passthrough children under this module's prefix,
// registers the fan-out input, and re-exports the children's outputs.
func (m *Mirror) Initialize(b module.Builder) error {
	var err error
	if m.left, err = passthrough.NewChild(m.Base, "left", modconfig.Empty()); err != nil {
		return err
	}
	if m.right, err = passthrough.NewChild(m.Base, "right", modconfig.Empty()); err != nil {
		return err
	}
	if err := b.Build(m.left); err != nil {
		return err
	}
	if err := b.Build(m.right); err != nil {
		return err
	}

	typ := typeid.Of[string]()
	inName, err := m.ComponentName("in")
	if err != nil {
		return err
	}
	in, err := b.MakeNode(inName, typ)
	if err != nil {
		return err
	}
	if err := m.RegisterInputPort("in", in, typ); err != nil {
		return err
	}

	// Fan the input out to both children.
	for _, child := range []*passthrough.Passthrough{m.left, m.right} {
		childIn, err := child.InputPort(passthrough.PortName)
		if err != nil {
			return err
		}
		if err := b.Connect(in, childIn); err != nil {
			return err
		}
	}

	// Re-export the children's output nodes as this module's own ports.
	// The nodes are shared: each appears both in the child's registry and
	// in the mirror's.
	leftOut, err := m.left.OutputPort(passthrough.PortName)
	if err != nil {
		return err
	}
	if err := m.RegisterOutputPort("left", leftOut, typ); err != nil {
		return err
	}
	rightOut, err := m.right.OutputPort(passthrough.PortName)
	if err != nil {
		return err
	}
	return m.RegisterOutputPort("right", rightOut, typ)
}
