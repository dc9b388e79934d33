// Package sink provides the "sink" module type: a terminal stage with a
// single typed input port.
package sink

import (
	"github.com/vk/gridflow/internal/modconfig"
	"github.com/vk/gridflow/internal/module"
	"github.com/vk/gridflow/internal/registry"
	"github.com/vk/gridflow/internal/typeid"
)

// TypeName is the declarative type identifier for this module.
const TypeName = "sink"

// Module implements the registry.Provider interface for this package.
type Module struct{}

// Register registers the module factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterModule(TypeName, New)
}

// Sink consumes string payloads on its "in" port.
type Sink struct {
	*module.Base
}

// New constructs a top-level sink instance.
func New(name string, cfg modconfig.Document) (module.Module, error) {
	base, err := module.NewBase(name, cfg)
	if err != nil {
		return nil, err
	}
	return &Sink{Base: base}, nil
}

// Initialize registers the single input port "in".
func (s *Sink) Initialize(b module.Builder) error {
	name, err := s.ComponentName("in")
	if err != nil {
		return err
	}
	n, err := b.MakeNode(name, typeid.Of[string]())
	if err != nil {
		return err
	}
	return s.RegisterInputPort("in", n, typeid.Of[string]())
}
