// Package generate provides the "generate" module type: a source stage that
// exposes a single typed output port.
package generate

import (
	"github.com/vk/gridflow/internal/modconfig"
	"github.com/vk/gridflow/internal/module"
	"github.com/vk/gridflow/internal/registry"
	"github.com/vk/gridflow/internal/typeid"
)

// TypeName is the declarative type identifier for this module.
const TypeName = "generate"

// Module implements the registry.Provider interface for this package.
type Module struct{}

// Register registers the module factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterModule(TypeName, New)
}

// Generator is a source module emitting string payloads. The "count" config
// key is carried through for the runtime; it plays no role at build time.
type Generator struct {
	*module.Base
}

// New constructs a top-level generator instance.
func New(name string, cfg modconfig.Document) (module.Module, error) {
	base, err := module.NewBase(name, cfg)
	if err != nil {
		return nil, err
	}
	return &Generator{Base: base}, nil
}

// Initialize registers the single output port "out".
func (g *Generator) Initialize(b module.Builder) error {
	name, err := g.ComponentName("out")
	if err != nil {
		return err
	}
	n, err := b.MakeNode(name, typeid.Of[string]())
	if err != nil {
		return err
	}
	return g.RegisterOutputPort("out", n, typeid.Of[string]())
}
