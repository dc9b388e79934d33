// Package registry maps declarative module type names to the Go factories
// that construct them, so configuration-driven pipelines can instantiate
// modules by string identifier alone.
package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/vk/gridflow/internal/modconfig"
	"github.com/vk/gridflow/internal/module"
)

// ErrUnknownModuleType is returned when instantiating a type name nobody
// registered.
var ErrUnknownModuleType = errors.New("unknown module type")

// Factory constructs a module instance with the given instance name and
// configuration document.
type Factory func(name string, cfg modconfig.Document) (module.Module, error)

// Provider is the interface a module package implements to self-register
// its factories with a registry.
type Provider interface {
	Register(r *Registry)
}

// Registry holds the module-type factories for a single application
// instance.
type Registry struct {
	factories map[string]Factory
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// RegisterModule registers a factory under a module type name. A duplicate
// type name is a programmer error in application assembly and panics.
func (r *Registry) RegisterModule(typeName string, factory Factory) {
	if _, exists := r.factories[typeName]; exists {
		panic(fmt.Sprintf("module type '%s' already registered", typeName))
	}
	slog.Debug("Registering module type.", "type", typeName)
	r.factories[typeName] = factory
}

// New instantiates a module of the given type with the supplied instance
// name and configuration.
func (r *Registry) New(typeName, instanceName string, cfg modconfig.Document) (module.Module, error) {
	factory, ok := r.factories[typeName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModuleType, typeName)
	}
	return factory(instanceName, cfg)
}

// Has reports whether a factory is registered for the given type name.
func (r *Registry) Has(typeName string) bool {
	_, ok := r.factories[typeName]
	return ok
}

// Types returns the registered module type names, sorted for stable output.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.factories))
	for name := range r.factories {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}
