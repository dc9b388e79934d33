// Package hclspec loads declarative pipeline documents written in HCL and
// translates them into a format-agnostic model the application layer can
// instantiate and wire without knowing anything about HCL.
package hclspec

import (
	"fmt"
	"strings"

	"github.com/vk/gridflow/internal/modconfig"
	"github.com/vk/gridflow/internal/naming"
)

// Pipeline is the translated representation of one pipeline definition:
// the module instances to create and the connections to wire between them.
type Pipeline struct {
	Modules     []*ModuleSpec
	Connections []*Connection
}

// ModuleSpec describes one module instance to construct.
type ModuleSpec struct {
	// Type is the registered module type name.
	Type string
	// Name is the instance name, which for top-level modules is also the
	// component prefix.
	Name string
	// Config is the already-translated configuration document.
	Config modconfig.Document
}

// Endpoint names one port on one module instance.
type Endpoint struct {
	// ModulePrefix is the component prefix of the module, so nested modules
	// are addressable ("mirror/left").
	ModulePrefix string
	// Port is the port name within that module.
	Port string
}

// Connection wires an output endpoint to an input endpoint.
type Connection struct {
	From Endpoint
	To   Endpoint
}

// ParseEndpoint parses the "module/prefix:port" endpoint form used by
// connect blocks.
func ParseEndpoint(raw string) (Endpoint, error) {
	prefix, portName, found := strings.Cut(raw, ":")
	if !found || portName == "" {
		return Endpoint{}, fmt.Errorf("invalid endpoint %q: expected \"module:port\"", raw)
	}
	if _, err := naming.Parse(prefix); err != nil {
		return Endpoint{}, fmt.Errorf("invalid endpoint %q: %w", raw, err)
	}
	if strings.Contains(portName, ":") {
		return Endpoint{}, fmt.Errorf("invalid endpoint %q: multiple separators", raw)
	}
	return Endpoint{ModulePrefix: prefix, Port: portName}, nil
}

// String serializes the endpoint back into its canonical form.
func (e Endpoint) String() string {
	return e.ModulePrefix + ":" + e.Port
}
