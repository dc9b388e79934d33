package hclspec

import (
	"github.com/hashicorp/hcl/v2"
)

// ConfigBlock captures the content of a `config` block within a module
// block. Attributes remain undecoded until translation.
type ConfigBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// ModuleBlock represents a `module` block from a user's pipeline file: a
// named instance of a registered module type.
type ModuleBlock struct {
	Type   string       `hcl:"module_type,label"`
	Name   string       `hcl:"instance_name,label"`
	Config *ConfigBlock `hcl:"config,block"`
}

// ConnectBlock represents a `connect` block wiring an output port endpoint
// to an input port endpoint. Endpoints use the form
// "module/prefix:port_name".
type ConnectBlock struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}

// fileRoot is used to decode all supported top-level blocks from any file.
type fileRoot struct {
	Modules  []*ModuleBlock  `hcl:"module,block"`
	Connects []*ConnectBlock `hcl:"connect,block"`
	Remain   hcl.Body        `hcl:",remain"`
}
