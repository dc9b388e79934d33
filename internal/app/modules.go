package app

import (
	"github.com/vk/gridflow/internal/registry"
	"github.com/vk/gridflow/modules/generate"
	"github.com/vk/gridflow/modules/mirror"
	"github.com/vk/gridflow/modules/passthrough"
	"github.com/vk/gridflow/modules/sink"
)

// coreProviders is the default set of module packages registered when the
// caller does not supply its own.
var coreProviders = []registry.Provider{
	&generate.Module{},
	&mirror.Module{},
	&passthrough.Module{},
	&sink.Module{},
}
