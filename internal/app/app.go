package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/gridflow/internal/builder"
	"github.com/vk/gridflow/internal/ctxlog"
	"github.com/vk/gridflow/internal/hclspec"
	"github.com/vk/gridflow/internal/registry"
)

// Loader is the boundary to the pipeline-document system. The app receives
// an already-parsed model and never touches document syntax itself.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*hclspec.Pipeline, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	pipeline *hclspec.Pipeline
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
func NewApp(outW io.Writer, appConfig *Config, loader Loader, providers ...registry.Provider) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load the pipeline definition into the format-agnostic model first.
	pipeline, err := loader.Load(ctx, appConfig.PipelinePath)
	if err != nil {
		// A failure to load the pipeline definition is a fatal startup error.
		panic(fmt.Errorf("failed to load pipeline definition: %w", err))
	}
	logger.Debug("Pipeline definition loaded.",
		"modules", len(pipeline.Modules),
		"connections", len(pipeline.Connections),
	)

	// Create and populate the registry with module factories.
	reg := registry.New()
	if len(providers) == 0 {
		providers = coreProviders
	}
	for _, provider := range providers {
		provider.Register(reg)
	}
	logger.Debug("All module types registered.", "count", len(reg.Types()))

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		pipeline: pipeline,
	}
}

// Run performs the build: instantiate every declared module, initialize each
// exactly once against a fresh builder, then wire the declared connections.
// Any failure aborts the build; no partially wired pipeline survives.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	b := builder.New(ctx)

	for _, spec := range a.pipeline.Modules {
		m, err := a.registry.New(spec.Type, spec.Name, spec.Config)
		if err != nil {
			return fmt.Errorf("instantiating %q: %w", spec.Name, err)
		}
		if err := b.Build(m); err != nil {
			return err
		}
	}

	for _, conn := range a.pipeline.Connections {
		src, ok := b.Module(conn.From.ModulePrefix)
		if !ok {
			return fmt.Errorf("connect %s -> %s: no module %q", conn.From, conn.To, conn.From.ModulePrefix)
		}
		dst, ok := b.Module(conn.To.ModulePrefix)
		if !ok {
			return fmt.Errorf("connect %s -> %s: no module %q", conn.From, conn.To, conn.To.ModulePrefix)
		}
		if err := b.ConnectPorts(src, conn.From.Port, dst, conn.To.Port); err != nil {
			return fmt.Errorf("connect %s -> %s: %w", conn.From, conn.To, err)
		}
	}

	fmt.Fprintf(a.outW, "Pipeline built: %d modules, %d nodes, %d connections.\n",
		b.Modules(), len(b.Nodes()), len(b.Edges()))
	return nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
