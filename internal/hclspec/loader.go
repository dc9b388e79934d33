package hclspec

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/gridflow/internal/ctxlog"
	"github.com/vk/gridflow/internal/modconfig"
	"github.com/vk/gridflow/internal/naming"
)

// Loader parses HCL pipeline files into the format-agnostic Pipeline model.
type Loader struct{}

// NewLoader creates a new HCL pipeline loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under the given paths (files or directories)
// and merges the discovered blocks into a single Pipeline.
func (l *Loader) Load(ctx context.Context, paths ...string) (*Pipeline, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	pipeline := &Pipeline{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		if err := l.mergeFile(hclFile.Body, pipeline); err != nil {
			return nil, fmt.Errorf("file %s: %w", file, err)
		}
	}

	logger.Debug("HCL loading complete.",
		"modules", len(pipeline.Modules),
		"connections", len(pipeline.Connections),
	)
	return pipeline, nil
}

// Parse decodes a single in-memory HCL document, for tests and embedded use.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) (*Pipeline, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL source %s: %w", filename, diags)
	}
	pipeline := &Pipeline{}
	if err := l.mergeFile(hclFile.Body, pipeline); err != nil {
		return nil, err
	}
	return pipeline, nil
}

// mergeFile translates all supported blocks from one file body into the
// pipeline model.
func (l *Loader) mergeFile(body hcl.Body, pipeline *Pipeline) error {
	var root fileRoot
	diags := gohcl.DecodeBody(body, nil, &root)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL body: %w", diags)
	}

	for _, block := range root.Modules {
		spec, err := l.translateModule(block)
		if err != nil {
			return err
		}
		pipeline.Modules = append(pipeline.Modules, spec)
	}
	for _, block := range root.Connects {
		conn, err := l.translateConnect(block)
		if err != nil {
			return err
		}
		pipeline.Connections = append(pipeline.Connections, conn)
	}
	return nil
}

func (l *Loader) translateModule(block *ModuleBlock) (*ModuleSpec, error) {
	if block.Type == "" {
		return nil, fmt.Errorf("module block is missing a type label")
	}
	if err := naming.Validate(block.Name); err != nil {
		return nil, fmt.Errorf("module %q: %w", block.Type, err)
	}

	doc, err := l.translateConfig(block.Config)
	if err != nil {
		return nil, fmt.Errorf("module %q %q: %w", block.Type, block.Name, err)
	}
	return &ModuleSpec{Type: block.Type, Name: block.Name, Config: doc}, nil
}

// translateConfig evaluates the attributes of a config block into an
// immutable configuration document. Only literal values are supported;
// pipeline documents have no variable scope.
func (l *Loader) translateConfig(block *ConfigBlock) (modconfig.Document, error) {
	if block == nil {
		return modconfig.Empty(), nil
	}
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return modconfig.Document{}, fmt.Errorf("invalid config block: %w", diags)
	}

	values := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return modconfig.Document{}, fmt.Errorf("config attribute %q: %w", name, diags)
		}
		values[name] = val
	}
	return modconfig.FromMap(values), nil
}

func (l *Loader) translateConnect(block *ConnectBlock) (*Connection, error) {
	from, err := ParseEndpoint(block.From)
	if err != nil {
		return nil, fmt.Errorf("connect block: %w", err)
	}
	to, err := ParseEndpoint(block.To)
	if err != nil {
		return nil, fmt.Errorf("connect block: %w", err)
	}
	return &Connection{From: from, To: to}, nil
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl
// files found.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue // It's not an error if a configured path doesn't exist.
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			err := filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() && filepath.Ext(p) == ".hcl" {
					if _, wasSeen := seen[p]; !wasSeen {
						allFiles = append(allFiles, p)
						seen[p] = struct{}{}
					}
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		if _, wasSeen := seen[path]; !wasSeen {
			allFiles = append(allFiles, path)
			seen[path] = struct{}{}
		}
	}

	return allFiles, nil
}
