package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/lytgrid/internal/config"
	"github.com/specialistvlad/lytgrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL project loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every path in order and merges the results, later files
// winning.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := config.NewModel()
	parser := hclparse.NewParser()
	for _, path := range paths {
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
		}

		var root projectFile
		if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
		}

		m, err := l.translate(ctx, filepath.Dir(path), &root)
		if err != nil {
			return nil, fmt.Errorf("invalid project file %s: %w", path, err)
		}
		model.Merge(m)
		logger.Debug("Project file loaded.", "path", path, "sources", len(m.Sources), "breakpoints", len(m.Breakpoints), "overrides", len(m.Overrides))
	}
	return model, nil
}

// translate converts the decoded file into the format-agnostic model.
func (l *Loader) translate(ctx context.Context, dir string, root *projectFile) (*config.Model, error) {
	m := config.NewModel()
	m.Layouts = root.Layouts
	m.Format = root.Format
	m.LogLevel = root.LogLevel
	m.LogFormat = root.LogFormat
	for _, src := range root.Sources {
		m.Sources = append(m.Sources, resolvePath(dir, src))
	}
	if root.Output != "" {
		m.Output = resolvePath(dir, root.Output)
	}

	if err := decodeExpression(ctx, root.Breakpoints, &m.Breakpoints); err != nil {
		return nil, fmt.Errorf("breakpoints: %w", err)
	}

	for _, block := range root.Overrides {
		if _, ok := m.Overrides[block.Name]; ok {
			return nil, fmt.Errorf("duplicate layout block %q", block.Name)
		}
		o := &config.LayoutOverride{Name: block.Name}
		if err := decodeExpression(ctx, block.Breakpoints, &o.Breakpoints); err != nil {
			return nil, fmt.Errorf("layout %q breakpoints: %w", block.Name, err)
		}
		m.Overrides[block.Name] = o
	}
	return m, nil
}

// decodeExpression evaluates expr and stores it into target, converting the
// value to the type implied by target first. A null value leaves target
// untouched.
func decodeExpression(ctx context.Context, expr hcl.Expression, target any) error {
	if expr == nil {
		return nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return diags
	}
	if val.IsNull() {
		return nil
	}
	return decode(ctx, val, target)
}

func decode(ctx context.Context, val cty.Value, target any) error {
	logger := ctxlog.FromContext(ctx)

	impliedType, err := gocty.ImpliedType(target)
	if err != nil {
		return fmt.Errorf("unsupported target %T: %w", target, err)
	}
	converted, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %s to %s: %w", val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}
	if !val.Type().Equals(converted.Type()) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", converted.Type().FriendlyName(),
		)
	}
	return gocty.FromCtyValue(converted, target)
}

func resolvePath(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
