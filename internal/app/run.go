package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"

	"github.com/specialistvlad/lytgrid/internal/ctxlog"
	"github.com/specialistvlad/lytgrid/internal/fsutil"
	"github.com/specialistvlad/lytgrid/internal/model"
	"github.com/specialistvlad/lytgrid/internal/parser"
	"github.com/specialistvlad/lytgrid/internal/resolver"
	"github.com/specialistvlad/lytgrid/internal/responsive"
)

// LayoutExtension is the file extension of layout sources.
const LayoutExtension = ".lyt"

// Run compiles every requested layout and writes the report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if len(a.config.Sources) == 0 {
		return errors.New("no layout sources configured")
	}
	files, err := fsutil.FindFilesByExtension(LayoutExtension, a.config.Sources...)
	if err != nil {
		return fmt.Errorf("failed to discover layout files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found in %v", LayoutExtension, a.config.Sources)
	}
	a.logger.Debug("Discovered layout files.", "count", len(files))

	layouts, err := a.parseFiles(ctx, files)
	if err != nil {
		return err
	}
	r := resolver.New(layouts)

	names := a.config.Layouts
	known := r.Names()
	if len(names) == 0 {
		names = known
	}
	for name := range a.config.Overrides {
		if !slices.Contains(known, name) {
			a.logger.Warn("Override names an unknown layout.", "layout", name)
		}
	}

	report := &Report{}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		lr, err := a.compileLayout(ctx, r, name)
		if err != nil {
			return fmt.Errorf("failed to compile layout %q: %w", name, err)
		}
		report.Layouts = append(report.Layouts, *lr)
	}

	if err := a.writeReport(ctx, report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	a.logger.Info("Compilation finished.", "files", len(files), "layouts", len(report.Layouts))
	return nil
}

func (a *App) parseFiles(ctx context.Context, files []string) ([]*model.Layout, error) {
	logger := ctxlog.FromContext(ctx)

	var layouts []*model.Layout
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		parsed, err := parser.Parse(string(src))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", file, err)
		}
		logger.Debug("Parsed layout file.", "file", file, "layouts", len(parsed))
		layouts = append(layouts, parsed...)
	}
	return layouts, nil
}

func (a *App) compileLayout(ctx context.Context, r *resolver.Resolver, name string) (*LayoutReport, error) {
	logger := ctxlog.FromContext(ctx)

	resolved, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}

	bps := make(map[string]model.Breakpoint, len(a.config.Breakpoints)+len(resolved.Breakpoints))
	for n, v := range a.config.Breakpoints {
		bps[n] = model.Breakpoint{Name: n, Value: v}
	}
	for n, bp := range resolved.Breakpoints {
		bps[n] = bp
	}

	ordered, err := responsive.Order(bps)
	if err != nil {
		return nil, err
	}
	selected, err := a.selectBreakpoints(name, ordered)
	if err != nil {
		return nil, err
	}

	lr := &LayoutReport{
		Name:  resolved.Name,
		Chain: resolved.Chain,
		Slots: newSlotReports(resolved),
	}
	for _, bp := range ordered {
		px, _ := responsive.Pixels(bp.Value)
		lr.Breakpoints = append(lr.Breakpoints, BreakpointReport{Name: bp.Name, Value: bp.Value, Px: px})
	}

	lr.Views = append(lr.Views, buildView(resolved, "", nil))
	for _, bp := range selected {
		cumulative, err := responsive.CumulativeOrder(bps, bp.Name)
		if err != nil {
			return nil, err
		}
		lr.Views = append(lr.Views, buildView(resolved, bp.Name, cumulative))
	}

	logger.Debug("Compiled layout.", "layout", name, "chain", resolved.Chain, "views", len(lr.Views))
	return lr, nil
}

// selectBreakpoints applies the layout's override, keeping the largest-first
// order of ordered.
func (a *App) selectBreakpoints(layout string, ordered []model.Breakpoint) ([]model.Breakpoint, error) {
	wanted, ok := a.config.Overrides[layout]
	if !ok || len(wanted) == 0 {
		return ordered, nil
	}
	keep := make(map[string]bool, len(wanted))
	for _, w := range wanted {
		keep[w] = true
	}
	var out []model.Breakpoint
	for _, bp := range ordered {
		if keep[bp.Name] {
			out = append(out, bp)
			delete(keep, bp.Name)
		}
	}
	if len(keep) > 0 {
		missing := make([]string, 0, len(keep))
		for n := range keep {
			missing = append(missing, n)
		}
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %v", responsive.ErrUnknownBreakpoint, missing)
	}
	return out, nil
}

// buildView transforms the root grid and every nested slot grid.
func buildView(resolved *resolver.ResolvedLayout, breakpoint string, cumulative []string) ViewReport {
	v := ViewReport{
		Breakpoint: breakpoint,
		Cumulative: cumulative,
		Grid:       newGridView(responsive.Transform(resolved.Grid, breakpoint, cumulative)),
	}
	for name, slot := range resolved.Slots {
		if slot.NestedGrid == nil {
			continue
		}
		if v.Nested == nil {
			v.Nested = make(map[string]GridView)
		}
		v.Nested[name] = newGridView(responsive.Transform(slot.NestedGrid, breakpoint, cumulative))
	}
	return v
}
