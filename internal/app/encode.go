package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gookit/color"
	"github.com/specialistvlad/lytgrid/internal/ctxlog"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	layoutStyle = color.New(color.FgCyan, color.OpBold)
	headerStyle = color.New(color.FgYellow)
	nestStyle   = color.New(color.FgMagenta)
)

// writeReport encodes the report in the configured format to the output
// file, or to the app's writer when no file is configured.
func (a *App) writeReport(ctx context.Context, report *Report) error {
	logger := ctxlog.FromContext(ctx)

	var buf bytes.Buffer
	if err := encodeReport(&buf, a.config.Format, report); err != nil {
		return err
	}

	if a.config.Output == "" {
		_, err := a.outW.Write(buf.Bytes())
		return err
	}
	if err := os.MkdirAll(filepath.Dir(a.config.Output), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(a.config.Output, buf.Bytes(), 0o644); err != nil {
		return err
	}
	logger.Info("Report written.", "path", a.config.Output, "format", a.config.Format, "bytes", buf.Len())
	return nil
}

func encodeReport(w io.Writer, format string, report *Report) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		return enc.Encode(report)
	case FormatText:
		return renderText(w, report)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// renderText writes a human-readable summary. Colors are applied when the
// terminal supports them.
func renderText(w io.Writer, report *Report) error {
	var b strings.Builder
	for i, l := range report.Layouts {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(layoutStyle.Sprintf("layout %s", l.Name))
		if len(l.Chain) > 1 {
			fmt.Fprintf(&b, " (%s)", strings.Join(l.Chain, " -> "))
		}
		b.WriteString("\n")

		if len(l.Breakpoints) > 0 {
			parts := make([]string, len(l.Breakpoints))
			for j, bp := range l.Breakpoints {
				parts[j] = bp.Name + "=" + bp.Value
			}
			fmt.Fprintf(&b, "  breakpoints: %s\n", strings.Join(parts, " "))
		}
		for _, s := range l.Slots {
			fmt.Fprintf(&b, "  slot %s%s\n", s.Name, describeSlot(s))
		}
		for _, v := range l.Views {
			writeView(&b, "", v.Breakpoint, v.Grid)
			names := make([]string, 0, len(v.Nested))
			for name := range v.Nested {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				writeView(&b, name, v.Breakpoint, v.Nested[name])
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func describeSlot(s SlotReport) string {
	var parts []string
	if s.Component != "" {
		parts = append(parts, "component="+s.Component)
	}
	if s.Container {
		parts = append(parts, "container")
	}
	if len(s.Children) > 0 {
		parts = append(parts, "children="+strings.Join(s.Children, ","))
	}
	if len(parts) == 0 {
		return ""
	}
	return ": " + strings.Join(parts, " ")
}

func writeView(b *strings.Builder, slot, breakpoint string, g GridView) {
	label := "base"
	if breakpoint != "" {
		label = breakpoint
	}
	if slot != "" {
		label = slot + " @ " + label
	}
	b.WriteString(headerStyle.Sprintf("  [%s] %d columns", label, g.Columns))
	b.WriteString("\n")
	for _, area := range g.Areas {
		fmt.Fprintf(b, "    %s\n", area)
	}
	for _, n := range g.Nests {
		target := n.Target
		if target == "" {
			target = "?"
		}
		b.WriteString(nestStyle.Sprintf("    %s -> %s (%s)", n.Slot, target, n.Direction))
		b.WriteString("\n")
	}
}
