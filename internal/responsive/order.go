package responsive

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/specialistvlad/lytgrid/internal/model"
)

var (
	ErrUnknownBreakpoint      = errors.New("unknown breakpoint")
	ErrInvalidBreakpointValue = errors.New("invalid breakpoint value")
)

// remPixels converts em and rem values to pixels.
const remPixels = 16

// Order sorts breakpoints largest viewport first. Equal sizes sort by name.
func Order(bps map[string]model.Breakpoint) ([]model.Breakpoint, error) {
	sizes := make(map[string]float64, len(bps))
	for name, bp := range bps {
		px, err := Pixels(bp.Value)
		if err != nil {
			return nil, fmt.Errorf("breakpoint %q: %w", name, err)
		}
		sizes[name] = px
	}

	out := model.SortedBreakpoints(bps)
	sort.SliceStable(out, func(i, j int) bool {
		return sizes[out[i].Name] > sizes[out[j].Name]
	})
	return out, nil
}

// CumulativeOrder returns the breakpoint names in effect at target, largest
// first and ending at target.
func CumulativeOrder(bps map[string]model.Breakpoint, target string) ([]string, error) {
	if _, ok := bps[target]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBreakpoint, target)
	}
	ordered, err := Order(bps)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, bp := range ordered {
		names = append(names, bp.Name)
		if bp.Name == target {
			break
		}
	}
	return names, nil
}

// Pixels interprets a breakpoint size such as "640px", "40em", "2.5rem" or
// a bare number.
func Pixels(value string) (float64, error) {
	v := strings.TrimSpace(strings.ToLower(value))
	scale := 1.0
	switch {
	case strings.HasSuffix(v, "px"):
		v = strings.TrimSuffix(v, "px")
	case strings.HasSuffix(v, "rem"):
		v, scale = strings.TrimSuffix(v, "rem"), remPixels
	case strings.HasSuffix(v, "em"):
		v, scale = strings.TrimSuffix(v, "em"), remPixels
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBreakpointValue, value)
	}
	return n * scale, nil
}
