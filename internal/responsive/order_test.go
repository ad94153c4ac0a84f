package responsive

import (
	"errors"
	"testing"

	"github.com/specialistvlad/lytgrid/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func breakpoints(pairs ...string) map[string]model.Breakpoint {
	out := make(map[string]model.Breakpoint)
	for i := 0; i+1 < len(pairs); i += 2 {
		out[pairs[i]] = model.Breakpoint{Name: pairs[i], Value: pairs[i+1]}
	}
	return out
}

func TestCumulativeOrder(t *testing.T) {
	bps := breakpoints("sm", "640px", "lg", "80rem", "md", "1024", "xs", "20em")

	testCases := []struct {
		target   string
		expected []string
	}{
		{target: "lg", expected: []string{"lg"}},
		{target: "md", expected: []string{"lg", "md"}},
		{target: "sm", expected: []string{"lg", "md", "sm"}},
		{target: "xs", expected: []string{"lg", "md", "sm", "xs"}},
	}

	for _, tc := range testCases {
		t.Run(tc.target, func(t *testing.T) {
			got, err := CumulativeOrder(bps, tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestCumulativeOrder_Errors(t *testing.T) {
	_, err := CumulativeOrder(breakpoints("sm", "640px"), "md")
	assert.True(t, errors.Is(err, ErrUnknownBreakpoint))

	_, err = CumulativeOrder(breakpoints("sm", "640px", "md", "wide"), "sm")
	assert.True(t, errors.Is(err, ErrInvalidBreakpointValue))
	assert.Contains(t, err.Error(), `breakpoint "md"`)
}

func TestOrder_TiesSortByName(t *testing.T) {
	ordered, err := Order(breakpoints("b", "40em", "a", "640px", "c", "100"))
	require.NoError(t, err)

	names := make([]string, len(ordered))
	for i, bp := range ordered {
		names[i] = bp.Name
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestPixels(t *testing.T) {
	testCases := []struct {
		value    string
		expected float64
		wantErr  bool
	}{
		{value: "640px", expected: 640},
		{value: " 1024PX ", expected: 1024},
		{value: "48em", expected: 768},
		{value: "2.5rem", expected: 40},
		{value: "300", expected: 300},
		{value: "wide", wantErr: true},
		{value: "-5px", wantErr: true},
		{value: "", wantErr: true},
		{value: "NaN", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			got, err := Pixels(tc.value)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBreakpointValue)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, got, 0.0001)
		})
	}
}
