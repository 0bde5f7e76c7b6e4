package main

import (
	"bytes"
	"log"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/smasonuk/dihedral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseLines(t *testing.T, out string) []float64 {
	t.Helper()
	var values []float64
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		v, err := strconv.ParseFloat(line, 64)
		require.NoError(t, err, "line %q", line)
		values = append(values, v)
	}
	return values
}

func TestRunResidue(t *testing.T) {
	testCases := []struct {
		name  string
		opts  options
		first float64
	}{
		{name: "radians", opts: options{}, first: -1.24295},
		{name: "degrees", opts: options{degrees: true}, first: -71.21515},
		{name: "unsigned degrees", opts: options{degrees: true, unsigned: true}, first: 71.21515},
		{name: "checked degrees", opts: options{degrees: true, checked: true}, first: -71.21515},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out, logs bytes.Buffer
			err := run(&out, log.New(&logs, "", 0), residue, tc.opts)
			require.NoError(t, err)

			values := parseLines(t, out.String())
			require.Len(t, values, 6)
			assert.InDelta(t, tc.first, values[0], 1e-2)
			assert.Equal(t, values[0], values[1])
			for _, v := range values {
				assert.False(t, math.IsNaN(v))
			}
			assert.Empty(t, logs.String())
		})
	}
}

func TestRunDegenerateFrame(t *testing.T) {
	points := []dihedral.Point3D{
		dihedral.NewPoint3D(0, 0, 0),
		dihedral.NewPoint3D(1, 0, 0),
		dihedral.NewPoint3D(2, 0, 0),
		dihedral.NewPoint3D(2, 1, 0),
		dihedral.NewPoint3D(2, 1, 1),
	}

	var out, logs bytes.Buffer
	err := run(&out, log.New(&logs, "", 0), points, options{checked: true})
	require.NoError(t, err)

	values := parseLines(t, out.String())
	require.Len(t, values, 3)
	assert.True(t, math.IsNaN(values[0]))
	assert.True(t, math.IsNaN(values[1]))
	assert.False(t, math.IsNaN(values[2]))
	assert.Equal(t, 2, strings.Count(logs.String(), "frame 0: dihedral: degenerate geometry"))
}

func TestRunTooFewPoints(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, log.Default(), residue[:3], options{})
	require.Error(t, err)
	assert.Empty(t, out.String())
}
