package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithAccurate(t *testing.T) {
	tests := map[string]struct {
		defaultOptions GeometryOptions
		input          bool
		expected       bool
	}{
		"enable from false default": {
			defaultOptions: GeometryOptions{Accurate: false},
			input:          true,
			expected:       true,
		},
		"disable from true default": {
			defaultOptions: GeometryOptions{Accurate: true},
			input:          false,
			expected:       false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			opts := ApplyGeometryOptions(tc.defaultOptions, WithAccurate(tc.input))
			assert.Equal(t, tc.expected, opts.Accurate)
		})
	}
}
