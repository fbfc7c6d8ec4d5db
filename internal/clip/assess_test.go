package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTolerance(t *testing.T) {
	assert.Equal(t, 1.0, Tolerance(0))
	assert.Equal(t, 1.0, Tolerance(5))
	assert.Equal(t, 1.0, Tolerance(10))
	assert.Equal(t, 3.0, Tolerance(30))
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		requested float64
		actual    float64
		want      bool
	}{
		{"within one second floor", 10.0, 10.9, true},
		{"just outside floor", 10.0, 11.2, false},
		{"short side within", 10.0, 9.1, true},
		{"ten percent rule", 30.0, 27.1, true},
		{"ten percent exceeded", 30.0, 26.5, false},
		{"exact", 42.0, 42.0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinTolerance(tt.requested, tt.actual))
		})
	}
}
