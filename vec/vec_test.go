package vec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanarDistance(t *testing.T) {
	tests := []struct {
		a, b Vec3
		want float32
	}{
		{V3(0, 0, 0), V3(0, 0, 0), 0},
		{V3(0, 0, 0), V3(3, 100, 4), 5},
		{V3(1, -7, 1), V3(1, 7, 1), 0},
		{V3(-1, 0, -1), V3(2, 0, 3), 5},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v-%v", tt.a, tt.b), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.XZ().Distance(tt.b.XZ()))
		})
	}
}

func TestLerp(t *testing.T) {
	a, b := V3(0, 0, 0), V3(10, 20, -10)
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, V3(5, 10, -5), a.Lerp(b, 0.5))
}

func TestWithY(t *testing.T) {
	v := V3(1, 2, 3)
	assert.Equal(t, V3(1, 9, 3), v.WithY(9))
	assert.Equal(t, V3(1, 2, 3), v, "receiver unchanged")
}

func TestSubtract(t *testing.T) {
	assert.Equal(t, Vec2{X: -2, Z: 6}, Vec2{X: 1, Z: 4}.Subtract(Vec2{X: 3, Z: -2}))
	assert.Equal(t, V3(-2, 1, 6), V3(1, 3, 4).Subtract(V3(3, 2, -2)))
}
