package util

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float32
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestDistXZIgnoresHeight(t *testing.T) {
	got := DistXZ(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{3, 100, 4})
	if got != 5 {
		t.Errorf("DistXZ = %v, want 5", got)
	}
	if DistSq(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 5}) != 4 {
		t.Errorf("DistSq errado")
	}
}
