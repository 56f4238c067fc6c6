package visibility

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestInFrustum(t *testing.T) {
	pose := Pose{
		Position: mgl32.Vec3{0, 1.8, 0},
		Target:   mgl32.Vec3{0, 1.8, -1},
		Up:       mgl32.Vec3{0, 1, 0},
		FovY:     60,
	}
	aspect := float32(16.0 / 9.0)

	tests := []struct {
		name   string
		point  mgl32.Vec3
		margin float32
		want   bool
	}{
		{"à frente", mgl32.Vec3{0, 1.8, -5}, 0, true},
		{"atrás", mgl32.Vec3{0, 1.8, 5}, 10, false},
		{"no plano da câmera", mgl32.Vec3{1, 1.8, 0}, 10, false},
		{"muito à direita", mgl32.Vec3{20, 1.8, -5}, 0, false},
		{"muito acima", mgl32.Vec3{0, 10, -5}, 0, false},
		// meia-altura em z=-5: 5*tan(30°) ≈ 2.887; meia-largura ≈ 5.13
		{"fora sem folga", mgl32.Vec3{5.6, 1.8, -5}, 0, false},
		{"dentro com folga", mgl32.Vec3{5.6, 1.8, -5}, 1, true},
	}

	for _, tt := range tests {
		if got := InFrustum(pose, aspect, tt.margin, tt.point); got != tt.want {
			t.Errorf("%s: InFrustum = %v, want %v (view=%v)", tt.name, got, tt.want, pose.ViewSpace(tt.point))
		}
	}
}

func TestBehindCameraNeverDrawnEvenIfVisible(t *testing.T) {
	c := New(Config{MaxDistance: 50, FrustumMargin: 100}, nil)
	pose := Pose{Position: mgl32.Vec3{0, 1, 0}, Target: mgl32.Vec3{1, 1, 0}, Up: mgl32.Vec3{0, 1, 0}, FovY: 60}
	behind := mgl32.Vec3{-3, 1, 0}
	if !c.Visible(pose.Position, behind) {
		t.Fatalf("pré-condição: prop deveria ter LOS livre")
	}
	if c.InFrustum(pose, 1.5, behind) {
		t.Errorf("prop atrás da câmera passou pelo frustum")
	}
}

func TestInFrustumOrthographic(t *testing.T) {
	pose := Pose{
		Position: mgl32.Vec3{0, 0, 10}, Target: mgl32.Vec3{0, 0, 0},
		Up: mgl32.Vec3{0, 1, 0}, FovY: 10, Orthographic: true,
	}
	if !InFrustum(pose, 1, 0, mgl32.Vec3{4, 4, -50}) {
		t.Errorf("ponto dentro da caixa ortográfica rejeitado")
	}
	if InFrustum(pose, 1, 0, mgl32.Vec3{6, 0, 0}) {
		t.Errorf("ponto fora da caixa ortográfica aceito")
	}
}
