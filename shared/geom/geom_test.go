package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewAABBNormalizesCorners(t *testing.T) {
	b := NewAABB(mgl32.Vec3{2, -1, 5}, mgl32.Vec3{-2, 3, 1})
	if b.Min != (mgl32.Vec3{-2, -1, 1}) || b.Max != (mgl32.Vec3{2, 3, 5}) {
		t.Fatalf("cantos não normalizados: %+v", b)
	}
	if !b.Contains(mgl32.Vec3{0, 0, 3}) {
		t.Errorf("centro deveria estar contido")
	}
	if b.Contains(mgl32.Vec3{0, 4, 3}) {
		t.Errorf("ponto acima não deveria estar contido")
	}
}

func TestOverlapsIgnoresTouchingFaces(t *testing.T) {
	a := NewAABB(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})
	touching := NewAABB(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{2, 1, 1})
	inside := NewAABB(mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{2, 2, 2})
	if a.Overlaps(touching) {
		t.Errorf("faces encostadas não deveriam sobrepor")
	}
	if !a.Overlaps(inside) {
		t.Errorf("caixas sobrepostas não detectadas")
	}
}

func TestRayFromToCoincident(t *testing.T) {
	p := mgl32.Vec3{1, 2, 3}
	if _, _, ok := RayFromTo(p, p); ok {
		t.Fatalf("pontos coincidentes não deveriam gerar raio")
	}
	r, d, ok := RayFromTo(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -4})
	if !ok || d != 4 {
		t.Fatalf("RayFromTo = %v, %v, %v", r, d, ok)
	}
	if r.Direction != (mgl32.Vec3{0, 0, -1}) {
		t.Errorf("direção = %v", r.Direction)
	}
}

func TestIntersectRay(t *testing.T) {
	wall := NewAABB(mgl32.Vec3{-8, 0, -0.1}, mgl32.Vec3{8, 8, 0.1})
	fwd := Ray{Origin: mgl32.Vec3{0, 1, 4}, Direction: mgl32.Vec3{0, 0, -1}}

	tests := []struct {
		name    string
		box     AABB
		ray     Ray
		wantHit bool
		want    float32
	}{
		{"frontal", wall, fwd, true, 3.9},
		{"parede deslocada", NewAABB(mgl32.Vec3{-8, 0, -0.1}, mgl32.Vec3{-2, 8, 0.1}), fwd, false, 0},
		{"caixa atrás", wall, Ray{Origin: mgl32.Vec3{0, 1, 4}, Direction: mgl32.Vec3{0, 0, 1}}, false, 0},
		{"origem dentro", wall, Ray{Origin: mgl32.Vec3{0, 1, 0}, Direction: mgl32.Vec3{0, 0, -1}}, true, 0.1},
		{"acima da parede", wall, Ray{Origin: mgl32.Vec3{0, 9, 4}, Direction: mgl32.Vec3{0, 0, -1}}, false, 0},
	}

	for _, tt := range tests {
		got, hit := tt.box.IntersectRay(tt.ray)
		if hit != tt.wantHit {
			t.Errorf("%s: hit = %v, want %v", tt.name, hit, tt.wantHit)
			continue
		}
		if hit && !mgl32.FloatEqualThreshold(got, tt.want, 1e-4) {
			t.Errorf("%s: dist = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIntersectRayDiagonal(t *testing.T) {
	box := NewAABB(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{2, 2, 2})
	r, _, _ := RayFromTo(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{3, 3, 3})
	d, hit := box.IntersectRay(r)
	if !hit {
		t.Fatalf("raio diagonal deveria atingir a caixa")
	}
	want := mgl32.Vec3{1, 1, 1}.Len()
	if !mgl32.FloatEqualThreshold(d, want, 1e-4) {
		t.Errorf("dist = %v, want %v", d, want)
	}
}
