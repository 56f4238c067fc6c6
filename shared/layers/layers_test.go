package layers

import (
	"errors"
	"testing"
)

func TestScaledSize(t *testing.T) {
	tests := []struct {
		w, h   int
		s      float32
		ww, wh int
	}{
		{1280, 720, 0.25, 320, 180},
		{1280, 720, 1, 1280, 720},
		{1280, 720, 0.1, 128, 72},
		{800, 600, 0.333, 266, 200},
		{3, 3, 0.1, 1, 1},
	}
	for _, tt := range tests {
		gw, gh := ScaledSize(tt.w, tt.h, tt.s)
		if gw != tt.ww || gh != tt.wh {
			t.Errorf("ScaledSize(%d, %d, %v) = %dx%d, want %dx%d", tt.w, tt.h, tt.s, gw, gh, tt.ww, tt.wh)
		}
	}
}

func TestNewLayoutValidation(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		s       float32
		wantErr error
	}{
		{"válido", 1280, 720, 0.25, nil},
		{"escala 1", 1280, 720, 1, nil},
		{"largura zero", 0, 720, 0.25, ErrInvalidSize},
		{"altura negativa", 1280, -1, 0.25, ErrInvalidSize},
		{"escala zero", 1280, 720, 0, ErrInvalidScale},
		{"escala acima de 1", 1280, 720, 1.5, ErrInvalidScale},
	}
	for _, tt := range tests {
		_, err := NewLayout(tt.w, tt.h, tt.s)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: err = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

// A composição final tem sempre a resolução da tela, qualquer que seja a escala.
func TestCompositeCoversScreen(t *testing.T) {
	for _, s := range []float32{0.1, 0.25, 0.5, 1} {
		l, err := NewLayout(1280, 720, s)
		if err != nil {
			t.Fatal(err)
		}
		for _, mode := range []Mode{ModeLowRes, ModeHighRes} {
			for _, b := range l.Composite(mode) {
				if b.Dest != (Rect{0, 0, 1280, 720}) {
					t.Errorf("escala %v modo %v: destino %+v", s, mode, b.Dest)
				}
				if b.Source.Height >= 0 {
					t.Errorf("origem do alvo %v deveria ser invertida: %+v", b.Target, b.Source)
				}
			}
		}
	}
}

func TestCompositeOrderAndState(t *testing.T) {
	l, _ := NewLayout(1280, 720, 0.25)

	low := l.Composite(ModeLowRes)
	if len(low) != 2 || low[0].Target != Primary || low[1].Target != Secondary {
		t.Fatalf("ordem inesperada: %+v", low)
	}
	if low[0].AlphaBlend || !low[0].DepthWrite {
		t.Errorf("primário deveria ser opaco: %+v", low[0])
	}
	if !low[1].AlphaBlend || !low[1].DepthTest || low[1].DepthWrite {
		t.Errorf("props devem usar alpha, teste de profundidade e sem escrita: %+v", low[1])
	}
	if low[1].Source != (Rect{0, 0, 320, -180}) {
		t.Errorf("origem secundária = %+v", low[1].Source)
	}

	high := l.Composite(ModeHighRes)
	if high[1].Target != HighRes || high[1].Source != (Rect{0, 0, 1280, -720}) {
		t.Errorf("modo alta resolução deveria compor o alvo cheio: %+v", high[1])
	}
}

func TestModeToggle(t *testing.T) {
	m := ModeLowRes
	if m.Toggle() != ModeHighRes || m.Toggle().Toggle() != ModeLowRes {
		t.Errorf("Toggle não alterna")
	}
}
