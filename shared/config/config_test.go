package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsMatchDocumentedValues(t *testing.T) {
	c := DefaultConfig()
	if c.LOSMinCameraMove != 0.5 || c.LOSMaxPropDistance != 9 || c.PropRenderScale != 0.25 || c.FrustumMargin != 1 {
		t.Errorf("padrões de visibilidade inesperados: %+v", c)
	}
	if c.MaxRooms != 10 || c.MaxProps != 100 || c.PlayerRadius != 0.5 || c.CollisionMargin != 0.1 {
		t.Errorf("padrões de mundo inesperados: %+v", c)
	}
	if fixed := c.Validate(); len(fixed) != 0 {
		t.Errorf("padrão não deveria precisar de correção: %v", fixed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
		check  func(*Config) bool
	}{
		{"escala zero", func(c *Config) { c.PropRenderScale = 0 }, "prop_render_scale", func(c *Config) bool { return c.PropRenderScale == 0.25 }},
		{"escala acima de 1", func(c *Config) { c.PropRenderScale = 2 }, "prop_render_scale", func(c *Config) bool { return c.PropRenderScale == 0.25 }},
		{"filtro desconhecido", func(c *Config) { c.SecondaryFilter = "trilinear" }, "secondary_filter", func(c *Config) bool { return c.SecondaryFilter == "point" }},
		{"distância negativa", func(c *Config) { c.LOSMaxPropDistance = -1 }, "los_max_prop_distance", func(c *Config) bool { return c.LOSMaxPropDistance == 9 }},
		{"auto toggle negativo", func(c *Config) { c.AutoToggleSeconds = -3 }, "auto_toggle_seconds", func(c *Config) bool { return c.AutoToggleSeconds == 0 }},
	}
	for _, tt := range tests {
		c := DefaultConfig()
		tt.mutate(c)
		fixed := c.Validate()
		if len(fixed) != 1 || fixed[0] != tt.field {
			t.Errorf("%s: corrigidos = %v, want [%s]", tt.name, fixed, tt.field)
		}
		if !tt.check(c) {
			t.Errorf("%s: valor não corrigido: %+v", tt.name, c)
		}
	}
}

func TestSaveAndLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	c := DefaultConfig()
	c.PropRenderScale = 0.5
	c.ShowDebugBoxes = true
	if err := c.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	got := LoadFrom(path)
	if got.PropRenderScale != 0.5 || !got.ShowDebugBoxes {
		t.Errorf("valores não preservados: %+v", got)
	}

	if cfg := LoadFrom(filepath.Join(t.TempDir(), "nao_existe.json")); cfg.PropRenderScale != 0.25 {
		t.Errorf("arquivo ausente deveria usar padrão")
	}

	os.WriteFile(path, []byte("{quebrado"), 0644)
	if cfg := LoadFrom(path); cfg.PropRenderScale != 0.25 {
		t.Errorf("JSON inválido deveria usar padrão")
	}
}

// Campos ausentes no arquivo mantêm o padrão.
func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	os.WriteFile(path, []byte(`{"los_max_prop_distance": 12}`), 0644)

	c := LoadFrom(path)
	if c.LOSMaxPropDistance != 12 || c.LOSMinCameraMove != 0.5 {
		t.Errorf("mesclagem inesperada: %+v", c)
	}
}
