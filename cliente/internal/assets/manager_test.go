package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMatchToken(t *testing.T) {
	tests := []struct {
		pattern string
		query   string
		want    bool
	}{
		{"*", "anything", true},
		{"PROP:*", "PROP:CHAIR", true},
		{"PROP:CHAIR", "PROP:CHAIR", true},
		{"PROP:CHAIR", "PROP:TABLE", false},
		{"SURFACE:*", "PROP:CHAIR", false},
		{"PROP:*", "PROP:CHAIR:EXTRA", false},
		{"*:WALL", "SURFACE:WALL", true},
	}

	for _, tt := range tests {
		got := matchToken(tt.pattern, tt.query)
		if got != tt.want {
			t.Errorf("matchToken(%q, %q) = %v, want %v", tt.pattern, tt.query, got, tt.want)
		}
	}
}

func TestSpecificityScore(t *testing.T) {
	tests := []struct {
		pattern string
		want    int
	}{
		{"*", 0},
		{"PROP:*", 1},
		{"*:WALL", 1},
		{"PROP:BOOKSHELF", 2},
	}

	for _, tt := range tests {
		got := specificityScore(tt.pattern)
		if got != tt.want {
			t.Errorf("specificityScore(%q) = %d, want %d", tt.pattern, got, tt.want)
		}
	}
}

func TestLookupPrefersSpecific(t *testing.T) {
	m := FromManifest(Manifest{Assets: []Entry{
		{Tokens: []string{"*"}, Texture: "generic.png"},
		{Tokens: []string{"PROP:*"}, Texture: "prop.png"},
		{Tokens: []string{"PROP:CHAIR", "PROP:TABLE"}, Texture: "wood.png", HiRes: "wood_hd.png", Model: "chair.obj"},
	}}, "teste")

	tests := []struct {
		token   string
		hiRes   bool
		texture string
	}{
		{"PROP:CHAIR", false, "wood.png"},
		{"PROP:TABLE", true, "wood_hd.png"},
		{"PROP:LAMP", true, "prop.png"},
		{"SURFACE:WALL", false, "generic.png"},
	}
	for _, tt := range tests {
		if got := m.Texture(tt.token, tt.hiRes); got != tt.texture {
			t.Errorf("Texture(%q, %v) = %q, want %q", tt.token, tt.hiRes, got, tt.texture)
		}
	}
	if got := m.Model("PROP:CHAIR"); got != "chair.obj" {
		t.Errorf("Model = %q", got)
	}
	if got := m.Model("PROP:BED"); got != "" {
		t.Errorf("Model sem malha = %q", got)
	}
}

func TestNewManager(t *testing.T) {
	dir := t.TempDir()

	m, err := NewManager(filepath.Join(dir, "ausente.json"))
	if err != nil {
		t.Fatalf("manifesto ausente não deveria falhar: %v", err)
	}
	if m.Source() != "embutido" || m.Lookup("PROP:CHAIR") == nil || m.Texture("SURFACE:WALL", false) != "" {
		t.Errorf("manifesto embutido inesperado: %+v", m.Entries())
	}

	bad := filepath.Join(dir, "ruim.json")
	os.WriteFile(bad, []byte("{"), 0644)
	if _, err := NewManager(bad); err == nil {
		t.Errorf("JSON inválido deveria falhar")
	}

	good := filepath.Join(dir, "assets.json")
	os.WriteFile(good, []byte(`{"assets":[{"tokens":["SURFACE:FLOOR"],"texture":"floor.png"}]}`), 0644)
	m, err = NewManager(good)
	if err != nil {
		t.Fatal(err)
	}
	if m.Texture("SURFACE:FLOOR", true) != "floor.png" || m.Lookup("PROP:CHAIR") != nil {
		t.Errorf("manifesto carregado inesperado: %+v", m.Entries())
	}
}
