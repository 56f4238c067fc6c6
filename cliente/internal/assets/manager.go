package assets

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
)

// --- Estruturas JSON ---

// Entry liga um ou mais tokens do mundo aos arquivos de asset.
// Campos vazios significam "sem arquivo": o renderer usa cor chapada
// (superfícies) ou textura procedural (props).
type Entry struct {
	Tokens  []string `json:"tokens"`
	Texture string   `json:"texture,omitempty"` // Textura difusa (baixa resolução)
	HiRes   string   `json:"hires,omitempty"`   // Textura da camada de alta resolução
	Model   string   `json:"model,omitempty"`   // Malha .obj/.glb; vazio usa a forma gerada
	Comment string   `json:"comment,omitempty"`
}

// Manifest é o root do assets.json
type Manifest struct {
	Assets []Entry `json:"assets"`
}

// DefaultManifest é usado quando não há assets.json: nenhuma textura em
// disco, tudo procedural.
func DefaultManifest() Manifest {
	return Manifest{Assets: []Entry{
		{Tokens: []string{"SURFACE:*"}, Comment: "paredes, piso e teto em cor chapada"},
		{Tokens: []string{"PROP:*"}, Comment: "props com textura procedural"},
	}}
}

// --- Manager ---

// Manager responde às consultas de asset do renderer.
type Manager struct {
	entries []Entry
	source  string
}

// NewManager carrega o manifesto em path. Arquivo ausente usa o manifesto
// embutido; JSON inválido é erro.
func NewManager(path string) (*Manager, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[Assets] %s não encontrado, usando manifesto embutido", path)
			return FromManifest(DefaultManifest(), "embutido"), nil
		}
		return nil, fmt.Errorf("falha ao ler %s: %w", path, err)
	}

	var mf Manifest
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("falha ao parsear %s: %w", path, err)
	}
	log.Printf("[Assets] %d entradas carregadas de %s", len(mf.Assets), path)
	return FromManifest(mf, path), nil
}

// FromManifest cria um Manager a partir de um manifesto em memória.
func FromManifest(mf Manifest, source string) *Manager {
	return &Manager{entries: mf.Assets, source: source}
}

// Source retorna a origem do manifesto (caminho ou "embutido").
func (m *Manager) Source() string { return m.source }

// --- Wildcard Matching ---

// matchToken compara um token de consulta contra um padrão com suporte a wildcards (*)
// Formato do token: "CATEGORIA:NOME", ex.: "SURFACE:WALL", "PROP:CHAIR"
// O wildcard '*' em qualquer segmento aceita qualquer valor
func matchToken(pattern, query string) bool {
	if pattern == "*" {
		return true
	}

	patParts := strings.Split(pattern, ":")
	queryParts := strings.Split(query, ":")
	if len(patParts) != len(queryParts) {
		return false
	}

	for i := range patParts {
		if patParts[i] == "*" {
			continue
		}
		if patParts[i] != queryParts[i] {
			return false
		}
	}
	return true
}

// specificityScore conta os segmentos que NÃO são wildcard.
func specificityScore(pattern string) int {
	if pattern == "*" {
		return 0
	}
	score := 0
	for _, p := range strings.Split(pattern, ":") {
		if p != "*" {
			score++
		}
	}
	return score
}

// --- Consultas Públicas ---

// Lookup retorna a entrada mais específica para o token, ou nil.
// Em empate vence a primeira entrada do manifesto.
func (m *Manager) Lookup(token string) *Entry {
	var bestMatch *Entry
	bestScore := -1

	for i := range m.entries {
		entry := &m.entries[i]
		for _, pat := range entry.Tokens {
			if matchToken(pat, token) {
				if score := specificityScore(pat); score > bestScore {
					bestScore = score
					bestMatch = entry
				}
			}
		}
	}
	return bestMatch
}

// Texture retorna o caminho da textura para o token (vazio se não houver).
// hiRes escolhe a textura da camada de alta resolução, caindo para a normal.
func (m *Manager) Texture(token string, hiRes bool) string {
	e := m.Lookup(token)
	if e == nil {
		return ""
	}
	if hiRes && e.HiRes != "" {
		return e.HiRes
	}
	return e.Texture
}

// Model retorna o caminho da malha para o token (vazio se não houver).
func (m *Manager) Model(token string) string {
	if e := m.Lookup(token); e != nil {
		return e.Model
	}
	return ""
}

// Entries retorna todas as entradas carregadas.
func (m *Manager) Entries() []Entry {
	return m.entries
}
