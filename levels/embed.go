package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrInvalidLevel = errors.New("levels: invalid level")

// Level is a tile map. Layers are row-major, row 0 at the top.
type Level struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
}

type LayerMeta struct {
	Physics bool `json:"physics"`
}

type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// Load reads a level by name from levels/ on disk, falling back to the
// embedded copy. The .json extension is optional.
func Load(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean))); err == nil {
		return Parse(data)
	}
	return LoadLevelFromFS(clean)
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, cleanLevelPath(name))
	if err != nil {
		return nil, fmt.Errorf("levels: read level: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates level JSON.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidLevel, l.Width, l.Height)
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("%w: layer %d has %d tiles, want %d", ErrInvalidLevel, i, len(layer), l.Width*l.Height)
		}
	}
	return nil
}

// PhysicsLayers returns the layers whose tiles collide. A level without
// layer metadata treats every layer as solid.
func (l *Level) PhysicsLayers() [][]int {
	if l == nil {
		return nil
	}
	if len(l.LayerMeta) == 0 {
		return l.Layers
	}
	out := make([][]int, 0, len(l.Layers))
	for i, layer := range l.Layers {
		if i < len(l.LayerMeta) && l.LayerMeta[i].Physics {
			out = append(out, layer)
		}
	}
	return out
}

// Spawn returns the tile of the first "player" entity, or the top-left tile.
func (l *Level) Spawn() (int, int) {
	if l == nil {
		return 0, 0
	}
	for _, e := range l.Entities {
		if e.Type == "player" {
			return e.X, e.Y
		}
	}
	return 0, 0
}

func cleanLevelPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "levels/")
	if filepath.Ext(s) == "" {
		s += ".json"
	}
	return s
}
