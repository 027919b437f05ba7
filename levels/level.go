package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var levelsFS embed.FS

// Box is an axis-aligned static collider, in units.
type Box struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EnemyPlacement spawns one enemy from a prefab spec.
type EnemyPlacement struct {
	Spec string  `yaml:"spec"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// LetterPlacement spawns one collectible letter.
type LetterPlacement struct {
	Letter string  `yaml:"letter"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

// Level is the static description of one playable level.
type Level struct {
	Name    string            `yaml:"name"`
	Next    string            `yaml:"next"`
	Width   float64           `yaml:"width"`
	Height  float64           `yaml:"height"`
	SpawnX  float64           `yaml:"spawn_x"`
	SpawnY  float64           `yaml:"spawn_y"`
	Grounds []Box             `yaml:"grounds"`
	Enemies []EnemyPlacement  `yaml:"enemies"`
	Letters []LetterPlacement `yaml:"letters"`
}

// Load reads a level by name, preferring a file on disk under levels/ over
// the embedded copy. The .yaml suffix is optional.
func Load(name string) (*Level, error) {
	if name == "" {
		return nil, fmt.Errorf("levels: empty level name")
	}
	file := name
	if !strings.HasSuffix(file, ".yaml") && !strings.HasSuffix(file, ".yml") {
		file += ".yaml"
	}

	data, err := os.ReadFile(filepath.Join("levels", file))
	if err != nil {
		data, err = levelsFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("levels: load %s: %w", file, err)
		}
	}

	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", file, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(file, filepath.Ext(file))
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("levels: %s has no playable area (%vx%v)", lvl.Name, lvl.Width, lvl.Height)
	}
	return &lvl, nil
}
