package prefabs

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"letterbound/behavior"
)

// LoadSpec reads and unmarshals one prefab file into a typed spec.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

type RangeSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type OffsetSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SpriteSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Sheet  string  `yaml:"sheet"`
	Color  string  `yaml:"color"`
}

type AnimationDefSpec struct {
	Row        int     `yaml:"row"`
	ColStart   int     `yaml:"col_start"`
	FrameCount int     `yaml:"frame_count"`
	FrameW     int     `yaml:"frame_w"`
	FrameH     int     `yaml:"frame_h"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

type AnimationSpec struct {
	Sheet   string                      `yaml:"sheet"`
	Current string                      `yaml:"current"`
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
}

// EnemySpec is the per-enemy-type prefab. The behavior block maps directly
// onto behavior.Params.
type EnemySpec struct {
	Name           string        `yaml:"name"`
	PatrolSpeed    float64       `yaml:"patrol_speed"`
	ChaseSpeed     float64       `yaml:"chase_speed"`
	VisionLength   float64       `yaml:"vision_length"`
	AttackDistance float64       `yaml:"attack_distance"`
	AttackCooldown float64       `yaml:"attack_cooldown"`
	IdleTime       RangeSpec     `yaml:"idle_time"`
	PatrolTime     RangeSpec     `yaml:"patrol_time"`
	VisionOffset   OffsetSpec    `yaml:"vision_offset"`
	Health         int           `yaml:"health"`
	Damage         int           `yaml:"damage"`
	Script         string        `yaml:"script"`
	Collider       ColliderSpec  `yaml:"collider"`
	Sprite         SpriteSpec    `yaml:"sprite"`
	Animation      AnimationSpec `yaml:"animation"`
}

// Params maps the spec onto the behavior machine's tuning values.
func (s EnemySpec) Params() behavior.Params {
	return behavior.Params{
		PatrolSpeed:    s.PatrolSpeed,
		ChaseSpeed:     s.ChaseSpeed,
		VisionLength:   s.VisionLength,
		AttackDistance: s.AttackDistance,
		AttackCooldown: s.AttackCooldown,
		MinIdle:        s.IdleTime.Min,
		MaxIdle:        s.IdleTime.Max,
		MinPatrol:      s.PatrolTime.Min,
		MaxPatrol:      s.PatrolTime.Max,
	}
}

// LoadEnemySpec loads an enemy prefab by name, e.g. "enemy_walker".
func LoadEnemySpec(name string) (*EnemySpec, error) {
	file := name
	if !strings.HasSuffix(file, ".yaml") && !strings.HasSuffix(file, ".yml") {
		file += ".yaml"
	}
	spec, err := LoadSpec[EnemySpec](file)
	if err != nil {
		return nil, err
	}
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(file, ".yaml")
	}
	if err := spec.Params().Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", file, err)
	}
	return &spec, nil
}

// PlayerSpec is the player prefab.
type PlayerSpec struct {
	Name      string        `yaml:"name"`
	MoveSpeed float64       `yaml:"move_speed"`
	JumpSpeed float64       `yaml:"jump_speed"`
	Health    int           `yaml:"health"`
	Collider  ColliderSpec  `yaml:"collider"`
	Sprite    SpriteSpec    `yaml:"sprite"`
	Animation AnimationSpec `yaml:"animation"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if spec.MoveSpeed <= 0 || spec.JumpSpeed <= 0 {
		return nil, fmt.Errorf("prefabs: player.yaml: speeds must be positive")
	}
	if spec.Health <= 0 {
		return nil, fmt.Errorf("prefabs: player.yaml: health must be positive")
	}
	return &spec, nil
}

// LetterSpec is the collectible letter prefab.
type LetterSpec struct {
	BobAmplitude float64      `yaml:"bob_amplitude"`
	BobSpeed     float64      `yaml:"bob_speed"`
	Collider     ColliderSpec `yaml:"collider"`
	Sprite       SpriteSpec   `yaml:"sprite"`
}

func LoadLetterSpec() (*LetterSpec, error) {
	spec, err := LoadSpec[LetterSpec]("letter.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
