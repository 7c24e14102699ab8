package presents

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var builtinLevelsYAML []byte

// ErrNoMoreLevels is returned when a level index has no layout.
var ErrNoMoreLevels = errors.New("presents: no more levels")

// EnemyKind selects the behavior of a spawned enemy.
type EnemyKind string

const (
	EnemyParent EnemyKind = "parent"
	EnemyCEO    EnemyKind = "ceo"
)

// PlatformSpec is one platform of a level layout.
type PlatformSpec struct {
	ID      string
	X, Y    float64
	W, H    float64
	Surface Surface
}

// EnemySpec is one enemy spawn. Home indexes into the level's platforms and
// is only used by parents.
type EnemySpec struct {
	Kind EnemyKind
	X, Y float64
	Home int
}

// LevelSpec is a validated, immutable level layout.
type LevelSpec struct {
	Name      string
	Platforms []PlatformSpec
	Enemies   []EnemySpec
	ChimneyX  float64
	ChimneyY  float64
}

// LevelTable is the ordered set of levels; level n is entry n-1.
type LevelTable struct {
	levels []LevelSpec
}

// yamlLevelFile is the on-disk shape of a level table.
type yamlLevelFile struct {
	Levels []yamlLevel `yaml:"levels"`
}

type yamlLevel struct {
	Name      string         `yaml:"name"`
	Platforms []yamlPlatform `yaml:"platforms"`
	Enemies   []yamlEnemy    `yaml:"enemies"`
	Chimney   yamlPoint      `yaml:"chimney"`
}

type yamlPlatform struct {
	ID      string  `yaml:"id"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	W       float64 `yaml:"w"`
	H       float64 `yaml:"h"`
	Surface string  `yaml:"surface"`
}

type yamlEnemy struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Home string  `yaml:"home,omitempty"`
}

type yamlPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LoadLevelTable parses and validates a YAML level table. Any inconsistency,
// such as a parent whose home names no platform of its level, is an error.
func LoadLevelTable(data []byte) (*LevelTable, error) {
	var file yamlLevelFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("presents: parse levels: %w", err)
	}
	if len(file.Levels) == 0 {
		return nil, errors.New("presents: level table is empty")
	}

	table := &LevelTable{levels: make([]LevelSpec, 0, len(file.Levels))}
	for i, yl := range file.Levels {
		spec, err := yl.validate()
		if err != nil {
			return nil, fmt.Errorf("presents: level %d (%s): %w", i+1, yl.Name, err)
		}
		table.levels = append(table.levels, spec)
	}
	return table, nil
}

func (yl yamlLevel) validate() (LevelSpec, error) {
	spec := LevelSpec{
		Name:     yl.Name,
		ChimneyX: yl.Chimney.X,
		ChimneyY: yl.Chimney.Y,
	}

	homes := make(map[string]int, len(yl.Platforms))
	for i, yp := range yl.Platforms {
		if yp.W <= 0 || yp.H <= 0 {
			return LevelSpec{}, fmt.Errorf("platform %d: size must be positive, got %gx%g", i, yp.W, yp.H)
		}
		surface, err := ParseSurface(yp.Surface)
		if err != nil {
			return LevelSpec{}, fmt.Errorf("platform %d: %w", i, err)
		}
		if yp.ID != "" {
			if _, dup := homes[yp.ID]; dup {
				return LevelSpec{}, fmt.Errorf("platform %d: duplicate id %q", i, yp.ID)
			}
			homes[yp.ID] = i
		}
		spec.Platforms = append(spec.Platforms, PlatformSpec{
			ID: yp.ID, X: yp.X, Y: yp.Y, W: yp.W, H: yp.H, Surface: surface,
		})
	}

	for i, ye := range yl.Enemies {
		es := EnemySpec{Kind: EnemyKind(ye.Kind), X: ye.X, Y: ye.Y, Home: -1}
		switch es.Kind {
		case EnemyParent:
			home, ok := homes[ye.Home]
			if !ok {
				return LevelSpec{}, fmt.Errorf("enemy %d: parent home %q is not a platform of this level", i, ye.Home)
			}
			es.Home = home
		case EnemyCEO:
		default:
			return LevelSpec{}, fmt.Errorf("enemy %d: unknown kind %q", i, ye.Kind)
		}
		spec.Enemies = append(spec.Enemies, es)
	}

	return spec, nil
}

// Len returns the number of levels.
func (t *LevelTable) Len() int {
	return len(t.levels)
}

// Level returns the layout for the 1-based level n.
func (t *LevelTable) Level(n int) (LevelSpec, bool) {
	if n < 1 || n > len(t.levels) {
		return LevelSpec{}, false
	}
	return t.levels[n-1], true
}

// Names returns the level names in order.
func (t *LevelTable) Names() []string {
	names := make([]string, len(t.levels))
	for i, l := range t.levels {
		names[i] = l.Name
	}
	return names
}

var (
	builtinOnce  sync.Once
	builtinTable *LevelTable
)

// BuiltinLevels returns the embedded level table. It panics if the embedded
// data is inconsistent, which can only be a programming error.
func BuiltinLevels() *LevelTable {
	builtinOnce.Do(func() {
		t, err := LoadLevelTable(builtinLevelsYAML)
		if err != nil {
			panic(err)
		}
		builtinTable = t
	})
	return builtinTable
}
