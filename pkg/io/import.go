package io

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/logtrack/pkg/core/catalog"
	"github.com/matzehuels/logtrack/pkg/core/primitive"
	errs "github.com/matzehuels/logtrack/pkg/errors"
)

// sceneFile mirrors catalog.Definition with pointer scalars so that unset
// keys can fall back to the base example.
type sceneFile struct {
	Base         string              `toml:"base"`
	Name         string              `toml:"name"`
	Title        *string             `toml:"title"`
	Description  *string             `toml:"description"`
	MaxDepth     *float64            `toml:"max_depth"`
	Step         *float64            `toml:"step"`
	Spacing      *float64            `toml:"spacing"`
	TrackWidth   *float64            `toml:"track_width"`
	TickInterval *float64            `toml:"tick_interval"`
	Grid         *bool               `toml:"grid"`
	Ticks        *bool               `toml:"ticks"`
	Tracks       []catalog.TrackSpec `toml:"track"`
}

// ReadScene decodes a TOML scene from r. The result has been validated with
// [catalog.Definition.Validate]; curve problems surface when it is built.
func ReadScene(r io.Reader) (catalog.Definition, error) {
	var f sceneFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return catalog.Definition{}, errs.Wrap(errs.ErrCodeInvalidScene, err, "decode scene")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return catalog.Definition{}, errs.New(errs.ErrCodeInvalidScene, "unknown keys in scene: %s", strings.Join(keys, ", "))
	}

	base := f.Base
	if base == "" {
		base = string(catalog.ExampleTwo)
	}
	def, err := catalog.Lookup(base)
	if err != nil {
		return catalog.Definition{}, err
	}
	def = f.apply(def)

	if err := def.Validate(); err != nil {
		return catalog.Definition{}, err
	}
	return def, nil
}

func (f sceneFile) apply(d catalog.Definition) catalog.Definition {
	if f.Name != "" {
		d.Name = catalog.Example(f.Name)
	}
	set(&d.Title, f.Title)
	set(&d.Description, f.Description)
	set(&d.MaxDepth, f.MaxDepth)
	set(&d.Step, f.Step)
	set(&d.Spacing, f.Spacing)
	set(&d.TrackWidth, f.TrackWidth)
	set(&d.TickInterval, f.TickInterval)
	set(&d.Grid, f.Grid)
	set(&d.Ticks, f.Ticks)
	if len(f.Tracks) > 0 {
		d.Tracks = append([]catalog.TrackSpec(nil), f.Tracks...)
	}
	return d
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// ImportScene reads a TOML scene file from path.
func ImportScene(path string) (catalog.Definition, error) {
	if err := errs.ValidatePath(path); err != nil {
		return catalog.Definition{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return catalog.Definition{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	def, err := ReadScene(f)
	if err != nil {
		return catalog.Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// ReadPrimitives decodes a primitive document from r.
func ReadPrimitives(r io.Reader) ([]primitive.Primitive, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return primitive.Unmarshal(data)
}

// ImportPrimitives reads a primitive document from path.
func ImportPrimitives(path string) ([]primitive.Primitive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return primitive.Unmarshal(data)
}
