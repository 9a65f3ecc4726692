// Package pipeline runs the generate → render pipeline shared by the CLI and
// the HTTP server.
//
// # Stages
//
//  1. Generate: resolve a scene definition (built-in example or custom
//     scene) and build curves, tracks and primitives.
//  2. Render: encode the primitives as SVG, PNG, PDF, EPS or JSON.
//
// Both stages are cached through a [cache.Cache]: generated scenes under a
// key derived from the effective definition, artifacts under a key derived
// from the primitive document and the render settings.
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Example: "three",
//	    Formats: []string{"svg", "png"},
//	    Style:   "paper",
//	})
//	svg := result.Artifacts["svg"]
//
// Stages can be run on their own:
//
//	scene, err := runner.Generate(ctx, opts)
//	artifacts, err := runner.Render(ctx, scene, opts)
package pipeline

import (
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/logtrack/pkg/cache"
	"github.com/matzehuels/logtrack/pkg/core/catalog"
	errs "github.com/matzehuels/logtrack/pkg/errors"
	"github.com/matzehuels/logtrack/pkg/render/styles"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultExample is the scene rendered when neither an example nor a
	// custom scene is given.
	DefaultExample = string(catalog.ExampleTwo)

	// DefaultStyle is the default visual style.
	DefaultStyle = "dark"

	// MaxPixels bounds each side of a requested raster size.
	MaxPixels = 8192
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatEPS  = "eps"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatEPS:  true,
	FormatJSON: true,
}

// ContentTypes maps each format to its MIME type.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatEPS:  "application/postscript",
	FormatJSON: "application/json",
}

// FormatNames returns the supported formats in sorted order.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct doubles as the JSON body of POST /api/v1/render.
type Options struct {
	// Scene selection. Scene, when set, replaces the built-in example.
	Example string              `json:"example,omitempty"`
	Scene   *catalog.Definition `json:"scene,omitempty"`

	// Definition overrides; nil keeps the scene's value, a set value
	// (zero included) replaces it.
	MaxDepth     *float64 `json:"max_depth,omitempty"`
	Step         *float64 `json:"step,omitempty"`
	Spacing      *float64 `json:"spacing,omitempty"`
	TickInterval *float64 `json:"tick_interval,omitempty"`
	Refresh      bool     `json:"refresh,omitempty"`

	// Render options. Width and Height are pixels; zero derives the size
	// from the drawing.
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Width   float64  `json:"width,omitempty"`
	Height  float64  `json:"height,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Scene *catalog.Scene

	// SceneHash is the content hash of the primitive document.
	SceneHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Tracks       int
	Samples      int
	Polylines    int
	Labels       int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// Primitives returns the total primitive count.
func (s Stats) Primitives() int { return s.Polylines + s.Labels }

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SceneHit  bool // scene came from cache
	RenderHit bool // every artifact came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if style == "" {
		return errs.New(errs.ErrCodeInvalidStyle, "style is required (must be one of: %s)", strings.Join(styles.Names(), ", "))
	}
	_, err := styles.Lookup(style)
	return err
}

// ValidateSize checks a requested pixel size. Each side must lie in
// [0, MaxPixels]; zero derives the side from the drawing.
func ValidateSize(width, height float64) error {
	for _, v := range []float64{width, height} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return errs.New(errs.ErrCodeInvalidInput, "size must be a non-negative number, got %gx%g", width, height)
		}
		if v > MaxPixels {
			return errs.New(errs.ErrCodeInvalidInput, "size %gx%g exceeds the %d pixel limit", width, height, MaxPixels)
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults. It is
// idempotent. Range problems in the definition are reported by Generate.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGenerate resolves the example name and sets the logger default.
func (o *Options) ValidateForGenerate() error {
	if o.Scene == nil {
		if o.Example == "" {
			o.Example = DefaultExample
		}
		e, err := catalog.ParseExample(o.Example)
		if err != nil {
			return err
		}
		o.Example = string(e)
	} else if o.Example == "" {
		o.Example = string(o.Scene.Name)
	}
	o.setLogger()
	return nil
}

// ValidateForRender sets render defaults and validates formats, style and size.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	o.Formats = dedupe(o.Formats)
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	o.setLogger()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	return ValidateSize(o.Width, o.Height)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

func dedupe(formats []string) []string {
	seen := make(map[string]bool, len(formats))
	out := formats[:0:0]
	for _, f := range formats {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

// Definition returns the effective scene definition: the custom scene or
// the named example with the set overrides applied.
func (o *Options) Definition() (catalog.Definition, error) {
	var def catalog.Definition
	if o.Scene != nil {
		def = o.Scene.Clone()
	} else {
		name := o.Example
		if name == "" {
			name = DefaultExample
		}
		var err error
		if def, err = catalog.Lookup(name); err != nil {
			return catalog.Definition{}, err
		}
	}
	override(&def.MaxDepth, o.MaxDepth)
	override(&def.Step, o.Step)
	override(&def.Spacing, o.Spacing)
	override(&def.TickInterval, o.TickInterval)
	return def, nil
}

func override(dst, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// Float returns a pointer to v, for setting definition overrides.
func Float(v float64) *float64 { return &v }

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		Width:  o.Width,
		Height: o.Height,
	}
}
