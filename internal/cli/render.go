package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/logtrack/pkg/core/catalog"
	lio "github.com/matzehuels/logtrack/pkg/io"
	"github.com/matzehuels/logtrack/pkg/pipeline"
	"github.com/matzehuels/logtrack/pkg/render/sink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file (single format), base path (several), or "-" for stdout
	formats string // comma-separated formats
	scene   string // TOML scene file replacing the built-in example
	noCache bool

	// Definition overrides, copied into Options only when the flag is given.
	maxDepth, step, spacing, tickInterval float64

	pipeline.Options
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [example]",
		Short: "Render a scene to SVG, PNG, PDF, EPS or JSON",
		Example: `  logtrack render three -f svg,png
  logtrack render two --style paper --width 1200 -o gr.pdf
  logtrack render --scene shale.toml -f json -o -`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeExamples,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Example = args[0]
			}
			if err := c.applyRenderConfig(cmd, &opts); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), &opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file (single format), base path (several) or - for stdout")
	f.StringVarP(&opts.formats, "format", "f", "", "output format(s): "+strings.Join(pipeline.FormatNames(), ", ")+" (comma-separated)")
	f.StringVar(&opts.scene, "scene", "", "TOML scene file to render instead of a built-in example")
	f.StringVar(&opts.Style, "style", "", "visual style: dark (default), paper")
	f.Float64Var(&opts.Width, "width", 0, "output width in pixels (0 derives it from the drawing)")
	f.Float64Var(&opts.Height, "height", 0, "output height in pixels (0 keeps the aspect ratio)")
	f.Float64Var(&opts.maxDepth, "max-depth", 0, "override the scene's maximum depth")
	f.Float64Var(&opts.step, "step", 0, "override the sampling step")
	f.Float64Var(&opts.spacing, "spacing", 0, "override the track spacing")
	f.Float64Var(&opts.tickInterval, "tick-interval", 0, "override the depth tick interval")
	f.BoolVar(&opts.Refresh, "refresh", false, "ignore cached scenes and artifacts")
	f.BoolVar(&opts.noCache, "no-cache", false, "disable the cache entirely")

	return cmd
}

// applyRenderConfig fills options not given on the command line from the
// config file and loads the scene file.
func (c *CLI) applyRenderConfig(cmd *cobra.Command, opts *renderOpts) error {
	rc := c.Config.Render
	if !cmd.Flags().Changed("style") && rc.Style != "" {
		opts.Style = rc.Style
	}
	if !cmd.Flags().Changed("width") {
		opts.Width = rc.Width
	}
	if !cmd.Flags().Changed("height") {
		opts.Height = rc.Height
	}
	for _, o := range []struct {
		flag string
		val  float64
		dst  **float64
	}{
		{"max-depth", opts.maxDepth, &opts.MaxDepth},
		{"step", opts.step, &opts.Step},
		{"spacing", opts.spacing, &opts.Spacing},
		{"tick-interval", opts.tickInterval, &opts.TickInterval},
	} {
		if cmd.Flags().Changed(o.flag) {
			*o.dst = pipeline.Float(o.val)
		}
	}
	if cmd.Flags().Changed("format") {
		opts.Formats = parseFormats(opts.formats)
	} else {
		opts.Formats = append([]string(nil), rc.Formats...)
	}

	if opts.scene != "" {
		if opts.Example != "" {
			return fmt.Errorf("give either an example or --scene, not both")
		}
		def, err := lio.ImportScene(opts.scene)
		if err != nil {
			return err
		}
		opts.Scene = &def
	}
	opts.Logger = c.Logger
	return opts.ValidateAndSetDefaults()
}

func (c *CLI) runRender(ctx context.Context, out io.Writer, opts *renderOpts) error {
	if opts.output == "-" && len(opts.Formats) != 1 {
		return fmt.Errorf("-o - needs exactly one format, got %d", len(opts.Formats))
	}

	runner, err := c.newRunner(ctx, opts.noCache, nil)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	label := opts.Example
	if opts.Scene != nil {
		label = opts.scene
	}
	spin := newSpinnerWithContext(ctx, "Rendering "+label)
	if opts.output != "-" {
		spin.Start()
	}
	res, err := runner.Execute(ctx, opts.Options)
	spin.Stop()
	if err != nil {
		return err
	}

	if opts.output == "-" {
		_, err := out.Write(res.Artifacts[opts.Formats[0]])
		return err
	}

	name := string(res.Scene.Definition.Name)
	paths := outputPaths(opts.output, name, opts.Formats)
	for _, format := range opts.Formats {
		if err := sink.Save(res.Artifacts[format], paths[format]); err != nil {
			return err
		}
	}

	printSuccess("Rendered %s", StyleHighlight.Render(res.Scene.Definition.Title))
	fmt.Println(statsLine(res.Stats, res.CacheInfo.SceneHit && res.CacheInfo.RenderHit))
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	prog.done(fmt.Sprintf("Rendered %d file(s)", len(opts.Formats)))
	if opts.Scene == nil {
		printNextStep("Preview in the terminal", "logtrack view "+opts.Example)
	}
	return nil
}

// parseFormats splits the --format flag. An empty value defaults to svg.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// outputPaths maps each format to its file. A single format writes to
// output as given; several formats share output (minus a known extension)
// as base path. Without output the scene name is the base.
func outputPaths(output, name string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output != "" && len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, name)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

func basePath(output, name string) string {
	if output == "" {
		if name == "" {
			name = string(catalog.ExampleTwo)
		}
		return name
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// completeExamples offers the built-in scene names for shell completion.
func completeExamples(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return catalog.Names(), cobra.ShellCompDirectiveNoFileComp
}
