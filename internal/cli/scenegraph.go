package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/logtrack/pkg/errors"
	"github.com/matzehuels/logtrack/pkg/pipeline"
	"github.com/matzehuels/logtrack/pkg/render/scenegraph"
	"github.com/matzehuels/logtrack/pkg/render/sink"
)

// scenegraphCommand draws the primitive hierarchy of a scene with Graphviz.
func (c *CLI) scenegraphCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "scenegraph [example]",
		Short: "Show the scene's primitive hierarchy as a Graphviz graph",
		Example: `  logtrack scenegraph three | dot -Tsvg > graph.svg
  logtrack scenegraph two -f png --detailed -o two-graph.png`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeExamples,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts := pipeline.Options{Logger: c.Logger}
			if len(args) == 1 {
				opts.Example = args[0]
			}
			if err := opts.ValidateForGenerate(); err != nil {
				return err
			}

			runner, err := c.newRunner(ctx, noCache, nil)
			if err != nil {
				return err
			}
			defer runner.Close()

			scene, err := runner.Generate(ctx, opts)
			if err != nil {
				return err
			}
			dot := scenegraph.ToDOT(scene, scenegraph.Options{Detailed: detailed})

			var data []byte
			switch format {
			case "dot":
				data = []byte(dot)
			case "svg":
				data, err = scenegraph.RenderSVG(ctx, dot)
			case "png":
				data, err = scenegraph.RenderPNG(ctx, dot)
			default:
				return errs.New(errs.ErrCodeInvalidFormat, "invalid scenegraph format %q (must be one of: dot, svg, png)", format)
			}
			if err != nil {
				return err
			}

			if output == "" && format == "dot" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if output == "" {
				output = fmt.Sprintf("%s-scenegraph.%s", opts.Example, format)
			}
			if err := sink.Save(data, output); err != nil {
				return err
			}
			printSuccess("Scene graph written")
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (dot goes to stdout by default)")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg, png")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "one node per primitive instead of collapsed groups")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the cache entirely")
	return cmd
}
