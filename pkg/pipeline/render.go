package pipeline

import (
	"fmt"

	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/logtrack/pkg/core/catalog"
	errs "github.com/matzehuels/logtrack/pkg/errors"
	"github.com/matzehuels/logtrack/pkg/render/sink"
	"github.com/matzehuels/logtrack/pkg/render/styles"
)

// plotDPI converts pixel sizes to gonum/plot lengths.
const plotDPI = 96

// Render encodes a scene in every requested format without caching.
func Render(s *catalog.Scene, opts Options) (map[string][]byte, error) {
	if s == nil {
		return nil, errs.New(errs.ErrCodeInvalidInput, "no scene to render")
	}
	style, err := styles.Lookup(opts.Style)
	if err != nil {
		return nil, err
	}

	svgOpts := []sink.SVGOption{
		sink.WithStyle(style),
		sink.WithTitle(s.Definition.Title),
		sink.WithSize(opts.Width, opts.Height),
	}
	plotOpts := []sink.PlotOption{
		sink.WithPlotStyle(style),
		sink.WithPlotTitle(s.Definition.Title),
	}
	if opts.Width > 0 || opts.Height > 0 {
		width := pixels(opts.Width)
		if width == 0 {
			width = sink.DefaultPlotWidth
		}
		plotOpts = append(plotOpts, sink.WithPlotSize(width, pixels(opts.Height)))
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		switch format {
		case FormatSVG:
			data = sink.RenderSVG(s.Primitives, svgOpts...)
		case FormatPNG, FormatPDF, FormatEPS:
			data, err = sink.RenderPlot(s.Primitives, format, plotOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(s.Primitives)
		default:
			return nil, ValidateFormat(format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func pixels(px float64) vg.Length {
	return vg.Length(px) * vg.Inch / plotDPI
}
