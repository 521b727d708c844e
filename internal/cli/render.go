package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/skilltree/pkg/cache"
	"github.com/matzehuels/skilltree/pkg/canvas"
	"github.com/matzehuels/skilltree/pkg/editor"
	"github.com/matzehuels/skilltree/pkg/layout"
	"github.com/matzehuels/skilltree/pkg/render"
	"github.com/matzehuels/skilltree/pkg/render/nodelink"
	"github.com/matzehuels/skilltree/pkg/render/scene"
	"github.com/matzehuels/skilltree/pkg/tree"
)

const (
	vizCards    = "cards"    // canvas cards with dependency curves
	vizHexagons = "hexagons" // branch columns of hexagons
	vizNodeLink = "nodelink" // Graphviz dependency diagram

	formatSVG = "svg"
	formatDOT = "dot"
	formatPDF = "pdf"
	formatPNG = "png"

	defaultPNGScale = 2.0
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatSVG: true, formatDOT: true, formatPDF: true, formatPNG: true}

// validVizTypes is the set of supported visualization types.
var validVizTypes = map[string]bool{vizCards: true, vizHexagons: true, vizNodeLink: true}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file (single type/format) or base path
	vizTypes []string // cards, hexagons, nodelink
	formats  []string // svg, dot, pdf, png
	detailed bool     // progress, status and level in nodelink labels
	zoom     float64  // card zoom
	width    float64  // hexagon frame width
	height   float64  // hexagon frame height
	scale    float64  // PNG scale factor
	noCache  bool     // skip the Graphviz SVG cache

	cache cache.Cache
}

func (c *CLI) renderCommand() *cobra.Command {
	var vizTypesStr, formatsStr string
	branches := layout.DefaultBranchOptions()
	opts := renderOpts{
		zoom:   1,
		width:  branches.Width,
		height: branches.Height,
		scale:  defaultPNGScale,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a skill tree to SVG, DOT, PDF or PNG",
		Example: `  skilltree render frontend.json
  skilltree render frontend.json -t hexagons,nodelink -f svg,png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.vizTypes = parseVizTypes(vizTypesStr)
			opts.formats = parseFormats(formatsStr)
			if err := validateVizTypes(opts.vizTypes); err != nil {
				return err
			}
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single type/format) or base path (multiple)")
	cmd.Flags().StringVarP(&vizTypesStr, "type", "t", "", "visualization type(s): cards (default), hexagons, nodelink (comma-separated)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, pdf, png (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show progress, status and level (nodelink)")
	cmd.Flags().Float64Var(&opts.zoom, "zoom", opts.zoom, "card zoom, 0.5 to 2")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "hexagon frame width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "hexagon frame height")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "do not read or write the render cache")

	return cmd
}

// parseVizTypes parses the --type flag. If empty, defaults to ["cards"].
func parseVizTypes(s string) []string {
	if s == "" {
		return []string{vizCards}
	}
	return strings.Split(s, ",")
}

func validateVizTypes(types []string) error {
	for _, t := range types {
		if !validVizTypes[t] {
			return fmt.Errorf("invalid type: %s (must be 'cards', 'hexagons', or 'nodelink')", t)
		}
	}
	return nil
}

func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg', 'dot', 'pdf', or 'png')", f)
		}
	}
	return nil
}

func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	t, err := loadTree(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded tree: %d skills, %d links", t.Len(), len(t.Links()))

	opts.cache = newCache(ctx, opts.noCache)
	defer opts.cache.Close()

	base := basePath(opts.output, input)
	single := len(opts.vizTypes) == 1 && len(opts.formats) == 1
	for _, vizType := range opts.vizTypes {
		for _, format := range opts.formats {
			path := outputPath(base, vizType, format, opts)
			if single && opts.output != "" {
				path = opts.output
			}
			if err := renderAndWrite(ctx, t, vizType, format, path, opts); err != nil {
				return err
			}
		}
	}
	return nil
}

// outputPath builds base.format, or base_type.format when several types are
// requested.
func outputPath(base, vizType, format string, opts *renderOpts) string {
	if len(opts.vizTypes) == 1 {
		return fmt.Sprintf("%s.%s", base, format)
	}
	return fmt.Sprintf("%s_%s.%s", base, vizType, format)
}

// renderAndWrite renders one type/format combination to path. Unsupported
// combinations (e.g. cards as DOT) are skipped with a debug log.
func renderAndWrite(ctx context.Context, t *tree.Tree, vizType, format, path string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	data, err := renderTree(ctx, t, vizType, format, opts)
	if errors.Is(err, errSkipFormat) {
		logger.Debugf("Skipping %s/%s (unsupported combination)", vizType, format)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s/%s: %w", vizType, format, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	logger.Infof("Generated %s", path)
	return nil
}

var errSkipFormat = fmt.Errorf("skip unsupported format")

// renderTree produces the bytes for one type/format combination.
func renderTree(ctx context.Context, t *tree.Tree, vizType, format string, opts *renderOpts) ([]byte, error) {
	var svg []byte
	var err error
	switch vizType {
	case vizNodeLink:
		dot := nodelink.ToDOT(t, nodeLinkOptions(ctx, t, opts))
		if format == formatDOT {
			return []byte(dot), nil
		}
		svg, err = cachedSVG(ctx, opts.cache, dot)
	case vizCards, vizHexagons:
		if format == formatDOT {
			return nil, errSkipFormat
		}
		svg, err = renderScene(ctx, t, vizType, opts)
	default:
		return nil, fmt.Errorf("unknown visualization type: %s", vizType)
	}
	if err != nil {
		return nil, err
	}
	return convert(ctx, svg, format, opts.scale)
}

// cachedSVG lays out dot with Graphviz, reusing an earlier result for the
// same source.
func cachedSVG(ctx context.Context, c cache.Cache, dot string) ([]byte, error) {
	logger := loggerFromContext(ctx)
	key := cache.Key("nodelink", dot)
	if svg, hit, err := c.Get(ctx, key); err == nil && hit {
		logger.Debug("Graphviz cache hit")
		return svg, nil
	}
	svg, err := nodelink.RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	if err := c.Set(ctx, key, svg, cacheTTL); err != nil {
		logger.Debugf("Cache write failed: %v", err)
	}
	return svg, nil
}

func nodeLinkOptions(ctx context.Context, t *tree.Tree, opts *renderOpts) nodelink.Options {
	o := nodelink.Options{Detailed: opts.detailed}
	if !opts.detailed {
		return o
	}
	levels, err := layout.Level(t)
	if err != nil {
		loggerFromContext(ctx).Warnf("Levels omitted: %v", err)
		return o
	}
	o.Levels = levels
	return o
}

func renderScene(ctx context.Context, t *tree.Tree, vizType string, opts *renderOpts) ([]byte, error) {
	so := scene.DefaultOptions()
	so.Style = scene.Style(vizType)
	so.Branches.Width = opts.width
	so.Branches.Height = opts.height

	view := canvas.NewViewport()
	for view.Zoom < opts.zoom && view.ZoomIn() != view {
		view = view.ZoomIn()
	}
	for view.Zoom > opts.zoom && view.ZoomOut() != view {
		view = view.ZoomOut()
	}
	so.View = view

	positions := editor.New(t, editor.Options{Logger: loggerFromContext(ctx)}).Positions()
	return scene.Render(ctx, t, positions, so)
}

// convert rasterizes svg when format asks for it.
func convert(ctx context.Context, svg []byte, format string, scale float64) ([]byte, error) {
	switch format {
	case formatSVG:
		return svg, nil
	case formatPDF, formatPNG:
		sp := newSpinnerWithContext(ctx, fmt.Sprintf("Converting to %s...", strings.ToUpper(format)))
		sp.Start()
		defer sp.Stop()
		if format == formatPDF {
			return render.ToPDF(ctx, svg)
		}
		return render.ToPNG(ctx, svg, scale)
	}
	return nil, fmt.Errorf("unknown format: %s", format)
}
