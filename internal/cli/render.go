package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphwalk/pkg/cache"
	"github.com/matzehuels/graphwalk/pkg/render/nodelink"
	"github.com/matzehuels/graphwalk/pkg/session"
	"github.com/matzehuels/graphwalk/pkg/traverse"
)

// Output formats of the render command.
const (
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatPDF  = "pdf"
	formatPNG  = "png"
	formatJSON = "json"
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatDOT: true, formatSVG: true, formatPDF: true, formatPNG: true, formatJSON: true}

// binaryFormats cannot be written to a terminal.
var binaryFormats = map[string]bool{formatPDF: true, formatPNG: true}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	kind     string   // traversal to show; empty for none
	steps    int      // reveal only the first n nodes; 0 for all
	edits    editOpts // edge edits applied first
	output   string   // output file; stdout for text formats when empty
	format   string   // dot, svg, pdf, png, json
	detailed bool     // depth labels and dashed non-tree edges
	caption  bool     // status line under the diagram
	scale    float64  // png scale factor
	noCache  bool     // bypass the rendered diagram cache
}

// renderCommand creates the render command for writing node-link diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatSVG, scale: 2.0, caption: true}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the graph as a node-link diagram",
		Long: `Render the graph as a node-link diagram.

Nodes are drawn at their canvas positions with edge weights as labels.
With --kind the traversal is run and its visited nodes and edges are
coloured (green for BFS, purple for DFS); --steps stops after the first
n nodes to capture a frame mid-animation.

Text formats (dot, svg, json) go to stdout unless -o is given. PDF and PNG
need librsvg (rsvg-convert). Rendered diagrams are cached by content;
use --no-cache to force a fresh render.`,
		Example: `  graphwalk render -f dot
  graphwalk render --kind bfs --steps 3 -o frame.svg
  graphwalk render --kind dfs -f png -o dfs.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.format = strings.ToLower(opts.format)
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			if opts.steps < 0 {
				return fmt.Errorf("invalid --steps: %d (must be >= 0)", opts.steps)
			}
			kind := traverse.KindNone
			if opts.kind != "" {
				k, err := traverse.ParseKind(opts.kind)
				if err != nil {
					return err
				}
				kind = k
			}
			return c.runRender(cmd.Context(), kind, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "", "traversal to highlight: bfs, dfs")
	cmd.Flags().IntVar(&opts.steps, "steps", 0, "reveal only the first n nodes (0 = all)")
	opts.edits.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout for text formats)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot, json, pdf, png")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label depths and dash non-tree edges")
	cmd.Flags().BoolVar(&opts.caption, "caption", opts.caption, "show the status line under the diagram")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "png scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "always re-render instead of reusing cached diagrams")

	_ = cmd.RegisterFlagCompletionFunc("kind", cobra.FixedCompletions([]string{"bfs", "dfs"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{formatSVG, formatDOT, formatJSON, formatPDF, formatPNG}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// validateFormat checks that format is in validFormats.
func validateFormat(format string) error {
	if !validFormats[format] {
		return fmt.Errorf("invalid format: %s (must be 'svg', 'dot', 'json', 'pdf', or 'png')", format)
	}
	return nil
}

// outputPath picks where to write: the explicit path, stdout ("") for text
// formats, or graphwalk.<format> for binary ones.
func outputPath(output, format string) string {
	if output != "" || !binaryFormats[format] {
		return output
	}
	return appName + "." + format
}

// runRender builds the requested frame and writes it in the chosen format.
func (c *CLI) runRender(ctx context.Context, kind traverse.Kind, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	path := outputPath(opts.output, opts.format)

	// Writing to stdout leaves only the logger to report edits.
	sess := c.newSession(0)
	if err := opts.edits.apply(sess, path == ""); err != nil {
		return err
	}
	if kind != traverse.KindNone {
		revealFrame(sess, kind, opts.steps)
	}

	frame := sess.Frame()
	dot := nodelink.ToDOT(frame, nodelink.Options{Detailed: opts.detailed, Caption: opts.caption})

	prog := newProgress(logger)
	data, err := c.encodeFrame(ctx, frame, dot, opts)
	if err != nil {
		return err
	}
	prog.done("Rendered " + opts.format)

	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printSuccess("Wrote %s diagram", opts.format)
	printFile(path)
	return nil
}

// revealFrame starts kind and ticks until steps nodes are visible or the
// traversal completes. The run is then canceled so the frame stays put.
func revealFrame(sess *session.Session, kind traverse.Kind, steps int) {
	run := sess.StartTraversal(kind)
	for i := 0; steps == 0 || i < steps; i++ {
		if !sess.Tick(run) {
			return
		}
	}
	sess.Cancel()
}

// openCache returns the rendered diagram cache, or a NullCache when caching
// is disabled or the cache directory is unusable.
func (c *CLI) openCache(disabled bool) cache.Cache {
	if disabled {
		return cache.NewNullCache()
	}
	dir, err := c.Config.CacheDir()
	if err == nil {
		var fc cache.Cache
		if fc, err = cache.NewFileCache(dir); err == nil {
			return fc
		}
	}
	c.Logger.Warn("render cache disabled", "err", err)
	return cache.NewNullCache()
}

// encodeFrame produces the bytes of one output format. Graphviz output is
// looked up in the cache first and otherwise rendered behind a spinner.
func (c *CLI) encodeFrame(ctx context.Context, frame *session.Frame, dot string, opts *renderOpts) ([]byte, error) {
	switch opts.format {
	case formatDOT:
		return []byte(dot), nil
	case formatJSON:
		return nodelink.MarshalLayout(nodelink.Export(frame, dot))
	}

	logger := loggerFromContext(ctx)
	store := c.openCache(opts.noCache)
	defer store.Close()

	scale := 0.0
	if opts.format == formatPNG {
		scale = opts.scale
	}
	key := cache.ArtifactKey(dot, opts.format, scale)
	if data, ok, err := store.Get(ctx, key); err != nil {
		logger.Warn("cache read failed", "err", err)
	} else if ok {
		logger.Info("Using cached " + opts.format)
		return data, nil
	}

	data, err := c.renderDOT(ctx, dot, opts)
	if err != nil {
		return nil, err
	}
	if err := store.Set(ctx, key, data, c.Config.Cache.TTL); err != nil {
		logger.Warn("cache write failed", "err", err)
	}
	return data, nil
}

// renderDOT runs Graphviz (and rsvg-convert for pdf and png).
func (c *CLI) renderDOT(ctx context.Context, dot string, opts *renderOpts) ([]byte, error) {
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", opts.format))
	spinner.Start()

	var (
		data []byte
		err  error
	)
	switch opts.format {
	case formatPDF:
		data, err = nodelink.RenderPDF(ctx, dot)
	case formatPNG:
		data, err = nodelink.RenderPNG(ctx, dot, opts.scale)
	default:
		data, err = nodelink.RenderSVG(ctx, dot)
	}
	if err != nil {
		if spinner.Cancelled() {
			return nil, ctx.Err()
		}
		spinner.StopWithError("Rendering failed")
		return nil, fmt.Errorf("render %s: %w", opts.format, err)
	}
	spinner.Stop()
	return data, nil
}
