package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/treegraft/treegraft/pkg/cache"
	"github.com/treegraft/treegraft/pkg/config"
	apperrors "github.com/treegraft/treegraft/pkg/errors"
	"github.com/treegraft/treegraft/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple formats)
	formats  []string // output formats: dot, svg, pdf, png
	detailed bool     // include node ids and branch lengths in labels
	scale    float64  // PNG scale factor
	from     string   // input format override
	noCache  bool     // skip the local result cache
}

// renderCommand creates the render command for generating visualizations.
// It renders a tree to DOT and, through Graphviz, to SVG, PDF, or PNG.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: 2.0}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a tree to DOT, SVG, PDF, or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if formatsStr == "" {
				if cfg, err := config.Load(""); err == nil {
					formatsStr = cfg.Render.DefaultFormat
				}
			}
			opts.formats = parseFormats(formatsStr)
			for _, f := range opts.formats {
				switch f {
				case "dot", "svg", "pdf", "png":
				default:
					return apperrors.New(apperrors.ErrCodeInvalidFormat, "unsupported render format: %q", f)
				}
			}
			return c.runRender(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, pdf, png (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include node ids and branch lengths in labels")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().StringVar(&opts.from, "from", "", "input format: newick, json (default: by extension)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "skip the local result cache")

	return cmd
}

func (c *CLI) runRender(path string, opts *renderOpts) error {
	t, err := readTreeFile(path, opts.from)
	if err != nil {
		return err
	}

	dot := render.ToDOT(t, render.Options{Detailed: opts.detailed})

	// SVG is rendered once and shared by the svg, pdf, and png outputs.
	var svg []byte
	needsSVG := false
	for _, f := range opts.formats {
		if f != "dot" {
			needsSVG = true
		}
	}
	if needsSVG {
		svg, err = c.renderSVGCached(dot, opts.noCache)
		if err != nil {
			return err
		}
	}

	for _, f := range opts.formats {
		data := []byte(dot)
		switch f {
		case "svg":
			data = svg
		case "pdf":
			if data, err = render.ToPDF(svg); err != nil {
				return err
			}
		case "png":
			if data, err = render.ToPNG(svg, opts.scale); err != nil {
				return err
			}
		}
		out := outputPath(opts.output, path, f, len(opts.formats) > 1)
		if out == "" {
			if _, err := os.Stdout.Write(data); err != nil {
				return err
			}
			continue
		}
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		printFile(out)
	}
	if opts.output != "" || len(opts.formats) > 1 {
		printSuccess("Rendered %d format(s)", len(opts.formats))
	}
	return nil
}

// renderSVGCached renders DOT text to SVG, reusing a prior result from
// the local cache when one exists. Cache failures fall back to a fresh
// render.
func (c *CLI) renderSVGCached(dot string, noCache bool) ([]byte, error) {
	store, err := newCache(noCache)
	if err != nil {
		store = cache.NewNullCache()
	}
	defer store.Close()

	keyer := cache.NewDefaultKeyer()
	key := keyer.RenderKey(cache.Hash([]byte(dot)), cache.RenderKeyOpts{Format: "svg"})

	ctx := context.Background()
	if svg, hit, _ := store.Get(ctx, key); hit {
		c.Logger.Debug("render cache hit", "key", key)
		return svg, nil
	}

	sp := newSpinner("Rendering with Graphviz")
	sp.Start()
	svg, err := render.RenderSVG(dot)
	if err != nil {
		sp.StopWithError("Rendering failed")
		return nil, err
	}
	sp.Stop()

	_ = store.Set(ctx, key, svg, cache.TTLRender)
	return svg, nil
}

// outputPath derives the output file for a format. With a single format
// and an explicit --output, the path is used as given; otherwise the
// format extension is appended to the base (the input path without its
// extension when no --output was set).
func outputPath(output, input, format string, multi bool) string {
	if output == "" && !multi {
		return ""
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, extOf(input))
	}
	if !multi && output != "" {
		return output
	}
	return base + "." + format
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

func extOf(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 && !strings.ContainsRune(path[i:], '/') {
		return path[i:]
	}
	return ""
}
