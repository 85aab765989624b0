package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcakit/ishikawa/pkg/cache"
	"github.com/rcakit/ishikawa/pkg/diagram"
	"github.com/rcakit/ishikawa/pkg/profile"
	"github.com/rcakit/ishikawa/pkg/render/fishbone"
	"github.com/rcakit/ishikawa/pkg/render/fishbone/layout"
	"github.com/rcakit/ishikawa/pkg/render/fishbone/sink"
	"github.com/rcakit/ishikawa/pkg/render/nodelink"
)

// defaultProfile is the builtin layout profile used when none is requested.
const defaultProfile = "detailed"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string   // output file path (or base path for multiple formats)
	formats     []string // output formats: "svg", "json", "png", "pdf", "dot"
	profileName string   // builtin profile name
	profileFile string   // TOML profile file, overrides profileName
	cacheDir    string   // artifact cache directory
	noCache     bool     // bypass the artifact cache
}

// newRenderCmd creates the render command for generating diagram artifacts.
// It supports multiple output formats written to separate files, a layout
// profile selected by name or loaded from TOML, and a file-based artifact
// cache keyed by payload, profile, and format.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{profileName: defaultProfile}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a cause-and-effect diagram from JSON input",
		Long:  `Render reads a JSON payload (an effect plus categorized causes) from a file or stdin ("-") and writes the diagram in one or more formats.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, png, pdf, dot (comma-separated)")
	cmd.Flags().StringVarP(&opts.profileName, "profile", "p", opts.profileName, "builtin layout profile: detailed, executive")
	cmd.Flags().StringVar(&opts.profileFile, "profile-file", "", "TOML profile file (overrides --profile)")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "artifact cache directory (default: user cache dir)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "json": true, "png": true, "pdf": true, "dot": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg', 'json', 'png', 'pdf', or 'dot')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input; stdin falls back
// to "diagram". If output carries a known format extension, that extension
// is stripped.
func basePath(output, input string) string {
	if output == "" {
		if input == "-" {
			return "diagram"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender loads the input, resolves the profile, and renders every
// requested format, consulting the artifact cache before rendering.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	payload, in, err := readInput(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded input: %d categories", len(in.Categories))

	p, err := resolveProfile(opts.profileName, opts.profileFile)
	if err != nil {
		return err
	}
	logger.Debugf("Using profile %s (%dx%d)", p.Name, int(p.CanvasWidth), int(p.CanvasHeight))

	c, err := openCache(opts)
	if err != nil {
		return err
	}
	defer c.Close()

	if len(opts.formats) == 1 && opts.output != "" {
		return renderOne(ctx, c, payload, in, p, opts.formats[0], opts.output)
	}

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		path := base + "." + format
		if err := renderOne(ctx, c, payload, in, p, format, path); err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}
	}
	prog.done(fmt.Sprintf("Rendered %d format(s)", len(opts.formats)))
	return nil
}

// renderOne produces a single artifact and writes it to path. Cached
// artifacts are reused; fresh renders are stored for next time.
func renderOne(ctx context.Context, c cache.Cache, payload []byte, in diagram.Input, p profile.Profile, format, path string) error {
	logger := loggerFromContext(ctx)

	key := cache.ArtifactKey(payload, p.Name, format)
	data, hit, err := c.Get(ctx, key)
	if err != nil {
		logger.Warn("artifact cache get failed", "err", err)
	}
	if hit {
		logger.Debugf("Cache hit for %s", format)
	} else {
		data, err = renderFormat(in, p, format)
		if err != nil {
			return err
		}
		if err := c.Set(ctx, key, data, 0); err != nil {
			logger.Warn("artifact cache set failed", "err", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	logger.Infof("Generated %s", path)
	printFile(path)
	return nil
}

// renderFormat dispatches to the renderer for the requested format.
func renderFormat(in diagram.Input, p profile.Profile, format string) ([]byte, error) {
	switch format {
	case "json":
		return fishbone.BuildDocument(in.Effect, in.Categories, fishbone.WithProfile(p))
	case "dot":
		return []byte(nodelink.ToDOT(fishbone.Normalize(in.Effect, in.Categories))), nil
	case "png":
		norm := fishbone.Normalize(in.Effect, in.Categories)
		return sink.RenderPNG(layout.Compute(norm, p), p)
	case "pdf":
		norm := fishbone.Normalize(in.Effect, in.Categories)
		return sink.RenderPDF(layout.Compute(norm, p), p)
	case "svg":
		return fishbone.Build(in.Effect, in.Categories, fishbone.WithProfile(p)).SVG, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// openCache builds the artifact cache for CLI rendering: a null cache when
// disabled, otherwise a file cache under the configured or default directory.
func openCache(opts *renderOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	dir := opts.cacheDir
	if dir == "" {
		var err error
		dir, err = defaultCacheDir()
		if err != nil {
			return nil, err
		}
	}
	return cache.NewFileCache(dir)
}
