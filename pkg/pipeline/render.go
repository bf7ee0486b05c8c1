package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/spheregrid/pkg/errors"
	"github.com/matzehuels/spheregrid/pkg/grid"
	"github.com/matzehuels/spheregrid/pkg/render/nodelink"
	"github.com/matzehuels/spheregrid/pkg/render/sink"
	"github.com/matzehuels/spheregrid/pkg/scene"
)

// Render encodes s in one format. The DOT and topology formats describe the
// node graph of cfg rather than the scene; topology is that graph laid out
// and drawn by Graphviz.
func Render(ctx context.Context, s *scene.Scene, cfg *grid.Config, format string, opts Options) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatSVG:
		data = sink.RenderSVG(s)
	case FormatPNG:
		pngOpts := []sink.PNGOption{sink.WithScale(opts.Scale)}
		if opts.UseConverter {
			pngOpts = append(pngOpts, sink.WithConverter())
		}
		data, err = sink.RenderPNG(ctx, s, pngOpts...)
	case FormatPDF:
		data, err = sink.RenderPDF(ctx, s)
	case FormatJSON:
		data, err = sink.RenderJSON(s)
	case FormatDOT:
		data = []byte(nodelink.ToDOT(cfg, nodelink.Options{Detailed: opts.Detailed}))
	case FormatTopology:
		data, err = nodelink.RenderSVG(ctx, nodelink.ToDOT(cfg, nodelink.Options{Detailed: opts.Detailed}))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return data, nil
}
