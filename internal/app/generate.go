package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/klabast/yearplan/internal/surface"
)

// Options configures a single Generate call
type Options struct {
	Year     int // 0 means next year
	Language string
	Strategy Strategy
	Output   string // empty synthesizes a name from year and language
	Format   Format // empty picks by Output extension, then PDF
	Holidays string // holiday region, empty for none
	Scale    float64
	Now      func() time.Time
	Logger   *zap.Logger
}

// Generate resolves the options, renders the planner and saves it
func Generate(ctx context.Context, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	year, err := ResolveYear(opts.Year, now())
	if err != nil {
		return nil, err
	}

	format := opts.Format
	if format == "" {
		format = FormatFromPath(opts.Output, FormatPDF)
	}
	if format, err = ParseFormat(string(format)); err != nil {
		return nil, err
	}

	holidays, err := Holidays(opts.Holidays, year)
	if err != nil {
		return nil, err
	}

	var labels Labels
	switch opts.Strategy {
	case Fixed:
		labels = FixedLabels()
	default:
		labels = NewResolver(logger).Resolve(opts.Language)
	}

	path := opts.Output
	if path == "" {
		path = DefaultFilename(year, labels, format)
	}

	s, err := newSurface(format, opts.Scale, now())
	if err != nil {
		return nil, err
	}

	renderer := &Renderer{Year: year, Labels: labels, Holidays: holidays}
	cells, err := renderer.Render(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("render %d: %w", year, err)
	}

	if err := SaveSurface(path, s); err != nil {
		return nil, err
	}

	res := &Result{
		Path:     path,
		Year:     year,
		Language: labels.Language,
		Format:   format,
		Cells:    cells,
	}
	fields := []zap.Field{
		zap.String("file", path),
		zap.Int("year", year),
		zap.String("language", labels.Language),
		zap.Stringer("strategy", labels.Strategy),
		zap.Int("cells", cells),
	}
	if tr, ok := s.(*surface.Trace); ok {
		res.Fingerprint = tr.Fingerprint()
		fields = append(fields, zap.String("fingerprint", res.Fingerprint))
	}
	logger.Info("planner created", fields...)

	return res, nil
}

func newSurface(format Format, scale float64, createdAt time.Time) (surface.Surface, error) {
	switch format {
	case FormatPNG:
		if scale == 0 {
			scale = surface.DefaultPNGScale
		}
		return surface.NewPNG(surface.A4LandscapeWidth, surface.A4LandscapeHeight, scale)
	case FormatPDF:
		return surface.NewPDF(createdAt), nil
	case FormatTrace:
		return surface.NewTrace(surface.A4LandscapeWidth, surface.A4LandscapeHeight), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
