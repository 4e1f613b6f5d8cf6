package report

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/leafsense/leafreport/pkg/layout"
	"github.com/leafsense/leafreport/pkg/observability"
	"github.com/leafsense/leafreport/pkg/render"
	"github.com/leafsense/leafreport/pkg/render/sink"
)

// Runner executes report requests.
//
// The Runner is stateless with respect to requests: it holds configuration,
// a logger, and factories, never per-request data, so a single Runner can
// serve concurrent requests. Each Execute builds its own plan, writer, and
// driver and discards them when done.
type Runner struct {
	Config layout.Config
	Logger *log.Logger

	// NewWriter builds a fresh document writer per request.
	// Defaults to the PDF sink at the configured page size.
	NewWriter func(cfg layout.Config) render.Writer

	// now stamps filenames; injectable for tests.
	now func() time.Time
}

// NewRunner creates a runner with the given layout config.
// If logger is nil, the default logger is used.
func NewRunner(cfg layout.Config, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Config: cfg,
		Logger: logger,
		NewWriter: func(cfg layout.Config) render.Writer {
			return sink.NewPDF(cfg.PageWidth, cfg.PageHeight)
		},
		now: time.Now,
	}
}

// Execute runs one complete report generation: validate → plan → render.
//
// Planning is pure; the document writer is only constructed once the whole
// plan exists, so rejected inputs (unsupported format, undecodable payload,
// oversized image, empty request) never reach the writer. A failed render
// returns no bytes.
func (r *Runner) Execute(ctx context.Context, in Input) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	observability.Engine().OnPlanStart(ctx, in.Image != nil)
	planStart := time.Now()
	p, err := plan(in, r.Config)
	planTime := time.Since(planStart)
	if err != nil {
		observability.Engine().OnPlanComplete(ctx, 0, 0, planTime, err)
		return nil, err
	}
	observability.Engine().OnPlanComplete(ctx, len(p.Pages), p.LineCount(), planTime, nil)

	r.Logger.Info("planned report",
		"lines", p.LineCount(),
		"pages", len(p.Pages),
		"duration", planTime)

	observability.Engine().OnRenderStart(ctx, len(p.Pages))
	renderStart := time.Now()
	data, err := render.NewDriver(r.NewWriter(r.Config), r.Config).Render(p)
	renderTime := time.Since(renderStart)
	if err != nil {
		observability.Engine().OnRenderComplete(ctx, 0, renderTime, err)
		return nil, err
	}
	observability.Engine().OnRenderComplete(ctx, len(data), renderTime, nil)

	r.Logger.Info("rendered report",
		"bytes", len(data),
		"duration", renderTime)

	return &Result{
		Data:     data,
		Filename: Filename(r.now()),
		Pages:    len(p.Pages),
		Stats: Stats{
			Lines:      p.LineCount(),
			PlanTime:   planTime,
			RenderTime: renderTime,
		},
	}, nil
}
