// Package plot renders clustered points and center trajectories as a
// standalone HTML scatter chart (go-echarts).
//
// Each label gets one scatter series in a fixed palette; each cluster's
// center trajectory is overlaid as a line series in the same color, and the
// latest center positions are drawn as a black "centers" series.
package plot

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var (
	// ErrEmpty indicates no points to draw.
	ErrEmpty = errors.New("plot: no points")
	// ErrLengthMismatch indicates labels that do not match the points.
	ErrLengthMismatch = errors.New("plot: labels do not match points")
	// ErrColumnOutOfRange indicates a display column outside a point or center.
	ErrColumnOutOfRange = errors.New("plot: column out of range")
)

// palette follows the classic AWT color list; index = cluster label.
var palette = []string{
	"#0000ff", // blue
	"#00ffff", // cyan
	"#404040", // dark gray
	"#00ff00", // green
	"#c0c0c0", // light gray
	"#ffc800", // orange
	"#ff00ff", // magenta
	"#ffafaf", // pink
	"#ff0000", // red
	"#ffff00", // yellow
}

const (
	centerColor     = "#000000"
	unassignedColor = "#9e9e9e"
)

// ColorFor returns the palette color of a label; negative labels are gray.
func ColorFor(label int) string {
	if label < 0 {
		return unassignedColor
	}
	return palette[label%len(palette)]
}

// Option configures Scatter.
type Option func(*config)

type config struct {
	title, subtitle string
	width, height   string
	x, y            int
}

// WithTitle sets the chart title and subtitle.
func WithTitle(title, subtitle string) Option {
	return func(c *config) { c.title, c.subtitle = title, subtitle }
}

// WithSize sets the canvas size in CSS units ("900px", "100%").
func WithSize(width, height string) Option {
	return func(c *config) {
		if width != "" {
			c.width = width
		}
		if height != "" {
			c.height = height
		}
	}
}

// WithColumns picks the coordinates shown on the x and y axes (default 0, 1).
func WithColumns(x, y int) Option {
	return func(c *config) { c.x, c.y = x, y }
}

// Scatter writes an HTML page to w.
//
// labels may be nil (every point unassigned) or hold one entry per point,
// -1 meaning unassigned. trajectories is cluster → iteration → D, as recorded
// by the fcm optimizer; it may be nil.
func Scatter(w io.Writer, points [][]float64, labels []int, trajectories [][][]float64, options ...Option) error {
	cfg := config{title: "Fuzzy C-Means", width: "900px", height: "600px", x: 0, y: 1}
	for _, o := range options {
		o(&cfg)
	}
	if len(points) == 0 {
		return ErrEmpty
	}
	if labels != nil && len(labels) != len(points) {
		return fmt.Errorf("%d labels for %d points: %w", len(labels), len(points), ErrLengthMismatch)
	}

	groups, order, err := groupPoints(points, labels, cfg.x, cfg.y)
	if err != nil {
		return err
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: cfg.title,
			Width:     cfg.width,
			Height:    cfg.height,
		}),
		charts.WithTitleOpts(opts.Title{Title: cfg.title, Subtitle: cfg.subtitle}),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "5%"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: fmt.Sprintf("x%d", cfg.x+1)}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: fmt.Sprintf("x%d", cfg.y+1)}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: true, Type: "png", Title: "fcm_scatter"},
			},
		}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside", XAxisIndex: 0},
			opts.DataZoom{Type: "inside", YAxisIndex: 0},
		),
	)

	for _, lbl := range order {
		sc.AddSeries(seriesName(lbl), groups[lbl],
			charts.WithItemStyleOpts(opts.ItemStyle{Color: ColorFor(lbl)}))
	}

	if len(trajectories) > 0 {
		var centers []opts.ScatterData
		ln := charts.NewLine()
		for j, path := range trajectories {
			if len(path) == 0 {
				continue
			}
			line := make([]opts.LineData, 0, len(path))
			for i, c := range path {
				if cfg.x >= len(c) || cfg.y >= len(c) || cfg.x < 0 || cfg.y < 0 {
					return fmt.Errorf("center %d step %d has %d values: %w", j, i, len(c), ErrColumnOutOfRange)
				}
				line = append(line, opts.LineData{Value: []interface{}{c[cfg.x], c[cfg.y]}})
			}
			last := path[len(path)-1]
			centers = append(centers, opts.ScatterData{
				Name:  fmt.Sprintf("center %d", j+1),
				Value: []interface{}{last[cfg.x], last[cfg.y]},
			})
			ln.AddSeries(fmt.Sprintf("trajectory %d", j+1), line,
				charts.WithItemStyleOpts(opts.ItemStyle{Color: ColorFor(j)}),
				charts.WithLineStyleOpts(opts.LineStyle{Color: ColorFor(j), Type: "dashed"}),
			)
		}
		sc.AddSeries("centers", centers, charts.WithItemStyleOpts(opts.ItemStyle{Color: centerColor}))
		sc.Overlap(ln)
	}

	return sc.Render(w)
}

// groupPoints buckets points by label and returns the labels in first-seen
// order so series order is stable for a given input.
func groupPoints(points [][]float64, labels []int, x, y int) (map[int][]opts.ScatterData, []int, error) {
	groups := make(map[int][]opts.ScatterData)
	var order []int
	for i, p := range points {
		if x < 0 || y < 0 || x >= len(p) || y >= len(p) {
			return nil, nil, fmt.Errorf("point %d has %d values: %w", i, len(p), ErrColumnOutOfRange)
		}
		lbl := -1
		if labels != nil && labels[i] >= 0 {
			lbl = labels[i]
		}
		if _, ok := groups[lbl]; !ok {
			order = append(order, lbl)
		}
		groups[lbl] = append(groups[lbl], opts.ScatterData{Value: []interface{}{p[x], p[y]}})
	}
	return groups, order, nil
}

func seriesName(label int) string {
	if label < 0 {
		return "unassigned"
	}
	return fmt.Sprintf("cluster %d", label+1)
}
