package tikz

import (
	"strings"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

// PlotPath is a coordinate plot, rendered as:
//
//	\draw plot[smooth, tension=0.5] coordinates {(1, 1) (2, 2) (3, 1)};
//
// PlotOptions configure the plot handler itself (smooth, mark=*,
// tension) and render inside the brackets after "plot"; Options are
// the ordinary drawing options of the statement.
type PlotPath struct {
	Points      []Point
	PlotOptions *Options
	Action      Action
	Options     *Options
}

// NewPlot builds a coordinate plot. plotOptions may be empty; at
// least two points are required.
func NewPlot(points []Point, plotOptions string, options ...string) (*PlotPath, error) {
	if err := errors.ValidateCount("plot", len(points), 2); err != nil {
		return nil, err
	}
	if err := validatePoints("plot", points); err != nil {
		return nil, err
	}
	pts := make([]Point, len(points))
	copy(pts, points)
	return &PlotPath{
		Points:      pts,
		PlotOptions: ParseOptions(plotOptions),
		Action:      ActionDraw,
		Options:     NewOptions(options...),
	}, nil
}

// Code returns the TikZ statement for the plot.
func (p *PlotPath) Code() string {
	return statement(p.Action, p.Options, p.command())
}

func (p *PlotPath) command() string {
	parts := make([]string, len(p.Points))
	for i, pt := range p.Points {
		parts[i] = pt.String()
	}
	return "plot" + p.PlotOptions.String() + " coordinates {" + strings.Join(parts, " ") + "}"
}

// Transform rewrites every plotted point through t.
func (p *PlotPath) Transform(t Transform) {
	for i, pt := range p.Points {
		p.Points[i] = t.Apply(pt)
	}
}
