// Package chart renders the fitted line and the loss curve with gonum/plot.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/emiliopalmerini/housefit/internal/domain"
)

var ErrTooFewEpochs = errors.New("loss curve needs at least two epochs")

const (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

var (
	red   = color.RGBA{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF}
	blue  = color.RGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF}
	green = color.RGBA{R: 0x22, G: 0xC5, B: 0x5E, A: 0xFF}
)

// Point is a plotted coordinate.
type Point struct {
	X float64
	Y float64
}

// FitLine returns the segment from (0, b) to (x_last, b + w*x_last). The last
// feature value is assumed to be representative of the data's range.
func FitLine(weight, bias float64, feature []float64) [2]Point {
	var x1 float64
	if len(feature) > 0 {
		x1 = feature[len(feature)-1]
	}
	return [2]Point{
		{X: 0, Y: bias},
		{X: x1, Y: bias + weight*x1},
	}
}

// Model plots feature against label with the fitted line over it in red.
func Model(weight, bias float64, feature, label []float64) (*plot.Plot, error) {
	if len(feature) != len(label) {
		return nil, fmt.Errorf("%d features for %d labels: %w", len(feature), len(label), domain.ErrLengthMismatch)
	}

	p := plot.New()
	p.X.Label.Text = "feature"
	p.Y.Label.Text = "label"

	pts := make(plotter.XYs, len(feature))
	for i := range feature {
		pts[i].X = feature[i]
		pts[i].Y = label[i]
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("building scatter: %w", err)
	}
	scatter.GlyphStyle.Color = blue
	scatter.GlyphStyle.Radius = vg.Points(1)

	seg := FitLine(weight, bias, feature)
	line, err := plotter.NewLine(plotter.XYs{{X: seg[0].X, Y: seg[0].Y}, {X: seg[1].X, Y: seg[1].Y}})
	if err != nil {
		return nil, fmt.Errorf("building fit line: %w", err)
	}
	line.LineStyle.Color = red
	line.LineStyle.Width = vg.Points(2)

	p.Add(scatter, line)
	return p, nil
}

// LossCurve plots training and validation RMSE per epoch, leaving out epoch 0
// whose loss is usually far above the rest.
func LossCurve(h *domain.History) (*plot.Plot, LossSpread, error) {
	spread, err := Spread(h)
	if err != nil {
		return nil, LossSpread{}, err
	}

	p := plot.New()
	p.X.Label.Text = "Epoch"
	p.Y.Label.Text = "Root Mean Squared Error"
	p.Legend.Top = true

	epochs := h.Epochs()[1:]
	series := []struct {
		name   string
		values []float64
		color  color.Color
	}{
		{"Training Loss", h.RMSE(), blue},
		{"Validation Loss", h.ValRMSE(), green},
	}
	for _, s := range series {
		if s.values == nil {
			continue
		}
		line, err := plotter.NewLine(epochXYs(epochs, s.values[1:]))
		if err != nil {
			return nil, LossSpread{}, fmt.Errorf("building %s: %w", s.name, err)
		}
		line.LineStyle.Color = s.color
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(s.name, line)
	}

	p.Y.Min = spread.Bottom
	p.Y.Max = spread.Top
	return p, spread, nil
}

// LossSpread is the range of the plotted losses and the y axis padded 5%
// beyond it on both sides.
type LossSpread struct {
	Highest float64
	Lowest  float64
	Delta   float64
	Bottom  float64
	Top     float64
}

// Spread computes the LossSpread over the merged training and validation
// series without epoch 0.
func Spread(h *domain.History) (LossSpread, error) {
	if h.Len() < 2 {
		return LossSpread{}, ErrTooFewEpochs
	}
	merged := append([]float64(nil), h.RMSE()[1:]...)
	if v := h.ValRMSE(); v != nil {
		merged = append(merged, v[1:]...)
	}

	s := LossSpread{
		Highest: floats.Max(merged),
		Lowest:  floats.Min(merged),
	}
	s.Delta = s.Highest - s.Lowest
	s.Top = s.Highest + s.Delta*0.05
	s.Bottom = s.Lowest - s.Delta*0.05
	return s, nil
}

func epochXYs(epochs []int, values []float64) plotter.XYs {
	pts := make(plotter.XYs, len(epochs))
	for i := range epochs {
		pts[i].X = float64(epochs[i])
		pts[i].Y = values[i]
	}
	return pts
}

// PNG renders p to PNG bytes.
func PNG(p *plot.Plot) ([]byte, error) {
	wt, err := p.WriterTo(Width, Height, "png")
	if err != nil {
		return nil, fmt.Errorf("rendering png: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("rendering png: %w", err)
	}
	return buf.Bytes(), nil
}
