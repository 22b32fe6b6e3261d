// Package render draws chart encodings as PNGs through go-chart. It knows
// nothing about the data semantics: it maps paths to chart series, axis
// domains to explicit ranges, and overlay primitives to canvas drawing.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"RetailRadar/internal/model"
)

// Draw renders the encoding as a PNG. A nil encoding renders nothing.
func Draw(enc *model.ChartEncoding, w io.Writer) error {
	if enc == nil {
		return nil
	}

	ch := chart.Chart{
		Title:  enc.Title,
		Width:  enc.Width,
		Height: enc.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{
				Min: float64(enc.XDomain.Min.UnixNano()),
				Max: float64(enc.XDomain.Max.UnixNano()),
			},
			ValueFormatter: chart.TimeValueFormatterWithFormat(enc.XTickLayout),
		},
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: enc.YLeft.Min, Max: enc.YLeft.Max},
			ValueFormatter: tickFormatter(enc.YTickFormat),
		},
	}
	if enc.YRight != nil {
		ch.YAxisSecondary = chart.YAxis{
			Range:          &chart.ContinuousRange{Min: enc.YRight.Min, Max: enc.YRight.Max},
			ValueFormatter: tickFormatter(enc.YTickFormat),
		}
	}

	for _, p := range enc.Paths {
		ch.Series = append(ch.Series, toSeries(p))
	}
	if len(enc.Overlays) > 0 {
		ch.Elements = []chart.Renderable{overlayRenderable(enc)}
	}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render %q: %w", enc.Title, err)
	}
	return nil
}

func toSeries(p model.Path) chart.Series {
	col := hexColor(p.Color)
	style := chart.Style{StrokeColor: col, StrokeWidth: 1.5}
	if p.Kind == model.PathArea {
		style.FillColor = col.WithAlpha(110)
	}

	times := make([]time.Time, len(p.Points))
	values := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		times[i] = pt.Date
		values[i] = pt.Value
	}
	// go-chart needs at least two X values per series.
	if len(times) == 1 {
		times = append(times, times[0].Add(24*time.Hour))
		values = append(values, values[0])
	}

	axis := chart.YAxisPrimary
	if p.Axis == model.AxisRight {
		axis = chart.YAxisSecondary
	}
	return chart.TimeSeries{
		Name:    p.Name,
		XValues: times,
		YValues: values,
		Style:   style,
		YAxis:   axis,
	}
}

// overlayRenderable draws guides, bands and labels on the finished canvas.
// Overlay X positions arrive in the encoding's own coordinate range
// [0, enc.Width] and are rescaled onto the canvas box.
func overlayRenderable(enc *model.ChartEncoding) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		rescale := func(x float64) int {
			px := cb.Left + int(x/float64(enc.Width)*float64(cb.Right-cb.Left))
			// Fixed-era bands can start before the data extent; clamp to the canvas.
			if px < cb.Left {
				px = cb.Left
			}
			if px > cb.Right {
				px = cb.Right
			}
			return px
		}

		for _, o := range enc.Overlays {
			switch o.Kind {
			case model.OverlayBand:
				x0, x1 := rescale(o.X), rescale(o.X2)
				r.SetFillColor(hexColor(o.Color).WithAlpha(60))
				r.MoveTo(x0, cb.Top)
				r.LineTo(x1, cb.Top)
				r.LineTo(x1, cb.Bottom)
				r.LineTo(x0, cb.Bottom)
				r.Close()
				r.Fill()
			case model.OverlayGuide:
				x := rescale(o.X)
				r.SetStrokeColor(hexColor(o.Color))
				r.SetStrokeWidth(1)
				r.SetStrokeDashArray([]float64{3, 3})
				r.MoveTo(x, cb.Top)
				r.LineTo(x, cb.Bottom)
				r.Stroke()
			case model.OverlayLabel:
				x := rescale(o.X)
				r.SetFont(defaults.Font)
				r.SetFontSize(9)
				r.SetFontColor(drawing.ColorBlack)
				r.Text(o.Label, x+3, cb.Top+int(o.YOffset))
			}
		}
	}
}

func tickFormatter(format string) chart.ValueFormatter {
	return func(v interface{}) string {
		f, ok := v.(float64)
		if !ok {
			return ""
		}
		return fmt.Sprintf(format, f)
	}
}

func hexColor(s string) drawing.Color {
	s = strings.TrimPrefix(s, "#")
	if s == "" {
		return drawing.ColorBlack
	}
	return drawing.ColorFromHex(s)
}
