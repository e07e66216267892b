package main

import (
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/golang/geo/r2"

	"github.com/0x0FACED/go-arrangement/pkg/linear"
	"github.com/0x0FACED/go-arrangement/pkg/scene"
)

func prepareScatter(scatter *charts.Scatter, canvas CanvasConfig, title string) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: canvas.Height,
			Width:  canvas.Width,
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Разбиение плоскости: " + title,
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "X",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Y",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// sceneBounds - прямоугольник вокруг всех вершин сцены.
func sceneBounds(a *scene.Arrangement) r2.Rect {
	bounds := r2.EmptyRect()
	for _, v := range a.Vertices() {
		p, _ := a.Point(v)
		bounds = bounds.AddPoint(p)
	}
	return bounds
}

// drawExtent - на сколько продлить лучи и прямые, если в конфиге 0.
func drawExtent(a *scene.Arrangement, canvas CanvasConfig) float64 {
	if canvas.Extent > 0 {
		return canvas.Extent
	}
	bounds := sceneBounds(a)
	if bounds.IsEmpty() {
		return 100
	}
	size := bounds.Size()
	return math.Max(100, math.Max(size.X, size.Y))
}

// edgeEnds возвращает концы отрезка, которым рисуется кривая. Неограниченные
// концы продлеваются на extent вдоль направления кривой.
func edgeEnds(cv linear.Curve, extent float64) (r2.Point, r2.Point) {
	d := cv.Dir().Normalize()
	lo, hi := cv.Min(), cv.Max()
	if !cv.HasMin() {
		lo = lo.Sub(d.Mul(extent))
	}
	if !cv.HasMax() {
		hi = hi.Add(d.Mul(extent))
	}
	return lo, hi
}

func pointsSeries(a *scene.Arrangement, isolated bool) []opts.ScatterData {
	points := make([]opts.ScatterData, 0)
	for _, v := range a.Vertices() {
		if a.IsIsolated(v) != isolated {
			continue
		}
		p, _ := a.Point(v)
		points = append(points, opts.ScatterData{
			Value: []float64{p.X, p.Y},
		})
	}
	return points
}

// Преобразуем разбиение в Echarts: вершины, изолированные точки и по линии на каждое ребро
func arrangementToEcharts(a *scene.Arrangement, canvas CanvasConfig, title string) *charts.Scatter {
	scatter := charts.NewScatter()

	// Дизайним скаттер
	prepareScatter(scatter, canvas, title)

	scatter.AddSeries("Вершины", pointsSeries(a, false)).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)
	scatter.AddSeries("Изолированные точки", pointsSeries(a, true)).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "orange",
			}),
		)

	extent := drawExtent(a, canvas)
	for _, h := range a.Edges() {
		cv, _ := a.Curve(h)
		lo, hi := edgeEnds(cv, extent)

		name, color := "Отрезки", "deepskyblue"
		if cv.Kind() != linear.Segment {
			name, color = "Лучи и прямые", "violet"
		}

		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
		)

		line.AddSeries(name, []opts.LineData{
			{Value: []float64{lo.X, lo.Y}},
			{Value: []float64{hi.X, hi.Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 2,
				Color: color,
			}),
		)

		scatter.Overlap(line)
	}

	return scatter
}
