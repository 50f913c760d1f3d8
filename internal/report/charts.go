package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// go-chart needs at least two points to draw a line
const minChartPoints = 2

func (g *Generator) generateLatencyCharts(outputDir string, hours int) error {
	series, err := g.src.GetLatencySeries(hours)
	if err != nil {
		return err
	}

	targets := make([]string, 0, len(series))
	for target := range series {
		targets = append(targets, target)
	}
	sort.Strings(targets)

	for _, target := range targets {
		records := series[target]
		if len(records) < minChartPoints {
			continue
		}

		timestamps := make([]time.Time, len(records))
		values := make([]float64, len(records))
		for i, r := range records {
			timestamps[i] = r.Timestamp
			values[i] = r.RTT
		}

		filename := filepath.Join(outputDir, fmt.Sprintf("latency_%s.png", sanitizeFilename(target)))
		if err := renderLatencyChart(filename, target, timestamps, values); err != nil {
			return err
		}
	}

	return nil
}

func renderLatencyChart(filename, target string, timestamps []time.Time, values []float64) error {
	graph := chart.Chart{
		Title: fmt.Sprintf("Ping Latency - %s", target),
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    20,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:  1200,
		Height: 400,
		XAxis: chart.XAxis{
			Name: "Time",
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
			ValueFormatter: chart.TimeMinuteValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Latency (ms)",
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
			GridMajorStyle: chart.Style{
				StrokeColor: drawing.Color{R: 200, G: 200, B: 200, A: 255},
				StrokeWidth: 1.0,
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: target,
				Style: chart.Style{
					StrokeColor: chart.GetDefaultColor(0),
					StrokeWidth: 2,
				},
				XValues: timestamps,
				YValues: values,
			},
		},
	}

	// Add moving average
	if len(values) > 10 {
		ts := graph.Series[0].(chart.TimeSeries)
		graph.Series = append(graph.Series, chart.SMASeries{
			Name: "Moving Avg",
			Style: chart.Style{
				StrokeColor:     chart.GetDefaultColor(1),
				StrokeWidth:     2,
				StrokeDashArray: []float64{5, 5},
			},
			InnerSeries: ts,
			Period:      10,
		})
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}
